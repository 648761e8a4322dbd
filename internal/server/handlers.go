package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridpad/pkg/buildinfo"
	"github.com/matzehuels/gridpad/pkg/document"
	errs "github.com/matzehuels/gridpad/pkg/errors"
	"github.com/matzehuels/gridpad/pkg/observability"
	"github.com/matzehuels/gridpad/pkg/pipeline"
	"github.com/matzehuels/gridpad/pkg/render"
)

// Request is the body of the layout and render routes.
type Request struct {
	Document *document.Document `json:"document"`
	Width    int                `json:"width,omitempty"`
	Height   int                `json:"height,omitempty"`
	Tight    bool               `json:"tight,omitempty"`
	RTL      bool               `json:"rtl,omitempty"`
	Labels   bool               `json:"labels,omitempty"`
	Refresh  bool               `json:"refresh,omitempty"`
}

func (req Request) options() pipeline.Options {
	return pipeline.Options{
		Document: req.Document,
		Width:    req.Width,
		Height:   req.Height,
		Tight:    req.Tight,
		RTL:      req.RTL,
		Labels:   req.Labels,
		Refresh:  req.Refresh,
	}
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type healthBody struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Version: buildinfo.Short()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), *req.Document, req.options())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheHeader(hit))
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := req.options()
	opts.Formats = []string{format}
	if format == render.FormatPNG && (opts.Width > MaxRasterSize || opts.Height > MaxRasterSize) {
		s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "png renders are limited to %dx%d px", MaxRasterSize, MaxRasterSize))
		return
	}
	l, layoutHit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), *req.Document, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, renderHit, err := s.runner.RenderWithCacheInfo(r.Context(), l, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("X-Cache", cacheHeader(layoutHit && renderHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return Request{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request body")
	}
	if req.Document == nil {
		return Request{}, errs.New(errs.ErrCodeInvalidInput, "document is required")
	}
	return req, nil
}

func cacheHeader(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// statusFor maps an error to an HTTP status. Declaration and input errors
// are the caller's fault; everything else is ours.
func statusFor(err error) int {
	if errs.IsConfiguration(err) {
		return http.StatusBadRequest
	}
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidFormat, errs.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errs.ErrCodeNotFound, errs.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errs.GetCode(err))
	if code == "" {
		code = string(errs.ErrCodeInternal)
	}
	message := errs.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFromContext(r.Context()), "err", err)
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		message = "internal error"
	}
	writeJSON(w, status, errorBody{Code: code, Message: message, RequestID: RequestIDFromContext(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("encode response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	_, _ = w.Write([]byte("\n"))
}
