package cache

import (
	"context"
	"os"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvRedisURL = "GRIDPAD_REDIS_URL"
	EnvMongoURI = "GRIDPAD_MONGO_URI"
	EnvMongoDB  = "GRIDPAD_MONGO_DB"
)

// DefaultMongoDatabase is used when GRIDPAD_MONGO_DB is unset.
const DefaultMongoDatabase = "gridpad"

// Config selects a cache backend. The first configured backend wins in the
// order Disabled, RedisURL, MongoURI, Dir.
type Config struct {
	Disabled      bool
	RedisURL      string
	MongoURI      string
	MongoDatabase string
	Prefix        string
	Dir           string
}

// ConfigFromEnv fills the remote backend settings from the environment and
// uses dir for the file fallback.
func ConfigFromEnv(dir string) Config {
	cfg := Config{
		RedisURL:      os.Getenv(EnvRedisURL),
		MongoURI:      os.Getenv(EnvMongoURI),
		MongoDatabase: os.Getenv(EnvMongoDB),
		Dir:           dir,
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = DefaultMongoDatabase
	}
	return cfg
}

// Backend names the backend Open would select.
func (c Config) Backend() string {
	switch {
	case c.Disabled:
		return "none"
	case c.RedisURL != "":
		return "redis"
	case c.MongoURI != "":
		return "mongo"
	case c.Dir != "":
		return "file"
	default:
		return "none"
	}
}

// Open builds the backend cfg selects. Remote backends are checked for
// reachability before they are returned.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend() {
	case "redis":
		c, err := NewRedisCache(cfg.RedisURL, cfg.Prefix)
		if err != nil {
			return nil, err
		}
		if err := c.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
		return c, nil
	case "mongo":
		c, err := NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := c.EnsureIndexes(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
		return c, nil
	case "file":
		return NewFileCache(cfg.Dir)
	default:
		return NewNullCache(), nil
	}
}
