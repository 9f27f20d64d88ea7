package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type Config struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	MongoURI      string
	MongoDB       string

	// Upstream API base URLs. Empty means the remote source is not deployed
	// and reads resolve from the local store.
	UpstreamPropertiesURL string
	UpstreamAmenitiesURL  string

	CacheTTL time.Duration
}

func Load() Config {
	return Config{
		Port:                  getenv("PORT", "8080"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		MongoURI:              os.Getenv("MONGODB_URI"),
		MongoDB:               getenv("MONGODB_DB", "closeby"),
		UpstreamPropertiesURL: os.Getenv("UPSTREAM_PROPERTIES_URL"),
		UpstreamAmenitiesURL:  os.Getenv("UPSTREAM_AMENITIES_URL"),
		CacheTTL:              getduration("CACHE_TTL", 5*time.Minute),
	}
}

// InitLogger installs the colored slog handler as the process default.
func InitLogger() {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "2006-01-02 15:04:05",
	})
	slog.SetDefault(slog.New(handler))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
