package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port         string
	DatabaseURL  string // 비어 있으면 메모리 저장소
	LogLevel     string
	FoldCase     bool
	MaxBodyBytes int64
}

const (
	defaultPort         = "8080"
	defaultLogLevel     = "INFO"
	defaultMaxBodyBytes = 32 << 20
)

// Load reads SHRINKIT_* environment variables, falling back to defaults for
// anything unset or unparsable.
func Load() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Port:         get("SHRINKIT_PORT", defaultPort),
		DatabaseURL:  get("SHRINKIT_DATABASE_URL", ""),
		LogLevel:     strings.ToUpper(get("SHRINKIT_LOG_LEVEL", defaultLogLevel)),
		MaxBodyBytes: defaultMaxBodyBytes,
	}
	if b, err := strconv.ParseBool(get("SHRINKIT_FOLD_CASE", "false")); err == nil {
		cfg.FoldCase = b
	}
	if n, err := strconv.ParseInt(get("SHRINKIT_MAX_BODY_BYTES", ""), 10, 64); err == nil && n > 0 {
		cfg.MaxBodyBytes = n
	}
	return cfg
}
