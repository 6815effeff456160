package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	CatalogSourceDir      = "dir"
	CatalogSourcePostgres = "postgres"

	defaultPort         = "8000"
	defaultVerbsDir     = "data/verbs"
	defaultStaticDir    = "static"
	defaultMaxFormBytes = 64 << 10
)

type Config struct {
	Addr          string
	VerbsDir      string
	StaticDir     string
	CatalogSource string
	DatabaseDSN   string
	StateSecret   string
	MaxFormBytes  int64
	LogLevel      string
	LogFormat     string
}

// Load reads the process configuration from the environment, filling in defaults
// for anything unset or unparsable.
func Load() Config {
	port := getenv("PORT", defaultPort)
	if !strings.Contains(port, ":") {
		port = ":" + port
	}

	cfg := Config{
		Addr:          port,
		VerbsDir:      getenv("VERBS_DIR", defaultVerbsDir),
		StaticDir:     getenv("STATIC_DIR", defaultStaticDir),
		CatalogSource: strings.ToLower(getenv("CATALOG_SOURCE", CatalogSourceDir)),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		StateSecret:   os.Getenv("STATE_SECRET"),
		MaxFormBytes:  defaultMaxFormBytes,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(getenv("LOG_FORMAT", "json")),
	}

	if raw := os.Getenv("MAX_FORM_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			logrus.WithField("value", raw).Warn("MAX_FORM_BYTES inválido, usando padrão")
		} else {
			cfg.MaxFormBytes = n
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
