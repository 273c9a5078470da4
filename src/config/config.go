package config

import (
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

// Config is process-wide. Values come from the environment (plus a .env
// file in dev, courtesy of godotenv's autoload import).
var Config = MathbankConfig{
	Env:         Environment(envString("MATHBANK_ENV", string(Dev))),
	Addr:        envString("MATHBANK_ADDR", ":9001"),
	PrivateAddr: envString("MATHBANK_PRIVATE_ADDR", "localhost:9002"),
	BaseUrl:     envString("MATHBANK_BASE_URL", "http://localhost:9001"),
	LogLevel:    envLogLevel("MATHBANK_LOG_LEVEL", zerolog.InfoLevel),

	Postgres: PostgresConfig{
		User:     envString("MATHBANK_DB_USER", "mathbank"),
		Password: envString("MATHBANK_DB_PASSWORD", "password"),
		Hostname: envString("MATHBANK_DB_HOST", "localhost"),
		Port:     envInt("MATHBANK_DB_PORT", 5432),
		DbName:   envString("MATHBANK_DB_NAME", "mathbank"),
		LogLevel: tracelog.LogLevelWarn,
		MinConn:  int32(envInt("MATHBANK_DB_MIN_CONN", 2)),
		MaxConn:  int32(envInt("MATHBANK_DB_MAX_CONN", 10)),
	},

	Storage: StorageConfig{
		Endpoint:      envString("MATHBANK_STORAGE_ENDPOINT", "http://localhost:9003"),
		Region:        envString("MATHBANK_STORAGE_REGION", "us-east-1"),
		Bucket:        envString("MATHBANK_STORAGE_BUCKET", "mathbank-pdfs"),
		Key:           envString("MATHBANK_STORAGE_KEY", ""),
		Secret:        envString("MATHBANK_STORAGE_SECRET", ""),
		PublicBucket:  envBool("MATHBANK_STORAGE_PUBLIC", false),
		PublicUrlBase: envString("MATHBANK_STORAGE_PUBLIC_URL_BASE", ""),
	},

	Auth: AuthConfig{
		CookieDomain: envString("MATHBANK_COOKIE_DOMAIN", "localhost"),
		CookieSecure: envBool("MATHBANK_COOKIE_SECURE", false),
	},
}

func envString(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v, ok := os.LookupEnv(name); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envBool(name string, def bool) bool {
	if v, ok := os.LookupEnv(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envLogLevel(name string, def zerolog.Level) zerolog.Level {
	if v, ok := os.LookupEnv(name); ok {
		if lvl, err := zerolog.ParseLevel(v); err == nil {
			return lvl
		}
	}
	return def
}
