package config

import (
	"fmt"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

type Environment string

const (
	Live Environment = "live"
	Beta Environment = "beta"
	Dev  Environment = "dev"
)

type MathbankConfig struct {
	Env         Environment
	Addr        string
	PrivateAddr string
	BaseUrl     string
	LogLevel    zerolog.Level

	Postgres PostgresConfig
	Storage  StorageConfig
	Auth     AuthConfig
}

type PostgresConfig struct {
	User     string
	Password string
	Hostname string
	Port     int
	DbName   string
	LogLevel tracelog.LogLevel
	MinConn  int32
	MaxConn  int32
}

func (info PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s", info.User, info.Password, info.Hostname, info.Port, info.DbName)
}

type StorageConfig struct {
	Endpoint string
	Region   string
	Bucket   string
	Key      string
	Secret   string

	// When the bucket is world-readable, catalog URLs are plain public
	// URLs rooted at PublicUrlBase. Otherwise they are presigned.
	PublicBucket  bool
	PublicUrlBase string
}

type AuthConfig struct {
	CookieDomain string
	CookieSecure bool
}
