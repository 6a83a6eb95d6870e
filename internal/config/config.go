// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverMongo    = "mongodb"
	DriverPostgres = "postgres"
)

// StructuredConfig is the top-level configuration container for the
// beatfluencer API. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables (including a
// .env file), an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document store, the upload store
	// and Redis.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, CORS and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Limiter holds login rate limiting settings.
	Limiter Limiter `envPrefix:"LIMITER_"`

	// Adapter holds settings of the API client used by the CLI.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, bootstrap and versioning.
type App struct {
	// PasswordHashKey is the HMAC key of legacy password digests. Stored
	// digests made with it still verify and are re-hashed with bcrypt on
	// the next successful login.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum level of emitted log entries.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SeedDefaultUsers enables creation of the default admin and campaign
	// manager accounts on startup.
	// Env: APP_SEED_DEFAULT_USERS
	SeedDefaultUsers *bool `env:"SEED_DEFAULT_USERS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server (e.g. ":8001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. The gRPC
	// server is not started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists allowed cross-origin sources, comma separated.
	// Env: SERVER_CORS_ORIGINS
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the document store.
type DB struct {
	// Driver selects the backend: "mongodb" or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, a mongodb:// URI or a PostgreSQL DSN.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by postgres.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Files holds upload storage settings. Uploads go to S3 when S3.Bucket is
// set and to UploadDir otherwise.
type Files struct {
	// UploadDir is the local directory uploads are written to.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	S3 S3 `envPrefix:"S3_"`
}

// S3 holds settings of an S3-compatible bucket.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Redis holds the Redis connection used by the login rate limiter.
type Redis struct {
	// URL is a redis:// URL. The limiter is disabled when empty.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Limiter holds fixed-window login rate limiting settings.
type Limiter struct {
	// LoginAttempts is the number of login attempts allowed per window.
	// Env: LIMITER_LOGIN_ATTEMPTS
	LoginAttempts int `env:"LOGIN_ATTEMPTS"`

	// LoginWindow is the window length.
	// Env: LIMITER_LOGIN_WINDOW
	LoginWindow time.Duration `env:"LOGIN_WINDOW"`
}

// Adapter holds settings of the outbound API client.
type Adapter struct {
	// HTTPAddress is the base URL of the API (e.g. "http://localhost:8001").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer token sent with authenticated requests, as printed
	// by the client's login command.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// SeedEnabled reports whether default users should be created on startup.
func (a App) SeedEnabled() bool {
	return a.SeedDefaultUsers == nil || *a.SeedDefaultUsers
}

// UsesS3 reports whether uploads should be stored in an S3 bucket.
func (f Files) UsesS3() bool {
	return f.S3.Bucket != ""
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources in priority order (the first non-zero value wins):
//  1. Command-line flags
//  2. Environment variables, after loading a .env file if present
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetClientConfig loads the configuration of the API client. Only the
// environment, a .env file and defaults are consulted; command-line
// arguments belong to the CLI itself.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}
