// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Image store backends accepted by Images.Backend.
const (
	ImagesBackendCloudinary = "cloudinary"
	ImagesBackendMinIO      = "minio"
)

// StructuredConfig is the top-level configuration container for the
// go-vinted server. It aggregates all sub-configurations and is populated
// by merging built-in defaults, an optional JSON file, an optional .env
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: log level, password digest,
	// page size cap and version.
	App App `envPrefix:"APP_"`

	// Storage holds the MongoDB and Redis settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Images selects and configures the remote image store.
	Images Images `envPrefix:"IMAGES_"`

	// Broker holds the NATS settings. Empty URL disables events.
	Broker Broker `envPrefix:"BROKER_"`

	// Server holds network address, CORS and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the cleanup retry worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PasswordHasher names the digest used for new users
	// ("sha256" or "argon2id").
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`

	// MaxPageSize caps the limit of listing searches. 0 means uncapped.
	// Env: APP_MAX_PAGE_SIZE
	MaxPageSize int `env:"MAX_PAGE_SIZE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	Mongo Mongo `envPrefix:"MONGO_"`

	// Redis is optional; an empty address disables the offer cache.
	Redis Redis `envPrefix:"REDIS_"`
}

// Mongo holds MongoDB connection settings.
type Mongo struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the database holding the users and offers collections.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: STORAGE_MONGO_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Redis holds the offer cache settings.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// OfferTTL is how long a cached offer lives.
	// Env: STORAGE_REDIS_OFFER_TTL
	OfferTTL time.Duration `env:"OFFER_TTL"`
}

// Images selects the image store backend.
type Images struct {
	// Backend is "cloudinary" or "minio".
	// Env: IMAGES_BACKEND
	Backend string `env:"BACKEND"`

	// Root is the top-level folder, e.g. "vinted" gives
	// "vinted/offers/<id>".
	// Env: IMAGES_ROOT
	Root string `env:"ROOT"`

	Cloudinary Cloudinary `envPrefix:"CLOUDINARY_"`
	MinIO      MinIO      `envPrefix:"MINIO_"`
}

// Cloudinary holds the credentials of the Cloudinary upload and admin APIs.
type Cloudinary struct {
	// Env: IMAGES_CLOUDINARY_NAME
	CloudName string `env:"NAME"`
	// Env: IMAGES_CLOUDINARY_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: IMAGES_CLOUDINARY_API_SECRET
	APISecret string `env:"API_SECRET"`
	// BaseURL is the API host, e.g. a regional endpoint.
	// Env: IMAGES_CLOUDINARY_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: IMAGES_CLOUDINARY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// MinIO holds the settings of an S3-compatible object store.
type MinIO struct {
	// Env: IMAGES_MINIO_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: IMAGES_MINIO_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`
	// Env: IMAGES_MINIO_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
	// Env: IMAGES_MINIO_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: IMAGES_MINIO_USE_SSL
	UseSSL bool `env:"USE_SSL"`
	// PublicURL prefixes object keys in returned image URLs. Defaults to
	// the endpoint URL plus bucket.
	// Env: IMAGES_MINIO_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// Broker holds the NATS connection settings.
type Broker struct {
	// Env: BROKER_NATS_URL
	NATSURL string `env:"NATS_URL"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format. An empty host
	// listens on all interfaces.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// FrontendURL is the only origin allowed by CORS.
	// Env: SERVER_FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// MaxUploadSize caps request bodies carrying files, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds the cleanup retry worker settings.
type Workers struct {
	// CleanupInterval is the delay between retry rounds.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
	// CleanupMaxAttempts bounds the retries of a single folder.
	// Env: WORKERS_CLEANUP_MAX_ATTEMPTS
	CleanupMaxAttempts int `env:"CLEANUP_MAX_ATTEMPTS"`
	// CleanupQueueSize is the capacity of the pending folder queue.
	// Env: WORKERS_CLEANUP_QUEUE_SIZE
	CleanupQueueSize int `env:"CLEANUP_QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. JSON file (path resolved from the environment and flags)
//  3. Legacy environment names (PORT, MONGO_CONNECTION_STRING, ...)
//  4. Environment variables, including those loaded from .env
//  5. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withLegacyEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
