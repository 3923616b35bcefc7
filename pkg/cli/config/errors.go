package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrMissingBreeds      = goerr.New("at least one breed is required")
	ErrDuplicateBreed     = goerr.New("duplicate breed name")
	ErrInvalidRetention   = goerr.New("retention bound must be positive")
	ErrInvalidExtension   = goerr.New("extension must start with a dot")
	ErrInvalidLogLevel    = goerr.New("invalid log level")
	ErrInvalidLogFormat   = goerr.New("invalid log format")
	ErrInvalidBackendType = goerr.New("invalid repository backend")
	ErrMissingProjectID   = goerr.New("firestore-project-id is required when using firestore backend")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	BreedKey      = "breed"
	ExtensionKey  = "extension"
	BackendKey    = "backend"
)
