package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/breedsense/breedsense/pkg/domain/model/config"
	"github.com/breedsense/breedsense/pkg/domain/types"
)

// AppConfig represents the classifier configuration file. Every section is
// optional; unset fields fall back to the built-in defaults.
type AppConfig struct {
	path string

	Breeds              []string `toml:"breeds"`
	Keywords            []string `toml:"keywords"`
	AllowedContentTypes []string `toml:"allowed_content_types"`
	AllowedExtensions   []string `toml:"allowed_extensions"`
	RetentionBound      int      `toml:"retention_bound"`
	DefaultSeed         string   `toml:"default_seed"`
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to classifier configuration file (TOML)",
			Sources:     cli.EnvVars("BREEDSENSE_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	seen := make(map[string]bool)
	for _, b := range a.Breeds {
		if b == "" {
			return goerr.Wrap(ErrMissingBreeds, "empty breed name")
		}
		if seen[b] {
			return goerr.Wrap(ErrDuplicateBreed, "breed listed twice", goerr.V(BreedKey, b))
		}
		seen[b] = true
	}

	if a.RetentionBound < 0 {
		return goerr.Wrap(ErrInvalidRetention, "negative retention bound",
			goerr.V("retention_bound", a.RetentionBound))
	}

	for _, ext := range a.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			return goerr.Wrap(ErrInvalidExtension, "missing dot prefix", goerr.V(ExtensionKey, ext))
		}
	}

	return nil
}

// Configure loads the configuration file when one is set, validates it, and
// returns the resulting classifier configuration. Without a file the
// built-in defaults are returned as is.
func (a *AppConfig) Configure() (*domainConfig.ClassifierConfig, error) {
	cfg := domainConfig.DefaultClassifierConfig()
	if a.path == "" {
		return cfg, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "no such file", goerr.V(ConfigPathKey, a.path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, a.path))
	}

	if err := toml.Unmarshal(data, a); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, a.path))
	}

	if err := a.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, a.path))
	}

	a.apply(cfg)
	return cfg, nil
}

// apply overlays the file values onto the default configuration
func (a *AppConfig) apply(cfg *domainConfig.ClassifierConfig) {
	if len(a.Breeds) > 0 {
		breeds := make([]types.Breed, len(a.Breeds))
		for i, b := range a.Breeds {
			breeds[i] = types.Breed(b)
		}
		cfg.Breeds = breeds
	}
	if len(a.Keywords) > 0 {
		cfg.Keywords = a.Keywords
	}
	if len(a.AllowedContentTypes) > 0 {
		cfg.AllowedContentTypes = a.AllowedContentTypes
	}
	if len(a.AllowedExtensions) > 0 {
		cfg.AllowedExtensions = a.AllowedExtensions
	}
	if a.RetentionBound > 0 {
		cfg.RetentionBound = a.RetentionBound
	}
	if a.DefaultSeed != "" {
		cfg.DefaultSeed = a.DefaultSeed
	}
}
