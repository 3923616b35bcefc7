package config

import (
	"github.com/breedsense/breedsense/pkg/domain/types"
)

// DefaultRetentionBound is the maximum number of prediction records kept
const DefaultRetentionBound = 20

// DefaultSeed is the classification seed used when an upload has no filename
const DefaultSeed = "default"

// ClassifierConfig holds the process-wide constants of the mock classifier.
// It is built once at startup and never mutated afterwards; components
// receive it at construction time.
type ClassifierConfig struct {
	Breeds              []types.Breed
	Keywords            []string
	AllowedContentTypes []string
	AllowedExtensions   []string
	RetentionBound      int
	DefaultSeed         string
}

// DefaultClassifierConfig returns the built-in classifier configuration
func DefaultClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{
		Breeds: []types.Breed{
			"Jersey",
			"Holstein",
			"Gir",
			"Sahiwal",
			"Tharparkar",
		},
		Keywords: []string{
			"cow", "cattle", "bull", "calf", "ox", "heifer",
			"jersey", "holstein", "gir", "sahiwal", "tharparkar",
		},
		AllowedContentTypes: []string{
			"image/jpeg", "image/jpg", "image/png", "image/webp",
		},
		AllowedExtensions: []string{
			".jpg", ".jpeg", ".png", ".webp",
		},
		RetentionBound: DefaultRetentionBound,
		DefaultSeed:    DefaultSeed,
	}
}
