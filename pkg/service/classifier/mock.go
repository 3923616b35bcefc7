package classifier

import (
	"context"

	"github.com/breedsense/breedsense/pkg/domain/interfaces"
	"github.com/breedsense/breedsense/pkg/domain/model/config"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Hash constants are contractual: they determine which breed a given seed
// maps to, and must stay bit-exact across releases so the same image name
// always yields the same label.
const (
	hashMultiplier = 131
	hashModulus    = 1000003
)

// SeedIndex maps an arbitrary seed text to a stable index in [0, n).
// It iterates the seed's Unicode code points in order. The empty seed
// always maps to index 0.
func SeedIndex(seed string, n int) int {
	h := 0
	for _, r := range seed {
		h = (h*hashMultiplier + int(r)) % hashModulus
	}
	return h % n
}

// Mock is a deterministic stand-in for a real breed classifier. The label is
// derived from the upload's filename so repeated uploads of the same image
// stay consistent; the image bytes are ignored.
type Mock struct {
	cfg *config.ClassifierConfig
}

var _ interfaces.BreedClassifier = &Mock{}

// NewMock creates a mock classifier over the configured breed set
func NewMock(cfg *config.ClassifierConfig) (*Mock, error) {
	if len(cfg.Breeds) == 0 {
		return nil, goerr.New("classifier requires a non-empty breed set")
	}
	return &Mock{cfg: cfg}, nil
}

// Classify returns the breed for the given upload. An empty filename falls
// back to the configured default seed.
func (m *Mock) Classify(ctx context.Context, filename string, data []byte) (types.Breed, error) {
	seed := filename
	if seed == "" {
		seed = m.cfg.DefaultSeed
	}
	return m.cfg.Breeds[SeedIndex(seed, len(m.cfg.Breeds))], nil
}
