package interfaces

import (
	"context"

	"github.com/breedsense/breedsense/pkg/domain/types"
)

// BreedClassifier maps an upload to a breed label. The production
// implementation is a deterministic filename hash; a real inference engine
// can replace it behind this interface without touching the gate, pruner or
// aggregator.
type BreedClassifier interface {
	Classify(ctx context.Context, filename string, data []byte) (types.Breed, error)
}
