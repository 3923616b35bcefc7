package interfaces

import (
	"context"

	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/types"
)

// PredictionRepository defines the interface for prediction record persistence.
// The record's ID is the document key; timestamps are set by the caller and
// persisted verbatim.
type PredictionRepository interface {
	// Create persists a new prediction record
	Create(ctx context.Context, pred *model.Prediction) error

	// ListRecent retrieves up to limit records ordered by timestamp descending
	ListRecent(ctx context.Context, limit int) ([]*model.Prediction, error)

	// ListOldest retrieves up to limit records ordered by timestamp ascending,
	// ties broken by ascending ID
	ListOldest(ctx context.Context, limit int) ([]*model.Prediction, error)

	// Count returns the total number of stored records
	Count(ctx context.Context) (int, error)

	// DeleteByIDs deletes the records with the given IDs in one batch.
	// Deleting an ID that no longer exists is a silent no-op.
	DeleteByIDs(ctx context.Context, ids []types.PredictionID) error

	// CountByBreed returns the number of records per distinct breed
	CountByBreed(ctx context.Context) (map[types.Breed]int, error)
}
