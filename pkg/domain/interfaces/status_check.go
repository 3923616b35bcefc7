package interfaces

import (
	"context"

	"github.com/breedsense/breedsense/pkg/domain/model"
)

// StatusCheckRepository defines the interface for status check persistence
type StatusCheckRepository interface {
	// Create persists a new status check
	Create(ctx context.Context, check *model.StatusCheck) error

	// List retrieves all status checks ordered by timestamp descending
	List(ctx context.Context) ([]*model.StatusCheck, error)
}
