package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type predictionRepository struct {
	mu          sync.RWMutex
	predictions map[types.PredictionID]*model.Prediction
}

func newPredictionRepository() *predictionRepository {
	return &predictionRepository{
		predictions: make(map[types.PredictionID]*model.Prediction),
	}
}

func copyPrediction(p *model.Prediction) *model.Prediction {
	copied := *p
	return &copied
}

func (r *predictionRepository) Create(ctx context.Context, pred *model.Prediction) error {
	if pred.ID == "" {
		return goerr.New("prediction ID must be assigned by the caller")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.predictions[pred.ID]; exists {
		return goerr.New("prediction already exists", goerr.V("id", pred.ID))
	}

	r.predictions[pred.ID] = copyPrediction(pred)
	return nil
}

// sortedAll returns copies of all records, oldest first. Ties on identical
// timestamps fall back to ascending ID so concurrent pruners agree on the
// eviction order.
func (r *predictionRepository) sortedAll() []*model.Prediction {
	all := make([]*model.Prediction, 0, len(r.predictions))
	for _, p := range r.predictions {
		all = append(all, copyPrediction(p))
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].Timestamp.Before(all[j].Timestamp)
		}
		return all[i].ID < all[j].ID
	})

	return all
}

func (r *predictionRepository) ListRecent(ctx context.Context, limit int) ([]*model.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedAll()
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *predictionRepository) ListOldest(ctx context.Context, limit int) ([]*model.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedAll()
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *predictionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.predictions), nil
}

func (r *predictionRepository) DeleteByIDs(ctx context.Context, ids []types.PredictionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// deleting a missing ID is a no-op
	for _, id := range ids {
		delete(r.predictions, id)
	}
	return nil
}

func (r *predictionRepository) CountByBreed(ctx context.Context) (map[types.Breed]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[types.Breed]int)
	for _, p := range r.predictions {
		counts[p.Breed]++
	}
	return counts, nil
}
