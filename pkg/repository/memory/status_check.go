package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type statusCheckRepository struct {
	mu     sync.RWMutex
	checks map[types.StatusCheckID]*model.StatusCheck
}

func newStatusCheckRepository() *statusCheckRepository {
	return &statusCheckRepository{
		checks: make(map[types.StatusCheckID]*model.StatusCheck),
	}
}

func copyStatusCheck(c *model.StatusCheck) *model.StatusCheck {
	copied := *c
	return &copied
}

func (r *statusCheckRepository) Create(ctx context.Context, check *model.StatusCheck) error {
	if check.ID == "" {
		return goerr.New("status check ID must be assigned by the caller")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks[check.ID] = copyStatusCheck(check)
	return nil
}

func (r *statusCheckRepository) List(ctx context.Context) ([]*model.StatusCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*model.StatusCheck, 0, len(r.checks))
	for _, c := range r.checks {
		all = append(all, copyStatusCheck(c))
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].Timestamp.After(all[j].Timestamp)
		}
		return all[i].ID < all[j].ID
	})

	return all, nil
}
