package usecase

import (
	"context"

	"github.com/breedsense/breedsense/pkg/domain/interfaces"
	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/model/config"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultRecentLimit applies when the caller does not specify a limit
	DefaultRecentLimit = 20
	maxRecentLimit     = 50
)

// AnalyticsUseCase provides read-only views over stored predictions
type AnalyticsUseCase struct {
	repo interfaces.Repository
	cfg  *config.ClassifierConfig
}

func NewAnalyticsUseCase(repo interfaces.Repository, cfg *config.ClassifierConfig) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		repo: repo,
		cfg:  cfg,
	}
}

// Recent returns up to limit predictions, newest first. Zero or negative
// limits behave as 1, limits above 50 as 50. Callers without an explicit
// limit should pass DefaultRecentLimit.
func (uc *AnalyticsUseCase) Recent(ctx context.Context, limit int) ([]*model.Prediction, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	preds, err := uc.repo.Prediction().ListRecent(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list recent predictions")
	}
	return preds, nil
}

// Summary aggregates all stored predictions into per-breed counts, total,
// and the most common breed. When counts tie, the breed listed first in the
// configured breed set wins; breeds outside the configured set (possible
// after a config change) lose ties to configured ones.
func (uc *AnalyticsUseCase) Summary(ctx context.Context) (*model.BreedSummary, error) {
	counts, err := uc.repo.Prediction().CountByBreed(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate predictions by breed")
	}

	summary := &model.BreedSummary{
		ByBreed: counts,
	}
	for _, n := range counts {
		summary.Total += n
	}

	best := 0
	for _, breed := range uc.cfg.Breeds {
		if n := counts[breed]; n > best {
			best = n
			b := breed
			summary.MostCommon = &b
		}
	}
	for breed, n := range counts {
		if n > best {
			best = n
			b := breed
			summary.MostCommon = &b
		}
	}

	return summary, nil
}
