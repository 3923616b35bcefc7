package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields zero summary", func(t *testing.T) {
		uc, _ := newUseCases(t)

		summary := gt.R1(uc.Analytics.Summary(ctx)).NoError(t)
		gt.Value(t, summary.Total).Equal(0)
		gt.Value(t, len(summary.ByBreed)).Equal(0)
		gt.Value(t, summary.MostCommon).Nil()
	})

	t.Run("counts per breed with most common", func(t *testing.T) {
		uc, repo := newUseCases(t)

		base := time.Now().UTC().Truncate(time.Microsecond)
		for i, b := range []types.Breed{"Jersey", "Jersey", "Gir"} {
			pred := &model.Prediction{
				ID:        types.NewPredictionID(),
				Breed:     b,
				Timestamp: base.Add(time.Duration(i) * time.Millisecond),
			}
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
		}

		summary := gt.R1(uc.Analytics.Summary(ctx)).NoError(t)
		gt.Value(t, summary.Total).Equal(3)
		gt.Value(t, summary.ByBreed[types.Breed("Jersey")]).Equal(2)
		gt.Value(t, summary.ByBreed[types.Breed("Gir")]).Equal(1)
		gt.Value(t, summary.MostCommon).NotNil()
		gt.Value(t, *summary.MostCommon).Equal(types.Breed("Jersey"))
	})

	t.Run("ties resolve to breed set order", func(t *testing.T) {
		uc, repo := newUseCases(t)

		base := time.Now().UTC().Truncate(time.Microsecond)
		// Holstein precedes Gir in the breed set
		for i, b := range []types.Breed{"Gir", "Holstein"} {
			pred := &model.Prediction{
				ID:        types.NewPredictionID(),
				Breed:     b,
				Timestamp: base.Add(time.Duration(i) * time.Millisecond),
			}
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
		}

		summary := gt.R1(uc.Analytics.Summary(ctx)).NoError(t)
		gt.Value(t, summary.MostCommon).NotNil()
		gt.Value(t, *summary.MostCommon).Equal(types.Breed("Holstein"))
	})
}

func TestRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("returns newest first", func(t *testing.T) {
		uc, repo := newUseCases(t)

		base := time.Now().UTC().Truncate(time.Microsecond)
		var last types.PredictionID
		for i := 0; i < 5; i++ {
			pred := &model.Prediction{
				ID:        types.NewPredictionID(),
				Breed:     "Jersey",
				Timestamp: base.Add(time.Duration(i) * time.Second),
			}
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
			last = pred.ID
		}

		preds := gt.R1(uc.Analytics.Recent(ctx, 3)).NoError(t)
		gt.Array(t, preds).Length(3)
		gt.Value(t, preds[0].ID).Equal(last)
	})

	t.Run("limit clamping", func(t *testing.T) {
		uc, repo := newUseCases(t)

		base := time.Now().UTC().Truncate(time.Microsecond)
		for i := 0; i < 60; i++ {
			pred := &model.Prediction{
				ID:        types.NewPredictionID(),
				Breed:     "Gir",
				Timestamp: base.Add(time.Duration(i) * time.Millisecond),
			}
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
		}

		// zero or negative behave as the minimum of 1
		gt.Array(t, gt.R1(uc.Analytics.Recent(ctx, 0)).NoError(t)).Length(1)
		gt.Array(t, gt.R1(uc.Analytics.Recent(ctx, -3)).NoError(t)).Length(1)
		// everything above 50 behaves as 50
		gt.Array(t, gt.R1(uc.Analytics.Recent(ctx, 1000)).NoError(t)).Length(50)
		// in-range limits pass through
		gt.Array(t, gt.R1(uc.Analytics.Recent(ctx, 7)).NoError(t)).Length(7)
	})

	t.Run("reading has no pruning side effect", func(t *testing.T) {
		uc, repo := newUseCases(t)

		base := time.Now().UTC().Truncate(time.Microsecond)
		for i := 0; i < 30; i++ {
			pred := &model.Prediction{
				ID:        types.NewPredictionID(),
				Breed:     "Sahiwal",
				Timestamp: base.Add(time.Duration(i) * time.Millisecond),
			}
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
		}

		_ = gt.R1(uc.Analytics.Recent(ctx, 10)).NoError(t)
		_ = gt.R1(uc.Analytics.Summary(ctx)).NoError(t)

		count := gt.R1(repo.Prediction().Count(ctx)).NoError(t)
		gt.Value(t, count).Equal(30)
	})
}
