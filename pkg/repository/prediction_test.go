package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/breedsense/breedsense/pkg/domain/interfaces"
	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/breedsense/breedsense/pkg/repository/firestore"
	"github.com/breedsense/breedsense/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func newPrediction(breed types.Breed, ts time.Time) *model.Prediction {
	return &model.Prediction{
		ID:          types.NewPredictionID(),
		Filename:    "cow.jpg",
		ContentType: "image/jpeg",
		Breed:       breed,
		Timestamp:   ts,
	}
}

func runPredictionRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create persists the record verbatim", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ts := time.Now().UTC().Truncate(time.Microsecond)
		pred := newPrediction("Jersey", ts)
		gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()

		stored := gt.R1(repo.Prediction().ListRecent(ctx, 10)).NoError(t)
		gt.Array(t, stored).Length(1)
		gt.Value(t, stored[0].ID).Equal(pred.ID)
		gt.Value(t, stored[0].Filename).Equal("cow.jpg")
		gt.Value(t, stored[0].ContentType).Equal("image/jpeg")
		gt.Value(t, stored[0].Breed).Equal(types.Breed("Jersey"))
		gt.Bool(t, stored[0].Timestamp.Equal(ts)).True()
	})

	t.Run("Create rejects records without an ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		pred := &model.Prediction{Breed: "Gir", Timestamp: time.Now().UTC()}
		gt.Error(t, repo.Prediction().Create(ctx, pred))

		count := gt.R1(repo.Prediction().Count(ctx)).NoError(t)
		gt.Value(t, count).Equal(0)
	})

	t.Run("ListRecent orders by timestamp descending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Microsecond)
		breeds := []types.Breed{"Jersey", "Holstein", "Gir"}
		for i, b := range breeds {
			pred := newPrediction(b, base.Add(time.Duration(i)*time.Second))
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
		}

		recent := gt.R1(repo.Prediction().ListRecent(ctx, 2)).NoError(t)
		gt.Array(t, recent).Length(2)
		gt.Value(t, recent[0].Breed).Equal(types.Breed("Gir"))
		gt.Value(t, recent[1].Breed).Equal(types.Breed("Holstein"))
	})

	t.Run("ListOldest orders by timestamp then ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Microsecond)
		older := newPrediction("Sahiwal", base.Add(-time.Hour))
		newer := newPrediction("Tharparkar", base)
		gt.NoError(t, repo.Prediction().Create(ctx, newer)).Required()
		gt.NoError(t, repo.Prediction().Create(ctx, older)).Required()

		// equal timestamps tie-break on ascending ID
		tieA := newPrediction("Jersey", base.Add(time.Hour))
		tieB := newPrediction("Gir", base.Add(time.Hour))
		gt.NoError(t, repo.Prediction().Create(ctx, tieA)).Required()
		gt.NoError(t, repo.Prediction().Create(ctx, tieB)).Required()

		oldest := gt.R1(repo.Prediction().ListOldest(ctx, 4)).NoError(t)
		gt.Array(t, oldest).Length(4)
		gt.Value(t, oldest[0].ID).Equal(older.ID)
		gt.Value(t, oldest[1].ID).Equal(newer.ID)

		wantFirst, wantSecond := tieA.ID, tieB.ID
		if wantSecond < wantFirst {
			wantFirst, wantSecond = wantSecond, wantFirst
		}
		gt.Value(t, oldest[2].ID).Equal(wantFirst)
		gt.Value(t, oldest[3].ID).Equal(wantSecond)
	})

	t.Run("Count tracks inserts and deletes", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.Value(t, gt.R1(repo.Prediction().Count(ctx)).NoError(t)).Equal(0)

		base := time.Now().UTC().Truncate(time.Microsecond)
		ids := make([]types.PredictionID, 0, 3)
		for i := 0; i < 3; i++ {
			pred := newPrediction("Jersey", base.Add(time.Duration(i)*time.Millisecond))
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
			ids = append(ids, pred.ID)
		}
		gt.Value(t, gt.R1(repo.Prediction().Count(ctx)).NoError(t)).Equal(3)

		gt.NoError(t, repo.Prediction().DeleteByIDs(ctx, ids[:2]))
		gt.Value(t, gt.R1(repo.Prediction().Count(ctx)).NoError(t)).Equal(1)
	})

	t.Run("DeleteByIDs is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		pred := newPrediction("Holstein", time.Now().UTC().Truncate(time.Microsecond))
		gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()

		ids := []types.PredictionID{pred.ID, types.NewPredictionID()}
		gt.NoError(t, repo.Prediction().DeleteByIDs(ctx, ids))
		// deleting the same set again is a no-op
		gt.NoError(t, repo.Prediction().DeleteByIDs(ctx, ids))
		gt.NoError(t, repo.Prediction().DeleteByIDs(ctx, nil))

		gt.Value(t, gt.R1(repo.Prediction().Count(ctx)).NoError(t)).Equal(0)
	})

	t.Run("CountByBreed aggregates distinct breeds", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Microsecond)
		for i, b := range []types.Breed{"Jersey", "Jersey", "Gir"} {
			pred := newPrediction(b, base.Add(time.Duration(i)*time.Millisecond))
			gt.NoError(t, repo.Prediction().Create(ctx, pred)).Required()
		}

		counts := gt.R1(repo.Prediction().CountByBreed(ctx)).NoError(t)
		gt.Value(t, counts[types.Breed("Jersey")]).Equal(2)
		gt.Value(t, counts[types.Breed("Gir")]).Equal(1)
		gt.Value(t, len(counts)).Equal(2)
	})
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test-%d-", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func TestMemoryPredictionRepository(t *testing.T) {
	runPredictionRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestorePredictionRepository(t *testing.T) {
	runPredictionRepositoryTest(t, newFirestoreRepository)
}
