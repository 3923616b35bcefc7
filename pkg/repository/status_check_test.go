package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/breedsense/breedsense/pkg/domain/interfaces"
	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/breedsense/breedsense/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func runStatusCheckRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create then List round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		check := &model.StatusCheck{
			ID:         types.NewStatusCheckID(),
			ClientName: "frontend",
			Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
		}
		gt.NoError(t, repo.StatusCheck().Create(ctx, check)).Required()

		checks := gt.R1(repo.StatusCheck().List(ctx)).NoError(t)
		gt.Array(t, checks).Length(1)
		gt.Value(t, checks[0].ID).Equal(check.ID)
		gt.Value(t, checks[0].ClientName).Equal("frontend")
		gt.Bool(t, checks[0].Timestamp.Equal(check.Timestamp)).True()
	})

	t.Run("List orders by timestamp descending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Microsecond)
		names := []string{"first", "second", "third"}
		for i, name := range names {
			check := &model.StatusCheck{
				ID:         types.NewStatusCheckID(),
				ClientName: name,
				Timestamp:  base.Add(time.Duration(i) * time.Second),
			}
			gt.NoError(t, repo.StatusCheck().Create(ctx, check)).Required()
		}

		checks := gt.R1(repo.StatusCheck().List(ctx)).NoError(t)
		gt.Array(t, checks).Length(3)
		gt.Value(t, checks[0].ClientName).Equal("third")
		gt.Value(t, checks[2].ClientName).Equal("first")
	})

	t.Run("Create rejects checks without an ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		check := &model.StatusCheck{ClientName: "noid", Timestamp: time.Now().UTC()}
		gt.Error(t, repo.StatusCheck().Create(ctx, check))
	})
}

func TestMemoryStatusCheckRepository(t *testing.T) {
	runStatusCheckRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreStatusCheckRepository(t *testing.T) {
	runStatusCheckRepositoryTest(t, newFirestoreRepository)
}
