package usecase

import (
	"context"

	"github.com/breedsense/breedsense/pkg/domain/interfaces"
	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// StatusUseCase records and lists client status checks
type StatusUseCase struct {
	repo interfaces.Repository
}

func NewStatusUseCase(repo interfaces.Repository) *StatusUseCase {
	return &StatusUseCase{
		repo: repo,
	}
}

func (uc *StatusUseCase) Create(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	if clientName == "" {
		return nil, goerr.New("client name is required")
	}

	check := model.NewStatusCheck(clientName)
	if err := uc.repo.StatusCheck().Create(ctx, check); err != nil {
		return nil, goerr.Wrap(err, "failed to persist status check")
	}

	return check, nil
}

func (uc *StatusUseCase) List(ctx context.Context) ([]*model.StatusCheck, error) {
	checks, err := uc.repo.StatusCheck().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list status checks")
	}
	return checks, nil
}
