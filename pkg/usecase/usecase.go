package usecase

import (
	"github.com/breedsense/breedsense/pkg/domain/interfaces"
	"github.com/breedsense/breedsense/pkg/domain/model/config"
	"github.com/breedsense/breedsense/pkg/service/classifier"
	"github.com/breedsense/breedsense/pkg/service/telemetry"
	"github.com/m-mizutani/goerr/v2"
)

type UseCases struct {
	repo interfaces.Repository
	cfg  *config.ClassifierConfig

	Prediction *PredictionUseCase
	Analytics  *AnalyticsUseCase
	Status     *StatusUseCase
}

type Option func(*UseCases) error

// WithClassifier replaces the default mock classifier, e.g. with a real
// inference backend
func WithClassifier(clf interfaces.BreedClassifier) Option {
	return func(uc *UseCases) error {
		uc.Prediction.classifier = clf
		return nil
	}
}

// WithScratchDir enables transient storage of upload bytes under dir
func WithScratchDir(dir string) Option {
	return func(uc *UseCases) error {
		uc.Prediction.scratchDir = dir
		return nil
	}
}

// WithMetrics wires prediction counters
func WithMetrics(m *telemetry.Metrics) Option {
	return func(uc *UseCases) error {
		uc.Prediction.metrics = m
		return nil
	}
}

func New(repo interfaces.Repository, cfg *config.ClassifierConfig, opts ...Option) (*UseCases, error) {
	mock, err := classifier.NewMock(cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build mock classifier")
	}

	uc := &UseCases{
		repo: repo,
		cfg:  cfg,
	}
	uc.Prediction = &PredictionUseCase{
		repo:       repo,
		cfg:        cfg,
		gate:       classifier.NewGate(cfg),
		classifier: mock,
	}
	uc.Analytics = NewAnalyticsUseCase(repo, cfg)
	uc.Status = NewStatusUseCase(repo)

	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, err
		}
	}

	return uc, nil
}
