package memory

import (
	"github.com/breedsense/breedsense/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and tests
type Memory struct {
	prediction  *predictionRepository
	statusCheck *statusCheckRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		prediction:  newPredictionRepository(),
		statusCheck: newStatusCheckRepository(),
	}
}

func (m *Memory) Prediction() interfaces.PredictionRepository {
	return m.prediction
}

func (m *Memory) StatusCheck() interfaces.StatusCheckRepository {
	return m.statusCheck
}

func (m *Memory) Close() error {
	return nil
}
