package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Prediction() PredictionRepository
	StatusCheck() StatusCheckRepository

	Close() error
}
