package types

import "github.com/google/uuid"

// PredictionID is a UUID-based identifier for a prediction record.
// It doubles as the document key in the store, so it is assigned at
// construction and never by the backend.
type PredictionID string

// NewPredictionID generates a new UUID v4 PredictionID
func NewPredictionID() PredictionID {
	return PredictionID(uuid.New().String())
}

// String returns the string representation of the prediction ID
func (id PredictionID) String() string {
	return string(id)
}

// StatusCheckID is a UUID-based identifier for a status check
type StatusCheckID string

// NewStatusCheckID generates a new UUID v4 StatusCheckID
func NewStatusCheckID() StatusCheckID {
	return StatusCheckID(uuid.New().String())
}

// String returns the string representation of the status check ID
func (id StatusCheckID) String() string {
	return string(id)
}
