package model

import (
	"time"

	"github.com/breedsense/breedsense/pkg/domain/types"
)

// TimestampLayout is how prediction timestamps are serialized in storage:
// ISO-8601 UTC with fixed six-digit fractional seconds. The fixed width
// keeps lexicographic order identical to chronological order, which the
// retention pruner relies on.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Prediction represents one classification event. Records are written once
// and never updated; the retention pruner is the only deleter.
type Prediction struct {
	ID          types.PredictionID `json:"id"`
	Filename    string             `json:"filename,omitempty"`
	ContentType string             `json:"content_type,omitempty"`
	Breed       types.Breed        `json:"breed"`
	Timestamp   time.Time          `json:"timestamp"`
}

// NewPrediction builds a prediction record with a fresh ID and the current
// UTC time. The creator assigns both; the store persists them verbatim.
func NewPrediction(filename, contentType string, breed types.Breed) *Prediction {
	return &Prediction{
		ID:          types.NewPredictionID(),
		Filename:    filename,
		ContentType: contentType,
		Breed:       breed,
		Timestamp:   time.Now().UTC(),
	}
}
