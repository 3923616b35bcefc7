package model

import (
	"time"

	"github.com/breedsense/breedsense/pkg/domain/types"
)

// StatusCheck is a client-supplied liveness ping. Write-once, read-many,
// never pruned.
type StatusCheck struct {
	ID         types.StatusCheckID `json:"id"`
	ClientName string              `json:"client_name"`
	Timestamp  time.Time           `json:"timestamp"`
}

// NewStatusCheck builds a status check with a fresh ID and the current UTC time
func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         types.NewStatusCheckID(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
