package model

import (
	"github.com/breedsense/breedsense/pkg/domain/types"
)

// BreedSummary is the aggregate view over all stored predictions.
// MostCommon is nil when no predictions exist.
type BreedSummary struct {
	ByBreed    map[types.Breed]int `json:"by_breed"`
	Total      int                 `json:"total"`
	MostCommon *types.Breed        `json:"most_common"`
}
