package types

// Breed is a cattle breed label drawn from the configured breed set.
type Breed string

// String returns the string representation of the breed
func (b Breed) String() string {
	return string(b)
}
