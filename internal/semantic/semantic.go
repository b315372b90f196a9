// Package semantic defines the contract with the embedding/similarity
// collaborator. The scoring engine only depends on the Similarity interface;
// providers live in subpackages.
package semantic

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the similarity service could not be reached.
// The scoring engine recovers from it locally by degrading the semantic
// sub-score to zero; it never fails a match on its own.
var ErrUnavailable = errors.New("semantic similarity service is unavailable")

// Similarity returns a score in [0,1] for two texts, where 1.0 means
// identical meaning and 0.0 unrelated content. Implementations must respect
// the context deadline; the caller treats a timeout like unavailability.
type Similarity interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

type disabled struct{}

// NewDisabled returns a provider that always reports ErrUnavailable. It is
// the stand-in when no semantic backend is configured, letting the engine
// apply its usual degrade-to-zero path.
func NewDisabled() Similarity {
	return disabled{}
}

func (disabled) Score(context.Context, string, string) (float64, error) {
	return 0, ErrUnavailable
}
