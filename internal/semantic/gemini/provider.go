package gemini

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/apexhire/screener/internal/semantic"
	"github.com/apexhire/screener/internal/util"
)

type embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

const defaultMaxLogLength = 200

// Provider implements semantic.Similarity with Gemini embeddings: both texts
// are embedded and compared by cosine similarity, mapped into [0,1].
type Provider struct {
	embedder  embedder
	logger    *zap.Logger
	maxLogLen int
}

func NewProvider(e embedder, maxLogLength int, logger *zap.Logger) *Provider {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{
		embedder:  e,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Score embeds both texts and returns their cosine similarity clamped to
// [0,1]. Any embedding failure, including a context deadline, is reported as
// semantic.ErrUnavailable so the caller can degrade instead of aborting.
func (p *Provider) Score(ctx context.Context, a, b string) (float64, error) {
	p.logger.Debug("gemini embed request",
		zap.Int("a_length", utf8.RuneCountInString(a)),
		zap.Int("b_length", utf8.RuneCountInString(b)),
		zap.String("a_preview", util.TruncateForLog(a, p.maxLogLen)),
		zap.String("b_preview", util.TruncateForLog(b, p.maxLogLen)),
	)

	va, err := p.embedder.Embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", semantic.ErrUnavailable, err)
	}

	vb, err := p.embedder.Embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", semantic.ErrUnavailable, err)
	}

	score := cosine(va, vb)

	p.logger.Debug("gemini embed response", zap.Float64("cosine", score))

	// Opposite-direction vectors carry no useful signal for this use case.
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return score, nil
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
