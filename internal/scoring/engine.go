// Package scoring is the matching core: it combines keyword overlap,
// semantic similarity, skill-set coverage, and experience fit into a single
// weighted score with a deterministic breakdown and recommendations.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/apexhire/screener/internal/config"
	"github.com/apexhire/screener/internal/extract"
	"github.com/apexhire/screener/internal/logger"
	"github.com/apexhire/screener/internal/screening"
	"github.com/apexhire/screener/internal/semantic"
	"github.com/apexhire/screener/internal/skills"
	"github.com/apexhire/screener/internal/textnorm"
)

const defaultSemanticTimeout = 10 * time.Second

// Engine scores resume documents against job requirements. It holds only
// immutable configuration and stateless collaborators, so a single engine is
// safe for concurrent use and every match is a pure function of its inputs.
type Engine struct {
	cfg        *config.Config
	extractor  *skills.Extractor
	similarity semantic.Similarity
	log        *zap.Logger
}

// New builds an engine from a validated configuration. An invalid weight set
// is fatal here: construction fails rather than letting a misconfigured
// engine produce meaningless scores.
func New(cfg *config.Config, similarity semantic.Similarity, log *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring configuration: %w", err)
	}

	if similarity == nil {
		similarity = semantic.NewDisabled()
	}

	return &Engine{
		cfg:        cfg,
		extractor:  skills.NewExtractor(cfg.Skills.Technical, cfg.Skills.Soft),
		similarity: similarity,
		log:        logger.OrNop(log),
	}, nil
}

// Extractor exposes the engine's skill extractor for callers that analyze
// documents ahead of time.
func (e *Engine) Extractor() *skills.Extractor {
	return e.extractor
}

// Analyze normalizes the document text and fills in the detected skills.
// Documents are immutable afterwards and can be scored against any number of
// jobs without repeating the work.
func (e *Engine) Analyze(doc *screening.Document) error {
	tokens, err := textnorm.Normalize(doc.RawText, e.normalizerOptions())
	if err != nil {
		return fmt.Errorf("normalize %s: %w", doc.Identifier, err)
	}

	doc.Tokens = tokens
	doc.TechnicalSkills, doc.SoftSkills = e.extractor.Extract(tokens)
	return nil
}

// Match scores one resume against one job requirement. Per-item problems
// (empty input, extraction failures) come back as a failed result, never as
// an error: a bad pair must not abort the batch around it. Match does not
// mutate its inputs.
func (e *Engine) Match(ctx context.Context, resume *screening.Document, job *screening.JobRequirement) *screening.MatchResult {
	res := &screening.MatchResult{
		ResumeID: resume.Identifier,
		JobTitle: job.Title,
		Status:   screening.StatusSuccess,
	}

	if resume.LoadError != nil {
		return e.fail(res, fmt.Errorf("resume %s: %w", resume.Identifier, resume.LoadError))
	}

	tokens := resume.Tokens
	technical, soft := resume.TechnicalSkills, resume.SoftSkills
	if tokens == nil {
		var err error
		tokens, err = textnorm.Normalize(resume.RawText, e.normalizerOptions())
		if err != nil {
			return e.fail(res, fmt.Errorf("resume %s: %w", resume.Identifier, err))
		}
		technical, soft = e.extractor.Extract(tokens)
	}

	res.SkillsFound = screening.SkillsFound{
		Technical: orEmpty(technical),
		Soft:      orEmpty(soft),
	}

	jobTokens, err := textnorm.Normalize(job.Description, e.normalizerOptions())
	if err != nil {
		return e.fail(res, fmt.Errorf("job %q: %w", job.Title, err))
	}

	var breakdown screening.ScoreBreakdown
	breakdown.Keyword = keywordScore(tokens, jobTokens)
	breakdown.Semantic = e.semanticScore(ctx, res, resume.RawText, job.Description)
	breakdown.Skill, res.MissingSkills = skillScore(technical, soft, job.RequiredSkills)
	breakdown.Experience = experienceScore(resume.RawText, job.ExperienceYears)

	w := e.cfg.Weights
	res.Breakdown = breakdown
	res.OverallScore = clamp01(
		w.Keyword*breakdown.Keyword +
			w.Semantic*breakdown.Semantic +
			w.Skill*breakdown.Skill +
			w.Experience*breakdown.Experience,
	)

	res.Category, res.Recommendations = e.recommend(res)

	e.log.Debug("match scored",
		zap.String("resume", res.ResumeID),
		zap.String("job", res.JobTitle),
		zap.Float64("overall_score", res.OverallScore),
		zap.String("category", res.Category),
	)

	return res
}

// semanticScore asks the similarity collaborator for a score under the
// configured timeout. Unavailability and timeouts degrade to 0.0 with a
// recorded warning; semantic analysis being down never fails a match.
func (e *Engine) semanticScore(ctx context.Context, res *screening.MatchResult, resumeText, jobText string) float64 {
	timeout := e.cfg.Semantic.Timeout
	if timeout <= 0 {
		timeout = defaultSemanticTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	score, err := e.similarity.Score(ctx, resumeText, jobText)
	if err != nil {
		e.log.Warn("semantic similarity degraded to 0.0",
			zap.String("resume", res.ResumeID),
			zap.String("job", res.JobTitle),
			zap.Error(err),
		)
		res.Warnings = append(res.Warnings, fmt.Sprintf("semantic similarity unavailable: %v", err))
		return 0
	}

	return clamp01(score)
}

func (e *Engine) fail(res *screening.MatchResult, err error) *screening.MatchResult {
	res.Status = screening.StatusFailed
	res.ErrorKind = errorKind(err)
	res.ErrorMessage = err.Error()
	res.Breakdown = screening.ScoreBreakdown{}
	res.OverallScore = 0
	res.Category = ""
	res.Recommendations = nil

	e.log.Warn("match failed",
		zap.String("resume", res.ResumeID),
		zap.String("job", res.JobTitle),
		zap.String("kind", res.ErrorKind),
		zap.Error(err),
	)

	return res
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, textnorm.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, extract.ErrCorruptFile):
		return "corrupt_file"
	case errors.Is(err, semantic.ErrUnavailable):
		return "service_unavailable"
	default:
		return "error"
	}
}

func (e *Engine) normalizerOptions() textnorm.Options {
	return textnorm.Options{
		Stopwords:      e.cfg.Normalizer.Stopwords,
		MinTokenLength: e.cfg.Normalizer.MinTokenLength,
		KeepNumbers:    e.cfg.Normalizer.KeepNumbers,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
