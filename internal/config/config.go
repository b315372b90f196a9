package config

import (
	"fmt"
	"math"
	"time"
)

// WeightTolerance is the allowed deviation of the weight sum from 1.0.
const WeightTolerance = 1e-6

// ErrInvalidWeights marks a weight set that does not sum to 1.0. It is the
// one fatal configuration error: an inconsistent weighting silently produces
// meaningless scores, so nothing is allowed to run with it.
var ErrInvalidWeights = fmt.Errorf("scoring weights must sum to 1.0")

// Weights control how the four sub-scores combine into the overall score.
type Weights struct {
	Keyword    float64 `json:"keyword" mapstructure:"keyword"`
	Semantic   float64 `json:"semantic" mapstructure:"semantic"`
	Skill      float64 `json:"skill" mapstructure:"skill"`
	Experience float64 `json:"experience" mapstructure:"experience"`
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Keyword + w.Semantic + w.Skill + w.Experience
}

// Normalizer holds tokenization settings shared by every scoring call.
type Normalizer struct {
	Stopwords      []string `mapstructure:"stopwords"`
	MinTokenLength int      `mapstructure:"min-token-length"`
	KeepNumbers    bool     `mapstructure:"keep-numbers"`
}

// Vocabulary lists the reference skills matched against resume text.
type Vocabulary struct {
	Technical []string `mapstructure:"technical"`
	Soft      []string `mapstructure:"soft"`
}

// Gemini stores Gemini provider configuration.
type Gemini struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

// Semantic configures the embedding/similarity collaborator.
type Semantic struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Gemini   *Gemini       `mapstructure:"gemini"`
}

// Config is the process-wide configuration. It is loaded once at startup,
// validated, and treated as read-only for the lifetime of the process.
type Config struct {
	Weights            Weights    `mapstructure:"weights"`
	Normalizer         Normalizer `mapstructure:"normalizer"`
	Skills             Vocabulary `mapstructure:"skills"`
	WeakScoreThreshold float64    `mapstructure:"weak-score-threshold"`
	Semantic           Semantic   `mapstructure:"semantic"`
	Concurrency        int        `mapstructure:"concurrency"`
}

// Default returns the built-in configuration: recall-oriented weighting with
// keyword overlap dominant, the stock skill vocabularies, and semantic
// scoring disabled until a provider is configured.
func Default() *Config {
	return &Config{
		Weights: Weights{
			Keyword:    0.4,
			Semantic:   0.3,
			Skill:      0.2,
			Experience: 0.1,
		},
		Normalizer: Normalizer{
			Stopwords:      defaultStopwords(),
			MinTokenLength: 2,
		},
		Skills: Vocabulary{
			Technical: defaultTechnicalSkills(),
			Soft:      defaultSoftSkills(),
		},
		WeakScoreThreshold: 0.5,
		Semantic: Semantic{
			Enabled: false,
			Timeout: 10 * time.Second,
		},
	}
}

// Validate checks the configuration invariants. A weight sum outside the
// tolerance returns an error wrapping ErrInvalidWeights; callers must treat
// that as fatal.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}

	for name, w := range map[string]float64{
		"keyword":    c.Weights.Keyword,
		"semantic":   c.Weights.Semantic,
		"skill":      c.Weights.Skill,
		"experience": c.Weights.Experience,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("%w: %s weight %v is outside [0,1]", ErrInvalidWeights, name, w)
		}
	}

	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > WeightTolerance {
		return fmt.Errorf("%w: got %v", ErrInvalidWeights, sum)
	}

	if c.WeakScoreThreshold < 0 || c.WeakScoreThreshold > 1 {
		return fmt.Errorf("weak-score-threshold %v is outside [0,1]", c.WeakScoreThreshold)
	}

	if c.Normalizer.MinTokenLength < 0 {
		return fmt.Errorf("min-token-length must not be negative")
	}

	return nil
}

func defaultStopwords() []string {
	return []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at",
		"to", "for", "of", "with", "by",
	}
}

func defaultTechnicalSkills() []string {
	return []string{
		"python", "java", "javascript", "react", "node.js", "sql", "mongodb",
		"aws", "azure", "docker", "kubernetes", "git", "jenkins", "agile",
		"swift", "kotlin", "flutter", "dart", "html", "css", "bootstrap",
		"django", "flask", "fastapi", "spring", "express", "angular", "vue",
		"typescript", "php", "c++", "c#", ".net", "ruby", "rails", "go",
		"rust", "scala", "r", "matlab", "tensorflow", "pytorch", "scikit-learn",
		"pandas", "numpy", "spark", "hadoop", "kafka", "redis", "elasticsearch",
		"machine learning", "deep learning", "data science", "ci/cd",
	}
}

func defaultSoftSkills() []string {
	return []string{
		"leadership", "communication", "teamwork", "problem solving",
		"critical thinking", "creativity", "adaptability", "time management",
		"project management", "scrum", "kanban", "collaboration",
		"mentoring", "presentation", "negotiation", "customer service",
	}
}
