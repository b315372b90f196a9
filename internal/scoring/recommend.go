package scoring

import (
	"fmt"
	"strings"

	"github.com/apexhire/screener/internal/screening"
)

// scoreBands maps overall-score ranges to a category and base
// recommendation. Evaluated top-down, first band whose floor is not above
// the score wins; keep the slice ordered by descending floor.
var scoreBands = []struct {
	min      float64
	category string
	advice   string
}{
	{0.80, "Excellent", "highly qualified"},
	{0.60, "Good", "consider for position"},
	{0.40, "Moderate", "additional screening recommended"},
	{0.00, "Low", "consider other candidates"},
}

// weakRules append a targeted recommendation for each sub-score below the
// configured threshold. An ordered rule table rather than branching keeps
// the policy auditable and extensible; rules run in breakdown order.
var weakRules = []struct {
	dimension string
	value     func(screening.ScoreBreakdown) float64
	advice    func(*screening.MatchResult) string
}{
	{
		dimension: "keyword",
		value:     func(b screening.ScoreBreakdown) float64 { return b.Keyword },
		advice: func(*screening.MatchResult) string {
			return "mirror more of the job description's vocabulary in the resume"
		},
	},
	{
		dimension: "semantic",
		value:     func(b screening.ScoreBreakdown) float64 { return b.Semantic },
		advice: func(*screening.MatchResult) string {
			return "strengthen alignment between resume content and the job description"
		},
	},
	{
		dimension: "skill",
		value:     func(b screening.ScoreBreakdown) float64 { return b.Skill },
		advice: func(res *screening.MatchResult) string {
			if len(res.MissingSkills) == 0 {
				return "add more of the required skills"
			}
			return fmt.Sprintf("add more of the required skills: %s", strings.Join(res.MissingSkills, ", "))
		},
	},
	{
		dimension: "experience",
		value:     func(b screening.ScoreBreakdown) float64 { return b.Experience },
		advice: func(*screening.MatchResult) string {
			return "highlight additional years of relevant experience"
		},
	},
}

// recommend derives the category and the ordered recommendation list for a
// scored result. The output is fully determined by the breakdown and the
// configured threshold; identical inputs always produce identical text.
func (e *Engine) recommend(res *screening.MatchResult) (string, []string) {
	category := scoreBands[len(scoreBands)-1].category
	recommendations := make([]string, 0, 1+len(weakRules))

	for _, band := range scoreBands {
		if res.OverallScore >= band.min {
			category = band.category
			recommendations = append(recommendations, band.advice)
			break
		}
	}

	for _, rule := range weakRules {
		if rule.value(res.Breakdown) < e.cfg.WeakScoreThreshold {
			recommendations = append(recommendations, rule.advice(res))
		}
	}

	return category, recommendations
}
