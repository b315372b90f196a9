package scoring

import (
	"strings"
	"testing"

	"github.com/apexhire/screener/internal/screening"
)

func TestRecommendCategories(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(), nil)

	cases := []struct {
		score float64
		want  string
	}{
		{0.95, "Excellent"},
		{0.80, "Excellent"},
		{0.79, "Good"},
		{0.60, "Good"},
		{0.59, "Moderate"},
		{0.40, "Moderate"},
		{0.39, "Low"},
		{0.00, "Low"},
	}

	for _, tc := range cases {
		res := &screening.MatchResult{
			OverallScore: tc.score,
			Breakdown: screening.ScoreBreakdown{
				Keyword: 1, Semantic: 1, Skill: 1, Experience: 1,
			},
		}
		category, recs := engine.recommend(res)
		if category != tc.want {
			t.Fatalf("score %v: category = %q, want %q", tc.score, category, tc.want)
		}
		if len(recs) != 1 {
			t.Fatalf("score %v: strong breakdown must yield only the band advice, got %v", tc.score, recs)
		}
	}
}

func TestRecommendWeakDimensions(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, testConfig(), nil)

	res := &screening.MatchResult{
		OverallScore:  0.45,
		MissingSkills: []string{"kubernetes", "terraform"},
		Breakdown: screening.ScoreBreakdown{
			Keyword:    0.2,
			Semantic:   0.9,
			Skill:      0.3,
			Experience: 0.1,
		},
	}

	_, recs := engine.recommend(res)

	// Band advice first, then one entry per weak dimension in breakdown order.
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d: %v", len(recs), recs)
	}
	if !strings.Contains(recs[1], "vocabulary") {
		t.Fatalf("recs[1] should target keywords, got %q", recs[1])
	}
	if !strings.Contains(recs[2], "kubernetes, terraform") {
		t.Fatalf("skill advice must list missing skills in job order, got %q", recs[2])
	}
	if !strings.Contains(recs[3], "experience") {
		t.Fatalf("recs[3] should target experience, got %q", recs[3])
	}
}

func TestRecommendThresholdIsConfigurable(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.WeakScoreThreshold = 0.95
	engine := newTestEngine(t, cfg, nil)

	res := &screening.MatchResult{
		OverallScore: 0.9,
		Breakdown: screening.ScoreBreakdown{
			Keyword: 0.9, Semantic: 0.9, Skill: 0.9, Experience: 0.9,
		},
	}

	_, recs := engine.recommend(res)
	if len(recs) != 5 {
		t.Fatalf("raised threshold must flag every dimension, got %v", recs)
	}
}
