package screening

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBatchSummaryAverageScoreJSON(t *testing.T) {
	t.Parallel()

	summary := &BatchSummary{TotalResumes: 1, TotalJobs: 1, TotalMatches: 1, Failed: 1}

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"average_score":null`) {
		t.Fatalf("undefined average must serialize as null, got %s", data)
	}

	avg := 0.75
	summary.AverageScore = &avg
	data, err = json.Marshal(summary)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"average_score":0.75`) {
		t.Fatalf("expected average in output, got %s", data)
	}
}

func TestBatchSummaryDumpToFile(t *testing.T) {
	t.Parallel()

	summary := &BatchSummary{
		TotalResumes: 1,
		TotalJobs:    1,
		TotalMatches: 1,
		Succeeded:    1,
		Results: []*MatchResult{
			{ResumeID: "resume-a", JobTitle: "Role", Status: StatusSuccess, OverallScore: 0.8},
		},
	}

	path := filepath.Join(t.TempDir(), "summary.json")
	if err := summary.DumpToFile(path); err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}

	var restored BatchSummary
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
	if len(restored.Results) != 1 || restored.Results[0].ResumeID != "resume-a" {
		t.Fatalf("restored summary differs: %+v", restored)
	}
}
