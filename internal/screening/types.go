// Package screening defines the data model shared by the scoring engine,
// the batch runner, and the presentation layers that consume their output.
package screening

import (
	"encoding/json"
	"os"
)

// Match result statuses. A failed pair carries an error kind and message
// instead of scores; it is never silently omitted from batch output.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Document is an ingested resume or free-text job description. It is
// immutable once normalized; Tokens and the skill slices are filled by the
// analysis step and reused across every job the document is scored against.
type Document struct {
	Identifier      string   `json:"identifier"`
	RawText         string   `json:"-"`
	Tokens          []string `json:"-"`
	TechnicalSkills []string `json:"technical_skills,omitempty"`
	SoftSkills      []string `json:"soft_skills,omitempty"`

	// LoadError carries a text-extraction failure from the upstream
	// collaborator. The scoring engine turns it into a failed result for
	// every pair the document participates in.
	LoadError error `json:"-"`
}

// Analyzed reports whether the document already carries normalized tokens.
func (d *Document) Analyzed() bool {
	return d != nil && d.Tokens != nil
}

// JobRequirement describes one position a resume is matched against.
// RequiredSkills and ExperienceYears are optional; when absent the matching
// policy treats them as unconstrained rather than unmet.
type JobRequirement struct {
	Title           string   `json:"title" mapstructure:"title"`
	Description     string   `json:"description" mapstructure:"description"`
	RequiredSkills  []string `json:"required_skills,omitempty" mapstructure:"required_skills"`
	ExperienceYears int      `json:"experience_years,omitempty" mapstructure:"experience_years"`
}

// ScoreBreakdown holds the four independent sub-scores, each in [0,1].
type ScoreBreakdown struct {
	Keyword    float64 `json:"keyword_score"`
	Semantic   float64 `json:"semantic_score"`
	Skill      float64 `json:"skill_score"`
	Experience float64 `json:"experience_score"`
}

// SkillsFound lists the vocabulary skills detected in the resume.
type SkillsFound struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// MatchResult is the outcome of scoring one resume against one job.
type MatchResult struct {
	ResumeID     string `json:"resume_identifier"`
	JobTitle     string `json:"job_title"`
	Status       string `json:"status"`
	ErrorKind    string `json:"error_kind,omitempty"`
	ErrorMessage string `json:"error,omitempty"`

	OverallScore    float64        `json:"overall_score"`
	Category        string         `json:"category,omitempty"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	SkillsFound     SkillsFound    `json:"skills_found"`
	MissingSkills   []string       `json:"missing_skills,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	Warnings        []string       `json:"warnings,omitempty"`
}

// Succeeded reports whether the pair produced a score.
func (r *MatchResult) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// BatchSummary aggregates a full resumes-by-jobs run. AverageScore is nil
// when no pair succeeded: an undefined mean is reported explicitly instead
// of collapsing to zero.
type BatchSummary struct {
	TotalResumes int `json:"total_resumes"`
	TotalJobs    int `json:"total_jobs"`
	TotalMatches int `json:"total_matches"`
	Succeeded    int `json:"succeeded"`
	Failed       int `json:"failed"`

	AverageScore *float64       `json:"average_score"`
	Results      []*MatchResult `json:"results"`
}

// DumpToFile writes the summary as indented JSON to the given path.
func (s *BatchSummary) DumpToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// DumpToTmpFile writes the summary to a temporary JSON file and returns its name.
func (s *BatchSummary) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "screening_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return file.Name(), nil
}
