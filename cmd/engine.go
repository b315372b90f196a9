package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/apexhire/screener/internal/config"
	"github.com/apexhire/screener/internal/extract"
	"github.com/apexhire/screener/internal/scoring"
	"github.com/apexhire/screener/internal/screening"
	"github.com/apexhire/screener/internal/secrets"
	"github.com/apexhire/screener/internal/semantic"
	"github.com/apexhire/screener/internal/semantic/gemini"
)

// buildEngine wires the scoring engine with the configured semantic
// provider. A provider that cannot be constructed downgrades semantic
// scoring instead of blocking the run; only invalid weights are fatal.
func buildEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*scoring.Engine, error) {
	similarity := semantic.NewDisabled()

	if cfg.Semantic.Enabled {
		provider, err := newSimilarity(ctx, cfg, logger)
		if err != nil {
			logger.Warn("semantic scoring disabled", zap.Error(err))
		} else {
			similarity = provider
		}
	}

	return scoring.New(cfg, similarity, logger)
}

func newSimilarity(ctx context.Context, cfg *config.Config, logger *zap.Logger) (semantic.Similarity, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Semantic.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported semantic provider: %s", cfg.Semantic.Provider)
	}

	if cfg.Semantic.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when semantic scoring is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Semantic.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set semantic.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	client, err := gemini.NewClient(ctx, apiKey, cfg.Semantic.Gemini.Model)
	if err != nil {
		return nil, err
	}

	providerLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", client.Model()),
	)

	return gemini.NewProvider(client, cfg.Semantic.Gemini.MaxLogLength, providerLogger), nil
}

// loadResume reads a resume file into a Document. Extraction failures are
// recorded on the document rather than returned: the scoring engine reports
// them as failed results so nothing is silently dropped.
func loadResume(path string) *screening.Document {
	doc := &screening.Document{Identifier: filepath.Base(path)}

	text, err := extract.Text(path)
	if err != nil {
		doc.LoadError = err
		return doc
	}

	doc.RawText = text
	return doc
}

// loadResumeDir reads every regular file in the directory, in name order.
func loadResumeDir(dir string) ([]*screening.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading resumes directory: %w", err)
	}

	var docs []*screening.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		docs = append(docs, loadResume(filepath.Join(dir, entry.Name())))
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Identifier < docs[j].Identifier })
	return docs, nil
}

// loadJob reads a job description file. JSON files carry the structured
// requirement; plain text becomes a description-only job titled after the
// file.
func loadJob(path string) (*screening.JobRequirement, error) {
	name := filepath.Base(path)

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading job file %s: %w", name, err)
		}
		return screening.ParseJob(string(data), strings.TrimSuffix(name, filepath.Ext(name)))
	}

	text, err := extract.Text(path)
	if err != nil {
		return nil, fmt.Errorf("job file %s: %w", name, err)
	}

	return screening.ParseJob(text, strings.TrimSuffix(name, filepath.Ext(name)))
}

// loadJobsDir reads the supported job files from the directory, in name
// order. Unreadable job files are skipped with a warning: a broken job
// description invalidates a whole column of the cross-product, unlike a
// broken resume, so it is excluded up front.
func loadJobsDir(dir string, logger *zap.Logger) ([]*screening.JobRequirement, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading jobs directory: %w", err)
	}

	var jobs []*screening.JobRequirement
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && !extract.Supported(entry.Name()) {
			continue
		}

		job, err := loadJob(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Warn("skipping job file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		jobs = append(jobs, job)
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Title < jobs[j].Title })
	return jobs, nil
}
