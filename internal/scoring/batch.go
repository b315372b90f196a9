package scoring

import (
	"context"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/apexhire/screener/internal/logger"
	"github.com/apexhire/screener/internal/screening"
)

// Batch runs the engine over the full resumes-by-jobs cross-product. Pairs
// are independent, so they are scored in parallel and joined once before the
// final deterministic ordering step.
type Batch struct {
	engine      *Engine
	concurrency int
	log         *zap.Logger
}

// NewBatch wraps an engine for batch execution. Concurrency values below 1
// default to the number of CPUs.
func NewBatch(engine *Engine, concurrency int, log *zap.Logger) *Batch {
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}

	return &Batch{
		engine:      engine,
		concurrency: concurrency,
		log:         logger.OrNop(log),
	}
}

// Run scores every resume against every job and aggregates the results.
// A failed pair is recorded with status "failed" and excluded from the
// average, but it never aborts the rest of the batch. Successful results are
// ordered by descending overall score, ties broken by resume identifier and
// then job title ascending; failed entries follow in the same identifier
// order.
func (b *Batch) Run(ctx context.Context, resumes []*screening.Document, jobs []*screening.JobRequirement) *screening.BatchSummary {
	started := time.Now()

	// Analyze each resume once up front. Documents must not be written to
	// during the parallel phase; a document that fails analysis is left as
	// is and each of its pairs fails on its own.
	for _, doc := range resumes {
		if doc.LoadError != nil || doc.Analyzed() {
			continue
		}
		if err := b.engine.Analyze(doc); err != nil {
			b.log.Warn("resume analysis failed",
				zap.String("resume", doc.Identifier),
				zap.Error(err),
			)
		}
	}

	results := make([]*screening.MatchResult, len(resumes)*len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, resume := range resumes {
		for j, job := range jobs {
			idx := i*len(jobs) + j
			g.Go(func() error {
				results[idx] = b.engine.Match(gctx, resume, job)
				return nil
			})
		}
	}

	// Match never returns an error; Wait is only the join point.
	_ = g.Wait()

	sortResults(results)

	summary := &screening.BatchSummary{
		TotalResumes: len(resumes),
		TotalJobs:    len(jobs),
		TotalMatches: len(results),
		Results:      results,
	}

	sum := 0.0
	for _, res := range results {
		if res.Succeeded() {
			summary.Succeeded++
			sum += res.OverallScore
		} else {
			summary.Failed++
		}
	}

	if summary.Succeeded > 0 {
		avg := sum / float64(summary.Succeeded)
		summary.AverageScore = &avg
	}

	b.log.Info("batch scoring completed",
		zap.Int("resumes", summary.TotalResumes),
		zap.Int("jobs", summary.TotalJobs),
		zap.Int("pairs", summary.TotalMatches),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", time.Since(started)),
	)

	return summary
}

func sortResults(results []*screening.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		if a.Succeeded() != b.Succeeded() {
			return a.Succeeded()
		}
		if a.Succeeded() && a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.ResumeID != b.ResumeID {
			return a.ResumeID < b.ResumeID
		}
		return a.JobTitle < b.JobTitle
	})
}
