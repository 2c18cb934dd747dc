package enrich

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orbitalbio/litscan/internal/corpus"
	"github.com/orbitalbio/litscan/internal/llm"
	"github.com/orbitalbio/litscan/internal/models"
)

// TextSource provides the plain text for a corpus entry. The pipeline's
// extractor satisfies this.
type TextSource interface {
	ExtractStudyText(entry *corpus.Entry) string
}

// Enricher runs the three analysis prompts per study and stores the results.
type Enricher struct {
	oracle       llm.Oracle
	store        *Store
	texts        TextSource
	titles       map[string]string // study ID -> publication title
	batchSize    int
	contentLimit int
	model        string
	logger       *zap.Logger
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithLogger sets a logger for batch progress.
func WithLogger(l *zap.Logger) Option {
	return func(e *Enricher) { e.logger = l }
}

// WithBatchSize sets how many studies are processed between checkpoint logs.
func WithBatchSize(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithContentLimit caps the document characters included per prompt.
func WithContentLimit(n int) Option {
	return func(e *Enricher) { e.contentLimit = n }
}

// WithModel records the model name on each analysis row.
func WithModel(model string) Option {
	return func(e *Enricher) { e.model = model }
}

// WithTitles maps study IDs to publication titles; untitled studies fall back
// to their ID.
func WithTitles(titles map[string]string) Option {
	return func(e *Enricher) { e.titles = titles }
}

// New creates an Enricher over the given oracle, store, and text source.
func New(oracle llm.Oracle, store *Store, texts TextSource, opts ...Option) *Enricher {
	e := &Enricher{
		oracle:       oracle,
		store:        store,
		texts:        texts,
		batchSize:    10,
		contentLimit: 8000,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunStats reports one enrichment run.
type RunStats struct {
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

// Run analyzes every study under corpusDir that has no analysis row yet.
// Each completed study is durably stored before the next begins, so an
// interrupted run loses at most the study in flight.
func (e *Enricher) Run(ctx context.Context, corpusDir string) (*RunStats, error) {
	entries, err := corpus.Scan(corpusDir)
	if err != nil {
		return nil, err
	}

	stats := &RunStats{RunID: uuid.NewString()}
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		done, err := e.store.Has(ctx, entry.StudyID)
		if err != nil {
			return stats, fmt.Errorf("checkpoint lookup for %s: %w", entry.StudyID, err)
		}
		if done {
			stats.Skipped++
			continue
		}

		if err := e.analyzeStudy(ctx, entry, stats.RunID); err != nil {
			stats.Failed++
			if e.logger != nil {
				e.logger.Warn("study analysis failed",
					zap.String("study_id", entry.StudyID), zap.Error(err))
			}
			continue
		}
		stats.Processed++

		if e.logger != nil && stats.Processed%e.batchSize == 0 {
			e.logger.Info("enrichment checkpoint",
				zap.String("run_id", stats.RunID),
				zap.Int("processed", stats.Processed),
				zap.Int("remaining", len(entries)-i-1),
			)
		}
	}

	if e.logger != nil {
		e.logger.Info("enrichment run complete",
			zap.String("run_id", stats.RunID),
			zap.Int("processed", stats.Processed),
			zap.Int("skipped", stats.Skipped),
			zap.Int("failed", stats.Failed),
		)
	}
	return stats, nil
}

// analyzeStudy runs the organism, summary, and relations prompts for one
// study and stores the combined row. Malformed JSON responses are kept raw
// with the parse error recorded; only oracle transport failures abort the
// study.
func (e *Enricher) analyzeStudy(ctx context.Context, entry *corpus.Entry, runID string) error {
	title := e.titles[entry.StudyID]
	if title == "" {
		title = entry.StudyID
	}
	content := e.texts.ExtractStudyText(entry)

	analysis := &models.Analysis{
		StudyID:   entry.StudyID,
		Title:     title,
		Model:     e.model,
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
	}

	organisms, err := e.oracle.Complete(ctx, llm.OrganismPrompt(title, content))
	if err != nil {
		return fmt.Errorf("organism prompt: %w", err)
	}
	analysis.Organisms = organisms
	if _, perr := llm.ParseOrganisms(organisms); perr != nil {
		analysis.ParseError = perr.Error()
	}

	summary, err := e.oracle.Complete(ctx, llm.SummaryPrompt(title, content, e.contentLimit))
	if err != nil {
		return fmt.Errorf("summary prompt: %w", err)
	}
	analysis.Summary = summary

	relations, err := e.oracle.Complete(ctx, llm.RelationsPrompt(title, content, e.contentLimit))
	if err != nil {
		return fmt.Errorf("relations prompt: %w", err)
	}
	analysis.Relations = relations
	if _, perr := llm.ParseRelations(relations); perr != nil && analysis.ParseError == "" {
		analysis.ParseError = perr.Error()
	}

	if err := e.store.Put(ctx, analysis); err != nil {
		return fmt.Errorf("store analysis: %w", err)
	}
	return nil
}

// Status reports checkpoint progress against the corpus.
type Status struct {
	Analyzed  int64 `json:"analyzed"`
	Total     int   `json:"total"`
	Remaining int   `json:"remaining"`
}

// CheckpointStatus compares the analysis store against the corpus directory.
func (e *Enricher) CheckpointStatus(ctx context.Context, corpusDir string) (*Status, error) {
	entries, err := corpus.Scan(corpusDir)
	if err != nil {
		return nil, err
	}
	count, err := e.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	remaining := len(entries) - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &Status{Analyzed: count, Total: len(entries), Remaining: remaining}, nil
}
