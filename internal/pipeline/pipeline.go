// Package pipeline runs the document-to-findings extraction: fetch raw text
// per study, segment into sections and sentences, tag each passage, and write
// the passage and findings stores.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/orbitalbio/litscan/internal/corpus"
	"github.com/orbitalbio/litscan/internal/extract"
	"github.com/orbitalbio/litscan/internal/models"
	"github.com/orbitalbio/litscan/internal/segment"
	"github.com/orbitalbio/litscan/internal/store"
	"github.com/orbitalbio/litscan/internal/tagger"
)

// Pipeline derives passages and findings from a corpus of downloaded studies.
// Tagging is stateless per passage, so documents can be processed by multiple
// workers; output order stays corpus order regardless.
type Pipeline struct {
	extractor *extract.Extractor
	tagger    *tagger.Tagger
	workers   int
	logger    *zap.Logger // optional; when set, logs per-document events
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for per-document progress and skip events.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithWorkers sets how many documents are processed concurrently.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// New creates a pipeline with the given extractor and tagger.
func New(ex *extract.Extractor, tg *tagger.Tagger, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor: ex,
		tagger:    tg,
		workers:   1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats reports aggregate counts for one pipeline run. Per-document failures
// are silent skips counted here, never a run abort.
type Stats struct {
	Documents int `json:"documents"`
	Skipped   int `json:"skipped"`
	Passages  int `json:"passages"`
	Findings  int `json:"findings"`
}

// docResult holds the derived records for one study.
type docResult struct {
	passages []*models.Passage
	findings []*models.Finding
	skipped  bool
}

// Run processes every study under corpusDir and writes fresh passage and
// findings stores. Re-running over the same corpus regenerates both stores
// from scratch.
func (p *Pipeline) Run(ctx context.Context, corpusDir, passagesPath, findingsPath string) (*Stats, error) {
	entries, err := corpus.Scan(corpusDir)
	if err != nil {
		return nil, err
	}
	results := p.processAll(ctx, entries)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := store.NewWriter[models.Passage](passagesPath)
	if err != nil {
		return nil, err
	}
	defer pw.Close()
	fw, err := store.NewWriter[models.Finding](findingsPath)
	if err != nil {
		return nil, err
	}
	defer fw.Close()

	stats := &Stats{}
	for _, res := range results {
		if err := p.writeResult(res, pw, fw, stats); err != nil {
			return nil, err
		}
	}
	if p.logger != nil {
		p.logger.Info("pipeline run complete",
			zap.Int("documents", stats.Documents),
			zap.Int("skipped", stats.Skipped),
			zap.Int("passages", stats.Passages),
			zap.Int("findings", stats.Findings),
		)
	}
	return stats, nil
}

// Append processes a single study and appends its records to existing stores.
// Used by watch mode when a new document lands in the corpus directory.
func (p *Pipeline) Append(ctx context.Context, entry *corpus.Entry, passagesPath, findingsPath string) (*Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := p.processEntry(entry)

	pw, err := store.OpenAppend[models.Passage](passagesPath)
	if err != nil {
		return nil, err
	}
	defer pw.Close()
	fw, err := store.OpenAppend[models.Finding](findingsPath)
	if err != nil {
		return nil, err
	}
	defer fw.Close()

	stats := &Stats{}
	if err := p.writeResult(res, pw, fw, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// processAll fans entries out across workers; results land at the entry's
// index so output order is corpus order.
func (p *Pipeline) processAll(ctx context.Context, entries []*corpus.Entry) []*docResult {
	results := make([]*docResult, len(entries))
	if p.workers <= 1 {
		for i, entry := range entries {
			if ctx.Err() != nil {
				return results
			}
			results[i] = p.processEntry(entry)
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processEntry(entries[i])
			}
		}()
	}
	for i := range entries {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// processEntry extracts, segments, and tags one study. Extraction failures
// yield a skipped result; tagging itself never fails.
func (p *Pipeline) processEntry(entry *corpus.Entry) *docResult {
	text := p.extractText(entry)
	if text == "" {
		if p.logger != nil {
			p.logger.Warn("document skipped: no extractable text", zap.String("study_id", entry.StudyID))
		}
		return &docResult{skipped: true}
	}

	res := &docResult{}
	for _, sec := range segment.SplitSections(text) {
		for j, sent := range segment.SplitSentences(sec.Text) {
			passage := &models.Passage{
				StudyID:    entry.StudyID,
				Section:    sec.Label,
				SentenceID: j,
				Text:       sent,
				SourcePath: entry.Path(),
				Anchor:     models.PassageAnchor(entry.StudyID, sec.Label, j),
				Images:     entry.Images,
			}
			res.passages = append(res.passages, passage)
			if finding, ok := p.tagger.Tag(passage); ok {
				res.findings = append(res.findings, finding)
			}
		}
	}
	if p.logger != nil {
		p.logger.Debug("document processed",
			zap.String("study_id", entry.StudyID),
			zap.Int("passages", len(res.passages)),
			zap.Int("findings", len(res.findings)),
		)
	}
	return res
}

// extractText returns the study's plain text: HTML first, PDF companion only
// when HTML yields no document or no text.
func (p *Pipeline) extractText(entry *corpus.Entry) string {
	if entry.HTMLPath != "" {
		text, err := p.extractor.Extract(entry.HTMLPath)
		if err == nil && text != "" {
			return text
		}
		if err != nil && p.logger != nil {
			p.logger.Debug("html extraction failed", zap.String("study_id", entry.StudyID), zap.Error(err))
		}
	}
	if entry.PDFPath != "" {
		text, err := p.extractor.Extract(entry.PDFPath)
		if err == nil {
			return text
		}
		if p.logger != nil {
			p.logger.Debug("pdf extraction failed", zap.String("study_id", entry.StudyID), zap.Error(err))
		}
	}
	return ""
}

func (p *Pipeline) writeResult(res *docResult, pw *store.Writer[models.Passage], fw *store.Writer[models.Finding], stats *Stats) error {
	if res == nil || res.skipped {
		stats.Skipped++
		return nil
	}
	stats.Documents++
	for _, passage := range res.passages {
		if err := pw.Write(passage); err != nil {
			return fmt.Errorf("write passage: %w", err)
		}
	}
	for _, finding := range res.findings {
		if err := fw.Write(finding); err != nil {
			return fmt.Errorf("write finding: %w", err)
		}
	}
	stats.Passages += len(res.passages)
	stats.Findings += len(res.findings)
	return nil
}

// ExtractStudyText exposes the HTML-then-PDF extraction used by Run, for
// callers (enrichment) that need the raw document text without segmentation.
func (p *Pipeline) ExtractStudyText(entry *corpus.Entry) string {
	return p.extractText(entry)
}
