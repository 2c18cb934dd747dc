// Package recommend ranks studies against a free-text research query using an
// in-memory bleve index built from analyses and findings.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/search"
	"go.uber.org/zap"

	"github.com/orbitalbio/litscan/internal/llm"
	"github.com/orbitalbio/litscan/internal/models"
)

// indexDoc is the per-study document fed to bleve. Analysis fields carry the
// model-derived signal; findings summaries add the tagged sentences so
// unanalyzed corpora still rank.
type indexDoc struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Organisms string `json:"organisms"`
	Concepts  string `json:"concepts"`
	Findings  string `json:"findings"`
}

// Recommender answers research queries with top-k ranked studies.
type Recommender struct {
	index  bleve.Index
	titles map[string]string
	total  int
	logger *zap.Logger
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithLogger sets a logger for index-build reporting.
func WithLogger(l *zap.Logger) Option {
	return func(r *Recommender) { r.logger = l }
}

// New builds an in-memory index over the given analyses and findings. Either
// slice may be empty; a study appears once even when present in both.
func New(analyses []*models.Analysis, findings []*models.Finding, opts ...Option) (*Recommender, error) {
	r := &Recommender{titles: make(map[string]string)}
	for _, opt := range opts {
		opt(r)
	}

	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming) so a query like
	// "mice" only matches the exact word.
	textFieldMapping.Analyzer = standard.Name
	for _, field := range []string{"title", "summary", "organisms", "concepts", "findings"} {
		docMapping.AddFieldMappingsAt(field, textFieldMapping)
	}
	im.AddDocumentMapping("study", docMapping)
	im.DefaultType = "study"
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation index: %w", err)
	}
	r.index = index

	docs := buildDocs(analyses, findings)
	batch := index.NewBatch()
	for id, doc := range docs {
		r.titles[id] = doc.Title
		if err := batch.Index(id, doc); err != nil {
			return nil, fmt.Errorf("failed to index study %s: %w", id, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to build recommendation index: %w", err)
	}
	r.total = len(docs)

	if r.logger != nil {
		r.logger.Debug("recommendation index built", zap.Int("studies", r.total))
	}
	return r, nil
}

// buildDocs merges analyses and findings into one indexDoc per study.
func buildDocs(analyses []*models.Analysis, findings []*models.Finding) map[string]*indexDoc {
	docs := make(map[string]*indexDoc)
	get := func(id string) *indexDoc {
		doc, ok := docs[id]
		if !ok {
			doc = &indexDoc{}
			docs[id] = doc
		}
		return doc
	}

	for _, a := range analyses {
		doc := get(a.StudyID)
		doc.Title = a.Title
		doc.Summary = a.Summary
		if parsed, err := llm.ParseOrganisms(a.Organisms); err == nil {
			doc.Organisms = strings.Join(parsed.Organisms, " ")
		}
		if parsed, err := llm.ParseRelations(a.Relations); err == nil {
			doc.Concepts = strings.Join(parsed.KeyConcepts, " ")
		}
	}

	summaries := make(map[string][]string)
	for _, f := range findings {
		summaries[f.StudyID] = append(summaries[f.StudyID], f.Summary)
	}
	for id, parts := range summaries {
		doc := get(id)
		doc.Findings = strings.Join(parts, " ")
		if doc.Title == "" {
			doc.Title = id
		}
	}
	return docs
}

// Recommend returns the top-k studies for the query, ranked by relevance.
func (r *Recommender) Recommend(ctx context.Context, query *models.RecommendQuery) (*models.RecommendResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	q := bleve.NewMatchQuery(query.Query)
	req := bleve.NewSearchRequestOptions(q, query.TopK, 0, false)
	req.IncludeLocations = true
	results, err := r.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("recommendation search failed: %w", err)
	}

	recs := make([]*models.Recommendation, 0, len(results.Hits))
	for i, hit := range results.Hits {
		recs = append(recs, &models.Recommendation{
			StudyID:        hit.ID,
			Title:          r.titles[hit.ID],
			RelevanceScore: hit.Score,
			Rank:           i + 1,
			MatchedFields:  matchedFields(hit.Locations),
		})
	}

	return &models.RecommendResponse{
		Query:           query.Query,
		Recommendations: recs,
		TotalIndexed:    r.total,
		QueryTime:       time.Since(start).Milliseconds(),
	}, nil
}

// matchedFields lists the index fields a hit matched in, sorted for stable
// output.
func matchedFields(locations search.FieldTermLocationMap) []string {
	if len(locations) == 0 {
		return nil
	}
	fields := make([]string, 0, len(locations))
	for field := range locations {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Total returns the number of indexed studies.
func (r *Recommender) Total() int {
	return r.total
}

// Close releases the index.
func (r *Recommender) Close() error {
	return r.index.Close()
}
