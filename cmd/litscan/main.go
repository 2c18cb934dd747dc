// Package main is the litscan CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/orbitalbio/litscan/internal/aggregate"
	"github.com/orbitalbio/litscan/internal/cli"
	"github.com/orbitalbio/litscan/internal/config"
	"github.com/orbitalbio/litscan/internal/corpus"
	"github.com/orbitalbio/litscan/internal/enrich"
	"github.com/orbitalbio/litscan/internal/extract"
	"github.com/orbitalbio/litscan/internal/lexicon"
	"github.com/orbitalbio/litscan/internal/llm"
	"github.com/orbitalbio/litscan/internal/models"
	"github.com/orbitalbio/litscan/internal/pipeline"
	"github.com/orbitalbio/litscan/internal/recommend"
	"github.com/orbitalbio/litscan/internal/server"
	"github.com/orbitalbio/litscan/internal/store"
	"github.com/orbitalbio/litscan/internal/tagger"
	"github.com/orbitalbio/litscan/internal/watcher"
	"github.com/orbitalbio/litscan/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/litscan/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used, so that "litscan serve" from the project dir uses the project's
// config (including debug).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "pipeline":
		runPipeline()
	case "aggregate":
		runAggregate()
	case "enrich":
		runEnrich()
	case "checkpoint":
		runCheckpoint()
	case "recommend":
		runRecommend()
	case "serve":
		runServe()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("litscan version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func mustLogger(cfg *config.Config, debugFlag bool) *zap.Logger {
	logger, err := utils.NewLogger(cfg.Debug || debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func newPipeline(cfg *config.Config, logger *zap.Logger) *pipeline.Pipeline {
	tg := tagger.New(lexicon.Default())
	return pipeline.New(extract.NewExtractor(), tg,
		pipeline.WithLogger(logger),
		pipeline.WithWorkers(cfg.Pipeline.Workers),
	)
}

func runPipeline() {
	fs := flag.NewFlagSet("pipeline", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (per-document events)")
	watch := fs.Bool("watch", false, "after the run, keep watching the corpus directory and append new studies")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := mustLogger(cfg, *debug)
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("corpus_dir", cfg.Corpus.Dir),
	)

	pipe := newPipeline(cfg, logger)
	ctx := context.Background()
	stats, err := pipe.Run(ctx, cfg.Corpus.Dir, cfg.Processed.PassagesPath, cfg.Processed.FindingsPath)
	if err != nil {
		logger.Fatal("Pipeline run failed", zap.Error(err))
	}
	fmt.Printf("Processed %d document(s) (%d skipped): %d passages, %d findings\n",
		stats.Documents, stats.Skipped, stats.Passages, stats.Findings)

	if !*watch && !cfg.Watch.Enabled {
		return
	}

	watchOpts := []watcher.Option{}
	if cfg.Debug || *debug {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	w := watcher.New(cfg.Corpus.Dir, cfg.Watch.Extensions, func(path string) {
		entry := corpus.Lookup(path)
		appended, err := pipe.Append(context.Background(), entry,
			cfg.Processed.PassagesPath, cfg.Processed.FindingsPath)
		if err != nil {
			logger.Warn("watch: append failed", zap.String("study_id", entry.StudyID), zap.Error(err))
			return
		}
		logger.Info("watch: study appended",
			zap.String("study_id", entry.StudyID),
			zap.Int("passages", appended.Passages),
			zap.Int("findings", appended.Findings),
		)
	}, watchOpts...)

	watchCtx, watchCancel := context.WithCancel(ctx)
	defer watchCancel()
	if err := w.Start(watchCtx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	logger.Info("watching corpus directory", zap.String("dir", cfg.Corpus.Dir))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
	w.Stop()
}

func runAggregate() {
	fs := flag.NewFlagSet("aggregate", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	findings, err := store.ReadAll[models.Finding](cfg.Processed.FindingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read findings (run \"litscan pipeline\" first): %v\n", err)
		os.Exit(1)
	}

	gaps := aggregate.Gaps(findings)
	if err := aggregate.WriteGapsCSV(cfg.Processed.GapsPath, gaps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write gaps: %v\n", err)
		os.Exit(1)
	}
	matrix := aggregate.MissionMatrix(findings)
	if err := aggregate.WriteMissionMatrixCSV(cfg.Processed.MissionMatrixPath, matrix); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write mission matrix: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d gap row(s) to %s\n", len(gaps), cfg.Processed.GapsPath)
	fmt.Printf("Wrote %d mission matrix row(s) to %s\n", len(matrix), cfg.Processed.MissionMatrixPath)
}

// publicationTitles maps study IDs (derived from publication links) to titles
// for enrichment prompts and recommendation output.
func publicationTitles(path string) map[string]string {
	titles := make(map[string]string)
	if path == "" {
		return titles
	}
	pubs, err := corpus.LoadPublications(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: publications list not loaded: %v\n", err)
		return titles
	}
	for _, pub := range pubs {
		if pub.Link == "" {
			continue
		}
		id := corpus.StudyID(strings.TrimRight(pub.Link, "/"))
		if id != "" {
			titles[id] = pub.Title
		}
	}
	return titles
}

func runEnrich() {
	fs := flag.NewFlagSet("enrich", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	model := fs.String("model", "", "model name (overrides config)")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *model != "" {
		cfg.Enrich.Model = *model
	}
	apiKey := os.Getenv("LITSCAN_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "LITSCAN_API_KEY (or OPENAI_API_KEY) environment variable is required")
		os.Exit(1)
	}

	logger := mustLogger(cfg, *debug)
	defer logger.Sync()

	analysisStore, err := enrich.NewStore(cfg.Enrich.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open analysis store", zap.Error(err))
	}
	defer analysisStore.Close()

	oracle := &llm.Client{
		BaseURL: cfg.Enrich.BaseURL,
		APIKey:  apiKey,
		Model:   cfg.Enrich.Model,
	}
	enricher := enrich.New(oracle, analysisStore, newPipeline(cfg, logger),
		enrich.WithLogger(logger),
		enrich.WithBatchSize(cfg.Enrich.BatchSize),
		enrich.WithContentLimit(cfg.Enrich.ContentLimit),
		enrich.WithModel(cfg.Enrich.Model),
		enrich.WithTitles(publicationTitles(cfg.Corpus.PublicationsPath)),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stats, err := enricher.Run(ctx, cfg.Corpus.Dir)
	if err != nil {
		if ctx.Err() != nil && stats != nil {
			fmt.Printf("Interrupted after %d stud(ies); re-run \"litscan enrich\" to resume\n", stats.Processed)
			return
		}
		logger.Fatal("Enrichment failed", zap.Error(err))
	}
	fmt.Printf("Run %s: %d analyzed, %d already done, %d failed\n",
		stats.RunID, stats.Processed, stats.Skipped, stats.Failed)
}

func runCheckpoint() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: litscan checkpoint <status|clear> [flags]")
		os.Exit(1)
	}
	sub := os.Args[2]
	fs := flag.NewFlagSet("checkpoint", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[3:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	analysisStore, err := enrich.NewStore(cfg.Enrich.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open analysis store: %v\n", err)
		os.Exit(1)
	}
	defer analysisStore.Close()

	ctx := context.Background()
	switch sub {
	case "status":
		enricher := enrich.New(nil, analysisStore, nil)
		status, err := enricher.CheckpointStatus(ctx, cfg.Corpus.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Checkpoint status failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("analyzed:   %d\n", status.Analyzed)
		fmt.Printf("total:      %d\n", status.Total)
		fmt.Printf("remaining:  %d\n", status.Remaining)
	case "clear":
		if err := analysisStore.Clear(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Checkpoint clear failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Checkpoint cleared; next enrich run starts from scratch")
	default:
		fmt.Printf("Unknown checkpoint subcommand: %s\n", sub)
		os.Exit(1)
	}
}

// loadRecommender builds the recommendation index from whatever data exists:
// analyses when the enrichment database is present, findings when the
// findings store is present. Returns nil when there is nothing to index.
func loadRecommender(cfg *config.Config, logger *zap.Logger) (*recommend.Recommender, int64, error) {
	var analyses []*models.Analysis
	var analyzed int64
	if _, err := os.Stat(cfg.Enrich.DatabasePath); err == nil {
		analysisStore, err := enrich.NewStore(cfg.Enrich.DatabasePath)
		if err != nil {
			return nil, 0, err
		}
		defer analysisStore.Close()
		analyses, err = analysisStore.List(context.Background())
		if err != nil {
			return nil, 0, err
		}
		analyzed = int64(len(analyses))
	}

	var findings []*models.Finding
	if _, err := os.Stat(cfg.Processed.FindingsPath); err == nil {
		findings, err = store.ReadAll[models.Finding](cfg.Processed.FindingsPath)
		if err != nil {
			return nil, 0, err
		}
	}

	if len(analyses) == 0 && len(findings) == 0 {
		return nil, 0, nil
	}
	rec, err := recommend.New(analyses, findings, recommend.WithLogger(logger))
	if err != nil {
		return nil, 0, err
	}
	return rec, analyzed, nil
}

func runRecommend() {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	topK := fs.Int("top-k", 0, "number of recommendations (default from config)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: litscan recommend [flags] <research query>")
		os.Exit(1)
	}
	queryStr := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if queryStr == "" {
		fmt.Println("Usage: litscan recommend [flags] <research query>")
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := mustLogger(cfg, false)
	defer logger.Sync()

	rec, _, err := loadRecommender(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build recommendation index: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintln(os.Stderr, "Nothing to recommend from; run \"litscan pipeline\" or \"litscan enrich\" first")
		os.Exit(1)
	}
	defer rec.Close()

	k := *topK
	if k <= 0 {
		k = cfg.Recommend.TopK
	}
	response, err := rec.Recommend(context.Background(), &models.RecommendQuery{Query: queryStr, TopK: k})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Recommendation failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteRecommendations(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := mustLogger(cfg, *debug)
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", cfg.Debug || *debug),
	)

	var findings []*models.Finding
	if _, err := os.Stat(cfg.Processed.FindingsPath); err == nil {
		findings, err = store.ReadAll[models.Finding](cfg.Processed.FindingsPath)
		if err != nil {
			logger.Fatal("Failed to read findings store", zap.Error(err))
		}
	}
	var passageCount int
	if passages, err := store.ReadAll[models.Passage](cfg.Processed.PassagesPath); err == nil {
		passageCount = len(passages)
	}
	entries, err := corpus.Scan(cfg.Corpus.Dir)
	if err != nil {
		logger.Warn("corpus scan failed", zap.String("dir", cfg.Corpus.Dir), zap.Error(err))
	}

	rec, analyzed, err := loadRecommender(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build recommendation index", zap.Error(err))
	}
	if rec != nil {
		defer rec.Close()
	}

	srv := server.NewServer(findings, rec, server.StatusInfo{
		Documents: len(entries),
		Passages:  passageCount,
		Findings:  len(findings),
		Analyzed:  analyzed,
	}, &cfg.Server, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = read stores directly)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status server.StatusInfo
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		if entries, err := corpus.Scan(cfg.Corpus.Dir); err == nil {
			status.Documents = len(entries)
		}
		if passages, err := store.ReadAll[models.Passage](cfg.Processed.PassagesPath); err == nil {
			status.Passages = len(passages)
		}
		if findings, err := store.ReadAll[models.Finding](cfg.Processed.FindingsPath); err == nil {
			status.Findings = len(findings)
		}
		if _, err := os.Stat(cfg.Enrich.DatabasePath); err == nil {
			if analysisStore, err := enrich.NewStore(cfg.Enrich.DatabasePath); err == nil {
				status.Analyzed, _ = analysisStore.Count(context.Background())
				_ = analysisStore.Close()
			}
		}
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("documents:  %d   # studies in the corpus directory\n", status.Documents)
		fmt.Printf("passages:   %d   # sentences in the passage store\n", status.Passages)
		fmt.Printf("findings:   %d   # tagged findings\n", status.Findings)
		fmt.Printf("analyzed:   %d   # studies with model analysis\n", status.Analyzed)
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func statusViaHTTP(serverURL string) (*server.StatusInfo, error) {
	resp, err := http.Get(serverURL + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s server.StatusInfo
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

func printUsage() {
	fmt.Println(`litscan - findings extraction for a scientific literature corpus

Usage:
  litscan pipeline [flags]             Extract, segment, and tag the corpus
  litscan aggregate [flags]            Write gaps and mission matrix CSVs
  litscan enrich [flags]               Run model analysis over the corpus (resumable)
  litscan checkpoint <status|clear>    Inspect or reset enrichment progress
  litscan recommend [flags] <query>    Rank studies for a research query
  litscan serve [flags]                Start the HTTP API
  litscan status [flags]               Show corpus and store counts
  litscan version                      Show version
  litscan help                         Show this help

Pipeline Flags:
  --config string    Config file path (default: /usr/local/etc/litscan/config.yaml)
  --debug            Enable debug logging (per-document events)
  --watch            Keep watching the corpus directory after the run

Enrich Flags:
  --config string    Config file path
  --model string     Model name (overrides config)
  --debug            Enable debug logging
  Requires LITSCAN_API_KEY (or OPENAI_API_KEY) in the environment.

Recommend Flags:
  --config string    Config file path
  --top-k int        Number of recommendations (default from config)
  --output string    Output format: text or json (default: text)

Status Flags:
  --config string    Config file path (for direct store access)
  --server string    Server URL (empty = read stores directly)
  --output string    Output format: text or json (default: text)

Examples:
  litscan pipeline
  litscan pipeline --watch
  litscan aggregate
  litscan enrich --model gpt-4o-mini
  litscan checkpoint status
  litscan recommend "bone loss countermeasures in microgravity"
  litscan recommend --output json "plant growth"
  litscan serve
  litscan status --output json`)
}
