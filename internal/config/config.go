// Package config provides configuration loading and structs for litscan.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Processed ProcessedConfig `yaml:"processed"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Enrich    EnrichConfig    `yaml:"enrich"`
	Recommend RecommendConfig `yaml:"recommend"`
	Watch     WatchConfig     `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CorpusConfig locates the downloaded document corpus.
type CorpusConfig struct {
	Dir              string `yaml:"dir"`
	PublicationsPath string `yaml:"publications_path"`
}

// ProcessedConfig holds output paths for the pipeline and aggregates.
type ProcessedConfig struct {
	Dir               string `yaml:"dir"`
	PassagesPath      string `yaml:"passages_path"`
	FindingsPath      string `yaml:"findings_path"`
	GapsPath          string `yaml:"gaps_path"`
	MissionMatrixPath string `yaml:"mission_matrix_path"`
}

// PipelineConfig holds extraction and segmentation settings.
type PipelineConfig struct {
	// Workers is the number of goroutines tagging documents; documents are
	// independent, so this is purely a throughput knob.
	Workers int `yaml:"workers"`
}

// EnrichConfig holds settings for the checkpointed enrichment batch. The API
// key is never stored here; it comes from the LITSCAN_API_KEY environment
// variable.
type EnrichConfig struct {
	DatabasePath string `yaml:"database_path"`
	BatchSize    int    `yaml:"batch_size"`
	// ContentLimit caps how many characters of document text are handed to
	// the model per prompt.
	ContentLimit int    `yaml:"content_limit"`
	Model        string `yaml:"model"`
	BaseURL      string `yaml:"base_url"`
}

// RecommendConfig holds recommendation settings.
type RecommendConfig struct {
	TopK int `yaml:"top_k"`
}

// WatchConfig holds corpus watch settings.
type WatchConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Extensions []string `yaml:"extensions"`
}

// Load reads and parses the config file at path, expands paths, and applies
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Corpus.Dir = expandPath(cfg.Corpus.Dir, configDir)
	if cfg.Corpus.PublicationsPath != "" {
		cfg.Corpus.PublicationsPath = expandPath(cfg.Corpus.PublicationsPath, configDir)
	}
	cfg.Processed.Dir = expandPath(cfg.Processed.Dir, configDir)
	cfg.Processed.PassagesPath = expandPath(cfg.Processed.PassagesPath, configDir)
	cfg.Processed.FindingsPath = expandPath(cfg.Processed.FindingsPath, configDir)
	cfg.Processed.GapsPath = expandPath(cfg.Processed.GapsPath, configDir)
	cfg.Processed.MissionMatrixPath = expandPath(cfg.Processed.MissionMatrixPath, configDir)
	cfg.Enrich.DatabasePath = expandPath(cfg.Enrich.DatabasePath, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
