package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Corpus.Dir == "" {
		cfg.Corpus.Dir = "./data/downloaded"
	}
	if cfg.Processed.Dir == "" {
		cfg.Processed.Dir = "./data/processed"
	}
	if cfg.Processed.PassagesPath == "" {
		cfg.Processed.PassagesPath = cfg.Processed.Dir + "/passages.jsonl"
	}
	if cfg.Processed.FindingsPath == "" {
		cfg.Processed.FindingsPath = cfg.Processed.Dir + "/findings.jsonl"
	}
	if cfg.Processed.GapsPath == "" {
		cfg.Processed.GapsPath = cfg.Processed.Dir + "/gaps.csv"
	}
	if cfg.Processed.MissionMatrixPath == "" {
		cfg.Processed.MissionMatrixPath = cfg.Processed.Dir + "/mission_matrix.csv"
	}
	if cfg.Pipeline.Workers == 0 {
		cfg.Pipeline.Workers = 1
	}
	if cfg.Enrich.DatabasePath == "" {
		cfg.Enrich.DatabasePath = cfg.Processed.Dir + "/analysis.db"
	}
	if cfg.Enrich.BatchSize == 0 {
		cfg.Enrich.BatchSize = 10
	}
	if cfg.Enrich.ContentLimit == 0 {
		cfg.Enrich.ContentLimit = 8000
	}
	if cfg.Enrich.Model == "" {
		cfg.Enrich.Model = "gpt-3.5-turbo"
	}
	if cfg.Enrich.BaseURL == "" {
		cfg.Enrich.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if cfg.Recommend.TopK == 0 {
		cfg.Recommend.TopK = 5
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".html", ".htm", ".pdf"}
	}
}
