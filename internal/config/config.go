package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summary       SummaryConfig       `yaml:"summary"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`

	// Secrets, loaded from the environment rather than the yaml file.
	OpenAIAPIKey  string   `yaml:"-"`
	GeminiAPIKeys []string `yaml:"-"`
}

type TranscriptionConfig struct {
	Model               string  `yaml:"model"`
	Language            string  `yaml:"language"`
	MaxDurationSeconds  int     `yaml:"max_duration_seconds"`
	ChunkOverlapSeconds int     `yaml:"chunk_overlap_seconds"`
	SilencePaddingMs    int     `yaml:"silence_padding_ms"`
	MaxFileSizeMB       int     `yaml:"max_file_size_mb"`
	MaxRetries          int     `yaml:"max_retries"`
	InitialDelaySeconds float64 `yaml:"initial_delay_seconds"`
	BackoffBase         float64 `yaml:"backoff_base"`
}

type SummaryConfig struct {
	Provider    string  `yaml:"provider"` // openai or gemini
	Model       string  `yaml:"model"`
	GeminiModel string  `yaml:"gemini_model"`
	Temperature float32 `yaml:"temperature"`
	Description string  `yaml:"description"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// supportedLanguages maps language codes to display names.
var supportedLanguages = map[string]string{
	"it":   "Italian",
	"en":   "English",
	"es":   "Spanish",
	"fr":   "French",
	"de":   "German",
	"auto": "Auto-detect",
}

// LanguageDisplayName returns the display name for a language code,
// falling back to the code itself for unknown values.
func LanguageDisplayName(code string) string {
	if name, ok := supportedLanguages[code]; ok {
		return name
	}
	return code
}

// Load reads the yaml config file, merges environment secrets and
// applies defaults via Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	// .env is optional, real environment always wins
	_ = godotenv.Load()

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.GeminiAPIKeys = append(cfg.GeminiAPIKeys, k)
			}
		}
	}
	if model := os.Getenv("SUMMARY_MODEL"); model != "" {
		cfg.Summary.Model = model
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Summary.Provider == "gemini" && len(c.GeminiAPIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEYS is required when summary.provider is gemini")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	if c.Transcription.Model == "" {
		c.Transcription.Model = "gpt-4o-transcribe"
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "it"
	}
	if _, ok := supportedLanguages[c.Transcription.Language]; !ok {
		return fmt.Errorf("transcription.language %q is not supported", c.Transcription.Language)
	}
	if c.Transcription.MaxDurationSeconds == 0 {
		c.Transcription.MaxDurationSeconds = 600
	}
	if c.Transcription.ChunkOverlapSeconds == 0 {
		c.Transcription.ChunkOverlapSeconds = 5
	}
	if c.Transcription.SilencePaddingMs == 0 {
		c.Transcription.SilencePaddingMs = 100
	}
	if c.Transcription.MaxFileSizeMB == 0 {
		c.Transcription.MaxFileSizeMB = 25
	}
	if c.Transcription.MaxRetries == 0 {
		c.Transcription.MaxRetries = 3
	}
	if c.Transcription.InitialDelaySeconds == 0 {
		c.Transcription.InitialDelaySeconds = 1.0
	}
	if c.Transcription.BackoffBase == 0 {
		c.Transcription.BackoffBase = 2.0
	}

	if c.Summary.Provider == "" {
		c.Summary.Provider = "openai"
	}
	if c.Summary.Provider != "openai" && c.Summary.Provider != "gemini" {
		return fmt.Errorf("summary.provider must be openai or gemini, got %q", c.Summary.Provider)
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gpt-4o-mini"
	}
	if c.Summary.GeminiModel == "" {
		c.Summary.GeminiModel = "gemini-2.5-flash"
	}
	if c.Summary.Temperature == 0 {
		c.Summary.Temperature = 0.5
	}
	if c.Summary.Description == "" {
		c.Summary.Description = "A conversation about ..."
	}

	return nil
}
