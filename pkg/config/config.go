// ABOUTME: Configuration management for the pipeline with YAML file and env support
// ABOUTME: Defines configuration structures for feed, providers, cache and output

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "HN_RSS_CONFIG"
	openAIKeyEnv     = "OPENAI_API_KEY"
	libreKeyEnv      = "LIBRETRANSLATE_API_KEY"
	libreEndpointEnv = "LIBRETRANSLATE_ENDPOINT"
	logLevelEnv      = "LOG_LEVEL"
)

// Config holds all application configuration.
type Config struct {
	// Feed contains source feed configuration
	Feed FeedConfig `yaml:"feed"`

	// Filtering controls which feed items enter the pipeline
	Filtering FilteringConfig `yaml:"filtering"`

	// Scraping controls article content extraction
	Scraping ScrapingConfig `yaml:"scraping"`

	// Summarization configures the summary provider
	Summarization SummarizationConfig `yaml:"summarization"`

	// Translation configures the translation provider and target languages
	Translation TranslationConfig `yaml:"translation"`

	// Cache configures the processed-item store
	Cache CacheConfig `yaml:"cache"`

	// Output configures feed file generation
	Output OutputConfig `yaml:"output"`

	// Log configures logging
	Log LogConfig `yaml:"log"`
}

// FeedConfig holds source feed configuration.
type FeedConfig struct {
	// SourceURL is the RSS feed to read items from
	SourceURL string `yaml:"source_url"`
}

// FilteringConfig controls item selection before processing.
type FilteringConfig struct {
	// MaxItems caps how many items one run processes
	MaxItems int `yaml:"max_items"`

	// MaxAgeHours discards items published earlier than this window
	MaxAgeHours int `yaml:"max_age_hours"`

	// SkipJobs drops job-posting items (hiring threads)
	SkipJobs bool `yaml:"skip_jobs"`
}

// ScrapingConfig controls article content extraction.
type ScrapingConfig struct {
	// TimeoutSeconds bounds each page fetch
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxWorkers bounds concurrent page fetches
	MaxWorkers int `yaml:"max_workers"`

	// MaxChars truncates extracted text to bound summarization cost
	MaxChars int `yaml:"max_chars"`
}

// SummarizationConfig configures the summary provider.
type SummarizationConfig struct {
	// Provider selects the backend: "openai" or "lightweight"
	Provider string `yaml:"provider"`

	// Model is the model name for remote providers
	Model string `yaml:"model"`

	// APIKey authenticates against remote providers
	APIKey string `yaml:"api_key"`

	// MaxLength is the summary upper bound in characters
	MaxLength int `yaml:"max_length"`

	// MinLength is the summary lower bound in characters
	MinLength int `yaml:"min_length"`
}

// TranslationConfig configures translation providers and targets.
type TranslationConfig struct {
	// Provider selects the backend: "openai", "libretranslate" or "mymemory"
	Provider string `yaml:"provider"`

	// Model is the model name for the openai provider
	Model string `yaml:"model"`

	// APIKey authenticates against remote providers
	APIKey string `yaml:"api_key"`

	// Endpoint overrides the provider's default API endpoint
	Endpoint string `yaml:"endpoint"`

	// CallsPerSecond paces outbound provider calls; zero disables pacing
	CallsPerSecond float64 `yaml:"calls_per_second"`

	// Languages lists the target languages, one output feed each
	Languages []LanguageConfig `yaml:"target_languages"`
}

// LanguageConfig describes one target language.
type LanguageConfig struct {
	// Code is the language code ("ko", "ja", "es")
	Code string `yaml:"code"`

	// Name is the human-readable language name
	Name string `yaml:"name"`

	// FeedName is the output file name; defaults to rss-<code>.xml
	FeedName string `yaml:"feed_name"`

	// SkipTranslation emits source-language text without contacting a provider
	SkipTranslation bool `yaml:"skip_translation"`
}

// CacheConfig configures the processed-item store.
type CacheConfig struct {
	// Backend selects the store: "json" or "sqlite"
	Backend string `yaml:"backend"`

	// Path is the cache file location
	Path string `yaml:"path"`

	// RetentionDays prunes records older than this window
	RetentionDays int `yaml:"retention_days"`
}

// OutputConfig configures feed file generation.
type OutputConfig struct {
	// Directory is where feed files are written
	Directory string `yaml:"directory"`

	// BaseURL is the public URL the feeds are served from
	BaseURL string `yaml:"base_url"`

	// GenerateIndex also emits index.html, sitemap.xml and robots.txt
	GenerateIndex bool `yaml:"generate_index"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, error
	Level string `yaml:"level"`

	// FilePath enables rotating file output when set
	FilePath string `yaml:"file_path"`

	// MaxSizeMB rotates the log file past this size
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups keeps this many rotated files
	MaxBackups int `yaml:"max_backups"`
}

// Load reads YAML configuration from path (or $HN_RSS_CONFIG when path is
// empty) on top of defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(openAIKeyEnv); v != "" {
		if c.Summarization.APIKey == "" {
			c.Summarization.APIKey = v
		}
		if c.Translation.APIKey == "" && c.Translation.Provider == "openai" {
			c.Translation.APIKey = v
		}
	}
	if v := os.Getenv(libreKeyEnv); v != "" && c.Translation.Provider == "libretranslate" {
		c.Translation.APIKey = v
	}
	if v := os.Getenv(libreEndpointEnv); v != "" && c.Translation.Provider == "libretranslate" {
		c.Translation.Endpoint = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Filtering.MaxItems = n
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Feed.SourceURL == "" {
		return errors.New("feed source_url cannot be empty")
	}

	if c.Filtering.MaxItems < 1 {
		return errors.New("max_items must be at least 1")
	}
	if c.Filtering.MaxAgeHours < 1 {
		return errors.New("max_age_hours must be at least 1")
	}

	switch c.Summarization.Provider {
	case "openai", "lightweight":
	default:
		return fmt.Errorf("unknown summarization provider %q", c.Summarization.Provider)
	}
	if c.Summarization.MaxLength <= c.Summarization.MinLength {
		return errors.New("summarization max_length must exceed min_length")
	}

	switch c.Translation.Provider {
	case "openai", "libretranslate", "mymemory":
	default:
		return fmt.Errorf("unknown translation provider %q", c.Translation.Provider)
	}
	if len(c.Translation.Languages) == 0 {
		return errors.New("at least one target language is required")
	}
	for _, lang := range c.Translation.Languages {
		if lang.Code == "" {
			return errors.New("target language code cannot be empty")
		}
	}

	if c.Cache.Backend != "json" && c.Cache.Backend != "sqlite" {
		return errors.New("cache backend must be 'json' or 'sqlite'")
	}
	if c.Cache.Path == "" {
		return errors.New("cache path cannot be empty")
	}
	if c.Cache.RetentionDays < 1 {
		return errors.New("cache retention_days must be at least 1")
	}

	if c.Output.Directory == "" {
		return errors.New("output directory cannot be empty")
	}
	if c.Output.BaseURL == "" {
		return errors.New("output base_url cannot be empty")
	}

	return nil
}

func defaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			SourceURL: "https://news.ycombinator.com/rss",
		},
		Filtering: FilteringConfig{
			MaxItems:    20,
			MaxAgeHours: 24,
			SkipJobs:    true,
		},
		Scraping: ScrapingConfig{
			TimeoutSeconds: 10,
			MaxWorkers:     5,
			MaxChars:       5000,
		},
		Summarization: SummarizationConfig{
			Provider:  "lightweight",
			Model:     "gpt-4o-mini",
			MaxLength: 150,
			MinLength: 50,
		},
		Translation: TranslationConfig{
			Provider:       "mymemory",
			CallsPerSecond: 1,
			Languages: []LanguageConfig{
				{Code: "en", Name: "English", SkipTranslation: true},
				{Code: "ko", Name: "Korean"},
			},
		},
		Cache: CacheConfig{
			Backend:       "json",
			Path:          "data/processed_items.json",
			RetentionDays: 7,
		},
		Output: OutputConfig{
			Directory:     "output",
			BaseURL:       "https://example.com",
			GenerateIndex: true,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
