// Package config loads environment configuration and assembles the state
// container from it.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"orgboard/pkg/cache/filecache"
	"orgboard/pkg/orgboard"
	"orgboard/pkg/remote/sqlite"
	"orgboard/pkg/store"
	"orgboard/pkg/textgen"
	"orgboard/pkg/textgen/gemini"
	"orgboard/pkg/textgen/openai"

	"github.com/caarlos0/env/v11"
)

const (
	providerGemini = "gemini"
	providerOpenAI = "openai"
)

// Config is the environment-driven runtime configuration.
type Config struct {
	// CacheDir is the local cache directory.
	CacheDir string `env:"ORGBOARD_CACHE_DIR" envDefault:"data/cache"`
	// DatabasePath is the SQLite database file for the remote store.
	DatabasePath string `env:"ORGBOARD_DATABASE_PATH" envDefault:"data/orgboard.db"`
	// TextProvider selects the text generation backend (gemini|openai).
	TextProvider string `env:"ORGBOARD_TEXT_PROVIDER" envDefault:"gemini"`
	// GeminiAPIKey authenticates Gemini requests. Absence disables text
	// generation without failing startup.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	// GeminiModel identifies which Gemini model to call.
	GeminiModel string `env:"ORGBOARD_GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	// OpenAIAPIKey authenticates OpenAI requests. Absence disables text
	// generation without failing startup.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	// OpenAIModel identifies which OpenAI model to call.
	OpenAIModel string `env:"ORGBOARD_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	// LogLevel selects the slog level (debug|info|warn|error).
	LogLevel string `env:"ORGBOARD_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration coherence.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CacheDir) == "" {
		return fmt.Errorf("validate config: cache dir is required")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("validate config: database path is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.TextProvider)) {
	case providerGemini, providerOpenAI:
	default:
		return fmt.Errorf("validate config: unsupported text provider %q", c.TextProvider)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}

// BuildRegistry constructs a registry of every generator whose API key is
// present in the environment.
//
// A nil registry (with nil error) means no provider is configured at all.
func (c Config) BuildRegistry() (*textgen.Registry, error) {
	generators := make(map[string]orgboard.TextGenerator)

	if strings.TrimSpace(c.GeminiAPIKey) != "" {
		generator, err := gemini.New(gemini.ProviderConfig{
			APIKey: c.GeminiAPIKey,
			Model:  c.GeminiModel,
		})
		if err != nil {
			return nil, fmt.Errorf("build gemini generator: %w", err)
		}
		generators[providerGemini] = generator
	}

	if strings.TrimSpace(c.OpenAIAPIKey) != "" {
		generator, err := openai.New(openai.ProviderConfig{
			APIKey: c.OpenAIAPIKey,
			Model:  c.OpenAIModel,
		})
		if err != nil {
			return nil, fmt.Errorf("build openai generator: %w", err)
		}
		generators[providerOpenAI] = generator
	}

	if len(generators) == 0 {
		return nil, nil
	}

	registry, err := textgen.NewRegistry(generators)
	if err != nil {
		return nil, fmt.Errorf("build generator registry: %w", err)
	}

	return registry, nil
}

// BuildGenerator resolves the selected text provider from the registry of
// configured generators.
//
// A missing API key for the selected provider is not an error: it returns a
// nil generator, and the container later reports
// orgboard.ErrGeneratorNotConfigured on AskAI.
func (c Config) BuildGenerator() (orgboard.TextGenerator, error) {
	provider := strings.ToLower(strings.TrimSpace(c.TextProvider))
	switch provider {
	case providerGemini, providerOpenAI:
	default:
		return nil, fmt.Errorf("build generator: unsupported text provider %q", c.TextProvider)
	}

	registry, err := c.BuildRegistry()
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, nil
	}

	generator, err := registry.Resolve(provider)
	if err != nil {
		// Other providers may carry keys while the selected one does not;
		// that still means generation is disabled, not misconfigured.
		return nil, nil
	}

	return generator, nil
}

// Build assembles the local cache, remote store, optional generator, and
// state container. The caller owns the returned container and remote store
// lifecycles.
func (c Config) Build(logger *slog.Logger) (*store.Container, *sqlite.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := filecache.New(c.CacheDir)
	if err != nil {
		return nil, nil, fmt.Errorf("build container: %w", err)
	}

	remote, err := sqlite.Open(c.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("build container: %w", err)
	}

	generator, err := c.BuildGenerator()
	if err != nil {
		_ = remote.Close()
		return nil, nil, fmt.Errorf("build container: %w", err)
	}
	if generator == nil {
		logger.Info("text generation disabled: no api key configured",
			"provider", c.TextProvider,
		)
	}

	container, err := store.New(cache, remote,
		store.WithLogger(logger),
		store.WithTextGenerator(generator),
	)
	if err != nil {
		_ = remote.Close()
		return nil, nil, fmt.Errorf("build container: %w", err)
	}

	return container, remote, nil
}

// ParseLogLevel maps a level name to its slog level.
func ParseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q", raw)
	}
}
