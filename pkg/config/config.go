package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

type Config struct {
	OpenAIAPIKey       string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIOrganization string `env:"OPENAI_ORGANIZATION"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor            string `env:"NO_COLOR"`
}

// ColorDisabled follows the NO_COLOR convention: any non-empty value turns
// colors off.
func (c Config) ColorDisabled() bool {
	return c.NoColor != ""
}

// Load populates the process environment from the given dotenv files
// (DefaultEnvFile when none are given) and parses it into a Config.
// Variables already present in the environment win over file values, and
// missing files are skipped. The API key is not checked here: an empty key
// surfaces as an authentication error on the first request.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading env file %s: %w", f, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}

	return cfg, nil
}
