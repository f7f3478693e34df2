package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test so that dotenv files can
// populate it, restoring the previous value afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	prev, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_ORGANIZATION", "LOG_LEVEL", "NO_COLOR"} {
		unsetEnv(t, key)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		OpenAIBaseURL: "https://api.openai.com/v1",
		LogLevel:      "info",
	}, cfg)
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_ORGANIZATION", "LOG_LEVEL"} {
		unsetEnv(t, key)
	}
	path := writeEnvFile(t, "OPENAI_API_KEY=sk-from-file\nOPENAI_ORGANIZATION=org-1\nLOG_LEVEL=debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-file", cfg.OpenAIAPIKey)
	assert.Equal(t, "org-1", cfg.OpenAIOrganization)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvironmentWins(t *testing.T) {
	unsetEnv(t, "OPENAI_API_KEY")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	path := writeEnvFile(t, "OPENAI_API_KEY=sk-from-file\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.OpenAIAPIKey)
}

func TestColorDisabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"yes", true},
		{"false", true},
	}

	for _, tt := range tests {
		t.Run("NO_COLOR="+tt.value, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.value)

			cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ColorDisabled())
		})
	}
}

func TestLoadMalformedEnvFile(t *testing.T) {
	path := writeEnvFile(t, "OPENAI_API_KEY=\"unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading env file")
}
