package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, int64(10<<20), cfg.Fetch.MaxBytes)
	assert.Equal(t, 5, cfg.Fetch.MaxRedirects)
	assert.Equal(t, "URL_ID", cfg.Input.IDColumn)
	assert.Equal(t, "URL", cfg.Input.URLColumn)
	assert.Equal(t, "Input.xlsx", cfg.Input.Path)
	assert.Equal(t, "Output Data Structure.xlsx", cfg.Output.Path)
	assert.Equal(t, "extracted_articles", cfg.Output.ArticlesDir)
	assert.Equal(t, "terminal", cfg.Output.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artmetrics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fetch:
  timeout: 5s
  requests_per_second: 2
output:
  articles_dir: /tmp/articles
`), 0o644))

	cfg, err := load(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 2.0, cfg.Fetch.RequestsPerSecond)
	assert.Equal(t, "/tmp/articles", cfg.Output.ArticlesDir)
	assert.Equal(t, "URL_ID", cfg.Input.IDColumn)
	assert.Equal(t, int64(10<<20), cfg.Fetch.MaxBytes)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artmetrics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetch:\n  user_agent: from-file\n"), 0o644))

	cfg, err := load(path, envMap(map[string]string{
		"ARTMETRICS_USER_AGENT":          "from-env",
		"ARTMETRICS_TIMEOUT":             "1m",
		"ARTMETRICS_REQUESTS_PER_SECOND": "0.5",
		"ARTMETRICS_FORMAT":              "json",
		"ARTMETRICS_ID_COLUMN":           "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Fetch.UserAgent)
	assert.Equal(t, time.Minute, cfg.Fetch.Timeout)
	assert.Equal(t, 0.5, cfg.Fetch.RequestsPerSecond)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "URL_ID", cfg.Input.IDColumn)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fetch: [1, 2"), 0o644))
	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("output:\n  format: xml\n"), 0o644))

	tests := []struct {
		name string
		path string
		env  map[string]string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), nil},
		{"bad yaml", bad, nil},
		{"invalid format", invalid, nil},
		{"bad timeout", "", map[string]string{"ARTMETRICS_TIMEOUT": "soon"}},
		{"bad rate", "", map[string]string{"ARTMETRICS_REQUESTS_PER_SECOND": "fast"}},
		{"negative rate", "", map[string]string{"ARTMETRICS_REQUESTS_PER_SECOND": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.path, envMap(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("ARTMETRICS_ARTICLES_DIR=from-dotenv\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Output.ArticlesDir)
}
