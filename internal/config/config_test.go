package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.HTTP.Mode)
	assert.Equal(t, filepath.Join("data", "recipes.json"), cfg.Documents.Recipes)
	assert.Equal(t, filepath.Join("data", "projects.json"), cfg.Documents.Projects)
	assert.Equal(t, 15, cfg.Documents.FetchTimeout)
	assert.Equal(t, "folio.db", cfg.Preferences.Path)
}

func TestParse_DataDirDrivesDocumentPaths(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Parse([]byte(`
documents:
  data_dir: content
  about: https://example.com/about.json
`))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("content", "skills.json"), cfg.Documents.Skills)
	assert.Equal(t, "https://example.com/about.json", cfg.Documents.About)
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FOLIO_RECIPES", "https://cdn.example.com/recipes.json")

	cfg, err := Parse([]byte(`
documents:
  recipes: ${FOLIO_RECIPES}
preferences:
  path: ${FOLIO_DB:-/var/lib/folio/prefs.db}
`))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/recipes.json", cfg.Documents.Recipes)
	assert.Equal(t, "/var/lib/folio/prefs.db", cfg.Preferences.Path)
}

func TestParse_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Parse([]byte("http:\n  port: 8000\n"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)

	t.Setenv("PORT", "eighty")
	_, err = Parse([]byte(`{}`))
	assert.ErrorContains(t, err, "invalid PORT")
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 70000, Mode: "debug"}}

	err := cfg.Validate()
	assert.EqualError(t, err, "http.port must be between 1 and 65535, got 70000")
}

func TestValidate_InvalidMode(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080, Mode: "verbose"}}

	assert.Error(t, cfg.Validate())
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "local.yaml"), []byte("http:\n  port: 8123\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load("local")
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.HTTP.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("prod")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	assert.Equal(t, "local", GetEnv())

	t.Setenv("ENV", "prod")
	assert.Equal(t, "prod", GetEnv())
}
