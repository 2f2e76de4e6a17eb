package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("SPIDERDECK_TEXT_MODEL", "")
	t.Setenv("SPIDERDECK_IMAGE_MODEL", "")
	t.Setenv("SPIDERDECK_LOG_LEVEL", "")
	os.Unsetenv("SPIDERDECK_TEXT_MODEL")
	os.Unsetenv("SPIDERDECK_IMAGE_MODEL")
	os.Unsetenv("SPIDERDECK_LOG_LEVEL")
	return dir
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := isolate(t)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(dir, "spiderdeck", "config.toml")
	assert.Equal(t, path, GetConfigFilePath())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `text_model = "gemini-2.5-flash"`)
	assert.NotContains(t, string(data), "APIKey")
}

func TestLoadConfigReadsFile(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`
text_model = "gemini-custom"

[art]
width = 12
`), 0644))

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gemini-custom", c.TextModel)
	assert.Equal(t, DefaultImageModel, c.ImageModel)
	assert.Equal(t, 12, c.Art.Width)
	assert.Equal(t, 20, c.Art.Height)
}

func TestLoadAppliesEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("SPIDERDECK_IMAGE_MODEL", "imagen-test")
	t.Setenv("GEMINI_API_KEY", "secret")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "imagen-test", c.ImageModel)
	assert.Equal(t, "secret", c.APIKey)
	assert.NoError(t, c.RequireCredential())
}

func TestLoadFallsBackToAPIKey(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "legacy")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "legacy", c.APIKey)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("GEMINI_API_KEY")
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GEMINI_API_KEY=from-dotenv\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("GEMINI_API_KEY") })

	c, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", c.APIKey)
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.env"))
	assert.NoError(t, err)
}

func TestRequireCredential(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.ErrorIs(t, c.RequireCredential(), ErrMissingCredential)
}
