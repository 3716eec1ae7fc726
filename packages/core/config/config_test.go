package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "spec/fixtures", cfg.FixturesPath)
	assert.Equal(t, "domspec-fixtures", cfg.ContainerID)
	assert.Equal(t, "sandbox", cfg.SandboxID)
	assert.Equal(t, 30*time.Second, cfg.TimeoutDuration())
	assert.True(t, cfg.GetValidateSSL())
	assert.False(t, cfg.GetNoColor())
	assert.True(t, cfg.IsDefault())
}

func TestFindAndLoadConfig_NoFile(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.True(t, cfg.IsDefault())
}

func TestFindAndLoadConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	data := `{"fixturesPath": "test/html/", "timeout": 500, "validateSSL": false}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".domspec.json"), []byte(data), 0644))

	cfg, err := FindAndLoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "test/html/", cfg.FixturesPath)
	assert.Equal(t, 500, cfg.Timeout)
	assert.False(t, cfg.GetValidateSSL())
	assert.Equal(t, DefaultContainerID, cfg.ContainerID, "unset fields keep defaults")
}

func TestFindAndLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	data := "fixturesPath: http://localhost:9000/fixtures\ncontainerId: host\nheaders:\n  X-Token: abc\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".domspec.yaml"), []byte(data), 0644))

	cfg, err := FindAndLoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/fixtures", cfg.FixturesPath)
	assert.Equal(t, "host", cfg.ContainerID)
	assert.Equal(t, map[string]string{"X-Token": "abc"}, cfg.Headers)
}

func TestFindAndLoadConfig_JSONTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".domspec.json"), []byte(`{"containerId": "json"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".domspec.yaml"), []byte("containerId: yaml\n"), 0644))

	cfg, err := FindAndLoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.ContainerID)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")

	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Headers = map[string]string{"A": "1"}

	merged := base.Merge(&Config{
		FixturesPath: "other",
		Verbose:      2,
		NoColor:      BoolPtr(true),
		Headers:      map[string]string{"B": "2"},
	})

	assert.Equal(t, "other", merged.FixturesPath)
	assert.Equal(t, DefaultContainerID, merged.ContainerID)
	assert.Equal(t, 2, merged.Verbose)
	assert.True(t, merged.GetNoColor())
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, merged.Headers)
	assert.Equal(t, map[string]string{"A": "1"}, base.Headers, "merge does not mutate the receiver")

	assert.Same(t, base, base.Merge(nil))
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	for _, name := range []string{"out.json", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := DefaultConfig()
			cfg.FixturesPath = "fx"
			cfg.ValidateSSL = BoolPtr(false)

			require.NoError(t, cfg.SaveConfig(path))
			loaded, err := LoadConfig(path)

			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestClientOptions_MaxRedirects(t *testing.T) {
	cfg := DefaultConfig()
	assert.Len(t, cfg.ClientOptions(), 4)

	merged := cfg.Merge(&Config{MaxRedirects: 2})
	assert.Equal(t, 2, merged.MaxRedirects)
	assert.False(t, merged.IsDefault())
	assert.Len(t, merged.ClientOptions(), 5)
}

func TestFindAndLoadConfig_MaxRedirects(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".domspec.yml"), []byte("maxRedirects: 3\n"), 0644))

	cfg, err := FindAndLoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxRedirects)
}
