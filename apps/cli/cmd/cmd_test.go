package cmd

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/domspec/packages/core/config"
	"github.com/abdul-hamid-achik/domspec/packages/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscoverFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b.html", "<p>b</p>")
	writeFixture(t, dir, "a.htm", "<p>a</p>")
	writeFixture(t, dir, "forms/login.html", "<form></form>")
	writeFixture(t, dir, "notes.txt", "ignored")

	names, err := discoverFixtures(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.htm", "b.html", "forms/login.html"}, names)
}

func TestDiscoverFixtures_Errors(t *testing.T) {
	_, err := discoverFixtures(t.TempDir())
	assert.ErrorContains(t, err, "no .html or .htm files found")

	_, err = discoverFixtures(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "cannot access")

	_, err = discoverFixtures("http://localhost:9000/fixtures")
	assert.ErrorContains(t, err, "name the fixtures")
}

func TestCheckFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "list.html", `<ul><li>one</li><li>two</li></ul>`)

	cfg := config.DefaultConfig()
	cfg.FixturesPath = dir

	report := checkFixtures(cfg, zap.NewNop(), []string{"list.html", "gone.html"})

	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Passed())
	assert.Equal(t, 3, report.Results[0].Elements)
	assert.Equal(t, len(`<ul><li>one</li><li>two</li></ul>`), report.Results[0].Bytes)

	var fetchErr *fixtures.FetchError
	require.True(t, errors.As(report.Results[1].Err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, 1, report.Failed())
}

func TestCheckFixtures_OverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Token"))
		if r.URL.Path != "/fixtures/menu.html" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<nav><a href="#">x</a></nav>`))
	}))
	defer server.Close()

	cfg := config.DefaultConfig()
	cfg.FixturesPath = server.URL + "/fixtures/"
	cfg.Headers = map[string]string{"X-Token": "secret"}

	report := checkFixtures(cfg, zap.NewNop(), []string{"menu.html"})

	require.Len(t, report.Results, 1)
	require.NoError(t, report.Results[0].Err)
	assert.Equal(t, 2, report.Results[0].Elements)
	assert.Equal(t, server.URL+"/fixtures/menu.html", report.Results[0].URL)
}

func TestExitError(t *testing.T) {
	cause := errors.New("boom")
	err := exitWith(ExitConfigError, cause)

	var exitErr *exitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitConfigError, exitErr.code)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "exit status 1", exitWith(ExitFixtureFailure, nil).Error())
}

func TestReadCommand(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.html", "<p>A</p>")
	writeFixture(t, dir, "b.html", "<p>B</p>")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"read", "a.html", "b.html", "--path", dir})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "<p>A</p><p>B</p>", out.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "domspec version dev")
}
