package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/ghbrowse/internal/config"
	"github.com/jask/ghbrowse/internal/secrets"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GHBROWSE_CONFIG", "")
	t.Setenv("GHBROWSE_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	return home
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveTokenOrder(t *testing.T) {
	isolate(t)
	t.Setenv("GH_TEST_TOKEN", "")
	cfg := config.Config{GitHub: config.GitHubConfig{BaseURL: "https://api.github.com/", TokenEnv: "GH_TEST_TOKEN", Token: " from-config "}}

	require.Equal(t, "from-config", resolveToken(cfg))

	require.NoError(t, secrets.StoreToken(cfg.GitHub.BaseURL, "from-store"))
	require.Equal(t, "from-store", resolveToken(cfg))

	t.Setenv("GH_TEST_TOKEN", "from-env")
	require.Equal(t, "from-env", resolveToken(cfg))
}

func TestAuthSetAndClear(t *testing.T) {
	isolate(t)

	out, err := execute(t, "ghp_secret\n", "auth", "set")
	require.NoError(t, err)
	require.Contains(t, out, "token stored for https://api.github.com/")
	got, err := secrets.FetchToken("https://api.github.com/")
	require.NoError(t, err)
	require.Equal(t, "ghp_secret", got)

	_, err = execute(t, "", "auth", "clear")
	require.NoError(t, err)
	_, err = secrets.FetchToken("https://api.github.com/")
	require.ErrorIs(t, err, secrets.ErrNoToken)

	_, err = execute(t, "\n", "auth", "set")
	require.Error(t, err)
}

func TestConfigInitAndPath(t *testing.T) {
	home := isolate(t)
	want := filepath.Join(home, ".config", "ghbrowse", "config.toml")

	out, err := execute(t, "", "config", "path")
	require.NoError(t, err)
	require.Equal(t, want+"\n", out)

	_, err = execute(t, "", "config", "init")
	require.NoError(t, err)
	_, err = os.Stat(want)
	require.NoError(t, err)

	_, err = execute(t, "", "config", "init")
	require.ErrorContains(t, err, "--force")
	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestRootRejectsBadRepo(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "--repo", "nope")
	require.ErrorContains(t, err, "owner/name")

	_, err = execute(t, "", "--repo", "a/b", "--user", "c")
	require.Error(t, err)
}
