package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/navaug/pkg/links"
)

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"check", "--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestCheckValid(t *testing.T) {
	p := filepath.Join(t.TempDir(), links.FileName)
	require.NoError(t, os.WriteFile(p, []byte("Shop,shop-link,https://example.com/shop\n"), 0o600))

	out, err := runCheck(t, "--links", p)
	require.NoError(t, err)
	assert.Contains(t, out, "1: ok shop-link -> https://example.com/shop")
	assert.Contains(t, out, "1 rows, 1 accepted, 0 rejected")
}

func TestCheckRejected(t *testing.T) {
	p := filepath.Join(t.TempDir(), links.FileName)
	require.NoError(t, os.WriteFile(p, []byte("Shop,shop,http://a.b\nHelp,help_1,http://help.example.org\n"), 0o600))

	out, err := runCheck(t, "--links", p)
	require.Error(t, err)
	assert.Contains(t, out, `2: rejected (id "help_1"): Help,help_1,http://help.example.org`)
	assert.Contains(t, out, "2 rows, 1 accepted, 1 rejected")
}

func TestCheckInstallDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	out, err := runCheck(t, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "not found, no custom links")
}

func TestCheckTranslations(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, links.FileName)
	require.NoError(t, os.WriteFile(p, []byte("Shop,shop,http://a.b\n"), 0o600))

	_, err := runCheck(t, "--links", p, "--translations", filepath.Join(tmp, "missing.yaml"))
	assert.Error(t, err)
}

func TestMakeMenu(t *testing.T) {
	m := makeMenu()
	assert.NotNil(t, m.Find("home"))
	assert.NotNil(t, m.Find("catalog-sale"))
}
