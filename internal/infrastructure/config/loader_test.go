package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tftio/prompter/internal/domain"
)

const sampleConfig = `
library = "lib"
post_prompt = "bye"

[general]
depends_on = ["general/core.md"]

[python]
depends_on = ["python/style.md", "general"]

[python.api]
depends_on = ["python/api.md", "python"]

[notes]
title = "not a profile"
`

func TestParseCollectsDottedProfiles(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "lib", cfg.LibraryDir)
	assert.False(t, cfg.HasPre)
	assert.True(t, cfg.HasPost)
	assert.Equal(t, "bye", cfg.PostPrompt)

	require.Len(t, cfg.Profiles, 3)
	api, ok := cfg.Lookup("python.api")
	require.True(t, ok)
	assert.Equal(t, []string{"python/api.md", "python"}, api.DependsOn)
	_, ok = cfg.Lookup("notes")
	assert.False(t, ok, "tables without depends_on are not profiles")
}

func TestParseRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid toml", "[broken"},
		{"depends_on not array", "[a]\ndepends_on = \"x.md\""},
		{"depends_on entry not string", "[a]\ndepends_on = [1]"},
		{"pre_prompt not string", "pre_prompt = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadResolvesLibraryRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, filepath.Join(dir, "lib"), cfg.LibraryDir)
}

func TestLoadFallsBackToLibraryEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[a]\ndepends_on = []\n"), 0o644))
	t.Setenv(domain.EnvLibrary, "/srv/library")

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/srv/library", cfg.LibraryDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "none.toml")).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPathPrefersOverrideThenEnv(t *testing.T) {
	t.Setenv(domain.EnvConfig, "/etc/prompter.toml")
	assert.Equal(t, "/tmp/x.toml", NewFileLoader("/tmp/x.toml").Path())
	assert.Equal(t, "/etc/prompter.toml", NewFileLoader("").Path())

	t.Setenv(domain.EnvConfig, "")
	assert.Equal(t, DefaultConfigPath(), NewFileLoader("").Path())
}
