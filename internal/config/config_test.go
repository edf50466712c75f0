package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/photos", "/data/photos"},
		{"single trailing slash", "/data/photos/", "/data/photos"},
		{"multiple trailing slashes", "/data/photos///", "/data/photos"},
		{"root path", "/", "/"},
		{"relative path", "Test", "Test"},
		{"relative with slash", "Test/", "Test"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, " .-", cfg.ReplacementCharacters)
	assert.Equal(t, []rune{' ', '-', '.'}, cfg.Replacements().Runes())
	assert.True(t, cfg.SortChildren)
	assert.Equal(t, DirNamesSplit, cfg.DirectoryNames)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty replacement set is allowed", func(c *Config) { c.ReplacementCharacters = "" }, ""},
		{"underscore rejected", func(c *Config) { c.ReplacementCharacters = " _" }, "must not contain '_'"},
		{"slash rejected", func(c *Config) { c.ReplacementCharacters = "/" }, "'/'"},
		{"bad color", func(c *Config) { c.ColorMode = "rainbow" }, "invalid color mode"},
		{"bad dir mode", func(c *Config) { c.DirectoryNames = "flat" }, "invalid directory name mode"},
		{"empty exclude", func(c *Config) { c.Exclude = []string{"node_modules", " "} }, "exclude pattern 2 is empty"},
		{"empty root", func(c *Config) { c.Root = "" }, "root path must not be empty"},
		{"check only skips root", func(c *Config) { c.Root = ""; c.CheckOnly = true }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMode = "x"
	cfg.DirectoryNames = "y"
	cfg.ReplacementCharacters = "_"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color mode")
	assert.Contains(t, err.Error(), "directory name mode")
	assert.Contains(t, err.Error(), "'_'")
}

func TestExpandPath(t *testing.T) {
	got, err := ExpandPath("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandPath("~/logs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs"), got)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "namesweep.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"replacement_characters": [" ", "-"],
		"root": "Test/",
		"log_file": "/tmp/namesweep.log",
		"color": "NEVER",
		"verbose": true,
		"sort_children": false,
		"directory_names": "whole",
		"exclude": ["node_modules", "*.git"]
	}`)

	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, path))

	assert.Equal(t, " -", cfg.ReplacementCharacters)
	assert.Equal(t, "Test", cfg.Root)
	assert.Equal(t, "/tmp/namesweep.log", cfg.LogFile)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.SortChildren)
	assert.Equal(t, DirNamesWhole, cfg.DirectoryNames)
	assert.Equal(t, []string{"node_modules", "*.git"}, cfg.Exclude)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadFile_StringReplacementCharacters(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, writeConfig(t, `{"replacement_characters": " ()"}`)))
	assert.Equal(t, " ()", cfg.ReplacementCharacters)
}

func TestLoadFile_MissingKeysKeepDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, writeConfig(t, `{"verbose": true}`)))

	want := DefaultConfig()
	want.Verbose = true
	want.ConfigFile = cfg.ConfigFile
	assert.Equal(t, want, cfg)
}

func TestLoadFile_ExplicitEmptyReplacementSet(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, writeConfig(t, `{"replacement_characters": []}`)))
	assert.Equal(t, "", cfg.ReplacementCharacters)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"verbose": `},
		{"unknown key", `{"replace": " "}`},
		{"wrong type", `{"verbose": "maybe"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			assert.Error(t, LoadFile(&cfg, writeConfig(t, tt.content)))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, LoadFile(&cfg, filepath.Join(t.TempDir(), "nope.json")))
	})
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	var out bytes.Buffer
	err := ParseFlags(&cfg, []string{
		"-r", " ", "--no-color", "-v", "--no-sort",
		"--directory-names", "WHOLE", "-x", "node_modules", "-x", "*.bak",
		"-l", "run.log", "photos/",
	}, "1.0.0", &out)
	require.NoError(t, err)

	assert.Equal(t, "photos", cfg.Root)
	assert.Equal(t, " ", cfg.ReplacementCharacters)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.SortChildren)
	assert.Equal(t, DirNamesWhole, cfg.DirectoryNames)
	assert.Equal(t, []string{"node_modules", "*.bak"}, cfg.Exclude)
	assert.Equal(t, "run.log", cfg.LogFile)
	assert.Empty(t, out.String())
}

func TestParseFlags_NoArgsKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, nil, "1.0.0", &bytes.Buffer{}))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseFlags_FlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, `{"replacement_characters": "-", "color": "always", "exclude": ["a"], "root": "from-file"}`)

	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"--config", path, "--color", "never", "-x", "b"}, "1.0.0", &bytes.Buffer{}))

	assert.Equal(t, "-", cfg.ReplacementCharacters, "file value kept when flag absent")
	assert.Equal(t, ColorNever, cfg.ColorMode, "flag wins over file")
	assert.Equal(t, "from-file", cfg.Root)
	assert.Equal(t, []string{"a", "b"}, cfg.Exclude)
}

func TestParseFlags_HelpAndVersion(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"--version"}, "1.2.3", &out)
	assert.ErrorIs(t, err, ErrUsageShown)
	assert.Contains(t, out.String(), "namesweep v1.2.3")

	out.Reset()
	err = ParseFlags(&cfg, []string{"--help"}, "1.2.3", &out)
	assert.ErrorIs(t, err, ErrUsageShown)
	assert.Contains(t, out.String(), "--replace")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"--bogus"}, "1.0.0", &bytes.Buffer{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsageShown)
}
