package config

import (
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jmgilman/gitc/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func homeAt(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(env(nil), homeAt("/home/alice"), "/work")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/alice", ".cache"), cfg.CacheHome)
	assert.Equal(t, filepath.Join("/home/alice", ".cache", "gitc"), cfg.CacheRoot)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "git", cfg.GitBinary)
	assert.Equal(t, "/work", cfg.WorkDir)
}

func TestLoad_Environment(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		EnvCacheHome: "/var/cache",
		EnvLogLevel:  "DEBUG",
		EnvGit:       "/opt/git/bin/git",
	}), homeAt("/home/alice"), "")
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/gitc", cfg.CacheRoot)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/opt/git/bin/git", cfg.GitBinary)
}

func TestLoad_NoHome(t *testing.T) {
	_, err := Load(env(nil), func() (string, error) {
		return "", stderrors.New("$HOME is not defined")
	}, "")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestLoad_HomeIgnoredWhenCacheHomeSet(t *testing.T) {
	_, err := Load(env(map[string]string{EnvCacheHome: "/var/cache"}), func() (string, error) {
		return "", stderrors.New("unused")
	}, "")
	require.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" Info ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}
