// Package config computes gitc's process configuration once at start-up.
//
// Nothing below the command layer reads the environment; the Config value
// is passed explicitly to the cache and clone packages.
package config

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/git"
)

// Environment variables read by Load.
const (
	EnvCacheHome = "XDG_CACHE_HOME"
	EnvLogLevel  = "GITC_LOG_LEVEL"
	EnvGit       = "GITC_GIT"
)

// CacheDirName is the directory below the cache home that holds mirrors.
const CacheDirName = "gitc"

// Config is the resolved process configuration.
type Config struct {
	// CacheHome is $XDG_CACHE_HOME, or ~/.cache when unset.
	CacheHome string

	// CacheRoot is CacheHome/gitc.
	CacheRoot string

	// LogLevel is the minimum level of gitc's own log output.
	LogLevel slog.Level

	// GitBinary is the git executable to run.
	GitBinary string

	// WorkDir is the directory clones are created in.
	WorkDir string
}

// Load builds a Config from getenv (usually os.Getenv), home (usually
// os.UserHomeDir) and the working directory.
func Load(getenv func(string) string, home func() (string, error), workDir string) (*Config, error) {
	cacheHome := getenv(EnvCacheHome)
	if cacheHome == "" {
		dir, err := home()
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig,
				"cannot determine cache directory: "+EnvCacheHome+" is unset and the home directory is unknown")
		}
		cacheHome = filepath.Join(dir, ".cache")
	}

	level, err := ParseLevel(getenv(EnvLogLevel))
	if err != nil {
		return nil, err
	}

	gitBinary := getenv(EnvGit)
	if gitBinary == "" {
		gitBinary = git.DefaultBinary
	}

	return &Config{
		CacheHome: cacheHome,
		CacheRoot: filepath.Join(cacheHome, CacheDirName),
		LogLevel:  level,
		GitBinary: gitBinary,
		WorkDir:   workDir,
	}, nil
}

// ParseLevel parses a log level name. An empty name means warn.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Newf(errors.CodeInvalidConfig, "invalid %s %q: want debug, info, warn or error", EnvLogLevel, name)
}
