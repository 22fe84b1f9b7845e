// Package config loads docshelf settings from a config file, DOCSHELF_* env vars and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	EnvPrefix           = "DOCSHELF"
	DefaultSnapshot     = "tree.json"
	DefaultRootPrefix   = "/documents"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	defaultConfigName   = "config"
	defaultConfigFolder = "docshelf"
)

// Config holds all docshelf settings
type Config struct {
	// Snapshot is the location of the tree snapshot: a file path,
	// an http(s) URL, an s3://bucket/key URI or a SQLite catalog.
	Snapshot string

	// RootPrefix is joined with a document path to build its viewer reference.
	RootPrefix string

	// ViewerBaseURL is prepended to relative viewer references before they
	// are handed to the system opener (e.g. http://localhost:8000).
	ViewerBaseURL string

	// DocRoot is the local directory the snapshot was scanned from, used to
	// open non-PDF files externally. Optional.
	DocRoot string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads configuration. cfgFile may be empty, in which case
// $XDG_CONFIG_HOME/docshelf/config.yaml is used when present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Join(configHome(), defaultConfigFolder))
		v.SetConfigType("yaml")
		v.SetConfigName(defaultConfigName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("snapshot", DefaultSnapshot)
	v.SetDefault("root_prefix", DefaultRootPrefix)
	v.SetDefault("viewer_base_url", "")
	v.SetDefault("doc_root", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("log_file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Snapshot:      expandHome(v.GetString("snapshot")),
		RootPrefix:    v.GetString("root_prefix"),
		ViewerBaseURL: v.GetString("viewer_base_url"),
		DocRoot:       expandHome(v.GetString("doc_root")),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
		LogFile:       expandHome(v.GetString("log_file")),
	}, nil
}

// DefaultLogFile returns the log file used by the TUI when none is configured
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, defaultConfigFolder, "docshelf.log")
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || (len(path) > 1 && path[0] == '~' && path[1] == '/') {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
