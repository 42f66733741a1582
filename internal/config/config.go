package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Config holds the user's settings. Every field is optional; nil means the
// consumer applies its built-in default.
type Config struct {
	EnableNightlyInfo       *bool   `toml:"enable_nightly_info,omitempty" json:"enable_nightly_info,omitempty" yaml:"enable_nightly_info,omitempty"`
	EnableReleaseBuild      *bool   `toml:"enable_release_build,omitempty" json:"enable_release_build,omitempty" yaml:"enable_release_build,omitempty"`
	DownloadsLocation       *string `toml:"downloads_location,omitempty" json:"downloads_location,omitempty" yaml:"downloads_location,omitempty"`
	InstallationLocation    *string `toml:"installation_location,omitempty" json:"installation_location,omitempty" yaml:"installation_location,omitempty"`
	VersionSyncFileLocation *string `toml:"version_sync_file_location,omitempty" json:"version_sync_file_location,omitempty" yaml:"version_sync_file_location,omitempty"`
	GithubMirror            *string `toml:"github_mirror,omitempty" json:"github_mirror,omitempty" yaml:"github_mirror,omitempty"`
	RollbackLimit           *uint8  `toml:"rollback_limit,omitempty" json:"rollback_limit,omitempty" yaml:"rollback_limit,omitempty"`
	EnableManpageMirror     *bool   `toml:"enable_manpage_mirror,omitempty" json:"enable_manpage_mirror,omitempty" yaml:"enable_manpage_mirror,omitempty"`
}

// Loader reads config files. The zero value is not usable; use NewLoader.
type Loader struct {
	lookup LookupFunc
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLookup sets the environment used for placeholder substitution.
func WithLookup(lookup LookupFunc) Option {
	return func(l *Loader) {
		if lookup != nil {
			l.lookup = lookup
		}
	}
}

// WithLogger sets the logger used to report how the file was handled.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader reading the process environment with logging
// disabled unless overridden by opts.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		lookup: OSLookup,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads the config file at path using the process environment.
func Load(path string) (Config, error) {
	return NewLoader().Load(path)
}

// Load reads, decodes and substitutes the config file at path.
// A file that cannot be read yields an all-default Config and no error.
// A file that cannot be decoded yields an error matching ErrMalformed.
func (l *Loader) Load(path string) (Config, error) {
	data, found := l.readFile(path)
	if !found {
		return Config{}, nil
	}

	format := FormatFor(path)

	var cfg Config
	if err := format.decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s config %s: %w: %w", format, path, ErrMalformed, err)
	}

	if err := Substitute(&cfg, l.lookup); err != nil {
		return Config{}, fmt.Errorf("resolve environment in %s: %w", path, err)
	}

	l.logger.Debug("config loaded",
		zap.String("path", path),
		zap.Stringer("format", format),
	)

	return cfg, nil
}

// readFile returns the file contents and whether they are usable. Contents
// that are not valid UTF-8 are treated like an unreadable file.
func (l *Loader) readFile(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Debug("config file unavailable, using defaults",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false
	}

	if !utf8.Valid(data) {
		l.logger.Debug("config file is not valid UTF-8, using defaults",
			zap.String("path", path),
		)
		return nil, false
	}

	return data, true
}
