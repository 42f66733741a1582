package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// placeholderPattern matches $NAME where NAME is uppercase ASCII letters and
// underscores.
var placeholderPattern = regexp.MustCompile(`\$([A-Z_]+)`)

// LookupFunc resolves an environment variable by name.
type LookupFunc func(name string) (string, bool)

// OSLookup reads the process environment.
func OSLookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapLookup returns a LookupFunc backed by vars.
func MapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		value, ok := vars[name]
		return value, ok
	}
}

// Substitute resolves environment placeholders in the path and mirror
// settings of cfg. Only the first placeholder of each value is resolved;
// every verbatim occurrence of that token is replaced, later distinct
// placeholders are left as written. A variable missing from the environment
// is replaced by a message naming it. A nil cfg is a no-op.
func Substitute(cfg *Config, lookup LookupFunc) error {
	if cfg == nil {
		return nil
	}
	if lookup == nil {
		lookup = OSLookup
	}

	for _, field := range []*string{
		cfg.DownloadsLocation,
		cfg.GithubMirror,
		cfg.InstallationLocation,
		cfg.VersionSyncFileLocation,
	} {
		if err := substituteValue(field, lookup); err != nil {
			return err
		}
	}
	return nil
}

func substituteValue(value *string, lookup LookupFunc) error {
	if value == nil {
		return nil
	}

	match := placeholderPattern.FindStringSubmatch(*value)
	if match == nil {
		return nil
	}
	if len(match) < 2 || match[1] == "" {
		return fmt.Errorf("substitute %q: %w", *value, ErrSubstitution)
	}

	name := match[1]
	replacement, ok := lookup(name)
	if !ok {
		replacement = fmt.Sprintf("Couldn't find %s environment variable", name)
	}

	*value = strings.ReplaceAll(*value, "$"+name, replacement)
	return nil
}
