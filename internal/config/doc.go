// Package config loads the user's bob configuration file. A missing or
// unreadable file yields an all-default Config; a present but malformed file
// is an error. TOML and JSON are supported, selected by file extension, and
// $NAME placeholders in path and mirror settings are resolved against the
// environment at load time.
package config
