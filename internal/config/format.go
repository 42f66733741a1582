package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format identifies the serialization of a config file.
type Format int

const (
	// FormatJSON is used for every extension that is not explicitly mapped,
	// including files without an extension.
	FormatJSON Format = iota
	FormatTOML
)

// configKeys are the document keys decoded into Config. Matching is exact;
// any other key, including a differently cased one, is ignored.
var configKeys = map[string]struct{}{
	"enable_nightly_info":        {},
	"enable_release_build":       {},
	"downloads_location":         {},
	"installation_location":      {},
	"version_sync_file_location": {},
	"github_mirror":              {},
	"rollback_limit":             {},
	"enable_manpage_mirror":      {},
}

// FormatFor selects the decoder for path from its extension. The match is
// case-sensitive: "config.TOML" is decoded as JSON.
func FormatFor(path string) Format {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "TOML"
	default:
		return "JSON"
	}
}

// decode unmarshals data into cfg. The document must be a table or object;
// keys outside configKeys are dropped before the typed decode so the
// decoders' case-insensitive field matching never applies.
func (f Format) decode(data []byte, cfg *Config) error {
	switch f {
	case FormatTOML:
		return decodeTOML(data, cfg)
	default:
		return decodeJSON(data, cfg)
	}
}

func decodeTOML(data []byte, cfg *Config) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return err
	}

	known := make(map[string]any, len(doc))
	for key, value := range doc {
		if _, ok := configKeys[key]; ok {
			known[key] = value
		}
	}

	filtered, err := toml.Marshal(known)
	if err != nil {
		return err
	}
	return toml.Unmarshal(filtered, cfg)
}

func decodeJSON(data []byte, cfg *Config) error {
	doc, err := readJSONObject(data)
	if err != nil {
		return err
	}

	known := make(map[string]json.RawMessage, len(doc))
	for key, value := range doc {
		if _, ok := configKeys[key]; ok {
			known[key] = value
		}
	}

	filtered, err := json.Marshal(known)
	if err != nil {
		return err
	}
	return json.Unmarshal(filtered, cfg)
}

// readJSONObject splits a top-level JSON object into its members. Anything
// other than exactly one object, or an object repeating a key, is an error.
func readJSONObject(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("expected JSON object, got empty input")
	}
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	doc := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		if _, dup := doc[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		doc[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}

	return doc, nil
}
