package application

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/bob-config/internal/config"
)

// Output formats accepted by Render and the show command.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Formats lists the output formats accepted by Render.
func Formats() []string {
	return []string{FormatYAML, FormatJSON, FormatTOML}
}

// Render serializes cfg in the named output format.
func Render(cfg config.Config, format string) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatYAML:
		out, err = yaml.Marshal(cfg)
	case FormatJSON:
		out, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatTOML:
		out, err = toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	return out, nil
}
