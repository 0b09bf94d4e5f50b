package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the top-level shape of a definition file.
//
// YAML:
//
//	scans:
//	  - name: reading
//	    description: sensor reading line
//	    template: "sensor {%s} temp={%f}C seq={%u}"
//	    types: [string, float64, uint32]
//
// TOML uses [[scans]] tables with the same keys.
type File struct {
	Scans []Definition `json:"scans" yaml:"scans" toml:"scans" jsonschema:"description=Named scan definitions"`
}

// Definition names a template together with the kinds its placeholders
// decode into.
type Definition struct {
	Name        string   `json:"name" yaml:"name" toml:"name" jsonschema:"minLength=1,description=Unique name used to look the definition up"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" jsonschema:"description=Free-form description"`
	Template    string   `json:"template" yaml:"template" toml:"template" jsonschema:"description=Format template with {} or {%d} {%u} {%s} {%f} placeholders"`
	Types       []string `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty" jsonschema:"description=Kind name per placeholder; defaults from the specifiers when omitted"`
}

// Load reads and parses a definition file. The format is chosen by the
// file extension.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes definition data in the given format.
// Unknown TOML keys are not an error; they are logged as warnings.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse yaml definitions: %w", err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("parse toml definitions: %w", err)
		}
		for _, key := range md.Undecoded() {
			slog.Warn("ignoring unknown definition key", slog.String("key", key.String()))
		}

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse json definitions: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &f, nil
}
