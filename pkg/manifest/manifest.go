// Package manifest describes a command registry in a TOML or JSON file so
// dispatch can be inspected without writing Go code.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/cmdmap/cmdmap/pkg/cmdmap"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://cmdmap.dev/schema/manifest.json"

// Format is a manifest encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither TOML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported manifest format")

	// ErrInvalidManifest is returned when a manifest fails decoding or validation.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Manifest is the file form of a command registry.
type Manifest struct {
	// Usage is shown when the registry is empty.
	Usage string `toml:"usage" json:"usage,omitempty"`

	// Commands are registered in file order; the first is the default.
	Commands []CommandSpec `toml:"commands" json:"commands"`
}

// CommandSpec declares one command and its signature.
type CommandSpec struct {
	Name     string      `toml:"name" json:"name"`
	Doc      string      `toml:"doc" json:"doc,omitempty"`
	Required []string    `toml:"required" json:"required,omitempty"`
	Variadic string      `toml:"variadic" json:"variadic,omitempty"`
	Named    []ParamSpec `toml:"named" json:"named,omitempty"`
}

// ParamSpec is a named parameter with its default.
type ParamSpec struct {
	Name    string `toml:"name" json:"name"`
	Default string `toml:"default" json:"default,omitempty"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes a manifest. TOML keys the manifest does not define are
// rejected; JSON documents are validated against the embedded schema.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidManifest, strings.Join(keys, ", "))
		}
	case FormatJSON:
		if err := validateJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &m, nil
}

func validateJSON(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add manifest schema: %w", err)
	}
	return c.Compile(schemaURL)
}

// Command builds a registrable command with s's name, doc and signature
// that runs fn.
func (s CommandSpec) Command(fn cmdmap.Func) *cmdmap.Command {
	named := make([]cmdmap.NamedParam, len(s.Named))
	for i, p := range s.Named {
		named[i] = cmdmap.NamedParam{Name: p.Name, Default: p.Default}
	}
	return &cmdmap.Command{
		Name: s.Name,
		Doc:  s.Doc,
		Signature: cmdmap.Signature{
			Required: append([]string(nil), s.Required...),
			Variadic: s.Variadic,
			Named:    named,
		},
		Run: fn,
	}
}

// Mapper builds a cmdmap.Mapper from the manifest. Every command runs
// Echo. The manifest usage overrides config.Usage when set.
func (m *Manifest) Mapper(config *cmdmap.Config) (*cmdmap.Mapper, error) {
	if config == nil {
		config = cmdmap.DefaultConfig()
	}
	cfg := *config
	if m.Usage != "" {
		cfg.Usage = m.Usage
	}

	mapper := cmdmap.New(&cfg)
	for _, spec := range m.Commands {
		if _, err := mapper.Register(spec.Command(Echo)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
	}
	return mapper, nil
}
