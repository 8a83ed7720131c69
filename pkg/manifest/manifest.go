package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/luastubgen/pkg/model"
)

// Format is the encoding of a manifest file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "json"
	}
}

// FormatOf picks the decoder for path from its extension. Anything that is
// not YAML or TOML, including the usual .pplugin, is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the manifest at path.
func Load(path string) (*model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	m, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "decode manifest %s", path)
	}
	return m, nil
}

// Decode parses data in the given format. Values of the wrong shape (a
// string where a list is expected, an object as an enum value) are errors.
func Decode(data []byte, format Format) (*model.Manifest, error) {
	var m model.Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, "unmarshal yaml")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
			return nil, errors.Wrap(err, "unmarshal toml")
		}
	default:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, "unmarshal json")
		}
	}
	return &m, nil
}

// BaseName strips the directory and up to three trailing extensions from
// path: "plugins/foo.pplugin" is "foo", "a.b.c.d.e" is "a.b".
func BaseName(path string) string {
	name := filepath.Base(path)
	for i := 0; i < 3; i++ {
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	return name
}

// ResolveName returns the manifest's own name when it declares one and the
// file-derived name otherwise.
func ResolveName(path string, m *model.Manifest) string {
	if m != nil && m.Name != "" {
		return m.Name
	}
	return BaseName(path)
}
