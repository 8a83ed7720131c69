package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/luastubgen/pkg/model"
)

const jsonManifest = `{
  "name": "demo",
  "exportedMethods": [
    {
      "name": "Add",
      "description": "Adds.",
      "paramTypes": [
        { "name": "a", "type": "int32" },
        { "name": "cb", "type": "function", "prototype": { "name": "Done", "retType": { "type": "void" } } }
      ],
      "retType": {
        "type": "int32",
        "enum": { "name": "Result", "values": [ { "name": "Ok", "value": 0 }, { "name": "Fail" } ] }
      }
    }
  ]
}`

const yamlManifest = `
name: demo
exportedMethods:
  - name: Add
    description: Adds.
    paramTypes:
      - name: a
        type: int32
      - name: cb
        type: function
        prototype:
          name: Done
          retType:
            type: void
    retType:
      type: int32
      enum:
        name: Result
        values:
          - name: Ok
            value: 0
          - name: Fail
`

const tomlManifest = `
name = "demo"

[[exportedMethods]]
name = "Add"
description = "Adds."

  [[exportedMethods.paramTypes]]
  name = "a"
  type = "int32"

  [[exportedMethods.paramTypes]]
  name = "cb"
  type = "function"

    [exportedMethods.paramTypes.prototype]
    name = "Done"

      [exportedMethods.paramTypes.prototype.retType]
      type = "void"

  [exportedMethods.retType]
  type = "int32"

    [exportedMethods.retType.enum]
    name = "Result"

      [[exportedMethods.retType.enum.values]]
      name = "Ok"
      value = 0

      [[exportedMethods.retType.enum.values]]
      name = "Fail"
`

func requireDemo(t *testing.T, m *model.Manifest) {
	t.Helper()
	require.Equal(t, "demo", m.Name)
	require.Len(t, m.Methods, 1)
	add := m.Methods[0]
	require.Equal(t, "Add", add.Name)
	require.Equal(t, "Adds.", add.Description)
	require.Len(t, add.ParamTypes, 2)
	require.Equal(t, "a", add.ParamTypes[0].Name)
	require.Nil(t, add.ParamTypes[0].Prototype)
	cb := add.ParamTypes[1]
	require.Equal(t, "function", cb.Type)
	require.NotNil(t, cb.Prototype)
	require.Equal(t, "Done", cb.Prototype.Name)
	require.NotNil(t, cb.Prototype.RetType)
	require.Equal(t, "void", cb.Prototype.RetType.Type)
	require.NotNil(t, add.RetType)
	require.NotNil(t, add.RetType.Enum)
	values := add.RetType.Enum.Values
	require.Len(t, values, 2)
	require.NotNil(t, values[0].Value)
	require.Equal(t, "0", values[0].Value.String())
	require.Nil(t, values[1].Value)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "json", data: jsonManifest, format: FormatJSON},
		{name: "yaml", data: yamlManifest, format: FormatYAML},
		{name: "toml", data: tomlManifest, format: FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)
			requireDemo(t, m)
		})
	}
}

func TestDecodeWrongShape(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "json methods not a list", data: `{"exportedMethods": "nope"}`, format: FormatJSON},
		{name: "json params not a list", data: `{"exportedMethods": [{"paramTypes": {"name": "x"}}]}`, format: FormatJSON},
		{name: "json value object", data: `{"exportedMethods": [{"retType": {"enum": {"values": [{"value": {}}]}}}]}`, format: FormatJSON},
		{name: "json malformed", data: `{"exportedMethods": [`, format: FormatJSON},
		{name: "yaml methods not a list", data: "exportedMethods: nope\n", format: FormatYAML},
		{name: "toml malformed", data: "name = \n", format: FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"demo.pplugin": jsonManifest,
		"demo.yaml":    yamlManifest,
		"demo.toml":    tomlManifest,
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		m, err := Load(path)
		require.NoErrorf(t, err, "Load(%s)", name)
		requireDemo(t, m)
	}

	_, err := Load(filepath.Join(dir, "missing.pplugin"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	require.Equal(t, FormatJSON, FormatOf("a.pplugin"))
	require.Equal(t, FormatJSON, FormatOf("a.json"))
	require.Equal(t, FormatYAML, FormatOf("a.YML"))
	require.Equal(t, FormatYAML, FormatOf("dir/a.pplugin.yaml"))
	require.Equal(t, FormatTOML, FormatOf("a.toml"))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "foo.pplugin", want: "foo"},
		{in: "plugins/foo.pplugin", want: "foo"},
		{in: "foo", want: "foo"},
		{in: "foo.pplugin.yaml", want: "foo"},
		{in: "a.b.c.d.e", want: "a.b"},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, BaseName(tc.in), "BaseName(%q)", tc.in)
	}
}

func TestResolveName(t *testing.T) {
	require.Equal(t, "foo", ResolveName("x/foo.pplugin", &model.Manifest{}))
	require.Equal(t, "Named", ResolveName("x/foo.pplugin", &model.Manifest{Name: "Named"}))
	require.Equal(t, "foo", ResolveName("x/foo.pplugin", nil))
}
