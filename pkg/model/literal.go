package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Literal holds the verbatim text of a scalar manifest value. Numbers keep
// their source spelling (`0x10` stays `0x10` when quoted, `16` stays `16`).
type Literal string

func (l Literal) String() string {
	return string(l)
}

// UnmarshalJSON accepts strings, numbers and booleans.
func (l *Literal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("literal: empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "literal")
		}
		*l = Literal(s)
	case '{', '[':
		return errors.Newf("literal: expected a scalar, got %s", kindOfJSON(data[0]))
	default:
		*l = Literal(data)
	}
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (l *Literal) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Newf("literal: expected a scalar at line %d", n.Line)
	}
	*l = Literal(n.Value)
	return nil
}

// UnmarshalTOML accepts the scalar types produced by the TOML decoder.
func (l *Literal) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		*l = Literal(x)
	case int64:
		*l = Literal(strconv.FormatInt(x, 10))
	case float64:
		*l = Literal(strconv.FormatFloat(x, 'g', -1, 64))
	case bool:
		*l = Literal(strconv.FormatBool(x))
	default:
		return errors.Newf("literal: expected a scalar, got %T", v)
	}
	return nil
}

func kindOfJSON(c byte) string {
	if c == '{' {
		return "object"
	}
	return "array"
}
