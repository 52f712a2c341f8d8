// Package input decodes the YAML documents read by the hseq commands into
// typed values ready to be pushed onto a sequence.
//
// A document is a YAML sequence. Plain scalars are typed by YAML resolution
// (!!int as int, !!float as float64, !!bool, !!str). A mapping item names its
// type explicitly:
//
//	- 1
//	- two
//	- {type: uint8, value: 3}
//	- {type: uuid, value: 6ba7b810-9dad-11d1-80b4-00c04fd430c8}
package input

import (
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInput is returned for documents that cannot be decoded.
var ErrInput = errors.New("invalid input")

// Decode reads a single YAML document from r and returns its items as typed
// values. An empty document yields no value.
func Decode(r io.Reader) ([]any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode yaml")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.Wrapf(ErrInput, "line %d: expected a sequence", root.Line)
	}

	values := make([]any, 0, len(root.Content))
	for _, n := range root.Content {
		v, err := item(n)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		values = append(values, v)
	}
	return values, nil
}

func item(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.MappingNode:
		var typed struct {
			Type  string `yaml:"type"`
			Value string `yaml:"value"`
		}
		if err := n.Decode(&typed); err != nil {
			return nil, err
		}
		return Parse(typed.Type, typed.Value)
	}
	return nil, errors.Wrap(ErrInput, "expected a scalar or a {type, value} mapping")
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!int":
		return Parse("int", n.Value)
	case "!!float":
		var f float64
		err := n.Decode(&f)
		return f, err
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		return b, err
	case "!!str":
		return n.Value, nil
	}
	return nil, errors.Wrapf(ErrInput, "unsupported scalar %s", n.ShortTag())
}

// Parse converts text into a value of the Go type called name. Besides the
// predeclared boolean, numeric and string types, "uuid" yields a uuid.UUID.
func Parse(name, text string) (any, error) {
	switch name {
	case "bool":
		return strconv.ParseBool(text)
	case "string":
		return text, nil
	case "uuid":
		return uuid.Parse(text)
	case "float32":
		f, err := strconv.ParseFloat(text, 32)
		return float32(f), err
	case "float64":
		return strconv.ParseFloat(text, 64)
	}

	if bits, ok := signed[name]; ok {
		i, err := strconv.ParseInt(text, 0, bits)
		if err != nil {
			return nil, err
		}
		switch name {
		case "int8":
			return int8(i), nil
		case "int16":
			return int16(i), nil
		case "int32":
			return int32(i), nil
		case "int64":
			return i, nil
		}
		return int(i), nil
	}

	if bits, ok := unsigned[name]; ok {
		u, err := strconv.ParseUint(text, 0, bits)
		if err != nil {
			return nil, err
		}
		switch name {
		case "uint8":
			return uint8(u), nil
		case "uint16":
			return uint16(u), nil
		case "uint32":
			return uint32(u), nil
		case "uint64":
			return u, nil
		}
		return uint(u), nil
	}

	return nil, errors.Wrapf(ErrInput, "unknown type %q", name)
}

var (
	signed   = map[string]int{"int": strconv.IntSize, "int8": 8, "int16": 16, "int32": 32, "int64": 64}
	unsigned = map[string]int{"uint": strconv.IntSize, "uint8": 8, "uint16": 16, "uint32": 32, "uint64": 64}
)
