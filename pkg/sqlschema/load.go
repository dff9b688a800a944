package sqlschema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a descriptor file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf detects the descriptor format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads a YAML or JSON descriptor file, see Parse. Without a table
// name in the document, the file name without extension is used.
func LoadFile(path string) (Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Table{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, errors.Join(ErrFailedToReadFile, err)
	}

	t, err := Parse(data, format)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// Parse decodes column descriptors. Two document shapes are accepted:
//
//	table: users            # optional
//	columns:
//	  - name: id
//	    type: int(11) unsigned
//	    nullable: false
//
// or a mapping from column name to descriptor, whose order is kept:
//
//	id: {type: int, nullable: false}
//	email: {type: varchar, maxLength: 255}
//
// JSON documents use the same shapes.
func Parse(data []byte, format Format) (Table, error) {
	if format != FormatYAML && format != FormatJSON {
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Table{}, errors.Join(ErrFailedToParseDescriptor, err)
	}
	if len(doc.Content) == 0 {
		return Table{}, fmt.Errorf("%w: empty document", ErrFailedToParseDescriptor)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Table{}, fmt.Errorf("%w: expected a mapping at line %d", ErrFailedToParseDescriptor, root.Line)
	}

	if hasKey(root, "columns") {
		var t Table
		if err := root.Decode(&t); err != nil {
			return Table{}, errors.Join(ErrFailedToParseDescriptor, err)
		}
		return t, nil
	}

	t := Table{Columns: make([]Column, 0, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, node := root.Content[i], root.Content[i+1]

		var c Column
		if err := node.Decode(&c); err != nil {
			return Table{}, errors.Join(ErrFailedToParseDescriptor, fmt.Errorf("column %q: %w", name.Value, err))
		}
		c.Name = name.Value
		t.Columns = append(t.Columns, c)
	}
	return t, nil
}

// Marshal encodes the table as a YAML descriptor document.
func Marshal(t Table) ([]byte, error) {
	return yaml.Marshal(t)
}

func hasKey(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}
