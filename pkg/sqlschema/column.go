package sqlschema

import (
	"maps"
	"slices"
)

// Column is the declarative description of one SQL column.
//
// Nullable is a tri-state: nil means unspecified and behaves like nullable,
// only an explicit false makes the column required. MaxLength nil means
// unbounded. DefaultValue nil means SQL NULL, i.e. no default.
type Column struct {
	Name         string   `yaml:"name,omitempty" json:"name,omitempty"`
	Type         string   `yaml:"type" json:"type"`
	Nullable     *bool    `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	MaxLength    *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	DefaultValue any      `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Values       []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// Required reports whether the column was explicitly declared NOT NULL.
func (c Column) Required() bool {
	return c.Nullable != nil && !*c.Nullable
}

// Schema maps column names to their descriptors. The map key is the column
// name; Column.Name is ignored.
type Schema map[string]Column

// Names returns the column names in sorted order, the order Compile uses.
func (s Schema) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Table returns the ordered form of the schema, columns sorted by name.
func (s Schema) Table(name string) Table {
	t := Table{Name: name, Columns: make([]Column, 0, len(s))}
	for _, n := range s.Names() {
		c := s[n]
		c.Name = n
		t.Columns = append(t.Columns, c)
	}
	return t
}

// Table is the ordered form of a schema, as produced by descriptor files and
// database introspection.
type Table struct {
	Name    string   `yaml:"table,omitempty" json:"table,omitempty"`
	Columns []Column `yaml:"columns" json:"columns"`
}

// Column returns the descriptor of the named column.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Schema returns the mapping form of the table. When names repeat, the last
// column wins.
func (t Table) Schema() Schema {
	s := make(Schema, len(t.Columns))
	for _, c := range t.Columns {
		s[c.Name] = c
	}
	return s
}

// Ptr returns a pointer to v; handy for the optional descriptor fields:
//
//	sqlschema.Column{Type: "varchar", MaxLength: sqlschema.Ptr(5), Nullable: sqlschema.Ptr(false)}
func Ptr[T any](v T) *T {
	return &v
}
