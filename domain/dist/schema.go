package dist

import (
	"strings"
)

// EncodedMarker flags a column whose cells carry an encoded distribution
// representation rather than plain numbers. A column name containing the
// marker is treated as encoded.
const EncodedMarker = "Ux"

// Kind distinguishes how a column's cells are interpreted.
type Kind int

const (
	// KindNumeric columns hold plain numbers, one sample per row.
	KindNumeric Kind = iota
	// KindEncoded columns hold an encoded distribution representation
	// that is carried through verbatim.
	KindEncoded
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindEncoded:
		return "encoded"
	}
	return "unknown"
}

// Column describes one expected input column.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered list of columns an input must carry. Order is
// significant: the input header must match position by position.
type Schema []Column

// NewSchema builds a schema from column names, classifying each name by
// the encoded-value marker.
func NewSchema(names ...string) Schema {
	schema := make(Schema, len(names))
	for i, name := range names {
		kind := KindNumeric
		if strings.Contains(name, EncodedMarker) {
			kind = KindEncoded
		}
		schema[i] = Column{Name: name, Kind: kind}
	}
	return schema
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s)
}

// IsEmpty reports whether the schema has no columns. Ingesting against an
// empty schema succeeds without reading any input.
func (s Schema) IsEmpty() bool {
	return len(s) == 0
}
