package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ColumnMetadata describes one column of a table. It is created once when a
// scan reads its header and shared by reference across every row produced
// from that source; it is never mutated afterwards.
type ColumnMetadata struct {
	Name     string
	Type     DataType
	Size     int
	Nullable bool
}

func (c *ColumnMetadata) String() string {
	null := "NOT NULL"
	if c.Nullable {
		null = "NULL"
	}
	return fmt.Sprintf("%s %s(%d) %s", c.Name, c.Type, c.Size, null)
}

// Schema is the ordered column list shared by all rows from one source.
type Schema []*ColumnMetadata

// IndexOf returns the position of the named column, or -1 when absent.
// Column names are unique within a schema, so the lookup is unambiguous.
func (s Schema) IndexOf(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// ParseSchema parses a header line of whitespace-separated name:typeTag:size
// triples into a Schema.
func ParseSchema(header string) (Schema, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrSchema, "empty header")
	}

	schema := make(Schema, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, ":")
		if len(parts) != 3 {
			return nil, errors.Wrapf(ErrSchema, "malformed column definition: %q", field)
		}

		dataType, err := ParseDataType(parts[1])
		if err != nil {
			return nil, err
		}

		size, err := strconv.Atoi(parts[2])
		if err != nil || size <= 0 {
			return nil, errors.Wrapf(ErrSchema, "invalid size in column definition: %q", field)
		}

		if schema.IndexOf(parts[0]) >= 0 {
			return nil, errors.Wrapf(ErrSchema, "duplicate column name: %q", parts[0])
		}

		schema = append(schema, &ColumnMetadata{
			Name: parts[0],
			Type: dataType,
			Size: size,
		})
	}

	return schema, nil
}
