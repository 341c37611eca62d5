package catalog

import "github.com/cockroachdb/errors"

// DataType enumerates the column types a table header may declare.
type DataType uint8

const (
	Unknown DataType = iota
	Integer
	FixedChar
	VariableChar
	DateTime
)

func (t DataType) String() string {
	switch t {
	case Integer:
		return "INT"
	case FixedChar:
		return "CHAR"
	case VariableChar:
		return "VARCHAR"
	case DateTime:
		return "DATETIME"
	default:
		return "UNKNOWN"
	}
}

var ErrSchema = errors.New("invalid schema")

// ParseDataType maps a header type tag to its DataType. Tags are
// case-sensitive and must match exactly.
func ParseDataType(tag string) (DataType, error) {
	switch tag {
	case "int":
		return Integer, nil
	case "char":
		return FixedChar, nil
	case "varchar":
		return VariableChar, nil
	case "datetime":
		return DateTime, nil
	default:
		return Unknown, errors.Wrapf(ErrSchema, "unknown type tag: %q", tag)
	}
}

type SortOrder uint8

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}
