package storage

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"lavadb/catalog"
)

var ErrConversion = errors.New("conversion failed")

// ConvertField converts one raw record field to a Cell per the column's
// declared type. Integer fields must parse as signed integers; char, varchar
// and datetime fields are taken verbatim.
func ConvertField(raw string, md *catalog.ColumnMetadata) (Cell, error) {
	switch md.Type {
	case catalog.Integer:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrConversion, "column %s: %q is not an integer", md.Name, raw)
		}
		return IntCell(v), nil
	case catalog.FixedChar, catalog.VariableChar, catalog.DateTime:
		return TextCell(raw), nil
	default:
		return nil, errors.Wrapf(ErrConversion, "column %s has unknown type", md.Name)
	}
}
