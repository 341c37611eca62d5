package storage

import (
	"strings"

	"lavadb/catalog"
)

// Row pairs a schema positionally with an equal-length cell list. Rows are
// value-like: operators never mutate a row they received, they build new
// rows referencing the same cells.
type Row struct {
	Schema catalog.Schema
	Cells  []Cell
}

func NewRow(schema catalog.Schema, cells []Cell) *Row {
	return &Row{
		Schema: schema,
		Cells:  cells,
	}
}

// Cell returns the cell of the named column, or false when the schema has no
// such column.
func (r *Row) Cell(name string) (Cell, bool) {
	i := r.Schema.IndexOf(name)
	if i < 0 {
		return nil, false
	}
	return r.Cells[i], true
}

// String renders the cell values in positional order, tab separated. Used
// for result display, not as a persisted format.
func (r *Row) String() string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.String()
	}
	return strings.Join(out, "\t")
}

// RowSet is an ordered row collection, used where an operator must
// materialize its whole input.
type RowSet []*Row
