package executor

import (
	"github.com/cockroachdb/errors"

	"lavadb/storage"
)

// Filter passes through only rows whose named column equals the literal.
// Conjunctions are expressed by stacking Filters.
type Filter struct {
	child  Operator
	column string
	value  storage.Cell
	opened bool
}

func NewFilter(child Operator, column string, value storage.Cell) *Filter {
	return &Filter{
		child:  child,
		column: column,
		value:  value,
	}
}

func (f *Filter) Open() error {
	if f.opened {
		return errors.Wrapf(ErrProtocol, "filter on %s opened twice", f.column)
	}
	if err := f.child.Open(); err != nil {
		return err
	}
	f.opened = true
	return nil
}

func (f *Filter) Next() (*storage.Row, error) {
	if !f.opened {
		return nil, errors.Wrapf(ErrProtocol, "filter on %s not open", f.column)
	}

	for {
		row, err := f.child.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, nil
		}

		cell, ok := row.Cell(f.column)
		if !ok {
			return nil, errors.Wrapf(ErrColumnNotFound, "filter references %q", f.column)
		}
		if cell.Equal(f.value) {
			return row, nil
		}
	}
}

func (f *Filter) Close() error {
	f.opened = false
	return f.child.Close()
}
