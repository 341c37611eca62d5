package executor

import (
	"github.com/cockroachdb/errors"

	"lavadb/storage"
)

// Operator is one stage of a pull-based execution tree. A caller opens the
// root once, pulls rows with Next until exhaustion, then closes once; Open
// and Close propagate through the tree.
type Operator interface {
	Open() error

	// Next returns the next produced row, or (nil, nil) once the operator
	// is exhausted. Calling Next again after exhaustion keeps returning the
	// exhausted signal.
	Next() (*storage.Row, error)

	// Close releases resources and propagates downward. It is safe to call
	// on a never-opened operator and calling it twice is a no-op.
	Close() error
}

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrProtocol       = errors.New("operator lifecycle violation")
)

// ResultSet holds a fully drained query result for display.
type ResultSet struct {
	Header []string
	Rows   []*storage.Row
}

// Collect runs a tree to completion: open, drain, close. Close runs on
// every exit path so the scan's source handle is always released.
func Collect(op Operator) (*ResultSet, error) {
	if err := op.Open(); err != nil {
		op.Close()
		return nil, err
	}
	defer op.Close()

	rs := &ResultSet{}
	for {
		row, err := op.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return rs, nil
		}
		if rs.Header == nil {
			rs.Header = row.Schema.Names()
		}
		rs.Rows = append(rs.Rows, row)
	}
}
