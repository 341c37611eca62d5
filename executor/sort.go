package executor

import (
	"github.com/cockroachdb/errors"

	"lavadb/catalog"
	"lavadb/storage"
)

// SortKey names one sort column and its direction. Keys are evaluated in the
// order supplied; later keys break ties of earlier ones.
type SortKey struct {
	Column string
	Order  catalog.SortOrder
}

// Sort produces the upstream rows ordered by its keys. Unlike the other
// operators it is blocking: Open drains the whole upstream into a buffer and
// sorts it, Next emits buffered rows by index.
type Sort struct {
	child Operator
	keys  []SortKey

	buffer storage.RowSet
	index  int
	opened bool
}

func NewSort(child Operator, keys []SortKey) (*Sort, error) {
	if len(keys) == 0 {
		return nil, errors.New("sort requires at least one key")
	}
	return &Sort{
		child: child,
		keys:  keys,
	}, nil
}

func (s *Sort) Open() error {
	if s.opened {
		return errors.Wrap(ErrProtocol, "sort opened twice")
	}
	if err := s.child.Open(); err != nil {
		return err
	}
	s.opened = true

	buffer := make(storage.RowSet, 0)
	for {
		row, err := s.child.Next()
		if err != nil {
			return err
		}
		if row == nil {
			break
		}
		buffer = append(buffer, row)
	}

	sorted, err := mergeSortRows(buffer, s.keys)
	if err != nil {
		return err
	}

	s.buffer = sorted
	s.index = 0
	return nil
}

func (s *Sort) Next() (*storage.Row, error) {
	if !s.opened {
		return nil, errors.Wrap(ErrProtocol, "sort not open")
	}
	if s.index >= len(s.buffer) {
		return nil, nil
	}
	row := s.buffer[s.index]
	s.index++
	return row, nil
}

func (s *Sort) Close() error {
	s.opened = false
	s.buffer = nil
	s.index = 0
	return s.child.Close()
}
