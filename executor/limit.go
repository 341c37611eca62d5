package executor

import (
	"github.com/cockroachdb/errors"

	"lavadb/storage"
)

// Limit discards the first offset upstream rows, then passes through at most
// limit rows. Once the cap is reached every further Next signals exhaustion
// without draining the upstream.
type Limit struct {
	child  Operator
	offset int
	limit  int

	skipped  int
	returned int
	opened   bool
}

func NewLimit(child Operator, offset, limit int) (*Limit, error) {
	if offset < 0 || limit < 0 {
		return nil, errors.Newf("limit parameters must be non-negative, got offset=%d limit=%d", offset, limit)
	}
	return &Limit{
		child:  child,
		offset: offset,
		limit:  limit,
	}, nil
}

func (l *Limit) Open() error {
	if l.opened {
		return errors.Wrap(ErrProtocol, "limit opened twice")
	}
	if err := l.child.Open(); err != nil {
		return err
	}
	l.skipped = 0
	l.returned = 0
	l.opened = true
	return nil
}

func (l *Limit) Next() (*storage.Row, error) {
	if !l.opened {
		return nil, errors.Wrap(ErrProtocol, "limit not open")
	}

	if l.returned >= l.limit {
		return nil, nil
	}

	for l.skipped < l.offset {
		row, err := l.child.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, nil
		}
		l.skipped++
	}

	row, err := l.child.Next()
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	l.returned++
	return row, nil
}

func (l *Limit) Close() error {
	l.opened = false
	return l.child.Close()
}
