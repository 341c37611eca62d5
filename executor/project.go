package executor

import (
	"github.com/cockroachdb/errors"

	"lavadb/catalog"
	"lavadb/storage"
)

// Project narrows and reorders each row to the requested column names. The
// list may repeat names or be empty; no deduplication is performed. Output
// rows share the upstream cell values.
type Project struct {
	child   Operator
	columns []string
	opened  bool
}

func NewProject(child Operator, columns []string) *Project {
	return &Project{
		child:   child,
		columns: columns,
	}
}

func (p *Project) Open() error {
	if p.opened {
		return errors.Wrap(ErrProtocol, "project opened twice")
	}
	if err := p.child.Open(); err != nil {
		return err
	}
	p.opened = true
	return nil
}

func (p *Project) Next() (*storage.Row, error) {
	if !p.opened {
		return nil, errors.Wrap(ErrProtocol, "project not open")
	}

	row, err := p.child.Next()
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	schema := make(catalog.Schema, len(p.columns))
	cells := make([]storage.Cell, len(p.columns))
	for i, name := range p.columns {
		idx := row.Schema.IndexOf(name)
		if idx < 0 {
			return nil, errors.Wrapf(ErrColumnNotFound, "projection references %q", name)
		}
		schema[i] = row.Schema[idx]
		cells[i] = row.Cells[idx]
	}

	return storage.NewRow(schema, cells), nil
}

func (p *Project) Close() error {
	p.opened = false
	return p.child.Close()
}
