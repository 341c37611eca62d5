package executor

import (
	"strings"

	"github.com/cockroachdb/errors"

	"lavadb/catalog"
	"lavadb/storage"
)

// TableScan reads a flat table file and materializes typed rows. It is the
// leaf of every tree. The schema comes from the file's header line, read
// when the scan opens.
type TableScan struct {
	dir   string
	table string

	// Advisory only: filtering and pruning happen in the operators above,
	// these are carried for plan display.
	columns   []string
	condition []string

	source *storage.Source
	schema catalog.Schema
	opened bool
}

func NewTableScan(dir, table string, columns, condition []string) *TableScan {
	return &TableScan{
		dir:       dir,
		table:     table,
		columns:   columns,
		condition: condition,
	}
}

// Schema returns the header schema. Valid only between Open and Close.
func (s *TableScan) Schema() catalog.Schema {
	return s.schema
}

func (s *TableScan) Open() error {
	if s.opened {
		return errors.Wrapf(ErrProtocol, "scan of %s opened twice", s.table)
	}

	source, err := storage.OpenSource(s.dir, s.table)
	if err != nil {
		return err
	}

	header, ok, err := source.ReadLine()
	if err != nil {
		source.Close()
		return err
	}
	if !ok {
		source.Close()
		return errors.Wrapf(catalog.ErrSchema, "table %s has no header", s.table)
	}

	schema, err := catalog.ParseSchema(header)
	if err != nil {
		source.Close()
		return err
	}

	s.source = source
	s.schema = schema
	s.opened = true
	return nil
}

func (s *TableScan) Next() (*storage.Row, error) {
	if !s.opened {
		return nil, errors.Wrapf(ErrProtocol, "scan of %s not open", s.table)
	}

	line, ok, err := s.source.ReadLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	fields := strings.Fields(line)
	if len(fields) != len(s.schema) {
		return nil, errors.Wrapf(storage.ErrConversion,
			"table %s: record has %d fields, schema declares %d", s.table, len(fields), len(s.schema))
	}

	cells := make([]storage.Cell, len(fields))
	for i, field := range fields {
		cell, err := storage.ConvertField(field, s.schema[i])
		if err != nil {
			return nil, err
		}
		cells[i] = cell
	}

	return storage.NewRow(s.schema, cells), nil
}

func (s *TableScan) Close() error {
	s.opened = false
	if s.source == nil {
		return nil
	}
	err := s.source.Close()
	s.source = nil
	return err
}
