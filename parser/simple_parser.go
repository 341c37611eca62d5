package parser

import (
	"github.com/cockroachdb/errors"
	"github.com/xwb1989/sqlparser"

	"lavadb/parser/statements"
)

// Stmt is a parsed statement ready for planning.
type Stmt interface{}

type SimpleParser struct {
}

func NewSimpleParser() *SimpleParser {
	return &SimpleParser{}
}

func (sp *SimpleParser) Parse(sqlString string) (Stmt, error) {
	stmt, err := sqlparser.Parse(sqlString)
	if err != nil {
		return nil, err
	}

	switch s := stmt.(type) {
	case *sqlparser.Select:
		return statements.BuildSelectStmt(s)
	default:
		return nil, errors.Newf("not supported: %T", s)
	}
}
