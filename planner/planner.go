package planner

import (
	"github.com/cockroachdb/errors"

	"lavadb/parser"
	"lavadb/parser/statements"
)

type Planner interface {
	MakePlan(stmt parser.Stmt) (Plan, error)
}

type Plan interface {
}

type SimplePlanner struct {
}

func NewSimplePlanner() *SimplePlanner {
	return &SimplePlanner{}
}

func (p *SimplePlanner) MakePlan(stmt parser.Stmt) (Plan, error) {
	switch s := stmt.(type) {
	case *statements.SelectStmt:
		return BuildSelectPlan(s)
	default:
		return nil, errors.Newf("not supported statement type: %T", s)
	}
}
