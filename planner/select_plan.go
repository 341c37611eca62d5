package planner

import (
	"lavadb/expression"
	"lavadb/parser/statements"
)

// SelectPlan is the data-only description of a select tree. Column existence
// is not checked here: the schema lives in the table file's header and is
// only known once the scan opens, so unknown names surface as column-not-
// found errors during execution.
type SelectPlan struct {
	Table string

	// Projection list in output order; ignored when AllColumns is set.
	Columns    []string
	AllColumns bool

	// Equality predicates, implicitly AND-ed by stacking filters.
	Filters []*expression.ComparisonExpression

	OrderBy []statements.OrderKey

	Offset   int
	Limit    int
	HasLimit bool
}

func BuildSelectPlan(stmt *statements.SelectStmt) (Plan, error) {
	pl := &SelectPlan{
		Table:      stmt.From,
		Columns:    stmt.ColumnNames,
		AllColumns: stmt.IsAllColumns,
		OrderBy:    stmt.OrderBy,
		Offset:     stmt.Offset,
		Limit:      stmt.Limit,
		HasLimit:   stmt.HasLimit,
	}

	if stmt.Where != nil {
		filters, err := expression.Flatten(stmt.Where)
		if err != nil {
			return nil, err
		}
		pl.Filters = filters
	}

	return pl, nil
}
