package executor

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"lavadb/planner"
)

// Build maps a plan to its operator tree rooted at the returned operator.
// The caller owns the tree lifecycle: Open once, Next until exhaustion,
// Close once.
func Build(pl planner.Plan, dir string) (Operator, error) {
	switch p := pl.(type) {
	case *planner.SelectPlan:
		return buildSelect(p, dir)
	default:
		return nil, errors.Newf("not supported plan type: %T", p)
	}
}

// buildSelect stacks Project over Limit over Sort over the Filters over the
// scan, innermost first.
func buildSelect(pl *planner.SelectPlan, dir string) (Operator, error) {
	conditions := make([]string, len(pl.Filters))
	for i, f := range pl.Filters {
		conditions[i] = fmt.Sprintf("%s%s%s", f.Column, f.Operator, f.Value)
	}

	var op Operator = NewTableScan(dir, pl.Table, pl.Columns, conditions)

	for _, f := range pl.Filters {
		op = NewFilter(op, f.Column, f.Value)
	}

	if len(pl.OrderBy) > 0 {
		keys := make([]SortKey, len(pl.OrderBy))
		for i, k := range pl.OrderBy {
			keys[i] = SortKey{Column: k.Column, Order: k.Order}
		}
		sorted, err := NewSort(op, keys)
		if err != nil {
			return nil, err
		}
		op = sorted
	}

	if pl.HasLimit {
		limited, err := NewLimit(op, pl.Offset, pl.Limit)
		if err != nil {
			return nil, err
		}
		op = limited
	}

	if !pl.AllColumns {
		op = NewProject(op, pl.Columns)
	}

	return op, nil
}
