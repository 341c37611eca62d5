package expression

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/xwb1989/sqlparser"

	"lavadb/storage"
)

// Expression is the WHERE clause restricted to what the engine evaluates:
// equality comparisons joined by AND.
type Expression interface {
	implementExpr()
}

type AndExpression struct {
	Left  Expression
	Right Expression
}

type ComparisonExpression struct {
	Operator string
	Column   string
	Value    storage.Cell
}

const OperatorEqual = "="

func (e *AndExpression) implementExpr()        {}
func (e *ComparisonExpression) implementExpr() {}

func FromWhereExpr(whereExpr *sqlparser.Where) (Expression, error) {
	if whereExpr.Type != sqlparser.WhereStr {
		return nil, errors.Newf("not supported where type: %s", whereExpr.Type)
	}
	return fromExpr(whereExpr.Expr)
}

func fromExpr(expr sqlparser.Expr) (Expression, error) {
	switch e := expr.(type) {
	case *sqlparser.ComparisonExpr:
		if e.Operator != OperatorEqual {
			return nil, errors.Newf("not supported operator: %s", e.Operator)
		}

		col, ok := e.Left.(*sqlparser.ColName)
		if !ok {
			return nil, errors.Newf("not supported comparison lhs: %T", e.Left)
		}
		val, err := cellFromValExpr(e.Right)
		if err != nil {
			return nil, err
		}

		return &ComparisonExpression{
			Operator: e.Operator,
			Column:   col.Name.String(),
			Value:    val,
		}, nil

	case *sqlparser.AndExpr:
		left, err := fromExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return &AndExpression{Left: left, Right: right}, nil

	default:
		return nil, errors.Newf("not supported expression type: %T", expr)
	}
}

// cellFromValExpr keeps the literal's type: numeric literals compare as
// integers, quoted ones as text.
func cellFromValExpr(expr sqlparser.Expr) (storage.Cell, error) {
	val, ok := expr.(*sqlparser.SQLVal)
	if !ok {
		return nil, errors.Newf("not supported comparison rhs: %T", expr)
	}

	switch val.Type {
	case sqlparser.IntVal:
		n, err := strconv.ParseInt(string(val.Val), 10, 64)
		if err != nil {
			return nil, errors.Newf("invalid integer literal: %q", val.Val)
		}
		return storage.IntCell(n), nil
	case sqlparser.StrVal:
		return storage.TextCell(val.Val), nil
	default:
		return nil, errors.Newf("not supported literal type: %v", val.Type)
	}
}

// Flatten walks an AND tree left to right into its comparison list.
func Flatten(expr Expression) ([]*ComparisonExpression, error) {
	switch e := expr.(type) {
	case *ComparisonExpression:
		return []*ComparisonExpression{e}, nil
	case *AndExpression:
		left, err := Flatten(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := Flatten(e.Right)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	default:
		return nil, errors.Newf("not supported expression type: %T", expr)
	}
}
