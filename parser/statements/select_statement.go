package statements

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/xwb1989/sqlparser"

	"lavadb/catalog"
	"lavadb/expression"
)

type OrderKey struct {
	Column string
	Order  catalog.SortOrder
}

type SelectStmt struct {
	From string

	// Actual column name (not alias)
	ColumnNames []string

	IsAllColumns bool

	// nil when the statement has no WHERE clause
	Where expression.Expression

	OrderBy []OrderKey

	Offset   int
	Limit    int
	HasLimit bool
}

func BuildSelectStmt(statement *sqlparser.Select) (*SelectStmt, error) {
	if len(statement.From) != 1 {
		return nil, errors.Newf("only support one table. got: %d", len(statement.From))
	}

	from, err := getTableNameFromTableExpr(statement.From[0])
	if err != nil {
		return nil, err
	}

	columnNames, err := getColumnNamesFromSelectExprs(statement.SelectExprs)
	if err != nil {
		return nil, err
	}

	stmt := &SelectStmt{
		From:         from,
		ColumnNames:  columnNames,
		IsAllColumns: isAllColumns(statement.SelectExprs),
	}

	if statement.Where != nil {
		where, err := expression.FromWhereExpr(statement.Where)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	orderBy, err := getOrderKeys(statement.OrderBy)
	if err != nil {
		return nil, err
	}
	stmt.OrderBy = orderBy

	if statement.Limit != nil {
		offset, limit, err := getOffsetAndLimit(statement.Limit)
		if err != nil {
			return nil, err
		}
		stmt.Offset = offset
		stmt.Limit = limit
		stmt.HasLimit = true
	}

	return stmt, nil
}

func getTableNameFromTableExpr(from sqlparser.TableExpr) (string, error) {
	switch t := from.(type) {
	case *sqlparser.AliasedTableExpr:
		switch e := t.Expr.(type) {
		case sqlparser.TableName:
			return e.Name.String(), nil
		default:
			return "", errors.Newf("not supported table expression type: %T", e)
		}
	default:
		return "", errors.Newf("not supported table type: %T", from)
	}
}

func getColumnNamesFromSelectExprs(selectExprs sqlparser.SelectExprs) ([]string, error) {
	var columnNames []string
	for _, selectExpr := range selectExprs {
		switch e := selectExpr.(type) {
		case *sqlparser.AliasedExpr:
			switch col := e.Expr.(type) {
			case *sqlparser.ColName:
				columnNames = append(columnNames, col.Name.String())
			default:
				return nil, errors.Newf("not supported column expression type: %T", e.Expr)
			}
		case *sqlparser.StarExpr:
			// '*' will be handled separately and specially
			return nil, nil
		default:
			return nil, errors.Newf("not supported select expression type: %T", selectExpr)
		}
	}
	return columnNames, nil
}

func isAllColumns(selectExprs sqlparser.SelectExprs) bool {
	for _, selectExpr := range selectExprs {
		if _, ok := selectExpr.(*sqlparser.StarExpr); ok {
			return true
		}
	}
	return false
}

func getOrderKeys(orderBy sqlparser.OrderBy) ([]OrderKey, error) {
	var keys []OrderKey
	for _, order := range orderBy {
		col, ok := order.Expr.(*sqlparser.ColName)
		if !ok {
			return nil, errors.Newf("not supported order by expression type: %T", order.Expr)
		}

		sortOrder := catalog.Ascending
		if order.Direction == sqlparser.DescScr {
			sortOrder = catalog.Descending
		}

		keys = append(keys, OrderKey{
			Column: col.Name.String(),
			Order:  sortOrder,
		})
	}
	return keys, nil
}

func getOffsetAndLimit(limit *sqlparser.Limit) (int, int, error) {
	rowCount, err := getIntVal(limit.Rowcount)
	if err != nil {
		return 0, 0, err
	}

	offset := 0
	if limit.Offset != nil {
		offset, err = getIntVal(limit.Offset)
		if err != nil {
			return 0, 0, err
		}
	}

	return offset, rowCount, nil
}

func getIntVal(expr sqlparser.Expr) (int, error) {
	val, ok := expr.(*sqlparser.SQLVal)
	if !ok || val.Type != sqlparser.IntVal {
		return 0, errors.Newf("not supported limit expression type: %T", expr)
	}

	n, err := strconv.Atoi(string(val.Val))
	if err != nil {
		return 0, err
	}
	return n, nil
}
