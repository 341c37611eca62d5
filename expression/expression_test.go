package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xwb1989/sqlparser"

	"lavadb/expression"
	"lavadb/storage"
)

func whereOf(t *testing.T, sql string) *sqlparser.Where {
	t.Helper()
	stmt, err := sqlparser.Parse(sql)
	require.NoError(t, err)
	sel, ok := stmt.(*sqlparser.Select)
	require.True(t, ok)
	require.NotNil(t, sel.Where)
	return sel.Where
}

func TestFromWhereExprComparison(t *testing.T) {
	expr, err := expression.FromWhereExpr(whereOf(t, "select * from t where id = 10"))
	require.NoError(t, err)

	cmp, ok := expr.(*expression.ComparisonExpression)
	require.True(t, ok)
	assert.Equal(t, expression.OperatorEqual, cmp.Operator)
	assert.Equal(t, "id", cmp.Column)
	assert.Equal(t, storage.IntCell(10), cmp.Value)
}

func TestFromWhereExprAnd(t *testing.T) {
	expr, err := expression.FromWhereExpr(whereOf(t, "select * from t where id = 10 and name = 'tom' and addr = 'sh'"))
	require.NoError(t, err)

	flat, err := expression.Flatten(expr)
	require.NoError(t, err)
	require.Len(t, flat, 3)

	assert.Equal(t, "id", flat[0].Column)
	assert.Equal(t, storage.IntCell(10), flat[0].Value)
	assert.Equal(t, "name", flat[1].Column)
	assert.Equal(t, storage.TextCell("tom"), flat[1].Value)
	assert.Equal(t, "addr", flat[2].Column)
	assert.Equal(t, storage.TextCell("sh"), flat[2].Value)
}

func TestFromWhereExprUnsupportedOperator(t *testing.T) {
	_, err := expression.FromWhereExpr(whereOf(t, "select * from t where id > 10"))
	assert.Error(t, err)
}

func TestFromWhereExprUnsupportedOr(t *testing.T) {
	_, err := expression.FromWhereExpr(whereOf(t, "select * from t where id = 10 or id = 11"))
	assert.Error(t, err)
}
