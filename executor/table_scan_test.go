package executor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavadb/catalog"
	"lavadb/executor"
	"lavadb/storage"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tb1.txt"), []byte(content), 0644))
	return dir
}

const sampleTable = "id:int:8 name:varchar:16 age:int:8 addr:varchar:32\n" +
	"1 tom 18 sh\n" +
	"2 amy 22 bj\n" +
	"3 joe 18 sh\n"

func TestTableScanRoundTrip(t *testing.T) {
	dir := writeTable(t, sampleTable)

	scan := executor.NewTableScan(dir, "tb1", nil, nil)
	require.NoError(t, scan.Open())
	defer scan.Close()

	require.Len(t, scan.Schema(), 4)
	assert.Equal(t, catalog.Integer, scan.Schema()[0].Type)
	assert.Equal(t, catalog.VariableChar, scan.Schema()[1].Type)

	var rows []*storage.Row
	for {
		row, err := scan.Next()
		require.NoError(t, err)
		if row == nil {
			break
		}
		rows = append(rows, row)
	}

	require.Len(t, rows, 3)
	assert.Equal(t, storage.IntCell(1), rows[0].Cells[0])
	assert.Equal(t, storage.TextCell("tom"), rows[0].Cells[1])
	assert.Equal(t, storage.IntCell(18), rows[0].Cells[2])
	assert.Equal(t, storage.TextCell("sh"), rows[0].Cells[3])
	assert.Equal(t, storage.TextCell("bj"), rows[1].Cells[3])

	// every row shares the header schema by reference
	assert.Same(t, rows[0].Schema[0], rows[2].Schema[0])

	// exhaustion is a terminal state
	for i := 0; i < 3; i++ {
		row, err := scan.Next()
		require.NoError(t, err)
		assert.Nil(t, row)
	}
}

func TestTableScanConversionError(t *testing.T) {
	dir := writeTable(t, "id:int:8 name:varchar:16\nabc tom\n")

	scan := executor.NewTableScan(dir, "tb1", nil, nil)
	require.NoError(t, scan.Open())
	defer scan.Close()

	_, err := scan.Next()
	assert.True(t, errors.Is(err, storage.ErrConversion))
}

func TestTableScanFieldCountMismatch(t *testing.T) {
	dir := writeTable(t, "id:int:8 name:varchar:16\n1 tom extra\n")

	scan := executor.NewTableScan(dir, "tb1", nil, nil)
	require.NoError(t, scan.Open())
	defer scan.Close()

	_, err := scan.Next()
	assert.True(t, errors.Is(err, storage.ErrConversion))
}

func TestTableScanBadHeader(t *testing.T) {
	for _, content := range []string{"", "id:text:8\n", "id:int\n"} {
		dir := writeTable(t, content)
		scan := executor.NewTableScan(dir, "tb1", nil, nil)
		err := scan.Open()
		assert.True(t, errors.Is(err, catalog.ErrSchema), "content %q", content)
		assert.NoError(t, scan.Close())
	}
}

func TestTableScanMissingTable(t *testing.T) {
	scan := executor.NewTableScan(t.TempDir(), "nope", nil, nil)
	assert.Error(t, scan.Open())
}

func TestTableScanProtocol(t *testing.T) {
	dir := writeTable(t, sampleTable)
	scan := executor.NewTableScan(dir, "tb1", nil, nil)

	// next before open
	_, err := scan.Next()
	assert.True(t, errors.Is(err, executor.ErrProtocol))

	require.NoError(t, scan.Open())

	// open twice without close
	err = scan.Open()
	assert.True(t, errors.Is(err, executor.ErrProtocol))

	require.NoError(t, scan.Close())
	require.NoError(t, scan.Close())

	// next after close
	_, err = scan.Next()
	assert.True(t, errors.Is(err, executor.ErrProtocol))
}

func TestTableScanCloseNeverOpened(t *testing.T) {
	scan := executor.NewTableScan("nowhere", "tb1", nil, nil)
	assert.NoError(t, scan.Close())
}
