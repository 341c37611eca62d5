package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavadb/storage"
)

const testTableContent = "id:int:8 name:varchar:16\n1 tom\n2 amy\n"

func readAll(t *testing.T, src *storage.Source) []string {
	t.Helper()
	var lines []string
	for {
		line, ok, err := src.ReadLine()
		require.NoError(t, err)
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestOpenSourcePlain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tb1.txt"), []byte(testTableContent), 0644))

	src, err := storage.OpenSource(dir, "tb1")
	require.NoError(t, err)
	defer src.Close()

	lines := readAll(t, src)
	assert.Equal(t, []string{"id:int:8 name:varchar:16", "1 tom", "2 amy"}, lines)
}

func TestOpenSourceMissing(t *testing.T) {
	_, err := storage.OpenSource(t.TempDir(), "nope")
	assert.Error(t, err)
}

func TestOpenSourceGzip(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "tb1.txt.gz"))
	require.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(testTableContent))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	src, err := storage.OpenSource(dir, "tb1")
	require.NoError(t, err)
	defer src.Close()

	assert.Len(t, readAll(t, src), 3)
}

func TestOpenSourceSnappy(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "tb1.txt.sz"))
	require.NoError(t, err)
	w := snappy.NewBufferedWriter(f)
	_, err = w.Write([]byte(testTableContent))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	src, err := storage.OpenSource(dir, "tb1")
	require.NoError(t, err)
	defer src.Close()

	assert.Len(t, readAll(t, src), 3)
}

func TestOpenSourceLz4(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "tb1.txt.lz4"))
	require.NoError(t, err)
	w := lz4.NewWriter(f)
	_, err = w.Write([]byte(testTableContent))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	src, err := storage.OpenSource(dir, "tb1")
	require.NoError(t, err)
	defer src.Close()

	assert.Len(t, readAll(t, src), 3)
}

func TestSourcePrefersPlainFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tb1.txt"), []byte("plain:int:8\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tb1.txt.gz"), []byte("garbage"), 0644))

	src, err := storage.OpenSource(dir, "tb1")
	require.NoError(t, err)
	defer src.Close()

	line, ok, err := src.ReadLine()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "plain:int:8", line)
}

func TestSourceCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tb1.txt"), []byte(testTableContent), 0644))

	src, err := storage.OpenSource(dir, "tb1")
	require.NoError(t, err)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	_, _, err = src.ReadLine()
	assert.Error(t, err)
}
