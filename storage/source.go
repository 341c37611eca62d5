package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Source reads a flat table file line by line. The first line is the schema
// header, every following line is one record. Files may be stored plain or
// compressed; the extension picks the decompressor.
type Source struct {
	file    *os.File
	scanner *bufio.Scanner
}

var sourceSuffixes = []string{".txt", ".txt.gz", ".txt.sz", ".txt.lz4"}

// OpenSource resolves the table file under dir, trying the plain file first
// and the compressed variants after, and wraps it in the matching reader.
func OpenSource(dir, table string) (*Source, error) {
	for _, suffix := range sourceSuffixes {
		path := fmt.Sprintf("%s/%s%s", dir, table, suffix)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return openSourceFile(path, suffix)
	}
	return nil, errors.Newf("table not found: %s", table)
}

func openSourceFile(path, suffix string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	switch suffix {
	case ".txt.gz":
		r, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
	case ".txt.sz":
		r = snappy.NewReader(f)
	case ".txt.lz4":
		r = lz4.NewReader(f)
	default:
		r = f
	}

	return &Source{
		file:    f,
		scanner: bufio.NewScanner(r),
	}, nil
}

// ReadLine returns the next line of the file. The second return value is
// false once the file is exhausted.
func (s *Source) ReadLine() (string, bool, error) {
	if s.file == nil {
		return "", false, errors.New("source is closed")
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return s.scanner.Text(), true, nil
}

// Close releases the file handle. Closing twice is a no-op.
func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.scanner = nil
	return err
}
