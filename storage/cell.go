package storage

import "strconv"

// Cell is a single typed value. The engine only distinguishes integers and
// text: char, varchar and datetime columns all hold their value as opaque
// text and compare lexicographically.
type Cell interface {
	// Equal reports type-aware value equality. Cells of different kinds
	// never compare equal.
	Equal(other Cell) bool

	// Compare returns -1, 0 or 1 ordering this cell against other. Cells of
	// different kinds order integers before text so the result is total.
	Compare(other Cell) int

	String() string
}

type IntCell int64

func (c IntCell) Equal(other Cell) bool {
	v, ok := other.(IntCell)
	return ok && c == v
}

func (c IntCell) Compare(other Cell) int {
	v, ok := other.(IntCell)
	if !ok {
		return -1
	}
	switch {
	case c < v:
		return -1
	case c > v:
		return 1
	default:
		return 0
	}
}

func (c IntCell) String() string {
	return strconv.FormatInt(int64(c), 10)
}

type TextCell string

func (c TextCell) Equal(other Cell) bool {
	v, ok := other.(TextCell)
	return ok && c == v
}

func (c TextCell) Compare(other Cell) int {
	v, ok := other.(TextCell)
	if !ok {
		return 1
	}
	switch {
	case c < v:
		return -1
	case c > v:
		return 1
	default:
		return 0
	}
}

func (c TextCell) String() string {
	return string(c)
}
