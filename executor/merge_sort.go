package executor

import (
	"github.com/cockroachdb/errors"

	"lavadb/catalog"
	"lavadb/storage"
)

// mergeSortRows returns the rows reordered by the given keys. Merge sort is
// used because the ordering must be stable: rows comparing equal on every
// key keep their input order.
func mergeSortRows(rows storage.RowSet, keys []SortKey) (storage.RowSet, error) {
	if len(rows) <= 1 {
		return rows, nil
	}

	mid := len(rows) / 2
	left, err := mergeSortRows(rows[:mid], keys)
	if err != nil {
		return nil, err
	}
	right, err := mergeSortRows(rows[mid:], keys)
	if err != nil {
		return nil, err
	}

	merged := make(storage.RowSet, 0, len(rows))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		c, err := compareRows(left[i], right[j], keys)
		if err != nil {
			return nil, err
		}
		// <= keeps equal rows in input order
		if c <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged, nil
}

// compareRows evaluates the keys in order, moving to the next key on ties.
func compareRows(a, b *storage.Row, keys []SortKey) (int, error) {
	for _, key := range keys {
		lhs, ok := a.Cell(key.Column)
		if !ok {
			return 0, errors.Wrapf(ErrColumnNotFound, "sort key references %q", key.Column)
		}
		rhs, ok := b.Cell(key.Column)
		if !ok {
			return 0, errors.Wrapf(ErrColumnNotFound, "sort key references %q", key.Column)
		}

		c := lhs.Compare(rhs)
		if key.Order == catalog.Descending {
			c = -c
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}
