package array

import "fmt"

// Reshape helpers are the sole sanctioned boundary between the flattened
// representation the kernels use and whatever nested representation the
// caller keeps. They validate nothing beyond total-element-count
// agreement.

// Nest converts a flattened slice into rows × cols nested rows.
// len(flat) must equal rows*cols.
func Nest[T Elem](flat []T, rows, cols int) ([][]T, error) {
	if rows < 0 || cols < 0 || len(flat) != rows*cols {
		return nil, fmt.Errorf("array: %d elements cannot nest as %d x %d: %w",
			len(flat), rows, cols, ErrLengthMismatch)
	}
	nested := make([][]T, rows)
	for r := range nested {
		nested[r] = flat[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return nested, nil
}

// Flatten converts nested rows back into a single flattened slice.
// All rows must have the same length so the result round-trips through Nest.
func Flatten[T Elem](nested [][]T) ([]T, error) {
	if len(nested) == 0 {
		return []T{}, nil
	}
	cols := len(nested[0])
	flat := make([]T, 0, len(nested)*cols)
	for r, row := range nested {
		if len(row) != cols {
			return nil, fmt.Errorf("array: row %d has %d elements, row 0 has %d: %w",
				r, len(row), cols, ErrLengthMismatch)
		}
		flat = append(flat, row...)
	}
	return flat, nil
}
