// Package mat provides dense matrix helpers layered on gonum that are used
// for assembling and solving the normal equations.
package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch         = errors.New("column size mismatch")
	ErrUninitializedMatrix = errors.New("uninitialized matrix")
	ErrDimMismatch         = errors.New("matrix dimensions do not align")
)

// NewDenseFromArray creates a dense matrix from a row-major 2D slice. All
// rows must have the same length.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// Transpose returns the transpose of m as a new dense matrix.
func Transpose(m *mat.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrUninitializedMatrix
	}
	r, c := m.Dims()

	t := mat.NewDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			t.Set(j, i, m.At(i, j))
		}
	}
	return t, nil
}

// Multiply returns the product a·b as a new dense matrix. The number of
// columns of a must equal the number of rows of b.
func Multiply(a, b *mat.Dense) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrUninitializedMatrix
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("left is %dx%d and right is %dx%d, %w", ar, ac, br, bc, ErrDimMismatch)
	}

	res := mat.NewDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum float64
			for k := 0; k < ac; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			res.Set(i, j, sum)
		}
	}
	return res, nil
}
