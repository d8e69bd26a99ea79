// Package solver solves square dense linear systems with Gaussian
// elimination using an out-of-order pivot search. The pivot row for each
// column is the first remaining row with a nonzero entry in that column, so
// rows may be consumed in any order; a column-to-pivot-row mapping recorded
// during the forward pass drives back-substitution and the final readout.
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrUninitializedMatrix = errors.New("uninitialized matrix")
	ErrNotSquare           = errors.New("coefficient matrix is not square")
	ErrRHSLenMismatch      = errors.New("right hand side length does not match matrix degree")
	ErrSingularMatrix      = errors.New("matrix is singular")
)

// Solve solves m·c = b for a square matrix m of degree d and returns the
// solution vector of length d. The input matrix and right hand side are left
// unmodified. A system with no usable pivot for some column fails with
// ErrSingularMatrix.
func Solve(m *mat.Dense, b []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrUninitializedMatrix
	}
	rows, cols := m.Dims()
	if rows != cols {
		return nil, fmt.Errorf("got a %dx%d matrix, %w", rows, cols, ErrNotSquare)
	}
	d := rows
	if len(b) != d {
		return nil, fmt.Errorf("got %d right hand side values for degree %d, %w", len(b), d, ErrRHSLenMismatch)
	}

	// augmented d×(d+1) working matrix with b as the answer column
	aug := make([][]float64, d)
	for i := 0; i < d; i++ {
		aug[i] = make([]float64, d+1)
		for j := 0; j < d; j++ {
			aug[i][j] = m.At(i, j)
		}
		aug[i][d] = b[i]
	}

	finished := make([]bool, d)
	pivotRow := make([]int, d)

	// forward elimination
	for col := 0; col < d; col++ {
		pivot := -1
		for row := 0; row < d; row++ {
			if !finished[row] && aug[row][col] != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("no pivot available for column %d, %w", col, ErrSingularMatrix)
		}
		pivotRow[col] = pivot

		pv := aug[pivot][col]
		for j := col; j <= d; j++ {
			aug[pivot][j] /= pv
		}
		finished[pivot] = true

		for row := 0; row < d; row++ {
			if finished[row] || aug[row][col] == 0 {
				continue
			}
			factor := aug[row][col]
			for j := col; j <= d; j++ {
				aug[row][j] -= factor * aug[pivot][j]
			}
		}
	}

	// back-substitution over the recorded pivot order
	for i := range finished {
		finished[i] = false
	}
	for col := d - 1; col >= 0; col-- {
		pivot := pivotRow[col]
		finished[pivot] = true
		for row := 0; row < d; row++ {
			if finished[row] || aug[row][col] == 0 {
				continue
			}
			aug[row][d] -= aug[row][col] * aug[pivot][d]
			aug[row][col] = 0
		}
	}

	// the answer column of each pivot row, read in column order
	c := make([]float64, d)
	for col := 0; col < d; col++ {
		c[col] = aug[pivotRow[col]][d]
	}
	return c, nil
}
