package matrix

// Matrix is the minimal read/write surface used by the assignment solver and
// cost-matrix builders.
//
// Contract:
//   - At/Set return ErrOutOfRange for invalid coordinates, never panic.
//   - Implementations reject NaN/Inf in Set (ErrNaNInf).
//   - Clone returns an independent deep copy.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
