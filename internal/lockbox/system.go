package lockbox

// toggleSystem is the linear system A·x = b over GF(2) describing how
// toggles act on a box. matrix[i][j] is true iff the toggle at
// flattened index j flips the cell at flattened index i; rhs holds the
// snapshot of the grid the system was built from. Addition is XOR and
// multiplication is AND.
type toggleSystem struct {
	n      int
	matrix [][]bool
	rhs    []bool
}

// newToggleSystem builds the system for a height×width box from one
// state snapshot. Toggling (row, col) flips the union of row `row` and
// column `col`; that relation is symmetric, so the same matrix
// describes both "which cells toggle j flips" and "which toggles flip
// cell i".
func newToggleSystem(height, width int, state [][]bool) *toggleSystem {
	n := height * width
	s := &toggleSystem{
		n:      n,
		matrix: make([][]bool, n),
		rhs:    make([]bool, n),
	}
	for i := range s.matrix {
		s.matrix[i] = make([]bool, n)
	}
	for row := range height {
		for col := range width {
			idx := row*width + col
			s.rhs[idx] = state[row][col]
			s.matrix[idx][idx] = true
			for x := range width {
				s.matrix[idx][row*width+x] = true
			}
			for y := range height {
				s.matrix[idx][y*width+col] = true
			}
		}
	}
	return s
}

// eliminate runs forward elimination with row pivoting, leaving the
// system in row-echelon form. Every column of a well-formed toggle
// system has a pivot; a pivotless column is reported as ErrSingular.
func (s *toggleSystem) eliminate() error {
	for col := range s.n {
		pivot := col
		for pivot < s.n && !s.matrix[pivot][col] {
			pivot++
		}
		if pivot == s.n {
			return ErrSingular
		}

		s.matrix[col], s.matrix[pivot] = s.matrix[pivot], s.matrix[col]
		s.rhs[col], s.rhs[pivot] = s.rhs[pivot], s.rhs[col]

		for row := col + 1; row < s.n; row++ {
			if !s.matrix[row][col] {
				continue
			}
			for k := col; k < s.n; k++ {
				s.matrix[row][k] = s.matrix[row][k] != s.matrix[col][k]
			}
			s.rhs[row] = s.rhs[row] != s.rhs[col]
		}
	}
	return nil
}

// backSubstitute recovers the solution vector from an eliminated
// system, last equation first. solution[i] means "apply the toggle at
// flattened index i".
func (s *toggleSystem) backSubstitute() []bool {
	solution := make([]bool, s.n)
	for row := s.n - 1; row >= 0; row-- {
		sum := s.rhs[row]
		for col := row + 1; col < s.n; col++ {
			sum = sum != (s.matrix[row][col] && solution[col])
		}
		solution[row] = sum
	}
	return solution
}
