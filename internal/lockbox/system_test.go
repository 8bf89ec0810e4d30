package lockbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyState(height, width int) [][]bool {
	state := make([][]bool, height)
	for row := range state {
		state[row] = make([]bool, width)
	}
	return state
}

func TestSystemMatrixIsSymmetric(t *testing.T) {
	s := newToggleSystem(3, 4, emptyState(3, 4))
	for i := range s.n {
		for j := range s.n {
			assert.Equal(t, s.matrix[i][j], s.matrix[j][i], "A[%d][%d] != A[%d][%d]", i, j, j, i)
		}
	}
}

func TestSystemMatrixMatchesToggleEffects(t *testing.T) {
	const height, width = 3, 3
	s := newToggleSystem(height, width, emptyState(height, width))

	for j := range s.n {
		box, err := FromState(emptyState(height, width))
		require.NoError(t, err)
		require.NoError(t, box.Toggle(j/width, j%width))

		state := box.State()
		for i := range s.n {
			assert.Equal(t, s.matrix[i][j], state[i/width][i%width],
				"toggle %d, cell %d", j, i)
		}
	}
}

// The row-and-column toggle structure always yields a full-rank
// system, so elimination must find a pivot for every column.
func TestEliminateFullRank(t *testing.T) {
	t.Parallel()

	bound := 8
	if !testing.Short() {
		bound = 12
	}
	for height := 1; height <= bound; height++ {
		for width := 1; width <= bound; width++ {
			s := newToggleSystem(height, width, emptyState(height, width))
			assert.NoError(t, s.eliminate(), "%dx%d", height, width)
		}
	}
}

func TestEliminateFullRankLarge(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	for _, dims := range [][2]int{{20, 20}, {1, 50}, {50, 1}, {25, 16}} {
		height, width := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", height, width), func(t *testing.T) {
			t.Parallel()
			s := newToggleSystem(height, width, emptyState(height, width))
			assert.NoError(t, s.eliminate())
		})
	}
}

func TestEliminateSingular(t *testing.T) {
	// Not constructible through newToggleSystem; forged to check that
	// a pivotless column surfaces as ErrSingular.
	s := &toggleSystem{
		n: 2,
		matrix: [][]bool{
			{true, false},
			{true, false},
		},
		rhs: []bool{true, false},
	}
	assert.ErrorIs(t, s.eliminate(), ErrSingular)
}

func TestBackSubstituteSolvesEchelonSystem(t *testing.T) {
	// x0 ^ x1 = 1, x1 = 1  =>  x0 = 0, x1 = 1
	s := &toggleSystem{
		n: 2,
		matrix: [][]bool{
			{true, true},
			{false, true},
		},
		rhs: []bool{true, true},
	}
	assert.Equal(t, []bool{false, true}, s.backSubstitute())
}
