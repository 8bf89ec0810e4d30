package lockbox

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFlipsRowAndColumnOnce(t *testing.T) {
	box, err := FromState([][]bool{
		{false, false, false},
		{false, false, false},
		{false, false, false},
	})
	require.NoError(t, err)

	require.NoError(t, box.Toggle(1, 2))

	assert.Equal(t, [][]bool{
		{false, false, true},
		{true, true, true},
		{false, false, true},
	}, box.State())
}

func TestToggleIsInvolution(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	box := New(4, 5, r)
	before := box.State()

	require.NoError(t, box.Toggle(2, 3))
	require.NoError(t, box.Toggle(2, 3))

	assert.Equal(t, before, box.State())
}

func TestToggleOutOfRange(t *testing.T) {
	box, err := FromState([][]bool{{false, false}, {false, false}})
	require.NoError(t, err)

	for _, cell := range []Cell{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 2, Col: 0},
		{Row: 0, Col: 2},
	} {
		err := box.Toggle(cell.Row, cell.Col)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}

	assert.False(t, box.IsLocked(), "failed toggles must not touch the grid")
}

func TestStateIsIndependentCopy(t *testing.T) {
	box, err := FromState([][]bool{{true, false}, {false, true}})
	require.NoError(t, err)

	state := box.State()
	state[0][0] = false
	state[1][1] = false

	assert.Equal(t, [][]bool{{true, false}, {false, true}}, box.State())
}

func TestIsLocked(t *testing.T) {
	tests := []struct {
		name   string
		state  [][]bool
		locked bool
	}{
		{"all false", [][]bool{{false, false}, {false, false}}, false},
		{"one true", [][]bool{{false, false}, {true, false}}, true},
		{"all true", [][]bool{{true, true}, {true, true}}, true},
		{"empty", [][]bool{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			box, err := FromState(test.state)
			require.NoError(t, err)
			assert.Equal(t, test.locked, box.IsLocked())
		})
	}
}

func TestFromStateRaggedRows(t *testing.T) {
	_, err := FromState([][]bool{{true, false}, {true}})
	assert.Error(t, err)
}

func TestNewIsDeterministicForSeededRand(t *testing.T) {
	a := New(6, 7, rand.New(rand.NewPCG(1, 2)))
	b := New(6, 7, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a.State(), b.State())
}

func TestNewDegenerateDimensions(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		box := New(dims[0], dims[1], r)
		assert.Equal(t, 0, box.Size())
		assert.False(t, box.IsLocked())
	}
}
