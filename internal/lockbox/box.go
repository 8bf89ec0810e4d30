package lockbox

import (
	"fmt"
	"math/rand/v2"
)

// Box is a height×width grid of boolean cells (true = locked,
// false = unlocked). Cells can only be mutated through Toggle.
type Box struct {
	height, width int
	cells         []bool // row-major, idx = row*width + col
}

// New creates a box of the given dimensions and shuffles it into a
// random locked state by applying up to 999 random toggles drawn
// from r.
func New(height, width int, r *rand.Rand) *Box {
	b := &Box{
		height: height,
		width:  width,
		cells:  make([]bool, height*width),
	}
	b.shuffle(r)
	return b
}

// FromState creates a box holding a copy of the given state. All rows
// must have equal length.
func FromState(state [][]bool) (*Box, error) {
	height := len(state)
	width := 0
	if height > 0 {
		width = len(state[0])
	}
	b := &Box{
		height: height,
		width:  width,
		cells:  make([]bool, 0, height*width),
	}
	for row := range state {
		if len(state[row]) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row, len(state[row]), width)
		}
		b.cells = append(b.cells, state[row]...)
	}
	return b, nil
}

func (b *Box) Height() int { return b.height }

func (b *Box) Width() int { return b.width }

// Size is the number of cells.
func (b *Box) Size() int { return b.height * b.width }

func (b *Box) shuffle(r *rand.Rand) {
	if b.Size() == 0 {
		return
	}
	for t := r.IntN(1000); t > 0; t-- {
		b.Toggle(r.IntN(b.height), r.IntN(b.width))
	}
}

// Toggle flips the cell at (row, col) together with every cell in row
// `row` and every cell in column `col`. The target cell is flipped
// three times in total, which nets out to a single flip, so each
// affected cell changes exactly once and the operation is its own
// inverse.
func (b *Box) Toggle(row, col int) error {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return fmt.Errorf("toggle (%d, %d): %w", row, col, ErrOutOfRange)
	}
	i := row*b.width + col
	b.cells[i] = !b.cells[i]
	for x := range b.width {
		b.cells[row*b.width+x] = !b.cells[row*b.width+x]
	}
	for y := range b.height {
		b.cells[y*b.width+col] = !b.cells[y*b.width+col]
	}
	return nil
}

// IsLocked reports whether any cell is still true.
func (b *Box) IsLocked() bool {
	for _, c := range b.cells {
		if c {
			return true
		}
	}
	return false
}

// State returns an independent copy of the grid; mutating the copy
// does not affect the box.
func (b *Box) State() [][]bool {
	state := make([][]bool, b.height)
	for row := range state {
		state[row] = make([]bool, b.width)
		copy(state[row], b.cells[row*b.width:(row+1)*b.width])
	}
	return state
}
