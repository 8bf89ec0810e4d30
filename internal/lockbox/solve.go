package lockbox

// Cell addresses one grid position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Solution computes the set of toggles that unlocks the box, without
// applying any of them. It reads the box state exactly once; the box
// must not be toggled between Solution and the application of its
// result. Toggles commute, so the returned order (ascending flattened
// index) is one valid order among many.
func Solution(b *Box) ([]Cell, error) {
	if b.Size() == 0 {
		return nil, nil
	}
	system := newToggleSystem(b.height, b.width, b.State())
	if err := system.eliminate(); err != nil {
		return nil, err
	}
	var cells []Cell
	for i, apply := range system.backSubstitute() {
		if apply {
			cells = append(cells, Cell{Row: i / b.width, Col: i % b.width})
		}
	}
	return cells, nil
}

// Open solves the box and applies the solution, then reports whether
// the box is still locked. A degenerate box with zero cells is
// vacuously unlocked. A non-nil error means the solve itself broke
// down and says nothing about the lock state.
func Open(b *Box) (locked bool, err error) {
	solution, err := Solution(b)
	if err != nil {
		return false, err
	}
	for _, cell := range solution {
		if err := b.Toggle(cell.Row, cell.Col); err != nil {
			return false, err
		}
	}
	return b.IsLocked(), nil
}
