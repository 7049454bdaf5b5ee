package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the total number of cells in the grid.
func (s Size) Cells() int { return s.W * s.H }

// Index returns the linear row-major index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}
