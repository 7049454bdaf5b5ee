package core

import "fmt"

// StatePair owns the two cell-state buffers the simulation ping-pongs
// between. Both are allocated once at construction; per tick exactly one is
// readable ("current") and one is writable ("next"), chosen by tick parity.
type StatePair struct {
	size Size
	bufs [2][]uint8
}

// NewStatePair allocates both buffers for a grid of the given size.
func NewStatePair(size Size) (*StatePair, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("core: invalid grid size %dx%d", size.W, size.H)
	}
	p := &StatePair{size: size}
	p.bufs[0] = make([]uint8, size.Cells())
	p.bufs[1] = make([]uint8, size.Cells())
	return p, nil
}

// Size returns the grid dimensions.
func (p *StatePair) Size() Size { return p.size }

// Buffer exposes the backing slice for buffer index 0 or 1. Callers must
// respect the role assignment from Roles: only the transition engine writes,
// and only into the next buffer.
func (p *StatePair) Buffer(i int) []uint8 { return p.bufs[i&1] }

// Seed bulk-fills one buffer with initial cell values. It is intended for
// one-time randomization before the first tick.
func (p *StatePair) Seed(i int, values []uint8) error {
	if len(values) != p.size.Cells() {
		return fmt.Errorf("core: seed length %d, want %d", len(values), p.size.Cells())
	}
	copy(p.bufs[i&1], values)
	return nil
}

// Roles maps a tick counter to buffer roles: on even ticks buffer 0 is
// current and buffer 1 is next, on odd ticks the reverse. Pure function of
// parity; no state is touched.
func Roles(tick uint64) (current, next int) {
	if tick%2 == 0 {
		return 0, 1
	}
	return 1, 0
}
