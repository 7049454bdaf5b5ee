package gpu

// BindSet names which state buffer fills the read-only and read-write slots
// for one tick parity. Values index into the simulation's buffer pair.
type BindSet struct {
	Current int
	Next    int
}

// Rotator holds the two precomputed bind sets, one per tick parity. Both are
// built once at construction; per tick only the selection index changes, no
// buffer is reallocated or rebound.
type Rotator struct {
	layout *Layout
	sets   [2]BindSet
}

// NewRotator precomputes both parities against the given layout.
func NewRotator(layout *Layout) *Rotator {
	return &Rotator{
		layout: layout,
		sets: [2]BindSet{
			{Current: 0, Next: 1},
			{Current: 1, Next: 0},
		},
	}
}

// Layout returns the binding layout both sets conform to.
func (r *Rotator) Layout() *Layout { return r.layout }

// Select returns the bind set for the given tick. Even ticks read buffer 0
// and write buffer 1; odd ticks swap the roles.
func (r *Rotator) Select(tick uint64) BindSet {
	return r.sets[tick%2]
}
