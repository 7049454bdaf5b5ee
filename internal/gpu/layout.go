// Package gpu describes the simulation's shader-facing surface: the binding
// layout shared by the transition and visualization programs, the two
// parity-rotated bind sets, and the embedded WGSL program sources handed to
// whichever shader backend presents the grid.
package gpu

import "fmt"

// Visibility flags name the pipeline stages that may access a binding.
type Visibility uint8

const (
	VisibilityCompute Visibility = 1 << iota
	VisibilityVertex
	VisibilityFragment
)

// Access distinguishes read-only from read-write storage bindings.
type Access uint8

const (
	AccessUniform Access = iota
	AccessReadOnly
	AccessReadWrite
)

// Binding describes one slot of the shared layout.
type Binding struct {
	Slot       int
	Name       string
	Visibility Visibility
	Access     Access
}

// Layout is the validated set of bindings both programs agree on.
type Layout struct {
	bindings []Binding
}

// Fixed slot assignments shared by every program in the pipeline.
const (
	SlotGridSize     = 0
	SlotCurrentState = 1
	SlotNextState    = 2
)

// NewLayout validates the bindings once at construction: slots must be
// unique, contiguous from zero, and carry at least one visible stage.
func NewLayout(bindings []Binding) (*Layout, error) {
	seen := make(map[int]bool, len(bindings))
	for _, b := range bindings {
		if b.Slot < 0 || b.Slot >= len(bindings) {
			return nil, fmt.Errorf("gpu: binding %q slot %d out of range", b.Name, b.Slot)
		}
		if seen[b.Slot] {
			return nil, fmt.Errorf("gpu: duplicate binding slot %d", b.Slot)
		}
		if b.Visibility == 0 {
			return nil, fmt.Errorf("gpu: binding %q visible to no stage", b.Name)
		}
		seen[b.Slot] = true
	}
	out := make([]Binding, len(bindings))
	copy(out, bindings)
	return &Layout{bindings: out}, nil
}

// DefaultLayout returns the simulation's fixed layout: slot 0 uniform grid
// dimensions, slot 1 read-only cell state, slot 2 read-write cell state.
func DefaultLayout() *Layout {
	l, err := NewLayout([]Binding{
		{Slot: SlotGridSize, Name: "grid", Visibility: VisibilityCompute | VisibilityVertex, Access: AccessUniform},
		{Slot: SlotCurrentState, Name: "cellStateIn", Visibility: VisibilityCompute | VisibilityVertex, Access: AccessReadOnly},
		{Slot: SlotNextState, Name: "cellStateOut", Visibility: VisibilityCompute, Access: AccessReadWrite},
	})
	if err != nil {
		panic(err)
	}
	return l
}

// Bindings returns a copy of the validated binding list.
func (l *Layout) Bindings() []Binding {
	out := make([]Binding, len(l.bindings))
	copy(out, l.bindings)
	return out
}
