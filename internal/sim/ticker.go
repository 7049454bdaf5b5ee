package sim

import (
	"lifegpu/internal/core"
	"lifegpu/internal/gpu"
)

// Ticker sequences one simulation tick: resolve this tick's bind set, run
// the transition into the next buffer, then advance the counter so every
// later consumer (the render phase included) sees the freshly written
// buffer as current. Ticks never overlap; Tick returns only after the whole
// transition is visible.
type Ticker struct {
	pair   *core.StatePair
	rot    *gpu.Rotator
	engine *Engine
	tick   uint64
}

// NewTicker wires the state pair, rotator and engine into one orchestrator.
func NewTicker(pair *core.StatePair, rot *gpu.Rotator, engine *Engine) *Ticker {
	return &Ticker{pair: pair, rot: rot, engine: engine}
}

// Tick runs one transition and flips the buffer roles.
func (t *Ticker) Tick() {
	set := t.rot.Select(t.tick)
	t.engine.Step(t.pair.Buffer(set.Current), t.pair.Buffer(set.Next))
	t.tick++
}

// Current returns the buffer holding the latest completed generation, the
// one the render phase should sample.
func (t *Ticker) Current() []uint8 {
	return t.pair.Buffer(t.rot.Select(t.tick).Current)
}

// Generation returns the number of completed ticks.
func (t *Ticker) Generation() uint64 { return t.tick }
