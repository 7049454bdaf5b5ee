// Package sim implements the double-buffered Game of Life transition engine.
// Each step is an unordered parallel map over the cell index space: the
// current buffer is an immutable snapshot and every cell of the next buffer
// is written by exactly one invocation, so no synchronization beyond the
// final join is needed.
package sim

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifegpu/internal/core"
)

// DefaultBlockSize is the default edge length of one dispatch block.
const DefaultBlockSize = 8

// Rule applies the fixed transition table: a cell with exactly 3 live
// neighbors becomes alive, with exactly 2 it keeps its state, otherwise it
// dies. Pure and total.
func Rule(liveNeighbors int, self uint8) uint8 {
	switch liveNeighbors {
	case 2:
		return self
	case 3:
		return 1
	default:
		return 0
	}
}

// Engine evaluates one transition step across the whole grid, dispatched in
// square blocks so per-goroutine overhead stays independent of grid size.
type Engine struct {
	size  core.Size
	block int
}

// NewEngine constructs an engine for the given grid, dispatching in
// blockSize x blockSize units.
func NewEngine(size core.Size, blockSize int) (*Engine, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("sim: invalid grid size %dx%d", size.W, size.H)
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("sim: invalid block size %d", blockSize)
	}
	return &Engine{size: size, block: blockSize}, nil
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.size }

// Step computes the next generation from cur into nxt. The two slices must
// be distinct buffers of length W*H; cur is never written and nxt is never
// read. Step returns only after every block has finished, so callers may
// treat the whole write as visible once it returns.
func (e *Engine) Step(cur, nxt []uint8) {
	w, h := e.size.W, e.size.H
	blocksX := (w + e.block - 1) / e.block
	blocksY := (h + e.block - 1) / e.block

	var g errgroup.Group
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			x0, y0 := bx*e.block, by*e.block
			g.Go(func() error {
				e.stepBlock(cur, nxt, x0, y0)
				return nil
			})
		}
	}
	// Block invocations never error; Wait is purely the ordering barrier.
	_ = g.Wait()
}

// stepBlock evaluates one block. Coordinates past the grid edge are
// skipped rather than wrapped, so partial edge blocks stay in bounds.
func (e *Engine) stepBlock(cur, nxt []uint8, x0, y0 int) {
	w, h := e.size.W, e.size.H
	for y := y0; y < y0+e.block; y++ {
		if y >= h {
			return
		}
		for x := x0; x < x0+e.block; x++ {
			if x >= w {
				break
			}
			idx := e.size.Index(x, y)
			nxt[idx] = Rule(e.liveNeighbors(cur, x, y), cur[idx])
		}
	}
}

// liveNeighbors counts live cells among the 8 toroidally adjacent ones.
func (e *Engine) liveNeighbors(cur []uint8, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := e.size.Wrap(x+dx, y+dy)
			n += int(cur[e.size.Index(nx, ny)])
		}
	}
	return n
}
