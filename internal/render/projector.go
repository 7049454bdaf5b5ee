// Package render maps grid cells to instanced quad geometry. The projection
// itself is pure math over normalized canvas space; the ebiten-backed
// painter turns it into draw calls.
package render

import (
	"fmt"

	"lifegpu/internal/core"
)

// VertsPerCell and IndicesPerCell describe the fixed quad template
// replicated once per grid cell.
const (
	VertsPerCell   = 4
	IndicesPerCell = 6
)

// Vertex is one projected corner: a position in [0,1] canvas space plus a
// premultiplied color.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Projector positions one quad instance per cell. Dead cells collapse their
// quad to the cell center so they rasterize nothing; live cells fill their
// cell exactly, tiling the canvas without overlap or gap. Color depends only
// on the cell's normalized coordinates, never on its state.
type Projector struct {
	size core.Size
}

// NewProjector validates that the grid's quads fit a 16-bit index buffer.
func NewProjector(size core.Size) (*Projector, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("render: invalid grid size %dx%d", size.W, size.H)
	}
	if size.Cells()*VertsPerCell > 1<<16 {
		return nil, fmt.Errorf("render: %d cells exceed the 16-bit index space", size.Cells())
	}
	return &Projector{size: size}, nil
}

// Size returns the grid dimensions.
func (p *Projector) Size() core.Size { return p.size }

// Indices returns the index buffer covering every instance: two triangles
// per quad. It is built once; only vertex positions change per frame.
func (p *Projector) Indices() []uint16 {
	idx := make([]uint16, 0, p.size.Cells()*IndicesPerCell)
	for i := 0; i < p.size.Cells(); i++ {
		base := uint16(i * VertsPerCell)
		idx = append(idx, base, base+1, base+2, base+2, base+1, base+3)
	}
	return idx
}

// Project writes the four vertices of every instance into dst, which must
// hold Cells()*VertsPerCell entries. Corner order per quad: top-left,
// top-right, bottom-left, bottom-right.
func (p *Projector) Project(cells []uint8, dst []Vertex) error {
	if len(cells) != p.size.Cells() {
		return fmt.Errorf("render: %d cells, want %d", len(cells), p.size.Cells())
	}
	if len(dst) != p.size.Cells()*VertsPerCell {
		return fmt.Errorf("render: %d vertices, want %d", len(dst), p.size.Cells()*VertsPerCell)
	}

	cw := 1 / float32(p.size.W)
	ch := 1 / float32(p.size.H)
	for i, state := range cells {
		x := i % p.size.W
		y := i / p.size.W

		x0, y0 := float32(x)*cw, float32(y)*ch
		x1, y1 := x0+cw, y0+ch
		if state == 0 {
			// Degenerate quad: zero area, nothing rasterizes.
			cx, cy := x0+cw/2, y0+ch/2
			x0, y0, x1, y1 = cx, cy, cx, cy
		}

		r := float32(x) / float32(p.size.W)
		g := float32(y) / float32(p.size.H)
		b := 1 - r

		base := i * VertsPerCell
		dst[base+0] = Vertex{X: x0, Y: y0, R: r, G: g, B: b, A: 1}
		dst[base+1] = Vertex{X: x1, Y: y0, R: r, G: g, B: b, A: 1}
		dst[base+2] = Vertex{X: x0, Y: y1, R: r, G: g, B: b, A: 1}
		dst[base+3] = Vertex{X: x1, Y: y1, R: r, G: g, B: b, A: 1}
	}
	return nil
}
