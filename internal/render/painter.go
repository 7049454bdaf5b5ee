//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegpu/internal/core"
)

// Painter draws the projected instances onto an ebiten image. The vertex and
// index buffers are allocated once; per frame only vertex data is rewritten.
type Painter struct {
	proj  *Projector
	verts []Vertex
	ebi   []ebiten.Vertex
	idx   []uint16
	white *ebiten.Image
}

// NewPainter allocates a painter for the given grid.
func NewPainter(size core.Size) (*Painter, error) {
	proj, err := NewProjector(size)
	if err != nil {
		return nil, err
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Painter{
		proj:  proj,
		verts: make([]Vertex, size.Cells()*VertsPerCell),
		ebi:   make([]ebiten.Vertex, size.Cells()*VertsPerCell),
		idx:   proj.Indices(),
		white: white,
	}, nil
}

// Draw projects cells and renders them scaled to the destination bounds.
func (p *Painter) Draw(dst *ebiten.Image, cells []uint8) error {
	if err := p.proj.Project(cells, p.verts); err != nil {
		return err
	}
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	for i, v := range p.verts {
		p.ebi[i] = ebiten.Vertex{
			DstX:   v.X * w,
			DstY:   v.Y * h,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		}
	}
	dst.DrawTriangles(p.ebi, p.idx, p.white, nil)
	return nil
}
