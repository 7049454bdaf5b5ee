package render

import (
	"testing"

	"lifegpu/internal/core"
)

func project(t *testing.T, w, h int, cells []uint8) []Vertex {
	t.Helper()
	p, err := NewProjector(core.Size{W: w, H: h})
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]Vertex, w*h*VertsPerCell)
	if err := p.Project(cells, dst); err != nil {
		t.Fatal(err)
	}
	return dst
}

func quadArea(q []Vertex) float32 {
	// Twice the area of the two triangles (0,1,2) and (2,1,3).
	cross := func(a, b, c Vertex) float32 {
		return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	}
	abs := func(v float32) float32 {
		if v < 0 {
			return -v
		}
		return v
	}
	return (abs(cross(q[0], q[1], q[2])) + abs(cross(q[2], q[1], q[3]))) / 2
}

func TestDeadCellsHaveZeroArea(t *testing.T) {
	verts := project(t, 4, 4, make([]uint8, 16))
	for i := 0; i < 16; i++ {
		if a := quadArea(verts[i*VertsPerCell : (i+1)*VertsPerCell]); a != 0 {
			t.Fatalf("dead cell %d rasterizes area %f", i, a)
		}
	}
}

func TestLiveCellFillsItsCell(t *testing.T) {
	const w, h = 4, 2
	cells := make([]uint8, w*h)
	cells[1*w+2] = 1 // cell (2,1)
	verts := project(t, w, h, cells)

	q := verts[(1*w+2)*VertsPerCell:]
	if q[0].X != 0.5 || q[0].Y != 0.5 {
		t.Fatalf("top-left corner at (%f,%f), want (0.5,0.5)", q[0].X, q[0].Y)
	}
	if q[3].X != 0.75 || q[3].Y != 1 {
		t.Fatalf("bottom-right corner at (%f,%f), want (0.75,1)", q[3].X, q[3].Y)
	}
	if a := quadArea(q[:VertsPerCell]); a == 0 {
		t.Fatal("live cell has zero area")
	}
}

func TestAdjacentLiveCellsTileWithoutGap(t *testing.T) {
	const w, h = 3, 1
	verts := project(t, w, h, []uint8{1, 1, 1})
	for i := 0; i < w-1; i++ {
		right := verts[i*VertsPerCell+1].X
		left := verts[(i+1)*VertsPerCell].X
		if right != left {
			t.Fatalf("cells %d and %d meet at %f vs %f", i, i+1, right, left)
		}
	}
}

func TestColorIgnoresActivity(t *testing.T) {
	const w, h = 4, 4
	dead := project(t, w, h, make([]uint8, w*h))
	live := make([]uint8, w*h)
	for i := range live {
		live[i] = 1
	}
	lit := project(t, w, h, live)

	for i := 0; i < w*h; i++ {
		d, l := dead[i*VertsPerCell], lit[i*VertsPerCell]
		if d.R != l.R || d.G != l.G || d.B != l.B {
			t.Fatalf("cell %d color depends on state", i)
		}
		x, y := i%w, i/w
		if l.R != float32(x)/w || l.G != float32(y)/h {
			t.Fatalf("cell %d color (%f,%f) not derived from coordinates", i, l.R, l.G)
		}
	}
}

func TestIndexBufferShape(t *testing.T) {
	p, err := NewProjector(core.Size{W: 2, H: 2})
	if err != nil {
		t.Fatal(err)
	}
	idx := p.Indices()
	if len(idx) != 4*IndicesPerCell {
		t.Fatalf("got %d indices, want %d", len(idx), 4*IndicesPerCell)
	}
	for i, v := range idx {
		if int(v) >= 4*VertsPerCell {
			t.Fatalf("index %d references vertex %d out of range", i, v)
		}
	}
}

func TestProjectorRejectsOversizedGrid(t *testing.T) {
	if _, err := NewProjector(core.Size{W: 256, H: 256}); err == nil {
		t.Fatal("expected error for grid past the 16-bit index space")
	}
}
