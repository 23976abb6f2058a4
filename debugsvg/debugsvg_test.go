package debugsvg

import (
	"strings"
	"testing"

	"github.com/phanxgames/poly2mesh"
)

func square() []poly2mesh.Vec2 {
	return []poly2mesh.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestRenderProducesValidSVG(t *testing.T) {
	pts := square()
	p, err := poly2mesh.NewPacker(pts, 3)
	if err != nil {
		t.Fatalf("NewPacker: %v", err)
	}

	data := Render(pts, p, DefaultOptions())
	out := string(data)
	if !strings.Contains(out, "<svg") {
		t.Error("output missing <svg> tag")
	}
	if !strings.Contains(out, "</svg>") {
		t.Error("output missing closing </svg> tag")
	}
}

func TestRenderAppliesDefaultsForZeroOptions(t *testing.T) {
	pts := square()
	p, err := poly2mesh.NewPacker(pts, 3)
	if err != nil {
		t.Fatalf("NewPacker: %v", err)
	}

	data := Render(pts, p, Options{})
	if len(data) == 0 {
		t.Error("Render with zero-value Options returned no data")
	}
}

func TestRenderLayersCanBeDisabledIndependently(t *testing.T) {
	pts := square()
	p, err := poly2mesh.NewPacker(pts, 3)
	if err != nil {
		t.Fatalf("NewPacker: %v", err)
	}

	withAll := Render(pts, p, DefaultOptions())
	noTriangles := Render(pts, p, Options{Width: 640, Height: 480, Margin: 40, ShowOutline: true, ShowDiagonals: true, ShowIndices: true})
	if len(noTriangles) >= len(withAll) {
		t.Errorf("disabling triangles did not shrink output: %d vs %d", len(noTriangles), len(withAll))
	}
}
