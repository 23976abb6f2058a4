// Package debugsvg renders a built Packer to SVG for visual inspection: the
// input outline, the diagonals the monotone partitioner introduced, and the
// edges the triangulator emitted. It is a debug-only tool, never on the
// construction path of a Packer.
package debugsvg

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/phanxgames/poly2mesh"
)

// Options configures the rendered canvas.
type Options struct {
	Width, Height int // canvas size in pixels; defaults to 640x480
	Margin        int // padding around the fitted polygon; default 40
	ShowOutline   bool
	ShowDiagonals bool
	ShowTriangles bool
	ShowIndices   bool
}

// DefaultOptions returns an Options with every layer enabled.
func DefaultOptions() Options {
	return Options{
		Width:         640,
		Height:        480,
		Margin:        40,
		ShowOutline:   true,
		ShowDiagonals: true,
		ShowTriangles: true,
		ShowIndices:   true,
	}
}

// Render draws points (the polygon p was built from) and p's monotone
// pieces and final triangulation into an SVG document.
func Render(points []poly2mesh.Vec2, p *poly2mesh.Packer, opts Options) []byte {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	fit := fitTransform(points, opts)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	if opts.ShowTriangles {
		drawTriangles(canvas, points, p.IndexBuffer(), fit)
	}
	if opts.ShowDiagonals {
		drawDiagonals(canvas, points, p.MonotonePieces(), fit)
	}
	if opts.ShowOutline {
		drawOutline(canvas, points, fit)
	}
	if opts.ShowIndices {
		drawIndices(canvas, points, fit)
	}

	canvas.End()
	return buf.Bytes()
}

// SaveToFile renders points/p and writes the SVG to path with 0644
// permissions.
func SaveToFile(points []poly2mesh.Vec2, p *poly2mesh.Packer, path string, opts Options) error {
	return os.WriteFile(path, Render(points, p, opts), 0644)
}

// fitScreen maps a polygon-space point into canvas pixels.
type fitScreen struct {
	minX, minY float64
	scale      float64
	margin     int
	height     int
}

func (f fitScreen) point(v poly2mesh.Vec2) (int, int) {
	x := int((v.X-f.minX)*f.scale) + f.margin
	y := f.height - (int((v.Y-f.minY)*f.scale) + f.margin)
	return x, y
}

func fitTransform(points []poly2mesh.Vec2, opts Options) fitScreen {
	if len(points) == 0 {
		return fitScreen{scale: 1, margin: opts.Margin, height: opts.Height}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, v := range points[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	availW := float64(opts.Width - 2*opts.Margin)
	availH := float64(opts.Height - 2*opts.Margin)
	scale := availW / spanX
	if s := availH / spanY; s < scale {
		scale = s
	}
	return fitScreen{minX: minX, minY: minY, scale: scale, margin: opts.Margin, height: opts.Height}
}

func drawOutline(canvas *svg.SVG, points []poly2mesh.Vec2, f fitScreen) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, v := range points {
		xs[i], ys[i] = f.point(v)
	}
	canvas.Polygon(xs, ys, "fill:none;stroke:#e2e8f0;stroke-width:2")
}

func drawTriangles(canvas *svg.SVG, points []poly2mesh.Vec2, indices []uint32, f fitScreen) {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := points[indices[i]], points[indices[i+1]], points[indices[i+2]]
		ax, ay := f.point(a)
		bx, by := f.point(b)
		cx, cy := f.point(c)
		canvas.Polygon([]int{ax, bx, cx}, []int{ay, by, cy}, "fill:#4299e1;fill-opacity:0.12;stroke:#4299e1;stroke-width:1")
	}
}

func drawDiagonals(canvas *svg.SVG, points []poly2mesh.Vec2, pieces [][]uint32, f fitScreen) {
	if len(pieces) < 2 {
		return
	}
	// A shared edge between two monotone pieces that is not an edge of the
	// original polygon is a diagonal the partitioner introduced. The
	// original polygon's edges are (i, i+1) for every i; anything else
	// shared is a cut.
	n := len(points)
	isPolygonEdge := func(a, b uint32) bool {
		return (a+1)%uint32(n) == b || (b+1)%uint32(n) == a
	}
	seen := map[[2]uint32]bool{}
	for _, piece := range pieces {
		m := len(piece)
		for i := 0; i < m; i++ {
			a, b := piece[i], piece[(i+1)%m]
			if isPolygonEdge(a, b) {
				continue
			}
			key := [2]uint32{a, b}
			if a > b {
				key = [2]uint32{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			ax, ay := f.point(points[a])
			bx, by := f.point(points[b])
			canvas.Line(ax, ay, bx, by, "stroke:#f6e05e;stroke-width:1.5;stroke-dasharray:4,3")
		}
	}
}

func drawIndices(canvas *svg.SVG, points []poly2mesh.Vec2, f fitScreen) {
	for i, v := range points {
		x, y := f.point(v)
		canvas.Circle(x, y, 3, "fill:#f56565")
		canvas.Text(x+6, y-6, fmt.Sprintf("%d", i), "font-size:10px;font-family:monospace;fill:#cbd5e0")
	}
}
