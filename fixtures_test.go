package poly2mesh

// demoPolygon is a ten-vertex non-convex sample shape, reused by several
// unit tests.
var demoPolygon = []Vec2{
	{X: 0, Y: 0},
	{X: 144, Y: 0},
	{X: 144, Y: -72},
	{X: 72, Y: -72},
	{X: 120, Y: -48},
	{X: 48, Y: -12},
	{X: 24, Y: -24},
	{X: 72, Y: -48},
	{X: 24, Y: -72},
	{X: 0, Y: -72},
}

// demoColors is the ten-row color attribute from the same fixture,
// originally attached at offset 3 of a stride-6 buffer.
var demoColors = [][]float32{
	{0.2, 0.0, 0.8},
	{0.2, 0.0, 0.8},
	{1.0, 0.0, 0.8},
	{1.0, 1.0, 0.0},
	{1.0, 0.0, 0.8},
	{1.0, 0.0, 0.8},
	{1.0, 0.0, 0.8},
	{1.0, 0.0, 0.8},
	{1.0, 0.0, 0.8},
	{1.0, 0.0, 0.8},
}

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	if a > b {
		return a-b < eps
	}
	return b-a < eps
}

// signedArea computes the shoelace area of a ring of points, signed
// according to winding (positive for CCW under a Y-up convention).
func signedArea(points []Vec2) float64 {
	sum := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}

// triangleArea computes the signed area of triangle (a,b,c).
func triangleArea(a, b, c Vec2) float64 {
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}
