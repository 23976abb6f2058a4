package poly2mesh

// Option configures a Packer at construction time.
type Option func(*Packer)

// WithLogger injects a debug sink that receives a trace of the
// partitioner's split/merge decisions and of the triangulator's aborted
// fans. The default is silent.
func WithLogger(l Logger) Option {
	return func(p *Packer) { p.log = l }
}

// Packer owns the interleaved vertex buffer and element buffer for one
// triangulated polygon. Position occupies columns 0-2 of every row (z is
// always 0); attribute columns are attached with [Packer.SetAttribute] at
// caller-chosen offsets.
//
// A Packer is not safe for concurrent use; construction and every mutation
// are synchronous and leave no partially-written state observable to the
// caller.
type Packer struct {
	n      int
	stride int
	vbo    []float32
	ibo    []uint32
	rings  []ring
	log    Logger
}

// NewPacker triangulates the polygon ring described by points (length n,
// interpreted cyclically, orientation as given — the kernel does not
// validate simplicity or reorient) and returns a Packer with the position
// columns filled and every attribute column zeroed.
//
// stride must be at least 3; n must be at least 3. Returns
// [ErrPrecondition] or [ErrDegenerateGeometry] on invalid input.
func NewPacker(points []Vec2, stride int, opts ...Option) (*Packer, error) {
	n := len(points)
	if n < 3 {
		return nil, preconditionf("polygon has %d vertices, need >= 3", n)
	}
	if stride < 3 {
		return nil, preconditionf("stride %d is below the minimum of 3", stride)
	}

	p := &Packer{n: n, stride: stride, log: noopLogger{}}
	for _, opt := range opts {
		opt(p)
	}

	c := make(coords, n)
	copy(c, points)

	outer := make(ring, n)
	for i := range outer {
		outer[i] = i
	}

	monotoneRings, err := partition(outer, c, p.log)
	if err != nil {
		return nil, err
	}

	numElements := 3 * (n - 2)
	ibo := make([]uint32, numElements)
	cursor := 0
	for _, r := range monotoneRings {
		cursor = triangulate(r, c, ibo, cursor, p.log)
	}
	if cursor != numElements {
		internalInvariant("triangulation wrote %d indices, expected %d", cursor, numElements)
	}

	vbo := make([]float32, n*stride)
	for i, pt := range points {
		base := i * stride
		vbo[base] = float32(pt.X)
		vbo[base+1] = float32(pt.Y)
		vbo[base+2] = 0
	}

	p.vbo = vbo
	p.ibo = ibo
	p.rings = monotoneRings
	return p, nil
}

// MonotonePieces returns the vertex indices of each y-monotone ring the
// partitioner produced, in partition order. It exists for debugging and
// visualization tools (see debugsvg); callers that only need the final
// triangulation should use [Packer.IndexBuffer].
func (p *Packer) MonotonePieces() [][]uint32 {
	pieces := make([][]uint32, len(p.rings))
	for i, r := range p.rings {
		piece := make([]uint32, len(r))
		for j, idx := range r {
			piece[j] = uint32(idx)
		}
		pieces[i] = piece
	}
	return pieces
}

// SetAttribute writes column (one row of width floats per vertex, n rows)
// into every vertex's [offset, offset+width) slice of the interleaved
// buffer. Offset must be >= 3 (columns 0-2 are position) and
// offset+width must not exceed the stride. Setting the same slice twice
// overwrites it; the last write wins and the buffer is never resized.
// Returns p for chaining.
func (p *Packer) SetAttribute(offset int, column [][]float32) (*Packer, error) {
	if len(column) != p.n {
		return nil, preconditionf("attribute column has %d rows, expected %d", len(column), p.n)
	}
	width := 0
	if len(column) > 0 {
		width = len(column[0])
	}
	if offset < 3 {
		return nil, preconditionf("attribute offset %d overlaps the position columns (0-2)", offset)
	}
	if offset+width > p.stride {
		return nil, preconditionf("attribute at offset %d width %d exceeds stride %d", offset, width, p.stride)
	}

	for i, row := range column {
		if len(row) != width {
			return nil, preconditionf("attribute row %d has width %d, expected %d", i, len(row), width)
		}
	}
	for i, row := range column {
		base := i*p.stride + offset
		copy(p.vbo[base:base+width], row)
	}
	return p, nil
}

// VertexBuffer returns a read-only view over the n*stride interleaved
// floats. The caller borrows this slice for the lifetime of the Packer and
// must not mutate it.
func (p *Packer) VertexBuffer() []float32 { return p.vbo }

// IndexBuffer returns a read-only view over the 3*(n-2) element indices,
// in the order the monotone triangulator emitted them.
func (p *Packer) IndexBuffer() []uint32 { return p.ibo }

// Counts returns (vertex count, index count, vertex buffer size in bytes,
// index buffer size in bytes).
func (p *Packer) Counts() (numVerts, numElements, vertexBytes, indexBytes int) {
	return p.n, len(p.ibo), len(p.vbo) * 4, len(p.ibo) * 4
}
