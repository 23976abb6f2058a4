// Package poly2mesh triangulates simple 2D polygons into indexed triangle
// lists ready for upload to a GPU vertex/index buffer pair.
//
// The kernel is a two-phase sweep: the monotone partitioner splits an
// arbitrary simple polygon into y-monotone sub-rings, and the triangulator
// fans each sub-ring into triangles. [Packer] drives both phases and owns
// the interleaved vertex buffer (position plus caller-declared attribute
// columns) and the resulting element buffer.
//
// # Quick start
//
//	p, err := poly2mesh.NewPacker([]poly2mesh.Vec2{
//		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
//	}, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	vbo := p.VertexBuffer() // 4*3 float32
//	ibo := p.IndexBuffer()  // 2*3 uint32
//
// Attribute columns (color, texcoord, normal, ...) are attached after
// construction with [Packer.SetAttribute] at a caller-chosen stride offset.
//
// Rendering, windowing, input, and shader management are explicitly out of
// scope — see ecs/ and debugsvg/ for collaborators that consume a built
// [Packer].
package poly2mesh
