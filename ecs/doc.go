// Package ecs provides a Donburi ECS adapter for poly2mesh.
//
// The primary adapter is [MeshComponent], which stores one entity's
// triangulated polygon as a [poly2mesh.Packer]. [NewMeshEntity] triangulates
// a polygon and attaches it to a fresh entity; [SetMeshAttribute] writes an
// attribute column into an existing entity's mesh without re-triangulating.
//
// Usage:
//
//	world := donburi.NewWorld()
//	e, err := ecs.NewMeshEntity(world, polygon, 6)
//	mesh := donburi.Get[ecs.MeshComponentData](world.Entry(e), ecs.MeshComponent)
//	// upload mesh.Packer.VertexBuffer() / mesh.Packer.IndexBuffer() to the GPU
package ecs
