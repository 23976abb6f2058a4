// Package ecs provides a Donburi ECS adapter for poly2mesh.
package ecs

import (
	"errors"

	"github.com/phanxgames/poly2mesh"

	"github.com/yohamta/donburi"
)

// ErrMissingMeshComponent is returned by SetMeshAttribute when the given
// entity was never constructed with NewMeshEntity.
var ErrMissingMeshComponent = errors.New("ecs: entity has no MeshComponent")

// MeshComponentData is one entity's triangulated polygon: the Packer owns
// the interleaved vertex buffer and element buffer a renderer uploads to
// the GPU.
type MeshComponentData struct {
	Packer *poly2mesh.Packer
}

// MeshComponent is the Donburi component type for MeshComponentData.
// Systems that render or re-skin meshes query entities by this type.
var MeshComponent = donburi.NewComponentType[MeshComponentData]()

// NewMeshEntity triangulates points at the given stride and stores the
// resulting Packer on a fresh entity's MeshComponent. Options are the same
// [poly2mesh.Option] values NewPacker accepts.
func NewMeshEntity(world donburi.World, points []poly2mesh.Vec2, stride int, opts ...poly2mesh.Option) (donburi.Entity, error) {
	packer, err := poly2mesh.NewPacker(points, stride, opts...)
	if err != nil {
		return 0, err
	}
	entity := world.Create(MeshComponent)
	donburi.SetValue(world.Entry(entity), MeshComponent, MeshComponentData{Packer: packer})
	return entity, nil
}

// SetMeshAttribute writes column into entity's mesh at offset, in place,
// via the entity's Packer.SetAttribute. It returns an error if entity has
// no MeshComponent or the attribute write itself fails.
func SetMeshAttribute(world donburi.World, entity donburi.Entity, offset int, column [][]float32) error {
	entry := world.Entry(entity)
	if !entry.HasComponent(MeshComponent) {
		return ErrMissingMeshComponent
	}
	data := donburi.Get[MeshComponentData](entry, MeshComponent)
	_, err := data.Packer.SetAttribute(offset, column)
	return err
}
