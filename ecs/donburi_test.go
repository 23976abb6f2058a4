package ecs

import (
	"errors"
	"testing"

	"github.com/phanxgames/poly2mesh"

	"github.com/yohamta/donburi"
)

func square() []poly2mesh.Vec2 {
	return []poly2mesh.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestNewMeshEntity(t *testing.T) {
	world := donburi.NewWorld()
	entity, err := NewMeshEntity(world, square(), 6)
	if err != nil {
		t.Fatalf("NewMeshEntity: %v", err)
	}

	entry := world.Entry(entity)
	if !entry.HasComponent(MeshComponent) {
		t.Fatal("entity was created without a MeshComponent")
	}
	data := donburi.Get[MeshComponentData](entry, MeshComponent)
	numVerts, numElements, _, _ := data.Packer.Counts()
	if numVerts != 4 {
		t.Errorf("numVerts = %d, want 4", numVerts)
	}
	if numElements != 6 {
		t.Errorf("numElements = %d, want 6", numElements)
	}
}

func TestNewMeshEntityPropagatesPreconditionError(t *testing.T) {
	world := donburi.NewWorld()
	_, err := NewMeshEntity(world, square()[:2], 6)
	if !errors.Is(err, poly2mesh.ErrPrecondition) {
		t.Fatalf("err = %v, want ErrPrecondition", err)
	}
}

func TestSetMeshAttribute(t *testing.T) {
	world := donburi.NewWorld()
	entity, err := NewMeshEntity(world, square(), 6)
	if err != nil {
		t.Fatalf("NewMeshEntity: %v", err)
	}

	colors := [][]float32{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0},
	}
	if err := SetMeshAttribute(world, entity, 3, colors); err != nil {
		t.Fatalf("SetMeshAttribute: %v", err)
	}

	entry := world.Entry(entity)
	data := donburi.Get[MeshComponentData](entry, MeshComponent)
	vbo := data.Packer.VertexBuffer()
	for i, want := range colors {
		base := i*6 + 3
		got := vbo[base : base+3]
		for c := range want {
			if got[c] != want[c] {
				t.Errorf("vertex %d channel %d = %v, want %v", i, c, got[c], want[c])
			}
		}
	}
}

func TestSetMeshAttributeMissingComponent(t *testing.T) {
	world := donburi.NewWorld()
	entity := world.Create()

	colors := [][]float32{{1, 0, 0}}
	if err := SetMeshAttribute(world, entity, 3, colors); !errors.Is(err, ErrMissingMeshComponent) {
		t.Fatalf("err = %v, want ErrMissingMeshComponent", err)
	}
}
