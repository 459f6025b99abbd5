package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/voxelworld/engine/physics"
)

const DefaultHealth = 100

// Entity is anything that moves through the grid and collides with platforms.
type Entity struct {
	ID     uuid.UUID
	Name   string
	Body   physics.Body
	Class  physics.Classification
	Health float32

	groundedTime     float64
	groundedPlatform *Platform
}

func NewEntity(name string, position mgl32.Vec3, class physics.Classification) *Entity {
	return &Entity{
		ID:     uuid.New(),
		Name:   name,
		Body:   physics.Body{Position: position},
		Class:  class,
		Health: DefaultHealth,
	}
}

func (e *Entity) Position() mgl32.Vec3 {
	return e.Body.Position
}

func (e *Entity) Velocity() mgl32.Vec3 {
	return e.Body.Velocity
}

func (e *Entity) IsAlive() bool {
	return e.Health > 0
}

// GroundedPlatform is the platform the entity last landed on, nil after a jump
// or a landing on the grid.
func (e *Entity) GroundedPlatform() *Platform {
	return e.groundedPlatform
}

// Center is the middle of the collision cylinder.
func (e *Entity) Center() mgl32.Vec3 {
	return e.Body.Position.Add(mgl32.Vec3{0, e.Class.Height() / 2, 0})
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s(%s, %s, hp: %.0f) at %v", e.Name, e.ID.String()[:8], e.Class, e.Health, e.Body.Position)
}
