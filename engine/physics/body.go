package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Body is the moving part of an entity. Collision code only touches the
// components of the axes on which a contact happened.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

func (b Body) String() string {
	return fmt.Sprintf("Body(pos: %v, vel: %v)", b.Position, b.Velocity)
}

// Classification decides the collision cylinder of an actor.
type Classification int

const (
	Standard Classification = iota
	Projectile
)

func (c Classification) String() string {
	switch c {
	case Standard:
		return "standard"
	case Projectile:
		return "projectile"
	}
	return "unknown"
}

func (c Classification) IsValid() bool {
	return c == Standard || c == Projectile
}

func (c Classification) Radius() float32 {
	if c == Projectile {
		return 0.1
	}
	return 0.7
}

func (c Classification) Height() float32 {
	if c == Projectile {
		return 0.1
	}
	return 2.5
}
