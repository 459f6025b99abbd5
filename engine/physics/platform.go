package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelworld/engine/util"
)

// Platform is a moving box that actors can ride on. It never collides with the grid.
type Platform struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3 // half extents
	Velocity mgl32.Vec3
}

func (p Platform) Bounds() util.AABB {
	return util.NewAABB(p.Position, p.Scale)
}

func (p Platform) Top() float32 {
	return p.Position.Y() + p.Scale.Y()
}

type PlatformContact int

const (
	NoPlatformContact PlatformContact = iota
	// Destroyed: a projectile ended up inside the platform.
	Destroyed
	// Standing: the actor landed on top and is carried this tick.
	Standing
	// Snapped: the actor was lifted onto the top without falling onto it.
	Snapped
	SidePushed
)

func (c PlatformContact) String() string {
	switch c {
	case Destroyed:
		return "destroyed"
	case Standing:
		return "standing"
	case Snapped:
		return "snapped"
	case SidePushed:
		return "side_pushed"
	}
	return "none"
}

// ResolvePlatform tests one actor against one platform and mutates the body
// for the first matching case: projectile inside, stand-on band, side overlap.
// The caller applies the returned outcome (killing projectiles, grounding riders).
func ResolvePlatform(platform Platform, body *Body, class Classification, dt float32) PlatformContact {
	radius := class.Radius()
	bounds := platform.Bounds()
	inflated := bounds.Inflate(mgl32.Vec3{radius, 0, radius})
	pos := body.Position
	if !inflated.ContainsXZ(pos) {
		return NoPlatformContact
	}

	minY, maxY := bounds.Min().Y(), bounds.Max().Y()
	y := pos.Y()
	contact := NoPlatformContact
	switch {
	case class == Projectile && util.InRange(y, minY, maxY):
		contact = Destroyed
	case y >= maxY-1 && y < maxY:
		body.Position[1] = maxY
		contact = Snapped
		if body.Velocity.Y() < 0 {
			body.Velocity[1] = 0
			body.Position = body.Position.Add(util.Horizontal(platform.Velocity).Mul(dt))
			contact = Standing
		}
	case y < maxY && y+class.Height() > minY:
		pushOutSideways(bounds, inflated, body)
		contact = SidePushed
	}
	if contact != NoPlatformContact {
		platformContacts.WithLabelValues(contact.String()).Inc()
		util.LogPlatformDebug(fmt.Sprintf("[ResolvePlatform] %s %s against platform at %v -> %v", class, contact, platform.Position, body.Position))
	}
	return contact
}

// pushOutSideways moves the actor to one inflated edge. An actor outside the
// un-inflated footprint goes to the first edge it lies beyond (-X, +X, -Z,
// +Z); an actor inside it goes to the nearest edge, ties in the same order.
func pushOutSideways(bounds, inflated util.AABB, body *Body) {
	x, z := body.Position.X(), body.Position.Z()
	min, max := bounds.Min(), bounds.Max()
	switch {
	case x < min.X():
		body.Position[0] = inflated.Min().X()
		return
	case x > max.X():
		body.Position[0] = inflated.Max().X()
		return
	case z < min.Z():
		body.Position[2] = inflated.Min().Z()
		return
	case z > max.Z():
		body.Position[2] = inflated.Max().Z()
		return
	}

	distances := [4]float32{x - min.X(), max.X() - x, z - min.Z(), max.Z() - z}
	nearest := 0
	for i := 1; i < len(distances); i++ {
		if distances[i] < distances[nearest] {
			nearest = i
		}
	}
	switch nearest {
	case 0:
		body.Position[0] = inflated.Min().X()
	case 1:
		body.Position[0] = inflated.Max().X()
	case 2:
		body.Position[2] = inflated.Min().Z()
	default:
		body.Position[2] = inflated.Max().Z()
	}
}
