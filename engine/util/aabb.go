package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	center      mgl32.Vec3
	halfExtents mgl32.Vec3 // distance from the center to the max and min corner
}

func NewAABB(center, halfExtents mgl32.Vec3) AABB {
	return AABB{
		center:      center,
		halfExtents: halfExtents,
	}
}

func NewAABBFromMin(min, size mgl32.Vec3) AABB {
	half := size.Mul(0.5)
	return NewAABB(min.Add(half), half)
}

func (a AABB) Min() mgl32.Vec3 {
	return a.center.Sub(a.halfExtents)
}

func (a AABB) Max() mgl32.Vec3 {
	return a.center.Add(a.halfExtents)
}

func (a AABB) Center() mgl32.Vec3 {
	return a.center
}

func (a AABB) HalfExtents() mgl32.Vec3 {
	return a.halfExtents
}

// Inflate grows the box by the given amount on both sides of each axis.
func (a AABB) Inflate(amount mgl32.Vec3) AABB {
	return NewAABB(a.center, a.halfExtents.Add(amount))
}

// ContainsXZ tests the open footprint of the box, ignoring height.
func (a AABB) ContainsXZ(point mgl32.Vec3) bool {
	min, max := a.Min(), a.Max()
	return InRange(point.X(), min.X(), max.X()) && InRange(point.Z(), min.Z(), max.Z())
}

// Contains tests the open interior of the box.
func (a AABB) Contains(point mgl32.Vec3) bool {
	return a.ContainsXZ(point) && InRange(point.Y(), a.Min().Y(), a.Max().Y())
}

func (a AABB) String() string {
	return fmt.Sprintf("AABB(min: %v, max: %v)", a.Min(), a.Max())
}

// InRange is the open interval test min < x < max.
func InRange(x, min, max float32) bool {
	return x > min && x < max
}
