package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func EucledianDistance3D(one, two mgl32.Vec3) float32 {
	return one.Sub(two).Len()
}

// Horizontal drops the Y component.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// LineIntersectSphere returns the distance from start to the first point
// where the segment start-end touches the sphere, or false if it misses.
func LineIntersectSphere(center mgl32.Vec3, radius float32, start, end mgl32.Vec3) (float32, bool) {
	q := start.Sub(center)
	u := end.Sub(start)
	length := u.Len()
	if length == 0 {
		return 0, false
	}
	u = u.Mul(1 / length)

	b := float64(2 * u.Dot(q))
	c := float64(q.Dot(q) - radius*radius)
	d := b*b - 4*c
	if d < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(d)
	exit := (-b + sqrtD) / 2
	entry := (-b - sqrtD) / 2
	switch {
	case entry >= 0 && entry < float64(length):
		return float32(entry), true
	case entry < 0 && exit >= 0:
		// start is inside the sphere
		return 0, true
	}
	return 0, false
}
