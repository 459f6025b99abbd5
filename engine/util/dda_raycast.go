package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/pkg/errors"
)

// MaxRaycastSteps bounds every traversal, so NaN or degenerate directions
// end as a miss instead of looping.
const MaxRaycastSteps = 1000

var ErrZeroDirection = errors.New("raycast direction is zero")

type CubeSide int

const (
	Front CubeSide = iota
	Back
	Left
	Right
	Top
	Bottom
	NoSide
)

func (s CubeSide) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "none"
}

type HitInfo3D struct {
	Distance               float64
	Side                   CubeSide
	Normal                 voxel.Int3
	CollisionWorldPosition mgl32.Vec3
	PreviousGridPosition   voxel.Int3
	CollisionGridPosition  voxel.Int3
	Steps                  int
	Hit                    bool
}

func (d HitInfo3D) String() string {
	if !d.Hit {
		return fmt.Sprintf("miss after %d steps", d.Steps)
	}
	return fmt.Sprintf("hit %s at %.3f through %s face", d.CollisionGridPosition.ToString(), d.Distance, d.Side)
}

// DDARaycast walks the cells pierced by origin + t*direction in order
// (Amanatides & Woo) until stopRay reports a solid cell or t passes radius.
// The direction does not need to be normalised; Distance is in world units.
//
// Cells are tested after every boundary crossing: the cell entered and the
// cell just left. Equal boundary distances are crossed in X, Y, Z order.
func DDARaycast(origin, direction mgl32.Vec3, radius float64, stopRay func(x, y, z int32) bool) (HitInfo3D, error) {
	dx, dy, dz := float64(direction.X()), float64(direction.Y()), float64(direction.Z())
	if dx == 0 && dy == 0 && dz == 0 {
		return HitInfo3D{Side: NoSide}, errors.WithStack(ErrZeroDirection)
	}
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	dx, dy, dz = dx/length, dy/length, dz/length

	ox, oy, oz := float64(origin.X()), float64(origin.Y()), float64(origin.Z())
	ix := int32(math.Floor(ox))
	iy := int32(math.Floor(oy))
	iz := int32(math.Floor(oz))

	stepX, txDelta, txMax := axisSetup(ox, ix, dx)
	stepY, tyDelta, tyMax := axisSetup(oy, iy, dy)
	stepZ, tzDelta, tzMax := axisSetup(oz, iz, dz)

	t := 0.0
	for steps := 1; steps <= MaxRaycastSteps; steps++ {
		previous := voxel.Int3{X: ix, Y: iy, Z: iz}
		var side CubeSide
		var normal voxel.Int3
		var next float64
		switch {
		case txMax <= tyMax && txMax <= tzMax:
			next = txMax
			if !(next <= radius) {
				return HitInfo3D{Side: NoSide, Steps: steps}, nil
			}
			ix += stepX
			txMax += txDelta
			normal = voxel.Int3{X: -stepX}
			side = Left
			if stepX < 0 {
				side = Right
			}
		case tyMax <= tzMax:
			next = tyMax
			if !(next <= radius) {
				return HitInfo3D{Side: NoSide, Steps: steps}, nil
			}
			iy += stepY
			tyMax += tyDelta
			normal = voxel.Int3{Y: -stepY}
			side = Bottom
			if stepY < 0 {
				side = Top
			}
		default:
			next = tzMax
			if !(next <= radius) {
				return HitInfo3D{Side: NoSide, Steps: steps}, nil
			}
			iz += stepZ
			tzMax += tzDelta
			normal = voxel.Int3{Z: -stepZ}
			side = Back
			if stepZ < 0 {
				side = Front
			}
		}
		t = next

		current := voxel.Int3{X: ix, Y: iy, Z: iz}
		hitCell := current
		hit := stopRay(ix, iy, iz)
		if !hit && stopRay(previous.X, previous.Y, previous.Z) {
			hit = true
			hitCell = previous
		}
		if hit {
			return HitInfo3D{
				Hit:                    true,
				Distance:               t,
				Side:                   side,
				Normal:                 normal,
				CollisionWorldPosition: mgl32.Vec3{float32(ox + dx*t), float32(oy + dy*t), float32(oz + dz*t)},
				PreviousGridPosition:   previous,
				CollisionGridPosition:  hitCell,
				Steps:                  steps,
			}, nil
		}
	}
	LogRaycastWarning(fmt.Sprintf("[DDARaycast] gave up after %d steps from %v along %v", MaxRaycastSteps, origin, direction))
	return HitInfo3D{Side: NoSide, Steps: MaxRaycastSteps}, nil
}

// axisSetup returns the cell step, the distance needed to cross one cell and
// the distance to the first boundary along one axis of a unit direction.
func axisSetup(start float64, cell int32, dir float64) (int32, float64, float64) {
	switch {
	case dir > 0:
		return 1, 1 / dir, (float64(cell) + 1 - start) / dir
	case dir < 0:
		return -1, -1 / dir, (start - float64(cell)) / -dir
	}
	return 0, math.Inf(1), math.Inf(1)
}

// RaycastGrid is DDARaycast against the solid cells of a grid.
func RaycastGrid(grid *voxel.Grid, origin, direction mgl32.Vec3, radius float64) (HitInfo3D, error) {
	return DDARaycast(origin, direction, radius, grid.IsSolidBlockAt)
}
