package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelworld/engine/util"
	"github.com/memmaker/voxelworld/engine/voxel"
)

// SolidQuery answers whether a grid cell blocks movement. *voxel.Grid implements it.
type SolidQuery interface {
	IsSolidBlockAt(x, y, z int32) bool
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return "z"
}

type Direction int

const (
	Down Direction = iota
	Up
	West
	East
	North
	South
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case West:
		return "west"
	case East:
		return "east"
	case North:
		return "north"
	}
	return "south"
}

// Contacts is a bit set of the directions that were blocked during a resolve.
type Contacts uint8

func (c Contacts) Has(d Direction) bool {
	return c&(1<<d) != 0
}

func (c Contacts) with(d Direction) Contacts {
	return c | 1<<d
}

func (c Contacts) String() string {
	if c == 0 {
		return "none"
	}
	result := ""
	for d := Down; d <= South; d++ {
		if c.Has(d) {
			if result != "" {
				result += "|"
			}
			result += d.String()
		}
	}
	return result
}

// AxisOrder picks the order in which the axes are resolved from the
// magnitudes of the velocity. Equal magnitudes never favour X.
func AxisOrder(velocity mgl32.Vec3) [3]Axis {
	adx := abs32(velocity.X())
	ady := abs32(velocity.Y())
	adz := abs32(velocity.Z())
	if adx > adz {
		if adx > ady {
			return [3]Axis{AxisX, AxisY, AxisZ}
		}
		return [3]Axis{AxisY, AxisX, AxisZ}
	}
	if adz > ady {
		return [3]Axis{AxisZ, AxisY, AxisX}
	}
	return [3]Axis{AxisY, AxisZ, AxisX}
}

// DirectionOf is the side of the body that is tested on an axis.
// A resting body tests up, east and south.
func DirectionOf(axis Axis, velocity mgl32.Vec3) Direction {
	switch axis {
	case AxisX:
		if velocity.X() < 0 {
			return West
		}
		return East
	case AxisY:
		if velocity.Y() < 0 {
			return Down
		}
		return Up
	}
	if velocity.Z() > 0 {
		return North
	}
	return South
}

// sweepBox is the block of cells scanned for one direction, as offsets from
// the body position, together with the loop order and the pushback applied
// on the major axis.
type sweepBox struct {
	order    [3]Axis
	start    mgl32.Vec3
	end      mgl32.Vec3
	pushback float32
}

var (
	yMajor = [3]Axis{AxisY, AxisX, AxisZ}
	xMajor = [3]Axis{AxisX, AxisY, AxisZ}
	zMajor = [3]Axis{AxisZ, AxisX, AxisY}
)

func boxFor(direction Direction, velocity mgl32.Vec3, dt float32) sweepBox {
	switch direction {
	case Down:
		return sweepBox{order: yMajor, start: mgl32.Vec3{-0.8, 1 - dt*velocity.Y(), -0.8}, end: mgl32.Vec3{0.8, 0, 0.8}, pushback: 1}
	case Up:
		return sweepBox{order: yMajor, start: mgl32.Vec3{-0.8, 0, -0.8}, end: mgl32.Vec3{0.8, 3, 0.8}, pushback: 1}
	case West:
		return sweepBox{order: xMajor, start: mgl32.Vec3{-3, 3, -2}, end: mgl32.Vec3{-3, 5, 2}, pushback: 4}
	case East:
		return sweepBox{order: xMajor, start: mgl32.Vec3{3, 3, -2}, end: mgl32.Vec3{3, 5, 2}, pushback: -3}
	case North:
		return sweepBox{order: zMajor, start: mgl32.Vec3{-2, 3, 3}, end: mgl32.Vec3{2, 5, 3}, pushback: -3}
	}
	return sweepBox{order: zMajor, start: mgl32.Vec3{-2, 3, -3}, end: mgl32.Vec3{2, 5, -3}, pushback: 4}
}

// truncCell converts a world position to cell coordinates rounding toward zero.
func truncCell(pos mgl32.Vec3) voxel.Int3 {
	return voxel.Int3{X: int32(pos.X()), Y: int32(pos.Y()), Z: int32(pos.Z())}
}

// ResolveGridCollision resolves the body against the grid one axis at a time,
// in AxisOrder. Each axis stops at its first solid cell: the position on that
// axis is set to the cell plus the direction's pushback and the velocity on
// that axis becomes zero. dt only widens the downward scan.
func ResolveGridCollision(grid SolidQuery, body *Body, dt float32) Contacts {
	var contacts Contacts
	for _, axis := range AxisOrder(body.Velocity) {
		direction := DirectionOf(axis, body.Velocity)
		if resolveDirection(grid, body, direction, boxFor(direction, body.Velocity, dt)) {
			contacts = contacts.with(direction)
			gridContacts.WithLabelValues(direction.String()).Inc()
		}
	}
	return contacts
}

func resolveDirection(grid SolidQuery, body *Body, direction Direction, box sweepBox) bool {
	starts := truncCell(body.Position.Add(box.start))
	ends := truncCell(body.Position.Add(box.end))
	deltas := voxel.Int3{
		X: voxel.Signum(ends.X - starts.X),
		Y: voxel.Signum(ends.Y - starts.Y),
		Z: voxel.Signum(ends.Z - starts.Z),
	}

	major, middle, minor := box.order[0], box.order[1], box.order[2]
	var current [3]int32
	for current[major] = starts.Component(int(major)); ; current[major] += deltas.Component(int(major)) {
		for current[middle] = starts.Component(int(middle)); ; current[middle] += deltas.Component(int(middle)) {
			for current[minor] = starts.Component(int(minor)); ; current[minor] += deltas.Component(int(minor)) {
				if grid.IsSolidBlockAt(current[0], current[1], current[2]) {
					body.Position[major] = float32(current[major]) + box.pushback
					body.Velocity[major] = 0
					util.LogPhysicsDebug(fmt.Sprintf("[ResolveGridCollision] %s contact at (%d, %d, %d), pushed to %v", direction, current[0], current[1], current[2], body.Position))
					return true
				}
				if current[minor] == ends.Component(int(minor)) {
					break
				}
			}
			if current[middle] == ends.Component(int(middle)) {
				break
			}
		}
		if current[major] == ends.Component(int(major)) {
			break
		}
	}
	return false
}

// MaxSubsteps bounds the work of one Advance call. Faster bodies are slowed
// down to MaxSubsteps * maxStep per call.
const MaxSubsteps = 256

// Advance moves the body by velocity*dt in substeps that cover at most
// maxStep units on every axis and resolves grid collisions after each one,
// so fast bodies cannot skip over a solid cell.
func Advance(grid SolidQuery, body *Body, dt, maxStep float32) Contacts {
	if dt <= 0 {
		return ResolveGridCollision(grid, body, dt)
	}
	if maxStep <= 0 {
		maxStep = 1
	}
	longest := max(abs32(body.Velocity.X()), abs32(body.Velocity.Y()), abs32(body.Velocity.Z())) * dt
	substeps := 1
	if longest > maxStep {
		if limit := maxStep * MaxSubsteps; longest > limit {
			body.Velocity = body.Velocity.Mul(limit / longest)
			util.LogPhysicsDebug(fmt.Sprintf("[Advance] clamped %v to %v per tick", longest, limit))
			longest = limit
		}
		substeps = min(int(math.Ceil(float64(longest/maxStep))), MaxSubsteps)
	}
	subDt := dt / float32(substeps)

	var contacts Contacts
	for i := 0; i < substeps; i++ {
		body.Position = body.Position.Add(body.Velocity.Mul(subDt))
		contacts |= ResolveGridCollision(grid, body, subDt)
	}
	substepsPerAdvance.Observe(float64(substeps))
	return contacts
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
