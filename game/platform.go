package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/voxelworld/engine/physics"
)

// Platform is a box that moves along a closed loop of waypoints.
// Without waypoints it stands still.
type Platform struct {
	physics.Platform
	ID        uuid.UUID
	Waypoints []mgl32.Vec3
	Speed     float32

	waypointIndex int
}

func NewPlatform(position, scale mgl32.Vec3, speed float32, waypoints ...mgl32.Vec3) *Platform {
	return &Platform{
		Platform:  physics.Platform{Position: position, Scale: scale},
		ID:        uuid.New(),
		Waypoints: waypoints,
		Speed:     speed,
	}
}

func (p *Platform) CurrentWaypoint() (mgl32.Vec3, bool) {
	if len(p.Waypoints) == 0 {
		return mgl32.Vec3{}, false
	}
	return p.Waypoints[p.waypointIndex], true
}

// update moves the platform toward its waypoint without overshooting it and
// derives the velocity from the distance covered, so riders are carried by
// exactly the platform's motion.
func (p *Platform) update(dt, reachedDistance float32) {
	waypoint, ok := p.CurrentWaypoint()
	if !ok || dt <= 0 {
		p.Velocity = mgl32.Vec3{}
		return
	}
	if p.Position.Sub(waypoint).Len() < reachedDistance {
		p.waypointIndex = (p.waypointIndex + 1) % len(p.Waypoints)
		waypoint = p.Waypoints[p.waypointIndex]
	}

	toWaypoint := waypoint.Sub(p.Position)
	distance := toWaypoint.Len()
	if distance == 0 {
		p.Velocity = mgl32.Vec3{}
		return
	}
	step := min(p.Speed*dt, distance)
	p.Velocity = toWaypoint.Mul(step / distance / dt)
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
}
