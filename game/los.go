package game

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/voxelworld/engine/util"
	"github.com/memmaker/voxelworld/engine/voxel"
)

// Raycast casts against the solid cells of the world grid.
func (w *World) Raycast(origin, direction mgl32.Vec3, radius float64) (util.HitInfo3D, error) {
	hit, err := util.RaycastGrid(w.grid, origin, direction, radius)
	if err != nil {
		return hit, err
	}
	if hit.Hit {
		raycasts.WithLabelValues("hit").Inc()
		util.LogRaycastDebug(fmt.Sprintf("[World] raycast from %v: %s", origin, hit))
	} else {
		raycasts.WithLabelValues("miss").Inc()
	}
	return hit, nil
}

// HasLineOfSight is true when no solid cell lies between the two points.
func (w *World) HasLineOfSight(from, to mgl32.Vec3) bool {
	direction := to.Sub(from)
	distance := float64(direction.Len())
	if distance == 0 {
		return !w.grid.IsSolidBlockAt(voxelOf(from))
	}
	hit, err := w.Raycast(from, direction, distance)
	return err == nil && !hit.Hit
}

// CanSee tests the line from the observer's eyes to the center of the target.
func (w *World) CanSee(observer, target *Entity) bool {
	return w.HasLineOfSight(eyePosition(observer), target.Center())
}

type EntityHit struct {
	Entity   *Entity
	Distance float32
}

// EntitiesAlongRay returns the entities whose bounding sphere the segment
// start-end touches before it reaches a solid cell, nearest first.
func (w *World) EntitiesAlongRay(start, end mgl32.Vec3, exclude uuid.UUID) []EntityHit {
	length := end.Sub(start).Len()
	if length == 0 {
		return nil
	}
	if hit, err := w.Raycast(start, end.Sub(start), float64(length)); err == nil && hit.Hit {
		length = float32(hit.Distance)
		end = start.Add(end.Sub(start).Normalize().Mul(length))
	}

	result := make([]EntityHit, 0)
	for _, entity := range w.entities {
		if entity.ID == exclude || !entity.IsAlive() {
			continue
		}
		radius := max(entity.Class.Radius(), entity.Class.Height()/2)
		if distance, ok := util.LineIntersectSphere(entity.Center(), radius, start, end); ok {
			result = append(result, EntityHit{Entity: entity, Distance: distance})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})
	return result
}

func eyePosition(entity *Entity) mgl32.Vec3 {
	return entity.Body.Position.Add(mgl32.Vec3{0, entity.Class.Height() * 0.9, 0})
}

func voxelOf(position mgl32.Vec3) (int32, int32, int32) {
	cell := voxel.ToGridInt3(position)
	return cell.X, cell.Y, cell.Z
}
