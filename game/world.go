package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/voxelworld/engine/physics"
	"github.com/memmaker/voxelworld/engine/util"
	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/pkg/errors"
)

var ErrUnknownEntity = errors.New("unknown entity")

// TickHook runs once per tick after all collisions are resolved. Spawns and
// removals requested from a hook take effect at the end of the tick.
type TickHook func(w *World, dt float32)

// World owns the frozen grid, the entities and the platforms of one level
// and advances them in fixed order.
type World struct {
	grid      *voxel.Grid
	config    PhysicsConfig
	entities  []*Entity
	byID      map[uuid.UUID]*Entity
	platforms []*Platform
	hooks     []TickHook

	gameTime float64
	ticks    uint64
	inTick   bool

	pendingSpawns   []*Entity
	pendingRemovals []uuid.UUID

	timer *util.Timer
}

// NewWorld freezes the grid; the level must be fully built at this point.
func NewWorld(grid *voxel.Grid, config PhysicsConfig) *World {
	grid.Freeze()
	util.LogWorldInfo(fmt.Sprintf("[World] created with grid %s (%d solid cells)", grid.Size().ToString(), grid.SolidCount()))
	return &World{
		grid:   grid,
		config: config,
		byID:   make(map[uuid.UUID]*Entity),
		timer:  util.NewTimer(),
	}
}

func (w *World) Grid() *voxel.Grid {
	return w.grid
}

func (w *World) Config() PhysicsConfig {
	return w.config
}

func (w *World) GameTime() float64 {
	return w.gameTime
}

func (w *World) Ticks() uint64 {
	return w.ticks
}

// Timer holds the duration statistics of the tick phases.
func (w *World) Timer() *util.Timer {
	return w.timer
}

func (w *World) AddTickHook(hook TickHook) {
	w.hooks = append(w.hooks, hook)
}

// Spawn adds the entity, or queues it when called during a tick.
func (w *World) Spawn(entity *Entity) uuid.UUID {
	if w.inTick {
		w.pendingSpawns = append(w.pendingSpawns, entity)
		deferredOperations.WithLabelValues("spawn").Inc()
		return entity.ID
	}
	w.addEntity(entity)
	return entity.ID
}

// Remove deletes the entity, or queues the removal when called during a tick.
func (w *World) Remove(id uuid.UUID) error {
	if _, ok := w.byID[id]; !ok && !w.isPendingSpawn(id) {
		return errors.Wrapf(ErrUnknownEntity, "remove %s", id)
	}
	if w.inTick {
		w.pendingRemovals = append(w.pendingRemovals, id)
		deferredOperations.WithLabelValues("remove").Inc()
		return nil
	}
	w.removeEntity(id)
	return nil
}

func (w *World) Entity(id uuid.UUID) (*Entity, bool) {
	entity, ok := w.byID[id]
	return entity, ok
}

// Entities returns the live entity list in spawn order.
func (w *World) Entities() []*Entity {
	result := make([]*Entity, len(w.entities))
	copy(result, w.entities)
	return result
}

func (w *World) AddPlatform(platform *Platform) {
	w.platforms = append(w.platforms, platform)
}

func (w *World) Platforms() []*Platform {
	return w.platforms
}

// IsGrounded is true when the entity touched ground or a platform top during the last tick.
func (w *World) IsGrounded(id uuid.UUID) bool {
	entity, ok := w.byID[id]
	return ok && w.ticks > 0 && entity.groundedTime == w.gameTime
}

// Jump launches the entity upward and clears its grounded state.
func (w *World) Jump(id uuid.UUID, power float32) error {
	entity, ok := w.byID[id]
	if !ok {
		return errors.Wrapf(ErrUnknownEntity, "jump %s", id)
	}
	entity.Body.Velocity[1] = power
	entity.groundedTime = 0
	entity.groundedPlatform = nil
	return nil
}

// Step advances the world by dt seconds, capped at MaxTickSeconds.
// Platforms move first, then every entity is integrated against the grid,
// then every entity is tested against every platform.
func (w *World) Step(dt float32) {
	if !(dt > 0) {
		util.LogWorldWarning(fmt.Sprintf("[World] ignoring step with dt %v", dt))
		return
	}
	dt = min(dt, w.config.MaxTickSeconds)
	stopTick := w.timer.Start("tick")

	w.inTick = true
	w.gameTime += float64(dt)
	w.ticks++

	stop := w.timer.Start("platforms")
	for _, platform := range w.platforms {
		platform.update(dt, w.config.WaypointReachedDistance)
	}
	stop()

	stop = w.timer.Start("integrate")
	for _, entity := range w.entities {
		if entity.IsAlive() {
			w.integrate(entity, dt)
		}
	}
	stop()

	stop = w.timer.Start("platform_collision")
	for _, platform := range w.platforms {
		for _, entity := range w.entities {
			if entity.IsAlive() {
				w.collidePlatform(platform, entity, dt)
			}
		}
	}
	stop()

	for _, hook := range w.hooks {
		hook(w, dt)
	}

	for _, entity := range w.entities {
		if entity.Class == physics.Projectile && !entity.IsAlive() {
			w.pendingRemovals = append(w.pendingRemovals, entity.ID)
		}
	}
	w.inTick = false
	w.flushPending()

	ticksTotal.Inc()
	entityCount.Set(float64(len(w.entities)))
	tickDuration.Observe(stopTick() / 1000)
}

func (w *World) integrate(entity *Entity, dt float32) {
	body := &entity.Body
	friction := 1 / (1 + dt*w.config.Friction)
	body.Velocity[0] *= friction
	body.Velocity[2] *= friction
	if body.Velocity.Len() <= w.config.StopSpeed {
		body.Velocity = mgl32.Vec3{}
	}
	body.Velocity[1] -= dt * w.config.Gravity

	contacts := physics.Advance(w.grid, body, dt, w.config.MaxSubstepDistance)
	if contacts.Has(physics.Down) {
		entity.groundedTime = w.gameTime
		entity.groundedPlatform = nil
	}

	if body.Position.Y() < w.config.FallOutHeight || math.IsNaN(float64(body.Position.Y())) {
		body.Position[1] = w.config.FallOutHeight
		entity.Health = 0
		util.LogWorldDebug(fmt.Sprintf("[World] %s fell out of the world", entity))
	}
}

func (w *World) collidePlatform(platform *Platform, entity *Entity, dt float32) {
	switch physics.ResolvePlatform(platform.Platform, &entity.Body, entity.Class, dt) {
	case physics.Destroyed:
		entity.Health = 0
	case physics.Standing:
		entity.groundedTime = w.gameTime
		entity.groundedPlatform = platform
	}
}

func (w *World) addEntity(entity *Entity) {
	if _, exists := w.byID[entity.ID]; exists {
		util.LogWorldWarning(fmt.Sprintf("[World] entity %s spawned twice", entity.ID))
		return
	}
	w.entities = append(w.entities, entity)
	w.byID[entity.ID] = entity
	util.LogWorldDebug(fmt.Sprintf("[World] spawned %s", entity))
}

func (w *World) removeEntity(id uuid.UUID) {
	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)
	for i, entity := range w.entities {
		if entity.ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
	util.LogWorldDebug(fmt.Sprintf("[World] removed %s", id))
}

func (w *World) isPendingSpawn(id uuid.UUID) bool {
	for _, entity := range w.pendingSpawns {
		if entity.ID == id {
			return true
		}
	}
	return false
}

// flushPending applies spawns before removals, so an entity spawned and
// removed during the same tick never appears.
func (w *World) flushPending() {
	for _, entity := range w.pendingSpawns {
		w.addEntity(entity)
	}
	for _, id := range w.pendingRemovals {
		w.removeEntity(id)
	}
	w.pendingSpawns = w.pendingSpawns[:0]
	w.pendingRemovals = w.pendingRemovals[:0]
}
