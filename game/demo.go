package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelworld/engine/physics"
	"github.com/memmaker/voxelworld/engine/voxel"
)

// DemoLevel is a small test arena: a grass floor, a stone wall, a pillar
// and a platform shuttling between two points above the floor.
func DemoLevel() LevelFile {
	grid := voxel.NewGrid(64, 32, 64)
	grid.FillBox(voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.Int3{X: 63, Y: 2, Z: 63}, voxel.TILE_STONE)
	grid.SetFloorAtHeight(3, voxel.TILE_DARK_GRASS)
	grid.FillBox(voxel.Int3{X: 40, Y: 4, Z: 8}, voxel.Int3{X: 40, Y: 12, Z: 56}, voxel.TILE_DARK_STONE)
	grid.FillBox(voxel.Int3{X: 20, Y: 4, Z: 20}, voxel.Int3{X: 22, Y: 16, Z: 22}, voxel.TILE_STONE)

	spawn := grid.GroundBelow(voxel.Int3{X: 10, Y: 30, Z: 32}).ToBlockCenterVec3()
	config := DefaultPhysicsConfig()
	return LevelFile{
		Name: "demo",
		Grid: grid.Data(),
		Platforms: []PlatformDefinition{{
			Position: NewVec3Tag(mgl32.Vec3{10, 8, 44}),
			Scale:    NewVec3Tag(mgl32.Vec3{2, 0.5, 2}),
			Speed:    config.PlatformSpeed,
			Waypoints: []Vec3Tag{
				NewVec3Tag(mgl32.Vec3{10, 8, 44}),
				NewVec3Tag(mgl32.Vec3{30, 8, 44}),
			},
		}},
		Spawns: []SpawnPoint{
			{Name: "hero", Position: NewVec3Tag(spawn), Class: int32(physics.Standard)},
			{Name: "rider", Position: NewVec3Tag(mgl32.Vec3{10, 9, 44}), Class: int32(physics.Standard)},
			{Name: "bolt", Position: NewVec3Tag(mgl32.Vec3{12, 12, 32}), Class: int32(physics.Projectile)},
		},
	}
}
