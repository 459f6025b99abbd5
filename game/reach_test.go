package game

import (
	"testing"

	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/stretchr/testify/require"
)

func TestReachableCells(t *testing.T) {
	grid := voxel.NewGrid(32, 16, 32)
	grid.FillBox(voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.Int3{X: 31, Y: 3, Z: 31}, voxel.TILE_STONE)
	world := NewWorld(grid, DefaultPhysicsConfig())

	reachable := world.ReachableCells(voxel.Int3{X: 10, Y: 10, Z: 10}, 2)
	require.Len(t, reachable, 13)
	require.Zero(t, reachable[voxel.Int3{X: 10, Y: 4, Z: 10}])
	require.Equal(t, float64(2), reachable[voxel.Int3{X: 11, Y: 4, Z: 11}])
}

func TestReachableCellsClimbOneBlock(t *testing.T) {
	grid := voxel.NewGrid(32, 16, 32)
	grid.FillBox(voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.Int3{X: 31, Y: 3, Z: 31}, voxel.TILE_STONE)
	grid.Set(11, 4, 10, voxel.TILE_STONE)
	grid.FillBox(voxel.Int3{X: 9, Y: 4, Z: 10}, voxel.Int3{X: 9, Y: 6, Z: 10}, voxel.TILE_DARK_STONE)
	world := NewWorld(grid, DefaultPhysicsConfig())

	reachable := world.ReachableCells(voxel.Int3{X: 10, Y: 4, Z: 10}, 1.5)
	require.InDelta(t, 1.4142, reachable[voxel.Int3{X: 11, Y: 5, Z: 10}], 1e-4)
	_, onWall := reachable[voxel.Int3{X: 9, Y: 7, Z: 10}]
	require.False(t, onWall)
	_, inWall := reachable[voxel.Int3{X: 9, Y: 5, Z: 10}]
	require.False(t, inWall)
}

func TestWalkingPath(t *testing.T) {
	world := floorWorld()
	route := world.WalkingPath(voxel.Int3{X: 10, Y: 10, Z: 10}, voxel.Int3{X: 10, Y: 10, Z: 13}, 10)
	require.Equal(t, []voxel.Int3{
		{X: 10, Y: 4, Z: 10},
		{X: 10, Y: 4, Z: 11},
		{X: 10, Y: 4, Z: 12},
		{X: 10, Y: 4, Z: 13},
	}, route)

	require.Len(t, world.WalkingPath(voxel.Int3{X: 10, Y: 10, Z: 10}, voxel.Int3{X: 10, Y: 10, Z: 13}, 3), 4, "cost equal to the distance")
	require.Nil(t, world.WalkingPath(voxel.Int3{X: 10, Y: 10, Z: 10}, voxel.Int3{X: 10, Y: 10, Z: 14}, 3))
	require.Nil(t, world.WalkingPath(voxel.Int3{X: 10, Y: 10, Z: 10}, voxel.Int3{X: 50, Y: 10, Z: 50}, 10))
}
