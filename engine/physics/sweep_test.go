package physics

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/stretchr/testify/require"
)

func TestAxisOrder(t *testing.T) {
	tests := []struct {
		velocity mgl32.Vec3
		expected [3]Axis
	}{
		{mgl32.Vec3{2, 1, 0}, [3]Axis{AxisX, AxisY, AxisZ}},
		{mgl32.Vec3{-2, 1, 1}, [3]Axis{AxisX, AxisY, AxisZ}},
		{mgl32.Vec3{1, 2, 0}, [3]Axis{AxisY, AxisX, AxisZ}},
		{mgl32.Vec3{1, 1, 0}, [3]Axis{AxisY, AxisX, AxisZ}},
		{mgl32.Vec3{0, 1, 2}, [3]Axis{AxisZ, AxisY, AxisX}},
		{mgl32.Vec3{1, 0, 1}, [3]Axis{AxisZ, AxisY, AxisX}},
		{mgl32.Vec3{0, 2, 1}, [3]Axis{AxisY, AxisZ, AxisX}},
		{mgl32.Vec3{1, 1, 1}, [3]Axis{AxisY, AxisZ, AxisX}},
		{mgl32.Vec3{0, 0, 0}, [3]Axis{AxisY, AxisZ, AxisX}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprint(test.velocity), func(t *testing.T) {
			require.Equal(t, test.expected, AxisOrder(test.velocity))
		})
	}
}

func TestDirectionOf(t *testing.T) {
	require.Equal(t, West, DirectionOf(AxisX, mgl32.Vec3{-1, 0, 0}))
	require.Equal(t, East, DirectionOf(AxisX, mgl32.Vec3{0, 0, 0}))
	require.Equal(t, Down, DirectionOf(AxisY, mgl32.Vec3{0, -1, 0}))
	require.Equal(t, Up, DirectionOf(AxisY, mgl32.Vec3{0, 0, 0}))
	require.Equal(t, North, DirectionOf(AxisZ, mgl32.Vec3{0, 0, 1}))
	require.Equal(t, South, DirectionOf(AxisZ, mgl32.Vec3{0, 0, 0}))
}

func TestResolveGridCollisionPushback(t *testing.T) {
	tests := []struct {
		name     string
		velocity mgl32.Vec3
		solid    voxel.Int3
		expected mgl32.Vec3
	}{
		{"down", mgl32.Vec3{0, -2, 0}, voxel.Int3{X: 10, Y: 5, Z: 10}, mgl32.Vec3{10.5, 6, 10.5}},
		{"up", mgl32.Vec3{0, 1, 0}, voxel.Int3{X: 10, Y: 7, Z: 10}, mgl32.Vec3{10.5, 8, 10.5}},
		{"west", mgl32.Vec3{-1, 0, 0}, voxel.Int3{X: 7, Y: 9, Z: 10}, mgl32.Vec3{11, 5, 10.5}},
		{"east", mgl32.Vec3{1, 0, 0}, voxel.Int3{X: 13, Y: 9, Z: 10}, mgl32.Vec3{10, 5, 10.5}},
		{"north", mgl32.Vec3{0, 0, 1}, voxel.Int3{X: 10, Y: 9, Z: 13}, mgl32.Vec3{10.5, 5, 10}},
		{"south", mgl32.Vec3{0, 0, -1}, voxel.Int3{X: 10, Y: 9, Z: 7}, mgl32.Vec3{10.5, 5, 11}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			grid := voxel.NewGrid(32, 32, 32)
			grid.Set(test.solid.X, test.solid.Y, test.solid.Z, voxel.TILE_STONE)
			body := Body{Position: mgl32.Vec3{10.5, 5, 10.5}, Velocity: test.velocity}

			contacts := ResolveGridCollision(grid, &body, 0.05)
			require.Equal(t, test.name, contacts.String())
			require.InDeltaSlice(t, test.expected[:], body.Position[:], 1e-5)
			require.Equal(t, mgl32.Vec3{}, body.Velocity)
		})
	}
}

func TestResolveGridCollisionWithoutSolidIsNoop(t *testing.T) {
	grid := voxel.NewGrid(32, 32, 32)
	body := Body{Position: mgl32.Vec3{10.5, 5, 10.5}, Velocity: mgl32.Vec3{3, -4, 5}}
	before := body

	require.Equal(t, Contacts(0), ResolveGridCollision(grid, &body, 0.05))
	require.Equal(t, before, body)
}

func TestLandingIsIdempotent(t *testing.T) {
	grid := voxel.NewGrid(32, 32, 32)
	grid.FillBox(voxel.Int3{X: 0, Y: 0, Z: 0}, voxel.Int3{X: 31, Y: 3, Z: 31}, voxel.TILE_STONE)
	body := Body{Position: mgl32.Vec3{10, 3.5, 10}, Velocity: mgl32.Vec3{0, -10, 0}}

	contacts := ResolveGridCollision(grid, &body, 0.05)
	require.True(t, contacts.Has(Down))
	require.Equal(t, mgl32.Vec3{10, 4, 10}, body.Position)
	require.Equal(t, mgl32.Vec3{}, body.Velocity)

	for i := 0; i < 10; i++ {
		require.Equal(t, Contacts(0), ResolveGridCollision(grid, &body, 0.05))
		require.Equal(t, mgl32.Vec3{10, 4, 10}, body.Position)
	}
}

func TestAdvanceDoesNotTunnel(t *testing.T) {
	grid := voxel.NewGrid(64, 32, 64)
	grid.FillBox(voxel.Int3{X: 40, Y: 0, Z: 20}, voxel.Int3{X: 40, Y: 20, Z: 44}, voxel.TILE_STONE)
	const dt = float32(0.05)

	for _, speed := range []float32{1, 10, 100, 300, 500, 700, 1000} {
		t.Run(fmt.Sprint(speed), func(t *testing.T) {
			body := Body{Position: mgl32.Vec3{10, 5, 32}, Velocity: mgl32.Vec3{speed, 0, 0}}
			contacts := Advance(grid, &body, dt, 1)

			expected := 10 + speed*dt
			if expected >= 37 {
				require.True(t, contacts.Has(East))
				require.Equal(t, float32(37), body.Position.X())
				require.Zero(t, body.Velocity.X())
			} else {
				require.False(t, contacts.Has(East))
				require.InDelta(t, expected, body.Position.X(), 1e-3)
			}
			require.Less(t, body.Position.X(), float32(40))
		})
	}
}

func TestAdvanceBoundsRunawaySpeed(t *testing.T) {
	open := voxel.NewGrid(8, 8, 8)
	body := Body{Position: mgl32.Vec3{0, 5, 0}, Velocity: mgl32.Vec3{1e10, 0, 0}}
	Advance(open, &body, 1.0/30.0, 1)
	require.InDelta(t, float32(MaxSubsteps), body.Position.X(), 1e-2)
	require.InDelta(t, float32(MaxSubsteps*30), body.Velocity.X(), 1)

	grid := voxel.NewGrid(64, 32, 64)
	grid.FillBox(voxel.Int3{X: 40, Y: 0, Z: 20}, voxel.Int3{X: 40, Y: 20, Z: 44}, voxel.TILE_STONE)
	body = Body{Position: mgl32.Vec3{10, 5, 32}, Velocity: mgl32.Vec3{1e10, 0, 0}}
	contacts := Advance(grid, &body, 1.0/30.0, 1)
	require.True(t, contacts.Has(East))
	require.Equal(t, float32(37), body.Position.X())
}

func TestAdvanceLandsFastFallingBody(t *testing.T) {
	grid := voxel.NewGrid(32, 32, 32)
	grid.SetFloorAtHeight(3, voxel.TILE_STONE)
	body := Body{Position: mgl32.Vec3{10, 20, 10}, Velocity: mgl32.Vec3{0, -900, 0}}

	contacts := Advance(grid, &body, 1.0/30.0, 1)
	require.True(t, contacts.Has(Down))
	require.Equal(t, float32(4), body.Position.Y())
	require.Zero(t, body.Velocity.Y())
}

// execute with: go test -bench=. -test.benchmem -test.benchtime=10s
func BenchmarkResolveGridCollision(b *testing.B) {
	grid := voxel.NewGrid(64, 32, 64)
	grid.SetFloorAtHeight(3, voxel.TILE_STONE)
	for i := 0; i < b.N; i++ {
		body := Body{Position: mgl32.Vec3{10, 4.2, 10}, Velocity: mgl32.Vec3{4, -6, 2}}
		_ = ResolveGridCollision(grid, &body, 1.0/30.0)
	}
}
