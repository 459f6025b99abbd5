package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func testPlatform() Platform {
	return Platform{
		Position: mgl32.Vec3{10, 10, 10},
		Scale:    mgl32.Vec3{2, 1, 2},
		Velocity: mgl32.Vec3{24, 0, 0},
	}
}

func TestStandOnCarry(t *testing.T) {
	body := Body{Position: mgl32.Vec3{10, 10.5, 10}, Velocity: mgl32.Vec3{0, -3, 0}}

	contact := ResolvePlatform(testPlatform(), &body, Standard, 0.05)
	require.Equal(t, Standing, contact)
	require.InDeltaSlice(t, []float32{11.2, 11, 10}, body.Position[:], 1e-5)
	require.Zero(t, body.Velocity.Y())
}

func TestStandOnBandWithoutFallingOnlySnaps(t *testing.T) {
	body := Body{Position: mgl32.Vec3{10, 10.2, 10}, Velocity: mgl32.Vec3{0, 2, 0}}

	contact := ResolvePlatform(testPlatform(), &body, Standard, 0.05)
	require.Equal(t, Snapped, contact)
	require.Equal(t, mgl32.Vec3{10, 11, 10}, body.Position)
	require.Equal(t, float32(2), body.Velocity.Y())
}

func TestProjectileDestroyedWhereActorIsPushed(t *testing.T) {
	start := mgl32.Vec3{10.5, 9.5, 10.2}

	projectile := Body{Position: start}
	require.Equal(t, Destroyed, ResolvePlatform(testPlatform(), &projectile, Projectile, 0.05))
	require.Equal(t, start, projectile.Position)

	actor := Body{Position: start}
	require.Equal(t, SidePushed, ResolvePlatform(testPlatform(), &actor, Standard, 0.05))
	require.InDeltaSlice(t, []float32{12.7, 9.5, 10.2}, actor.Position[:], 1e-5)
}

func TestSidePushFromOutsideUsesEdgeOrder(t *testing.T) {
	tests := []struct {
		name     string
		start    mgl32.Vec3
		expected mgl32.Vec3
	}{
		{"west", mgl32.Vec3{7.6, 9.5, 10}, mgl32.Vec3{7.3, 9.5, 10}},
		{"east", mgl32.Vec3{12.4, 9.5, 10}, mgl32.Vec3{12.7, 9.5, 10}},
		{"south", mgl32.Vec3{10, 9.5, 7.6}, mgl32.Vec3{10, 9.5, 7.3}},
		{"north", mgl32.Vec3{10, 9.5, 12.4}, mgl32.Vec3{10, 9.5, 12.7}},
		{"corner prefers x", mgl32.Vec3{7.6, 9.5, 12.4}, mgl32.Vec3{7.3, 9.5, 12.4}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			body := Body{Position: test.start}
			require.Equal(t, SidePushed, ResolvePlatform(testPlatform(), &body, Standard, 0.05))
			require.InDeltaSlice(t, test.expected[:], body.Position[:], 1e-5)
		})
	}
}

func TestPlatformNoInteraction(t *testing.T) {
	positions := []mgl32.Vec3{
		{13, 10.5, 10}, // beside the inflated footprint
		{10, 11, 10},   // exactly on top
		{10, 12, 10},   // above
		{10, 6.4, 10},  // below
	}
	for _, pos := range positions {
		body := Body{Position: pos, Velocity: mgl32.Vec3{0, -1, 0}}
		require.Equal(t, NoPlatformContact, ResolvePlatform(testPlatform(), &body, Standard, 0.05), "%v", pos)
		require.Equal(t, pos, body.Position)
	}
}

func TestResolvePlatformIsIdempotentAtRest(t *testing.T) {
	platform := testPlatform()
	platform.Velocity = mgl32.Vec3{}
	body := Body{Position: mgl32.Vec3{10.5, 9.5, 10.2}}

	ResolvePlatform(platform, &body, Standard, 0.05)
	pushed := body.Position
	require.Equal(t, NoPlatformContact, ResolvePlatform(platform, &body, Standard, 0.05))
	require.Equal(t, pushed, body.Position)
}
