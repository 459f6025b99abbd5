package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelworld/engine/physics"
	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/memmaker/voxelworld/game"
	"github.com/stretchr/testify/require"
)

func demoWorld(t *testing.T) (game.LevelFile, *game.World) {
	level := game.DemoLevel()
	world, err := level.NewWorld(game.DefaultPhysicsConfig())
	require.NoError(t, err)
	return level, world
}

func TestInspect(t *testing.T) {
	level, world := demoWorld(t)
	var buf bytes.Buffer
	require.NoError(t, inspect(&buf, level, world))
	require.Contains(t, buf.String(), "level:      demo")
	require.Contains(t, buf.String(), "platforms:  1")
	require.Contains(t, buf.String(), "hero")
	require.Contains(t, buf.String(), "reaches")
	require.Contains(t, buf.String(), "cells within 16\n")
}

func TestPrintSliceMarksEntities(t *testing.T) {
	grid := voxel.NewGrid(4, 8, 3)
	grid.Set(0, 4, 0, voxel.TILE_STONE)
	world := game.NewWorld(grid, game.DefaultPhysicsConfig())
	world.Spawn(game.NewEntity("hero", mgl32.Vec3{2.5, 4, 1.5}, physics.Standard))
	world.Spawn(game.NewEntity("bolt", mgl32.Vec3{3.5, 6, 2.5}, physics.Projectile))

	var buf bytes.Buffer
	require.NoError(t, printSlice(&buf, world, 4))
	require.Equal(t, "#   \n  @ \n   *\n", buf.String())
}

func TestWriteHeightmap(t *testing.T) {
	_, world := demoWorld(t)
	filename := filepath.Join(t.TempDir(), "heights.png")
	require.NoError(t, writeHeightmap(filename, world.Grid(), 2))

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	require.Equal(t, 128, img.Bounds().Dx())
	require.Equal(t, 128, img.Bounds().Dy())
}

func TestExportSurface(t *testing.T) {
	_, world := demoWorld(t)
	filename := filepath.Join(t.TempDir(), "surface.glb")
	require.NoError(t, exportSurface(filename, world.Grid()))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(12))
}

func TestSimulate(t *testing.T) {
	_, world := demoWorld(t)
	require.NoError(t, simulate(context.Background(), world, 10, time.Second/30, 5))
	require.Equal(t, uint64(10), world.Ticks())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, simulate(ctx, world, 10, time.Second/30, 5))
}

func TestRunUnknownMode(t *testing.T) {
	err := run(context.Background(), config{Mode: "paint"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "paint")
}
