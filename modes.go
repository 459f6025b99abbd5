package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sort"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/memmaker/voxelworld/engine/physics"
	"github.com/memmaker/voxelworld/engine/util"
	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/memmaker/voxelworld/game"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/term"
)

// reachDistance bounds the walking distance reported per actor.
const reachDistance = 16.0

func inspect(w io.Writer, level game.LevelFile, world *game.World) error {
	grid := world.Grid()
	kinds := make(map[byte]int)
	for z := int32(0); z < grid.Depth(); z++ {
		for y := int32(0); y < grid.Height(); y++ {
			for x := int32(0); x < grid.Width(); x++ {
				if kind := grid.Get(x, y, z); kind != voxel.EMPTY {
					kinds[kind]++
				}
			}
		}
	}
	kindList := make([]int, 0, len(kinds))
	for kind := range kinds {
		kindList = append(kindList, int(kind))
	}
	sort.Ints(kindList)

	fmt.Fprintf(w, "level:      %s\n", level.Name)
	fmt.Fprintf(w, "size:       %s\n", grid.Size().ToString())
	fmt.Fprintf(w, "solid:      %d\n", grid.SolidCount())
	for _, kind := range kindList {
		fmt.Fprintf(w, "  kind %3d: %d\n", kind, kinds[byte(kind)])
	}
	fmt.Fprintf(w, "surface:    %d quads\n", len(grid.SurfaceQuads()))
	fmt.Fprintf(w, "platforms:  %d\n", len(world.Platforms()))
	for _, entity := range world.Entities() {
		fmt.Fprintf(w, "entity:     %s\n", entity)
		if entity.Class != physics.Standard {
			continue
		}
		reachable := world.ReachableCells(voxel.ToGridInt3(entity.Position()), reachDistance)
		if _, err := fmt.Fprintf(w, "  reaches %d cells within %.0f\n", len(reachable), reachDistance); err != nil {
			return errors.Wrap(err, "writing inspection")
		}
	}
	return nil
}

// printSlice fits the layer to the terminal when stdout is one.
func printSlice(w io.Writer, world *game.World, yLevel int32) error {
	width, height := 80, 24
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if termWidth, termHeight, err := term.GetSize(fd); err == nil {
			width, height = termWidth, termHeight
		}
	}
	marks := make(map[voxel.Int3]rune)
	for _, entity := range world.Entities() {
		cell := voxel.ToGridInt3(entity.Position())
		cell.Y = yLevel
		marks[cell] = '@'
		if entity.Class == physics.Projectile {
			marks[cell] = '*'
		}
	}
	return errors.Wrap(world.Grid().PrintSlice(w, yLevel, int32(width), int32(height-1), marks), "printing slice")
}

// writeHeightmap renders the top solid cell of every column as a gray value.
func writeHeightmap(filename string, grid *voxel.Grid, scale int) error {
	scale = max(scale, 1)
	heights := image.NewGray(image.Rect(0, 0, int(grid.Width()), int(grid.Depth())))
	for z := int32(0); z < grid.Depth(); z++ {
		for x := int32(0); x < grid.Width(); x++ {
			top := grid.TopSolid(x, z) + 1
			value := uint8(0)
			if grid.Height() > 0 {
				value = uint8(top * 255 / grid.Height())
			}
			heights.SetGray(int(x), int(z), color.Gray{Y: value})
		}
	}
	scaled := image.NewGray(image.Rect(0, 0, heights.Bounds().Dx()*scale, heights.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), heights, heights.Bounds(), draw.Src, nil)

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating heightmap %s", filename)
	}
	if err = png.Encode(file, scaled); err != nil {
		file.Close()
		return errors.Wrapf(err, "encoding heightmap %s", filename)
	}
	logs.WithTag("file", filename).Info("heightmap written")
	return errors.Wrapf(file.Close(), "closing heightmap %s", filename)
}

func exportSurface(filename string, grid *voxel.Grid) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	quads := grid.SurfaceQuads()
	if err = util.WriteSurfaceGLB(file, quads); err != nil {
		file.Close()
		return err
	}
	logs.WithTag("file", filename).
		WithTag("quads", len(quads)).
		Info("surface exported")
	return errors.Wrapf(file.Close(), "closing %s", filename)
}

func simulate(ctx context.Context, world *game.World, ticks int, tickDuration time.Duration, reportEvery int) error {
	dt := float32(tickDuration.Seconds())
	for i := 1; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "simulation interrupted")
		}
		world.Step(dt)
		if reportEvery > 0 && i%reportEvery == 0 {
			for _, entity := range world.Entities() {
				logs.WithTag("tick", i).
					WithTag("entity", entity.Name).
					WithTag("position", entity.Position()).
					WithTag("grounded", world.IsGrounded(entity.ID)).
					Info("entity state")
			}
		}
	}
	logs.WithTag("ticks", world.Ticks()).
		WithTag("game_time", world.GameTime()).
		WithTag("entities", len(world.Entities())).
		Info("simulation finished")
	fmt.Println(world.Timer())
	return nil
}
