package voxel

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/go-gl/mathgl/mgl32"
)

// Grid is the dense tile storage of a world. Every query is total: cells
// outside the grid read as EMPTY and writes to them are dropped.
//
// A grid is mutable while the level is built and read-only once frozen.
type Grid struct {
	tiles  []byte
	width  int32
	height int32
	depth  int32
	frozen bool

	rejectedWrites int
}

// NewGrid allocates a grid of the given size. Negative sizes are treated as
// zero; a size above MaxGridCells yields an empty 0x0x0 grid.
func NewGrid(width, height, depth int32) *Grid {
	width, height, depth = max(width, 0), max(height, 0), max(depth, 0)
	cells, ok := cellCount(width, height, depth)
	if !ok {
		logs.WithTag("category", "voxel").
			WithTag("size", Int3{width, height, depth}.ToString()).
			Warn("grid exceeds the cell limit, allocating an empty grid")
		return &Grid{}
	}
	return &Grid{
		tiles:  make([]byte, cells),
		width:  width,
		height: height,
		depth:  depth,
	}
}

// cellCount multiplies the dimensions, failing for negative sizes or a
// product above MaxGridCells.
func cellCount(width, height, depth int32) (int, bool) {
	count := int64(1)
	for _, size := range [3]int32{width, height, depth} {
		if size < 0 {
			return 0, false
		}
		if size == 0 {
			count = 0
			continue
		}
		if count > MaxGridCells/int64(size) {
			return 0, false
		}
		count *= int64(size)
	}
	return int(count), true
}

func (g *Grid) Size() Int3 {
	return Int3{g.width, g.height, g.depth}
}

func (g *Grid) Width() int32 {
	return g.width
}

func (g *Grid) Height() int32 {
	return g.height
}

func (g *Grid) Depth() int32 {
	return g.depth
}

func (g *Grid) Contains(x, y, z int32) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

func (g *Grid) ContainsGrid(position Int3) bool {
	return g.Contains(position.X, position.Y, position.Z)
}

func (g *Grid) index(x, y, z int32) int {
	return int(z)*int(g.width)*int(g.height) + int(y)*int(g.width) + int(x)
}

func (g *Grid) Get(x, y, z int32) byte {
	if !g.Contains(x, y, z) {
		return EMPTY
	}
	return g.tiles[g.index(x, y, z)]
}

func (g *Grid) GetVec(pos Int3) byte {
	return g.Get(pos.X, pos.Y, pos.Z)
}

// GetFloat reads the tile at a world position. Coordinates are range checked
// before they are truncated, so negative fractions and NaN read as EMPTY.
func (g *Grid) GetFloat(x, y, z float64) byte {
	if !(x >= 0 && x < float64(g.width) && y >= 0 && y < float64(g.height) && z >= 0 && z < float64(g.depth)) {
		return EMPTY
	}
	return g.tiles[g.index(int32(x), int32(y), int32(z))]
}

func (g *Grid) GetAtPosition(pos mgl32.Vec3) byte {
	return g.GetFloat(float64(pos.X()), float64(pos.Y()), float64(pos.Z()))
}

func (g *Grid) IsEmpty(x, y, z int32) bool {
	return g.Get(x, y, z) == EMPTY
}

func (g *Grid) IsSolidBlockAt(x, y, z int32) bool {
	return g.Get(x, y, z) != EMPTY
}

// Set stores a tile kind. Out of range writes and writes to a frozen grid are dropped.
func (g *Grid) Set(x, y, z int32, kind byte) {
	if !g.Contains(x, y, z) {
		return
	}
	if g.frozen {
		g.rejectedWrites++
		if g.rejectedWrites == 1 {
			logs.WithTag("category", "voxel").
				WithTag("cell", Int3{x, y, z}.ToString()).
				Warn("write to frozen grid dropped")
		}
		return
	}
	g.tiles[g.index(x, y, z)] = kind
}

// Freeze ends the build phase. Collision and raycasting only run on frozen grids.
func (g *Grid) Freeze() {
	g.frozen = true
}

func (g *Grid) IsFrozen() bool {
	return g.frozen
}

func (g *Grid) RejectedWrites() int {
	return g.rejectedWrites
}

// SolidCount returns the number of non-empty cells.
func (g *Grid) SolidCount() int {
	count := 0
	for _, tile := range g.tiles {
		if tile != EMPTY {
			count++
		}
	}
	return count
}

// Clone returns an unfrozen copy, e.g. for a parallel reader or an editor.
func (g *Grid) Clone() *Grid {
	tiles := make([]byte, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{tiles: tiles, width: g.width, height: g.height, depth: g.depth}
}
