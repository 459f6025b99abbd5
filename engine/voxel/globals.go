package voxel

const (
	EMPTY byte = 0

	TILE_DARK_GRASS byte = 3
	TILE_STONE      byte = 9
	TILE_DARK_STONE byte = 10

	// MaxGridCells bounds the tile storage of a single grid.
	MaxGridCells int64 = 1 << 30
)

// ManhattanDistance2 is the horizontal grid distance, ignoring Y.
func ManhattanDistance2(a, b Int3) int32 {
	return Abs(a.X-b.X) + Abs(a.Z-b.Z)
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}

func Signum(i int32) int32 {
	if i > 0 {
		return 1
	}
	if i < 0 {
		return -1
	}
	return 0
}
