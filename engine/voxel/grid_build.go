package voxel

// FillBox sets every cell in the inclusive box spanned by a and b.
func (g *Grid) FillBox(a, b Int3, kind byte) {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)
	minZ, maxZ := min(a.Z, b.Z), max(a.Z, b.Z)
	for z := minZ; z <= maxZ; z++ {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				g.Set(x, y, z, kind)
			}
		}
	}
}

func (g *Grid) SetFloorAtHeight(yLevel int32, kind byte) {
	for x := int32(0); x < g.width; x++ {
		for z := int32(0); z < g.depth; z++ {
			g.Set(x, yLevel, z, kind)
		}
	}
}

// GroundBelow walks down from startBlock and returns the first empty cell
// resting on a solid one. The bottom layer counts as ground.
func (g *Grid) GroundBelow(startBlock Int3) Int3 {
	for y := min(startBlock.Y, g.height); y >= 1; y-- {
		if g.IsSolidBlockAt(startBlock.X, y-1, startBlock.Z) || !g.Contains(startBlock.X, y-1, startBlock.Z) {
			return Int3{startBlock.X, y, startBlock.Z}
		}
	}
	return Int3{startBlock.X, 0, startBlock.Z}
}

// TopSolid returns the y of the highest solid cell in a column, or -1.
func (g *Grid) TopSolid(x, z int32) int32 {
	for y := g.height - 1; y >= 0; y-- {
		if g.IsSolidBlockAt(x, y, z) {
			return y
		}
	}
	return -1
}

var horizontalNeighbors = [4]Int3{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}}

// GroundNeighbors returns the cells a walker standing in cell can step to:
// one block up onto a solid neighbour or down to the ground next to it.
func (g *Grid) GroundNeighbors(cell Int3, keepPredicate func(neighbor Int3) bool) []Int3 {
	neighbors := make([]Int3, 0, 4)
	for _, offset := range horizontalNeighbors {
		next := cell.Add(offset)
		if !g.ContainsGrid(next) {
			continue
		}
		if g.IsSolidBlockAt(next.X, next.Y, next.Z) {
			next = next.Add(Int3{Y: 1})
		} else {
			next = g.GroundBelow(next)
		}
		if g.ContainsGrid(next) && keepPredicate(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}
