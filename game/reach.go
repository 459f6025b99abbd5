package game

import (
	"github.com/memmaker/voxelworld/engine/path"
	"github.com/memmaker/voxelworld/engine/util"
	"github.com/memmaker/voxelworld/engine/voxel"
)

// walkClearance is the number of empty cells a standing actor needs.
const walkClearance = 3

type groundWalker struct {
	grid *voxel.Grid
}

func (g groundWalker) GetNeighbors(node voxel.Int3) []voxel.Int3 {
	return g.grid.GroundNeighbors(node, g.isWalkable)
}

func (g groundWalker) isWalkable(cell voxel.Int3) bool {
	for y := int32(0); y < walkClearance; y++ {
		if g.grid.IsSolidBlockAt(cell.X, cell.Y+y, cell.Z) {
			return false
		}
	}
	return true
}

func (g groundWalker) GetCost(currentNode, neighbor voxel.Int3) float64 {
	return float64(util.EucledianDistance3D(currentNode.ToBlockCenterVec3(), neighbor.ToBlockCenterVec3()))
}

// ReachableCells lists the ground cells an actor can walk to from start
// within maxCost, keyed by cell with the walking distance as value.
func (w *World) ReachableCells(start voxel.Int3, maxCost float64) map[voxel.Int3]float64 {
	walker := groundWalker{grid: w.grid}
	start = w.grid.GroundBelow(start)
	if !w.grid.ContainsGrid(start) || !walker.isWalkable(start) {
		return map[voxel.Int3]float64{}
	}
	dist, _ := path.Dijkstra[voxel.Int3](start, maxCost, walker)
	return dist
}

// WalkingPath is the cheapest ground route between two cells, or nil.
func (w *World) WalkingPath(from, to voxel.Int3, maxCost float64) []voxel.Int3 {
	walker := groundWalker{grid: w.grid}
	from, to = w.grid.GroundBelow(from), w.grid.GroundBelow(to)
	// every step crosses one column and costs at least 1
	if float64(voxel.ManhattanDistance2(from, to)) > maxCost {
		return nil
	}
	_, prev := path.Dijkstra[voxel.Int3](from, maxCost, walker)
	return path.PathTo(prev, from, to)
}
