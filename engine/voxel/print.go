package voxel

import (
	"fmt"
	"io"
)

// PrintSlice writes a top down view of one Y layer, '#' for solid cells.
// Marks are drawn over the layer, keyed by cell.
func (g *Grid) PrintSlice(w io.Writer, yLevel int32, maxX, maxZ int32, marks map[Int3]rune) error {
	maxX = min(maxX, g.width)
	maxZ = min(maxZ, g.depth)
	line := make([]rune, 0, maxX)
	for z := int32(0); z < maxZ; z++ {
		line = line[:0]
		for x := int32(0); x < maxX; x++ {
			if mark, ok := marks[Int3{x, yLevel, z}]; ok {
				line = append(line, mark)
			} else if g.IsSolidBlockAt(x, yLevel, z) {
				line = append(line, '#')
			} else {
				line = append(line, ' ')
			}
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}
