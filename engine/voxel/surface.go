package voxel

type FaceType int

const (
	XN FaceType = iota
	XP
	YN
	YP
	ZN
	ZP
)

// Quad is one exposed face of a solid cell, corners in world grid units.
type Quad struct {
	Corners [4]Int3
	Face    FaceType
	Kind    byte
}

func (f FaceType) Normal() Int3 {
	switch f {
	case XN:
		return Int3{X: -1}
	case XP:
		return Int3{X: 1}
	case YN:
		return Int3{Y: -1}
	case YP:
		return Int3{Y: 1}
	case ZN:
		return Int3{Z: -1}
	}
	return Int3{Z: 1}
}

// SurfaceQuads collects every face of a solid cell whose neighbour is empty.
// Faces on the grid border are included because outside cells read as empty.
func (g *Grid) SurfaceQuads() []Quad {
	quads := make([]Quad, 0)
	for z := int32(0); z < g.depth; z++ {
		for y := int32(0); y < g.height; y++ {
			for x := int32(0); x < g.width; x++ {
				kind := g.tiles[g.index(x, y, z)]
				if kind == EMPTY {
					continue
				}
				x2, y2, z2 := x+1, y+1, z+1

				p1 := Int3{x, y2, z2}
				p2 := Int3{x2, y2, z2}
				p3 := Int3{x2, y2, z}
				p4 := Int3{x, y2, z}
				p5 := Int3{x, y, z2}
				p6 := Int3{x2, y, z2}
				p7 := Int3{x2, y, z}
				p8 := Int3{x, y, z}

				if g.IsEmpty(x, y2, z) {
					quads = append(quads, Quad{Corners: [4]Int3{p1, p2, p3, p4}, Face: YP, Kind: kind})
				}
				if g.IsEmpty(x, y-1, z) {
					quads = append(quads, Quad{Corners: [4]Int3{p8, p7, p6, p5}, Face: YN, Kind: kind})
				}
				if g.IsEmpty(x, y, z2) {
					quads = append(quads, Quad{Corners: [4]Int3{p2, p1, p5, p6}, Face: ZP, Kind: kind})
				}
				if g.IsEmpty(x, y, z-1) {
					quads = append(quads, Quad{Corners: [4]Int3{p4, p3, p7, p8}, Face: ZN, Kind: kind})
				}
				if g.IsEmpty(x-1, y, z) {
					quads = append(quads, Quad{Corners: [4]Int3{p1, p4, p8, p5}, Face: XN, Kind: kind})
				}
				if g.IsEmpty(x2, y, z) {
					quads = append(quads, Quad{Corners: [4]Int3{p3, p2, p6, p7}, Face: XP, Kind: kind})
				}
			}
		}
	}
	return quads
}
