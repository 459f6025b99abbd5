package util

import (
	"io"

	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// SurfaceMeshDocument builds a single-mesh glTF document from exposed voxel
// faces, two triangles per quad. An empty surface yields a document without meshes.
func SurfaceMeshDocument(quads []voxel.Quad) *gltf.Document {
	doc := gltf.NewDocument()
	if len(quads) == 0 {
		return doc
	}
	positions := make([][3]float32, 0, len(quads)*4)
	normals := make([][3]float32, 0, len(quads)*4)
	indices := make([]uint32, 0, len(quads)*6)
	for _, quad := range quads {
		base := uint32(len(positions))
		normal := quad.Face.Normal().ToVec3()
		for _, corner := range quad.Corners {
			positions = append(positions, [3]float32{float32(corner.X), float32(corner.Y), float32(corner.Z)})
			normals = append(normals, [3]float32{normal.X(), normal.Y(), normal.Z()})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	positionAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indicesAccessor := modeler.WriteIndices(doc, indices)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "voxel-surface",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indicesAccessor),
			Attributes: map[string]uint32{
				"POSITION": positionAccessor,
				"NORMAL":   normalAccessor,
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "grid", Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// WriteSurfaceGLB writes the exposed faces as binary glTF, e.g. to inspect a
// level's collision surface in a model viewer.
func WriteSurfaceGLB(w io.Writer, quads []voxel.Quad) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return errors.Wrap(encoder.Encode(SurfaceMeshDocument(quads)), "encoding glb")
}
