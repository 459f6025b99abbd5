package util

import (
	"bytes"
	"testing"

	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/require"
)

func TestWriteSurfaceGLB(t *testing.T) {
	grid := voxel.NewGrid(4, 4, 4)
	grid.Set(1, 1, 1, voxel.TILE_STONE)
	quads := grid.SurfaceQuads()

	var buf bytes.Buffer
	require.NoError(t, WriteSurfaceGLB(&buf, quads))
	require.Equal(t, "glTF", buf.String()[:4])

	doc := new(gltf.Document)
	require.NoError(t, gltf.NewDecoder(&buf).Decode(doc))
	require.Len(t, doc.Meshes, 1)
	primitive := doc.Meshes[0].Primitives[0]
	require.Equal(t, 4*len(quads), int(doc.Accessors[primitive.Attributes["POSITION"]].Count))
	require.Equal(t, 6*len(quads), int(doc.Accessors[*primitive.Indices].Count))

	empty := SurfaceMeshDocument(nil)
	require.Empty(t, empty.Meshes)
}
