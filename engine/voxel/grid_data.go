package voxel

import (
	"compress/gzip"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"
)

var ErrInvalidDimensions = errors.New("grid dimensions do not match tile data")

// GridData is the serialised form of a grid: an NBT compound with the
// dimensions and the raw tile bytes in z, y, x order.
type GridData struct {
	Width  int32  `nbt:"width"`
	Height int32  `nbt:"height"`
	Depth  int32  `nbt:"depth"`
	Tiles  []byte `nbt:"tiles"`
}

func (g *Grid) Data() GridData {
	tiles := make([]byte, len(g.tiles))
	copy(tiles, g.tiles)
	return GridData{Width: g.width, Height: g.height, Depth: g.depth, Tiles: tiles}
}

// NewGridFromData builds an unfrozen grid from serialised data.
func NewGridFromData(data GridData) (*Grid, error) {
	if data.Width < 0 || data.Height < 0 || data.Depth < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "negative size %dx%dx%d", data.Width, data.Height, data.Depth)
	}
	expected, ok := cellCount(data.Width, data.Height, data.Depth)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%dx%d exceeds %d cells", data.Width, data.Height, data.Depth, MaxGridCells)
	}
	if len(data.Tiles) != expected {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%dx%d needs %d tiles, got %d", data.Width, data.Height, data.Depth, expected, len(data.Tiles))
	}
	g := NewGrid(data.Width, data.Height, data.Depth)
	copy(g.tiles, data.Tiles)
	return g, nil
}

// WriteGrid stores the grid as a gzip compressed NBT compound.
func WriteGrid(w io.Writer, g *Grid) error {
	gzipWriter := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gzipWriter).Encode(g.Data(), "grid"); err != nil {
		return errors.Wrap(err, "encoding grid")
	}
	return errors.Wrap(gzipWriter.Close(), "closing grid stream")
}

func ReadGrid(r io.Reader) (*Grid, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening grid stream")
	}
	defer gzipReader.Close()
	var data GridData
	if _, err = nbt.NewDecoder(gzipReader).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "decoding grid")
	}
	return NewGridFromData(data)
}
