package game

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxelworld/engine/physics"
	"github.com/memmaker/voxelworld/engine/voxel"
	"github.com/pkg/errors"
)

var ErrInvalidSpawn = errors.New("invalid spawn point")

type Vec3Tag struct {
	X float32 `nbt:"x"`
	Y float32 `nbt:"y"`
	Z float32 `nbt:"z"`
}

func NewVec3Tag(v mgl32.Vec3) Vec3Tag {
	return Vec3Tag{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func (v Vec3Tag) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

type PlatformDefinition struct {
	Position  Vec3Tag   `nbt:"position"`
	Scale     Vec3Tag   `nbt:"scale"`
	Speed     float32   `nbt:"speed"`
	Waypoints []Vec3Tag `nbt:"waypoints"`
}

type SpawnPoint struct {
	Name     string  `nbt:"name"`
	Position Vec3Tag `nbt:"position"`
	Class    int32   `nbt:"class"`
}

// LevelFile is everything needed to rebuild a world: the tiles, the platforms
// and the initial entities.
type LevelFile struct {
	Name      string               `nbt:"name"`
	Grid      voxel.GridData       `nbt:"grid"`
	Platforms []PlatformDefinition `nbt:"platforms"`
	Spawns    []SpawnPoint         `nbt:"spawns"`
}

// NewWorld builds and freezes the grid and spawns the level's entities.
func (l LevelFile) NewWorld(config PhysicsConfig) (*World, error) {
	for _, spawn := range l.Spawns {
		if !physics.Classification(spawn.Class).IsValid() {
			return nil, errors.Wrapf(ErrInvalidSpawn, "level %q: %s has unknown class %d", l.Name, spawn.Name, spawn.Class)
		}
	}
	grid, err := voxel.NewGridFromData(l.Grid)
	if err != nil {
		return nil, errors.Wrapf(err, "level %q", l.Name)
	}
	world := NewWorld(grid, config)
	for _, definition := range l.Platforms {
		waypoints := make([]mgl32.Vec3, 0, len(definition.Waypoints))
		for _, waypoint := range definition.Waypoints {
			waypoints = append(waypoints, waypoint.Vec3())
		}
		speed := definition.Speed
		if speed == 0 {
			speed = config.PlatformSpeed
		}
		world.AddPlatform(NewPlatform(definition.Position.Vec3(), definition.Scale.Vec3(), speed, waypoints...))
	}
	for _, spawn := range l.Spawns {
		world.Spawn(NewEntity(spawn.Name, spawn.Position.Vec3(), physics.Classification(spawn.Class)))
	}
	return world, nil
}

// LevelFromWorld captures the current state of a world as a level.
func LevelFromWorld(name string, world *World) LevelFile {
	level := LevelFile{
		Name:      name,
		Grid:      world.Grid().Data(),
		Platforms: make([]PlatformDefinition, 0, len(world.Platforms())),
		Spawns:    make([]SpawnPoint, 0, len(world.entities)),
	}
	for _, platform := range world.Platforms() {
		waypoints := make([]Vec3Tag, 0, len(platform.Waypoints))
		for _, waypoint := range platform.Waypoints {
			waypoints = append(waypoints, NewVec3Tag(waypoint))
		}
		level.Platforms = append(level.Platforms, PlatformDefinition{
			Position:  NewVec3Tag(platform.Position),
			Scale:     NewVec3Tag(platform.Scale),
			Speed:     platform.Speed,
			Waypoints: waypoints,
		})
	}
	for _, entity := range world.Entities() {
		level.Spawns = append(level.Spawns, SpawnPoint{
			Name:     entity.Name,
			Position: NewVec3Tag(entity.Position()),
			Class:    int32(entity.Class),
		})
	}
	return level
}

func WriteLevel(w io.Writer, level LevelFile) error {
	gzipWriter := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gzipWriter).Encode(level, "level"); err != nil {
		return errors.Wrap(err, "encoding level")
	}
	return errors.Wrap(gzipWriter.Close(), "closing level stream")
}

func ReadLevel(r io.Reader) (LevelFile, error) {
	var level LevelFile
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return level, errors.Wrap(err, "opening level stream")
	}
	defer gzipReader.Close()
	if _, err = nbt.NewDecoder(gzipReader).Decode(&level); err != nil {
		return level, errors.Wrap(err, "decoding level")
	}
	return level, nil
}

func SaveLevelFile(filename string, level LevelFile) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating level file %s", filename)
	}
	if err = WriteLevel(file, level); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "closing level file %s", filename)
}

func LoadLevelFile(filename string) (LevelFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return LevelFile{}, errors.Wrapf(err, "opening level file %s", filename)
	}
	defer file.Close()
	return ReadLevel(file)
}
