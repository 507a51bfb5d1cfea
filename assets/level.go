package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/sushi-knight/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// ArenaPath is the embedded default arena.
const ArenaPath = "levels/arena.tmx"

// Level is the static layout a play scene is built from. Spawn
// coordinates are entity centres; walls are top-left rectangles.
type Level struct {
	Name    string
	Width   int
	Height  int
	Walls   []config.Rect
	PlayerX float64
	PlayerY float64
	Enemies []config.Spawn
	Items   []config.Spawn
}

// DefaultLevel builds the arena from config.Arena without touching any file.
func DefaultLevel() *Level {
	a := config.Arena
	w, h := float64(a.Width), float64(a.Height)
	t := a.WallThickness

	level := &Level{
		Name:    "default",
		Width:   a.Width,
		Height:  a.Height,
		PlayerX: a.PlayerX,
		PlayerY: a.PlayerY,
		Walls: []config.Rect{
			{X: 0, Y: 0, W: w, H: t},
			{X: 0, Y: h - t, W: w, H: t},
			{X: 0, Y: 0, W: t, H: h},
			{X: w - t, Y: 0, W: t, H: h},
		},
	}
	level.Walls = append(level.Walls, a.Obstacles...)
	level.Enemies = append(level.Enemies, a.Enemies...)
	level.Items = append(level.Items, a.Items...)
	return level
}

// LoadArena parses the embedded arena map.
func LoadArena() (*Level, error) {
	return LoadLevel(levelFS, ArenaPath)
}

// LoadLevel parses a TMX file. Object groups:
//   - "Walls": rectangles
//   - "PlayerSpawn": first object is the player start (point)
//   - "EnemySpawn": points with an "enemyType" property
//   - "ItemSpawn": points with an "itemType" property
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   tmxPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, config.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.PlayerX = og.Objects[0].X
				level.PlayerY = og.Objects[0].Y
				hasPlayer = true
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, config.Spawn{
					Type: o.Properties.GetString("enemyType"),
					X:    o.X,
					Y:    o.Y,
				})
			}
		case "ItemSpawn":
			for _, o := range og.Objects {
				level.Items = append(level.Items, config.Spawn{
					Type: o.Properties.GetString("itemType"),
					X:    o.X,
					Y:    o.Y,
				})
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object", tmxPath)
	}

	return level, nil
}
