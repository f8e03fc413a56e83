// Package levels embeds the bundled levels and loads levels from disk. It has
// no ebitengine dependency so the headless simulator shares it with the game.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/props"
	"github.com/automoto/ringrush/shared/terrain"
	"github.com/automoto/ringrush/shared/tileprofile"
)

//go:embed all:green_hill
var levelFS embed.FS

// TilesDir is the directory of tile images next to a level on disk. Without
// one the built-in tile set is used.
const TilesDir = "tiles"

// Built-in tile names. They double as angle table identifiers.
const (
	TileFlat         = "flat"
	TileFill         = "fill"
	TileRampUpLow    = "ramp_up_low"
	TileRampUpHigh   = "ramp_up_high"
	TileRampDownHigh = "ramp_down_high"
	TileRampDownLow  = "ramp_down_low"
)

// Lip is the row of a flat tile's walking surface.
const Lip = 16

// Tiles returns the built-in procedural tile set in grid id order.
func Tiles() terrain.TileList {
	return terrain.TileList{
		{Name: TileFlat, Image: tileprofile.FlatTile(Lip)},
		{Name: TileFill, Image: tileprofile.FlatTile(0)},
		{Name: TileRampUpLow, Image: tileprofile.RampTile(Lip, 0)},
		{Name: TileRampUpHigh, Image: tileprofile.RampTile(tileprofile.Size-1, Lip)},
		{Name: TileRampDownHigh, Image: tileprofile.RampTile(Lip, tileprofile.Size-1)},
		{Name: TileRampDownLow, Image: tileprofile.RampTile(0, Lip)},
	}
}

// Angles returns the angle profiles of the built-in ramps.
func Angles() tileprofile.AngleTable {
	return tileprofile.AngleTable{
		TileRampUpLow:    tileprofile.RampAngles(Lip, 0),
		TileRampUpHigh:   tileprofile.RampAngles(tileprofile.Size-1, Lip),
		TileRampDownHigh: tileprofile.RampAngles(Lip, tileprofile.Size-1),
		TileRampDownLow:  tileprofile.RampAngles(0, Lip),
	}
}

// Spring pad columns within its cell.
const (
	springLeft  = 12
	springRight = 52
)

// PropMasks returns the pixel masks of props that do not collide by their
// whole rectangle. A spring's cell is mostly buried in the ground, so only
// its pad above the lip touches the player.
func PropMasks() map[props.Kind]*pixelmask.Mask {
	spring := pixelmask.New(tileprofile.Size, tileprofile.Size)
	for y := range Lip {
		for x := springLeft; x < springRight; x++ {
			spring.Set(x, y, true)
		}
	}
	return map[props.Kind]*pixelmask.Mask{props.KindSpring: spring}
}

// Names lists the bundled levels.
func Names() []string {
	entries, err := levelFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// Load loads a bundled level by name with the built-in tile set.
func Load(name string) (*leveldata.Level, error) {
	level, err := leveldata.LoadCSVLevel(levelFS, name)
	if err != nil {
		return nil, err
	}
	useBuiltinTiles(level)
	return level, nil
}

// MustLoad is Load for levels known to be bundled.
func MustLoad(name string) *leveldata.Level {
	level, err := Load(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}
	return level
}

// LoadPath loads a level from disk: a Tiled .tmx file or a directory of CSV
// layers. A CSV directory uses the images in its tiles directory when it has
// one.
func LoadPath(path string) (*leveldata.Level, error) {
	if strings.EqualFold(filepath.Ext(path), ".tmx") {
		return leveldata.LoadTMX(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}

	fsys := os.DirFS(path)
	level, err := leveldata.LoadCSVLevel(fsys, ".")
	if err != nil {
		return nil, err
	}
	level.Name = filepath.Base(path)

	tiles, err := leveldata.LoadTileDir(fsys, TilesDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		useBuiltinTiles(level)
	case err != nil:
		return nil, err
	default:
		level.Tiles = tiles
	}
	return level, nil
}

// useBuiltinTiles points the level at the procedural tiles. Angles the level
// does not list come from the ramps' geometry.
func useBuiltinTiles(level *leveldata.Level) {
	level.Tiles = Tiles()
	if level.Angles == nil {
		level.Angles = tileprofile.AngleTable{}
	}
	for name, a := range Angles() {
		if _, ok := level.Angles[name]; !ok {
			level.Angles[name] = a
		}
	}
}
