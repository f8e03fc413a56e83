// Package leveldata loads level content: terrain tile grids from CSV layers or
// Tiled TMX maps, tile images and the tile angle table. It has no dependencies
// on ebitengine or donburi so the headless simulator can use it too.
package leveldata

import (
	"errors"
	"fmt"
	"image"

	"github.com/automoto/ringrush/shared/terrain"
	"github.com/automoto/ringrush/shared/tileprofile"
)

var (
	// ErrEmptyGrid is returned when a terrain layer holds no rows.
	ErrEmptyGrid = errors.New("empty tile grid")
	// ErrUnknownTile is returned when a grid references a tile id no tile image
	// exists for.
	ErrUnknownTile = terrain.ErrUnknownTile
	// ErrTileSize is returned when a tile image or a Tiled tileset does not use
	// the terrain cell size.
	ErrTileSize = errors.New("tile size mismatch")
)

// Object kinds placed by level layers.
const (
	KindRing   = "ring"
	KindSpring = "spring"
	KindGoal   = "goal"
	KindEnemy  = "enemy"
	KindStart  = "start"
)

// Object is a non-terrain placement: a prop, an enemy or the player start.
type Object struct {
	Kind string
	X, Y float64
	W, H float64 // zero when the layer does not size its objects
}

// DefaultStart is the player start used when a level places none.
var DefaultStart = image.Pt(32, 600)

// Level is a parsed level ready for terrain.BuildGrid.
type Level struct {
	Name    string
	Grid    terrain.Grid
	Origin  image.Point // pixel position of grid cell (0, 0)
	Objects []Object
	Start   image.Point
	Width   int // pixels
	Height  int // pixels

	// Tiles resolves grid ids. CSV levels leave it nil for the caller to set.
	Tiles  terrain.TileSet
	Angles tileprofile.AngleTable
}

// Index builds the level geometry index from the terrain grid.
func (l *Level) Index(alphaThreshold uint8) (*terrain.Index, error) {
	if l.Tiles == nil {
		return nil, fmt.Errorf("build level %s: no tile set", l.Name)
	}
	idx, err := terrain.BuildGrid(l.Grid, l.Tiles, l.Angles, terrain.Options{
		Origin:         l.Origin,
		AlphaThreshold: alphaThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", l.Name, err)
	}
	return idx, nil
}

// ObjectsOf returns the level objects of one kind in load order.
func (l *Level) ObjectsOf(kind string) []Object {
	var out []Object
	for _, o := range l.Objects {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}
