package terrain

import (
	"errors"
	"fmt"
	"image"

	"github.com/automoto/ringrush/shared/tileprofile"
)

// EmptyTile marks a grid position with no tile.
const EmptyTile = -1

// ErrUnknownTile is returned when the grid references a tile id the tile set
// does not provide.
var ErrUnknownTile = errors.New("unknown tile id")

// TileSet resolves tile ids from a terrain grid to their image and identifier.
type TileSet interface {
	Tile(id int) (name string, img image.Image, ok bool)
}

// Grid is a row-major 2D grid of tile ids, EmptyTile meaning no tile.
type Grid [][]int

// Options control how a grid becomes cells.
type Options struct {
	// Origin is the pixel position of grid cell (0, 0).
	Origin image.Point
	// AlphaThreshold is the alpha a pixel must exceed to be solid.
	AlphaThreshold uint8
}

// Sources converts a tile grid into placed tiles. Profiles are extracted once
// per distinct tile id and shared between cells using the same id.
func Sources(grid Grid, tiles TileSet, angles tileprofile.AngleTable, opts Options) ([]Source, error) {
	profiles := make(map[int]tileprofile.Profile)
	names := make(map[int]string)
	var out []Source

	for row, ids := range grid {
		for col, id := range ids {
			if id == EmptyTile {
				continue
			}
			p, ok := profiles[id]
			if !ok {
				name, img, found := tiles.Tile(id)
				if !found {
					return nil, fmt.Errorf("cell (%d,%d): %w %d", col, row, ErrUnknownTile, id)
				}
				p = tileprofile.Extract(name, img, angles, opts.AlphaThreshold)
				profiles[id] = p
				names[id] = name
			}
			out = append(out, Source{
				Key: Key{
					X: opts.Origin.X + col*CellSize,
					Y: opts.Origin.Y + row*CellSize,
				},
				Name:    names[id],
				Profile: p,
			})
		}
	}
	return out, nil
}

// BuildGrid is Sources followed by Build.
func BuildGrid(grid Grid, tiles TileSet, angles tileprofile.AngleTable, opts Options) (*Index, error) {
	sources, err := Sources(grid, tiles, angles, opts)
	if err != nil {
		return nil, err
	}
	return Build(sources), nil
}

// NamedTile is a tile image and its identifier.
type NamedTile struct {
	Name  string
	Image image.Image
}

// TileList is a TileSet indexed by position: tile id i is TileList[i].
type TileList []NamedTile

// Tile implements TileSet.
func (l TileList) Tile(id int) (string, image.Image, bool) {
	if id < 0 || id >= len(l) || l[id].Image == nil {
		return "", nil, false
	}
	return l[id].Name, l[id].Image, true
}
