package leveldata

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/ringrush/shared/terrain"
	"github.com/automoto/ringrush/shared/tileprofile"
	"github.com/lafriks/go-tiled"
)

// Layer file names inside a CSV level directory.
const (
	TerrainLayer = "terrain.csv"
	AnglesFile   = "angles.json"
)

// terrainOffsetY lifts terrain and ground-standing props so the art's 16 px
// lip sits on the grid line below.
const terrainOffsetY = -48

// objectLayer describes a CSV layer whose non-empty cells place objects.
type objectLayer struct {
	file    string
	kind    string
	offsetY int
}

var objectLayers = []objectLayer{
	{file: "rings.csv", kind: KindRing},
	{file: "springs.csv", kind: KindSpring, offsetY: terrainOffsetY},
	{file: "goal.csv", kind: KindGoal, offsetY: terrainOffsetY},
	{file: "enemies.csv", kind: KindEnemy},
	{file: "start.csv", kind: KindStart},
}

// LoadCSVLevel loads a level directory holding one CSV per layer. Only
// TerrainLayer is required. The returned level has no Tiles; the caller picks
// the tile set the grid ids refer to.
func LoadCSVLevel(fsys fs.FS, dir string) (*Level, error) {
	grid, err := LoadGrid(fsys, path.Join(dir, TerrainLayer))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", dir, err)
	}

	cols, rows := gridSize(grid)
	level := &Level{
		Name:   path.Base(dir),
		Grid:   grid,
		Origin: image.Pt(0, terrainOffsetY),
		Start:  DefaultStart,
		Width:  cols * terrain.CellSize,
		Height: rows * terrain.CellSize,
	}

	for _, layer := range objectLayers {
		g, err := LoadGrid(fsys, path.Join(dir, layer.file))
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrEmptyGrid) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load level %s: %w", dir, err)
		}
		for row, ids := range g {
			for col, id := range ids {
				if id == terrain.EmptyTile {
					continue
				}
				level.Objects = append(level.Objects, Object{
					Kind: layer.kind,
					X:    float64(col * terrain.CellSize),
					Y:    float64(row*terrain.CellSize + layer.offsetY),
				})
			}
		}
	}
	level.applyStart()

	level.Angles, err = LoadAngles(fsys, path.Join(dir, AnglesFile))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", dir, err)
	}
	return level, nil
}

// applyStart moves the first start object, if any, into Start.
func (l *Level) applyStart() {
	for i, o := range l.Objects {
		if o.Kind == KindStart {
			l.Start = image.Pt(int(o.X), int(o.Y))
			l.Objects = append(l.Objects[:i], l.Objects[i+1:]...)
			return
		}
	}
}

// TMX layer and object group names.
const (
	tmxTerrainLayer = "terrain"
	tmxNameProperty = "name"
)

var tmxObjectGroups = map[string]string{
	"rings":   KindRing,
	"springs": KindSpring,
	"goal":    KindGoal,
	"enemies": KindEnemy,
	"start":   KindStart,
}

// TileMap is a TileSet keyed by Tiled global tile id.
type TileMap map[int]terrain.NamedTile

// Tile implements terrain.TileSet.
func (m TileMap) Tile(id int) (string, image.Image, bool) {
	t, ok := m[id]
	if !ok || t.Image == nil {
		return "", nil, false
	}
	return t.Name, t.Image, true
}

// LoadTMX parses a Tiled map. The "terrain" tile layer becomes the grid (ids
// are Tiled global ids) and the tiles it uses are cut from their tilesets. A
// tileset tile's "name" property is its angle table identifier; without one
// the identifier is "<tileset>/<local id>". Object groups named rings,
// springs, goal, enemies and start place objects. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != terrain.CellSize || levelMap.TileHeight != terrain.CellSize {
		return nil, fmt.Errorf("load TMX %s: tiles are %dx%d: %w", tmxPath, levelMap.TileWidth, levelMap.TileHeight, ErrTileSize)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Start:  DefaultStart,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tiles := TileMap{}
	sheets := map[string]image.Image{}
	for _, layer := range levelMap.Layers {
		if layer.Name != tmxTerrainLayer {
			continue
		}
		level.Origin = image.Pt(layer.OffsetX, layer.OffsetY)
		for y := 0; y < levelMap.Height; y++ {
			row := make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					row[x] = terrain.EmptyTile
					continue
				}
				gid := int(tile.Tileset.FirstGID + tile.ID)
				row[x] = gid
				if _, ok := tiles[gid]; ok {
					continue
				}
				t, err := cutTile(fsys, tile, sheets)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				tiles[gid] = t
			}
			level.Grid = append(level.Grid, row)
		}
		break
	}
	if len(level.Grid) == 0 {
		return nil, fmt.Errorf("load TMX %s: no %q layer: %w", tmxPath, tmxTerrainLayer, ErrEmptyGrid)
	}
	level.Tiles = tiles

	for _, og := range levelMap.ObjectGroups {
		kind, ok := tmxObjectGroups[og.Name]
		if !ok {
			continue
		}
		for _, o := range og.Objects {
			level.Objects = append(level.Objects, Object{
				Kind: kind,
				X:    o.X,
				Y:    o.Y,
				W:    o.Width,
				H:    o.Height,
			})
		}
	}
	// Tiled lists objects in creation order; keep placement order stable.
	sort.SliceStable(level.Objects, func(i, j int) bool {
		return level.Objects[i].X < level.Objects[j].X
	})
	level.applyStart()

	level.Angles, err = LoadAngles(fsys, path.Join(path.Dir(tmxPath), AnglesFile))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return level, nil
}

// cutTile resolves a layer tile to its image: a sub-image of the tileset
// sheet, or the tile's own image in a collection tileset.
func cutTile(fsys fs.FS, tile *tiled.LayerTile, sheets map[string]image.Image) (terrain.NamedTile, error) {
	ts := tile.Tileset
	name := fmt.Sprintf("%s/%d", ts.Name, tile.ID)

	tsTile, err := ts.GetTilesetTile(tile.ID)
	if err == nil {
		if n := tsTile.Properties.GetString(tmxNameProperty); n != "" {
			name = n
		}
		if tsTile.Image != nil && tsTile.Image.Source != "" {
			img, err := loadSheet(fsys, ts.GetFileFullPath(tsTile.Image.Source), sheets)
			if err != nil {
				return terrain.NamedTile{}, err
			}
			return terrain.NamedTile{Name: name, Image: img}, nil
		}
	}

	if ts.Image == nil || ts.Image.Source == "" {
		return terrain.NamedTile{}, fmt.Errorf("tileset %s has no image for tile %d", ts.Name, tile.ID)
	}
	if ts.TileWidth != tileprofile.Size || ts.TileHeight != tileprofile.Size {
		return terrain.NamedTile{}, fmt.Errorf("tileset %s: %w", ts.Name, ErrTileSize)
	}
	sheet, err := loadSheet(fsys, ts.GetFileFullPath(ts.Image.Source), sheets)
	if err != nil {
		return terrain.NamedTile{}, err
	}
	rect := ts.GetTileRect(tile.ID).Add(sheet.Bounds().Min)
	sub, ok := sheet.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return terrain.NamedTile{}, fmt.Errorf("tileset %s: image cannot be cut", ts.Name)
	}
	return terrain.NamedTile{Name: name, Image: sub.SubImage(rect)}, nil
}

func loadSheet(fsys fs.FS, name string, sheets map[string]image.Image) (image.Image, error) {
	name = path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if img, ok := sheets[name]; ok {
		return img, nil
	}
	img, err := decodeImage(fsys, name)
	if err != nil {
		return nil, err
	}
	sheets[name] = img
	return img, nil
}
