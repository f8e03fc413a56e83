package leveldata

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // tile art decoders
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/ringrush/shared/terrain"
	"github.com/automoto/ringrush/shared/tileprofile"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var tileExts = map[string]bool{".png": true, ".bmp": true, ".webp": true}

// LoadTileDir decodes every tile image in dir, sorted by file name. Tile id i
// of a terrain grid refers to the i-th image; the file name is the tile's
// identifier in the angle table.
func LoadTileDir(fsys fs.FS, dir string) (terrain.TileList, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load tileset %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !tileExts[strings.ToLower(path.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	tiles := make(terrain.TileList, 0, len(names))
	for _, name := range names {
		img, err := decodeImage(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load tileset %s: %w", dir, err)
		}
		if b := img.Bounds(); b.Dx() != tileprofile.Size || b.Dy() != tileprofile.Size {
			return nil, fmt.Errorf("load tileset %s: %s is %dx%d: %w", dir, name, b.Dx(), b.Dy(), ErrTileSize)
		}
		tiles = append(tiles, terrain.NamedTile{Name: name, Image: img})
	}
	return tiles, nil
}

// LoadAngles reads the tile angle table from fsys. A missing file yields an
// empty table: every tile is flat.
func LoadAngles(fsys fs.FS, name string) (tileprofile.AngleTable, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tileprofile.AngleTable{}, nil
		}
		return nil, fmt.Errorf("open angle table %s: %w", name, err)
	}
	defer f.Close()

	table, err := tileprofile.LoadAngleTable(f)
	if err != nil {
		return nil, fmt.Errorf("load angle table %s: %w", name, err)
	}
	return table, nil
}

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
