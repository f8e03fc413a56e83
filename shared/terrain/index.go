// Package terrain holds the level geometry index: per-cell solid rectangles,
// height and angle profiles and pixel masks, all keyed by the cell's top-left
// pixel coordinate. The index is built once per level and is read-only while the
// simulation runs.
package terrain

import (
	"image"
	"sort"

	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/tileprofile"
)

// CellSize is the side of a terrain cell in pixels.
const CellSize = tileprofile.Size

// Key identifies a cell by its top-left pixel coordinate.
type Key struct {
	X, Y int
}

// Rect returns the cell's solid rectangle.
func (k Key) Rect() image.Rectangle {
	return image.Rect(k.X, k.Y, k.X+CellSize, k.Y+CellSize)
}

// Source is one placed terrain tile handed to Build.
type Source struct {
	Key     Key
	Name    string
	Profile tileprofile.Profile
}

// Index is the level geometry index.
type Index struct {
	rects   map[Key]image.Rectangle
	heights map[Key]tileprofile.Heights
	angles  map[Key]tileprofile.Angles
	masks   map[Key]*pixelmask.Mask
	names   map[Key]string

	keys   []Key           // row-major
	bucket map[Key][]Key   // grid coordinate -> cells anchored in that grid square
	bounds image.Rectangle // union of all cell rects
}

// Build creates an index from placed tiles. A later source with the same key
// replaces an earlier one.
func Build(sources []Source) *Index {
	idx := &Index{
		rects:   make(map[Key]image.Rectangle, len(sources)),
		heights: make(map[Key]tileprofile.Heights, len(sources)),
		angles:  make(map[Key]tileprofile.Angles, len(sources)),
		masks:   make(map[Key]*pixelmask.Mask, len(sources)),
		names:   make(map[Key]string, len(sources)),
		bucket:  make(map[Key][]Key, len(sources)),
	}

	for _, src := range sources {
		k := src.Key
		if _, dup := idx.rects[k]; !dup {
			idx.keys = append(idx.keys, k)
			g := gridOf(k.X, k.Y)
			idx.bucket[g] = append(idx.bucket[g], k)
		}
		idx.rects[k] = k.Rect()
		idx.heights[k] = src.Profile.Heights
		idx.angles[k] = src.Profile.Angles
		mask := src.Profile.Mask
		if mask == nil {
			mask = pixelmask.New(CellSize, CellSize)
		}
		idx.masks[k] = mask
		idx.names[k] = src.Name
	}

	sortRowMajor(idx.keys)
	for _, k := range idx.keys {
		idx.bounds = idx.bounds.Union(idx.rects[k])
	}
	return idx
}

func sortRowMajor(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
}

// gridOf returns the grid square (in CellSize units) holding pixel (x, y).
func gridOf(x, y int) Key {
	return Key{X: floorDiv(x, CellSize), Y: floorDiv(y, CellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Len returns the number of cells.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Keys returns every cell key in row-major order. The slice must not be modified.
func (idx *Index) Keys() []Key {
	return idx.keys
}

// Bounds returns the smallest rectangle containing every cell.
func (idx *Index) Bounds() image.Rectangle {
	return idx.bounds
}

// Has reports whether a cell exists at k.
func (idx *Index) Has(k Key) bool {
	_, ok := idx.rects[k]
	return ok
}

// RectAt returns the solid rectangle of cell k.
func (idx *Index) RectAt(k Key) image.Rectangle {
	return idx.rects[k]
}

// HeightProfileAt returns the height profile of cell k.
func (idx *Index) HeightProfileAt(k Key) tileprofile.Heights {
	return idx.heights[k]
}

// AngleProfileAt returns the angle profile of cell k.
func (idx *Index) AngleProfileAt(k Key) tileprofile.Angles {
	return idx.angles[k]
}

// MaskAt returns the pixel mask of cell k, or nil when k is not a cell.
func (idx *Index) MaskAt(k Key) *pixelmask.Mask {
	return idx.masks[k]
}

// NameAt returns the tile image identifier cell k was built from.
func (idx *Index) NameAt(k Key) string {
	return idx.names[k]
}

// SolidCheck reports whether any cell's rectangle contains p.
func (idx *Index) SolidCheck(p image.Point) bool {
	for _, k := range idx.candidates(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}) {
		if p.In(idx.rects[k]) {
			return true
		}
	}
	return false
}

// Overlapping returns, in row-major order, every cell whose rectangle overlaps r.
// Empty rectangles overlap nothing.
func (idx *Index) Overlapping(r image.Rectangle) []Key {
	if r.Empty() {
		return nil
	}
	var out []Key
	for _, k := range idx.candidates(r) {
		if r.Overlaps(idx.rects[k]) {
			out = append(out, k)
		}
	}
	return out
}

// candidates returns cells anchored in grid squares that r (grown by one cell
// up and left, for cells not aligned to the grid) can touch, row-major.
func (idx *Index) candidates(r image.Rectangle) []Key {
	if len(idx.keys) == 0 || r.Empty() {
		return nil
	}
	lo := gridOf(r.Min.X, r.Min.Y)
	hi := gridOf(r.Max.X-1, r.Max.Y-1)

	var out []Key
	for gy := lo.Y - 1; gy <= hi.Y; gy++ {
		for gx := lo.X - 1; gx <= hi.X; gx++ {
			out = append(out, idx.bucket[Key{X: gx, Y: gy}]...)
		}
	}
	if len(out) > 1 {
		sortRowMajor(out)
	}
	return out
}
