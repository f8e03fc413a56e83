package terrain

import (
	"image"

	"github.com/solarlune/resolv"
)

// TagSolid marks terrain objects in a resolv space.
const TagSolid = "solid"

// spaceMargin is extra room, in cells, kept around the terrain so entities
// that leave the level still have space cells to live in.
const spaceMargin = 4

// Space is a resolv space shifted so that Origin maps to its top-left corner.
// resolv only registers objects at non-negative coordinates, so everything in
// the space is stored relative to Origin.
type Space struct {
	*resolv.Space
	Origin image.Point
}

// NewSpace returns a Space covering the terrain plus a margin on every side,
// holding one TagSolid object per cell with the cell Key in Object.Data.
// Rectangle-only entities (walkers, scattered rings) and props resolve against
// this space; the pixel-accurate body physics uses the index directly.
func (idx *Index) NewSpace(spaceCellSize int) *Space {
	pad := spaceMargin * CellSize
	origin := idx.bounds.Min.Sub(image.Pt(pad, pad))
	w := idx.bounds.Dx() + 2*pad
	h := idx.bounds.Dy() + 2*pad
	s := &Space{Space: resolv.NewSpace(w, h, spaceCellSize, spaceCellSize), Origin: origin}

	for _, k := range idx.keys {
		r := idx.rects[k]
		x, y := s.Local(float64(r.Min.X), float64(r.Min.Y))
		obj := resolv.NewObject(x, y, float64(r.Dx()), float64(r.Dy()), TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, float64(r.Dx()), float64(r.Dy())))
		obj.Data = k
		s.Add(obj)
	}
	return s
}

// Local converts level coordinates to space coordinates.
func (s *Space) Local(x, y float64) (float64, float64) {
	return x - float64(s.Origin.X), y - float64(s.Origin.Y)
}

// World converts space coordinates to level coordinates.
func (s *Space) World(x, y float64) (float64, float64) {
	return x + float64(s.Origin.X), y + float64(s.Origin.Y)
}

// ObjectRect returns obj's rectangle in level coordinates.
func (s *Space) ObjectRect(obj *resolv.Object) image.Rectangle {
	x, y := s.World(obj.X, obj.Y)
	return image.Rect(int(x), int(y), int(x+obj.W), int(y+obj.H))
}
