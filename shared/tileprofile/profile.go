// Package tileprofile derives per-column ground heights and slope angles from
// terrain tile artwork. Profiles are computed once at level load; terrain is
// static afterwards.
package tileprofile

import (
	"encoding/json"
	"fmt"
	"image"
	"io"

	"github.com/automoto/ringrush/shared/pixelmask"
)

// Size is the width and height of a terrain tile in pixels.
const Size = 64

// Heights is the ground height of each pixel column, measured up from the
// tile's bottom edge. Larger values mean more ground.
type Heights [Size]int

// Angles is the signed slope angle (degrees) of each pixel column.
type Angles [Size]int

// ExtractHeights scans every column of img top to bottom. The first row whose
// alpha exceeds threshold is the surface row y and the column height is Size-y.
// Columns without an opaque pixel keep height 0. Pixels beyond the first Size
// columns and rows are ignored.
func ExtractHeights(img image.Image, threshold uint8) Heights {
	var h Heights
	b := img.Bounds()
	cols := min(Size, b.Dx())
	rows := min(Size, b.Dy())

	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			if pixelmask.Opaque(img, b.Min.X+x, b.Min.Y+y, threshold) {
				h[x] = Size - y
				break
			}
		}
	}
	return h
}

// AngleTable maps a tile image identifier (usually its file name) to the angle
// profile the artist assigned to it.
type AngleTable map[string]Angles

// Lookup returns the angles for name, or a flat profile when name is unmapped.
func (t AngleTable) Lookup(name string) Angles {
	if a, ok := t[name]; ok {
		return a
	}
	return Angles{}
}

// LoadAngleTable decodes a JSON object of the form {"name": [64 ints], ...}.
// Arrays shorter than Size are padded with zeros; longer arrays are rejected.
func LoadAngleTable(r io.Reader) (AngleTable, error) {
	var raw map[string][]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode angle table: %w", err)
	}

	table := make(AngleTable, len(raw))
	for name, values := range raw {
		if len(values) > Size {
			return nil, fmt.Errorf("angle table entry %q: %d values, want at most %d", name, len(values), Size)
		}
		var a Angles
		copy(a[:], values)
		table[name] = a
	}
	return table, nil
}

// Profile is everything the physics needs from one tile image.
type Profile struct {
	Heights Heights
	Angles  Angles
	Mask    *pixelmask.Mask
}

// Extract builds the full profile for a tile image named name.
func Extract(name string, img image.Image, angles AngleTable, threshold uint8) Profile {
	return Profile{
		Heights: ExtractHeights(img, threshold),
		Angles:  angles.Lookup(name),
		Mask:    pixelmask.FromImage(img, threshold),
	}
}
