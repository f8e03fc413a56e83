package physics

import "image"

// Sensor geometry, relative to the body rectangle.
const (
	floorInsetLeft  = 1
	floorInsetRight = 2
	floorReach      = 8  // floor probes extend this far below the body
	wallHeight      = 16 // wall probe sits this far above the bottom edge
)

// Sensors are the probes derived from a body rectangle. They are rebuilt at
// every collision pass.
type Sensors struct {
	Floor [2]image.Rectangle
	Wall  image.Rectangle
}

// SensorsFor returns the sensors of rectangle r: two 1 px wide floor probes at
// left+1 and right-2 spanning the body height plus floorReach, and a 1 px tall
// wall probe across the body width at bottom-16.
func SensorsFor(r image.Rectangle) Sensors {
	h := r.Dy() + floorReach
	return Sensors{
		Floor: [2]image.Rectangle{
			image.Rect(r.Min.X+floorInsetLeft, r.Min.Y, r.Min.X+floorInsetLeft+1, r.Min.Y+h),
			image.Rect(r.Max.X-floorInsetRight, r.Min.Y, r.Max.X-floorInsetRight+1, r.Min.Y+h),
		},
		Wall: image.Rect(r.Min.X, r.Max.Y-wallHeight, r.Max.X, r.Max.Y-wallHeight+1),
	}
}

// Sensors returns the body's current sensors.
func (b *Body) Sensors() Sensors {
	return SensorsFor(b.Rect())
}
