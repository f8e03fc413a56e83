package props

import (
	"image"
	"sort"

	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/terrain"
	"github.com/solarlune/resolv"
)

// TagProp marks prop objects in the field's space.
const TagProp = "prop"

const (
	fieldCellSize = 32
	fieldMargin   = 256
)

// Field holds a level's props in a resolv space so contact queries only look
// at props near the query rectangle. The space is shifted so props at
// negative coordinates are still registered.
type Field struct {
	space  *resolv.Space
	probe  *resolv.Object
	origin image.Point
	props  []*Prop
	nextID int
}

// NewField returns an empty field covering bounds plus a margin on every side.
func NewField(bounds image.Rectangle) *Field {
	origin := bounds.Min.Sub(image.Pt(fieldMargin, fieldMargin))
	w := bounds.Dx() + 2*fieldMargin
	h := bounds.Dy() + 2*fieldMargin
	space := resolv.NewSpace(w, h, fieldCellSize, fieldCellSize)

	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)
	return &Field{space: space, probe: probe, origin: origin}
}

// Populate adds a prop for every level object that maps to a prop kind.
// Enemies get a walker in space; with a nil space they stand still.
func (f *Field) Populate(level *leveldata.Level, space *terrain.Space) {
	for _, o := range level.Objects {
		kind, ok := KindOf(o.Kind)
		if !ok {
			continue
		}
		if kind == KindEnemy && space != nil {
			f.SpawnEnemy(space, o.X, o.Y)
			continue
		}
		p := f.Spawn(kind, o.X, o.Y)
		if o.W > 0 && o.H > 0 {
			p.W, p.H = o.W, o.H
			f.Moved(p)
		}
	}
}

// Spawn adds a prop of kind at (x, y) with the kind's default size.
func (f *Field) Spawn(kind Kind, x, y float64) *Prop {
	size := defaultSize[kind]
	p := &Prop{Kind: kind, X: x, Y: y, W: size[0], H: size[1]}
	if kind.Capabilities().Animates {
		p.Frames, p.TicksPerFrame = 4, 5
	}
	return f.Add(p)
}

// Add registers p with the field and assigns its ID.
func (f *Field) Add(p *Prop) *Prop {
	f.nextID++
	p.ID = f.nextID
	p.removed = false
	p.object = resolv.NewObject(p.X-float64(f.origin.X), p.Y-float64(f.origin.Y), p.W, p.H, TagProp)
	p.object.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
	p.object.Data = p
	f.space.Add(p.object)
	f.props = append(f.props, p)
	return p
}

// Moved re-registers p after its position or size changed.
func (f *Field) Moved(p *Prop) {
	if p.object == nil || p.removed {
		return
	}
	p.object.X = p.X - float64(f.origin.X)
	p.object.Y = p.Y - float64(f.origin.Y)
	p.object.W, p.object.H = p.W, p.H
	p.object.Update()
}

// Remove takes p out of the field. Its walker, if any, leaves the terrain
// space too.
func (f *Field) Remove(p *Prop) {
	if p.removed {
		return
	}
	p.removed = true
	if p.object != nil {
		f.space.Remove(p.object)
	}
	if p.Walker != nil {
		p.Walker.Remove()
	}
}

// Props returns the live props in spawn order.
func (f *Field) Props() []*Prop {
	live := f.props[:0]
	for _, p := range f.props {
		if !p.removed {
			live = append(live, p)
		}
	}
	f.props = live
	return live
}

// Of returns the live props of kind in spawn order.
func (f *Field) Of(kind Kind) []*Prop {
	var out []*Prop
	for _, p := range f.Props() {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Touching returns the live props touched by r (refined by mask m anchored at
// r.Min when both sides have masks), in spawn order.
func (f *Field) Touching(r image.Rectangle, m *pixelmask.Mask) []*Prop {
	if r.Empty() {
		return nil
	}
	f.probe.X = float64(r.Min.X - f.origin.X)
	f.probe.Y = float64(r.Min.Y - f.origin.Y)
	f.probe.W, f.probe.H = float64(r.Dx()), float64(r.Dy())
	f.probe.Update()

	check := f.probe.Check(0, 0, TagProp)
	if check == nil {
		return nil
	}
	var out []*Prop
	for _, o := range check.ObjectsByTags(TagProp) {
		p, ok := o.Data.(*Prop)
		if !ok || p.removed {
			continue
		}
		if p.Touches(r, m) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Tick advances every live prop by one tick: age, animation, walking and
// expiry. Walking props follow their walker. Expired props and finished
// collect effects are removed.
func (f *Field) Tick(dt float32) {
	for _, p := range f.Props() {
		p.Age++
		p.Advance(dt)
		if p.Walker != nil && p.Enemy == nil {
			p.Walker.Step(0)
		}
		p.syncWalker()
		f.Moved(p)

		if p.Expired() || (p.Kind.Capabilities().Collects && p.Effect != nil && p.Done) {
			f.Remove(p)
		}
	}
}
