package systems

import (
	"image"
	"math"

	"github.com/automoto/ringrush/assets"
	"github.com/automoto/ringrush/assets/levels"
	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/automoto/ringrush/shared/props"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cullPadding keeps sprites from popping in and out at the screen edges.
const cullPadding = 64

// viewRect is the part of the world on screen, padded for culling.
func viewRect(screen *ebiten.Image, camX, camY float64) image.Rectangle {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return image.Rect(int(-camX), int(-camY), int(-camX)+width, int(-camY)+height).Inset(-cullPadding)
}

// DrawProps renders rings, springs, the goal post and enemies. Collected
// rings shrink and the touched goal post spins with their effect's value.
func DrawProps(ecs *ecs.ECS, screen *ebiten.Image) {
	world := getWorld(ecs)
	if world == nil {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	view := viewRect(screen, camX, camY)

	for _, p := range world.Field.Props() {
		if !p.Rect().Overlaps(view) {
			continue
		}
		img := assets.GetPropImage(p.Kind, p.Frame)
		w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-w/2, -h/2)

		switch caps := p.Kind.Capabilities(); {
		case caps.Collects && p.Effect != nil:
			drawOp.GeoM.Scale(float64(p.Value), float64(p.Value))
		case caps.Finishes && p.Effect != nil:
			// A vertical turn reads as a horizontal squeeze.
			drawOp.GeoM.Scale(math.Cos(float64(p.Value)), 1)
		case caps.Walks && p.Enemy != nil && p.Enemy.Flip:
			drawOp.GeoM.Scale(-1, 1)
		}
		if p.Kind == props.KindScatteredRing && p.Lifetime > 0 && p.Lifetime-p.Age < 60 && p.Age%4 < 2 {
			drawOp.ColorScale.ScaleAlpha(0.3)
		}

		cx, cy := propAnchor(p, w, h)
		drawOp.GeoM.Translate(cx+camX, cy+camY)
		screen.DrawImage(img, drawOp)
	}

	shot := assets.GetShotImage()
	for _, s := range world.Shots {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(s.X-assets.ShotSize/2+camX, s.Y-assets.ShotSize/2+camY)
		screen.DrawImage(shot, drawOp)
	}
}

// propAnchor returns where the centre of a prop's image goes. Walkers stand
// on cell tops, so they are drawn down on the tile lip; the goal's art is
// taller than its rectangle and stands on the lip.
func propAnchor(p *props.Prop, w, h float64) (float64, float64) {
	cx, cy := p.Center()
	switch {
	case p.Walker != nil:
		cy += levels.Lip
	case p.Kind == props.KindGoal:
		cy = p.Y + levels.Lip - h/2
	}
	return cx, cy
}

// DrawPlayer renders the player's current frame, anchored bottom-centre on
// its body and turned to the ground angle.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getPlayerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Player == nil {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	anim := components.Animation.Get(entry)
	img := anim.Frame()
	if img == nil {
		return
	}

	// Blink while invulnerable
	if player.InvulnFrames > 0 && !player.Body.Hurt && player.InvulnFrames%8 < 4 {
		return
	}

	b := player.Body
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))

	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)
	}
	if player.FacingLeft {
		drawOp.GeoM.Scale(-1, 1)
	}
	if b.Grounded && !b.Airborne {
		drawOp.GeoM.Rotate(gamemath.AngleRadians(b.Angle))
	}

	bottom := bodyBottom(player)
	drawOp.GeoM.Translate(bottom.X+camX, bottom.Y+camY)
	screen.DrawImage(img, drawOp)
}

func bodyBottom(player *components.PlayerData) dmath.Vec2 {
	r := player.Body.Rect()
	return dmath.Vec2{X: float64(r.Min.X+r.Max.X) / 2, Y: float64(r.Max.Y)}
}

// DrawSparks renders hit particles.
func DrawSparks(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	size := cfg.Effects.SparkSize
	components.Spark.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spark.Get(e)
		vector.FillRect(screen, float32(s.X+camX)-size/2, float32(s.Y+camY)-size/2, size, size, cfg.Effects.SparkColor, false)
	})
}
