package factory

import (
	"math/rand/v2"

	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/assets"
	"github.com/automoto/ringrush/assets/levels"
	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the geometry index and world for level and spawns the
// level entity. It panics if the level's terrain cannot be indexed.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	idx, err := level.Index(cfg.Physics.AlphaThreshold)
	if err != nil {
		panic(err)
	}

	seed := cfg.Physics.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	worldCfg := cfg.World(seed)
	if worldCfg.Params.Bounds.End == 0 {
		worldCfg.Params.Bounds.End = float64(level.Origin.X + level.Width)
	}
	worldCfg.Masks = levels.PropMasks()
	world := runner.NewWorld(level, idx, worldCfg)

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Level: level,
		World: world,
		Tiles: tileImages(level),
	})
	return entry
}

// tileImages uploads every tile the level's grid uses, keyed by tile name.
func tileImages(level *leveldata.Level) map[string]*ebiten.Image {
	out := make(map[string]*ebiten.Image)
	seen := make(map[int]bool)
	for _, row := range level.Grid {
		for _, id := range row {
			if seen[id] {
				continue
			}
			seen[id] = true
			name, img, ok := level.Tiles.Tile(id)
			if !ok {
				continue
			}
			out[name] = assets.GetTileImage(level.Name+"/"+name, img)
		}
	}
	return out
}
