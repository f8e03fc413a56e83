package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// SpawnSparks throws n sparks out of (x, y) in random directions. They fall
// and disappear after cfg.Effects.SparkFrames.
func SpawnSparks(ecs *ecs.ECS, rng *rand.Rand, x, y float64, n int) {
	for range n {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.Effects.SparkSpeed * (0.5 + rng.Float64()/2)
		vx, vy := gamemath.ScatterVelocity(speed, angle)

		spark := archetypes.Spark.Spawn(ecs)
		components.Spark.SetValue(spark, components.SparkData{X: x, Y: y, VX: vx, VY: vy})
		components.AutoDestroy.SetValue(spark, components.AutoDestroyData{
			FramesRemaining: cfg.Effects.SparkFrames,
		})
	}
}
