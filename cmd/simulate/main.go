// Command simulate runs a level headless with scripted input and logs the
// player's trajectory. It drives the same world code as the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/automoto/ringrush/assets/levels"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/runner"
)

// segment holds one intent for a number of ticks.
type segment struct {
	intent runner.Intent
	ticks  int
}

// parseScript reads segments like "right:120,right+jump:1,idle:30". Jump is
// pressed on the first tick of its segment only.
func parseScript(s string) ([]segment, error) {
	var out []segment
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("parse segment %q: missing tick count", part)
		}
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("parse segment %q: bad tick count", part)
		}
		var in runner.Intent
		for _, k := range strings.Split(keys, "+") {
			switch k {
			case "left":
				in.Left = true
			case "right":
				in.Right = true
			case "up":
				in.Up = true
			case "down":
				in.Down = true
			case "jump":
				in.Jump = true
			case "idle":
			default:
				return nil, fmt.Errorf("parse segment %q: unknown key %q", part, k)
			}
		}
		out = append(out, segment{intent: in, ticks: n})
	}
	return out, nil
}

// intentAt returns the scripted intent for tick, or idle past the script.
func intentAt(script []segment, tick int) runner.Intent {
	for _, s := range script {
		if tick < s.ticks {
			in := s.intent
			in.Jump = in.Jump && tick == 0
			return in
		}
		tick -= s.ticks
	}
	return runner.Intent{}
}

func loadLevel(name string) (*leveldata.Level, error) {
	if _, err := os.Stat(name); err == nil {
		return levels.LoadPath(name)
	}
	return levels.Load(name)
}

func main() {
	levelName := flag.String("level", "green_hill", "Bundled level name, level directory or .tmx file")
	ticks := flag.Int("ticks", 1200, "Ticks to simulate")
	script := flag.String("script", "right:600,right+jump:1,right:599", "Input script of keys:ticks segments")
	every := flag.Int("every", 30, "Log the player every N ticks (0 = events only)")
	seed := flag.Uint64("seed", 1, "Seed for enemy patrols and scattered rings")
	flag.Parse()

	segments, err := parseScript(*script)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}
	level, err := loadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	idx, err := level.Index(pixelmask.DefaultAlphaThreshold)
	if err != nil {
		log.Fatalf("Failed to index level: %v", err)
	}

	cfg := runner.DefaultConfig()
	cfg.Seed = *seed
	cfg.Masks = levels.PropMasks()
	cfg.Params.Bounds.End = float64(level.Origin.X + level.Width)
	world := runner.NewWorld(level, idx, cfg)
	player := world.SpawnPlayer(16, 32, 3)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Simulating %s (%d cells) for %d ticks", level.Name, idx.Len(), *ticks)
	for tick := range *ticks {
		select {
		case <-sigChan:
			log.Println("Interrupted")
			report(world, player, tick)
			return
		default:
		}

		ev := world.Tick(player, intentAt(segments, tick))
		if ev != (runner.Events{}) {
			log.Printf("tick %5d events %+v", tick, ev)
		}
		if *every > 0 && tick%*every == 0 {
			b := player.Body
			log.Printf("tick %5d pos (%7.2f, %7.2f) speed (%5.2f, %5.2f) angle %3d grounded %-5t airborne %-5t",
				tick, b.X, b.Y, b.SpeedX, b.SpeedY, b.Angle, b.Grounded, b.Airborne)
		}

		if ev.DeathOver {
			if player.Tally.Lives <= 0 {
				log.Printf("Game over at tick %d", tick)
				report(world, player, tick)
				return
			}
			world.Respawn(player)
		}
		if world.Complete() {
			log.Printf("Level complete at tick %d", tick)
			report(world, player, tick)
			return
		}
	}
	report(world, player, *ticks)
}

func report(world *runner.World, p *runner.Player, ticks int) {
	t := p.Tally
	score := t.Score
	if world.Complete() {
		score = t.FinalScore(world.Elapsed())
	}
	log.Printf("After %d ticks: clock %s rings %d lives %d score %d", ticks, world.Elapsed(), t.Rings, t.Lives, score)
}
