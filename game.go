package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gravityball/common"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/entity"
	"github.com/milk9111/gravityball/ecs/system"
	"github.com/milk9111/gravityball/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	watcher   *prefabs.Watcher
	debug     bool
}

func NewGame(arena string, debug, watch bool) (*Game, error) {
	w := ecs.NewWorld()
	if _, err := entity.LoadArena(w, arena); err != nil {
		return nil, fmt.Errorf("game: load arena %s: %w", arena, err)
	}

	overlap := system.NewOverlapSystem()
	physics := system.NewPhysicsSystem()

	g := &Game{
		world: w,
		scheduler: ecs.NewScheduler(append(
			[]ecs.System{system.NewInputSystem()},
			system.GameplaySystems(overlap, physics)...,
		)...),
		physics: physics,
		render:  system.NewRenderSystem(),
		debug:   debug,
	}

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			// tuning still loads from the embedded copies
			log.Printf("Game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.applyReloads()
	g.scheduler.Update(g.world)
	return nil
}

// applyReloads drains pending prefab changes without blocking the frame.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			n, err := system.ReloadTuning(g.world, name)
			if err != nil {
				log.Printf("Game: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Game: reloaded %s (%d entities)", name, n)
			}
		case err := <-g.watcher.Errors:
			log.Printf("Game: prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), screen)
		system.DrawGravityDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()), common.ScreenWidth-90, 10)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Game: close watcher: %v", err)
		}
	}
}
