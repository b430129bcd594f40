package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/ecs/system"
	"github.com/waaghals/sim-something/navigation"
	"github.com/waaghals/sim-something/prefabs"
)

// Game is the ebiten viewer. Each ebiten update is one simulation tick.
type Game struct {
	sim      *Simulation
	watcher  *prefabs.Watcher
	renderer ecs.Renderer
	tiles    *system.TileRenderSystem
	agents   *system.AgentRenderSystem
	pause    *PauseUI
	debug    bool
	paused   bool
	step     bool
}

func NewGame(sim *Simulation, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		sim:     sim,
		watcher: watcher,
		tiles:   system.NewTileRenderSystem(sim.Nav),
		agents:  system.NewAgentRenderSystem(debug),
		debug:   debug,
	}
	g.tiles.ShowExplored = debug
	g.renderer.Add(g.tiles)
	g.renderer.Add(g.agents)
	w, h := g.Layout(0, 0)
	g.pause = NewPauseUI(g, w, h)
	return g
}

func (g *Game) Update() error {
	g.sim.drainReloads(g.watcher)

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.tiles.ShowExplored = g.debug
		g.agents.Debug = g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	// Mouse input belongs to the pause panel while paused.
	if !g.paused {
		mx, my := ebiten.CursorPosition()
		cursor := cp.Vector{X: float64(mx), Y: float64(my)}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.sim.Spawn.Request(cursor)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.sendAllTo(g.sim.Nav.Geometry().WorldToGrid(cursor))
		}
	}

	if g.paused {
		g.pause.Refresh(g.sim)
		g.pause.ui.Update()
	}
	if !g.paused || g.step {
		g.step = false
		g.sim.Step()
	}
	return nil
}

// sendAllTo gives every agent the same destination.
func (g *Game) sendAllTo(dest navigation.Cell) {
	w := g.sim.World
	ecs.ForEach(w, component.NavigationComponent.Kind(), func(e ecs.Entity, _ *component.Navigation) {
		if err := g.sim.Nav.SubmitDestination(w, e, dest); err != nil {
			g.sim.logger.Error("viewer: submit destination", "entity", e, "err", err)
		}
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.sim.World, screen)
	if g.paused {
		g.pause.ui.Draw(screen)
		return
	}

	stats := g.sim.Telemetry.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %.1f  FPS: %.1f  tick: %d\nagents: %d  searching: %d  following: %d  unreachable: %d\nfound: %d  arrived: %d  stale: %d  deferred: %d  explored: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), g.sim.World.Tick(),
		ecs.Count(g.sim.World, component.NavigationComponent.Kind()),
		stats.States[component.NavSearching], stats.States[component.NavHasPath], stats.States[component.NavUnreachable],
		stats.PathsFound, stats.Arrived, stats.Stale, stats.Deferred, stats.Explored,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sim.Nav.Grid().Size()
	size := g.sim.Nav.Geometry().TileSize
	return int(float64(w) * size), int(float64(h) * size)
}
