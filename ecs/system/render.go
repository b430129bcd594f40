package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
	"golang.org/x/image/colornames"
)

var tileColors = map[byte]color.Color{
	navigation.TileFloor:     colornames.Darkslategray,
	navigation.TileWall:      colornames.Dimgray,
	navigation.TileStairUp:   colornames.Goldenrod,
	navigation.TileStairDown: colornames.Sienna,
}

var stateColors = map[component.NavigationState]color.Color{
	component.NavIdle:        colornames.Lightgray,
	component.NavRequested:   colornames.Khaki,
	component.NavSearching:   colornames.Orange,
	component.NavHasPath:     colornames.Limegreen,
	component.NavUnreachable: colornames.Crimson,
}

// TileRenderSystem draws the map the navigation mesh is built from.
type TileRenderSystem struct {
	nav *Navigation
	// ShowExplored tints tiles that already have cached mesh edges.
	ShowExplored bool
}

func NewTileRenderSystem(nav *Navigation) *TileRenderSystem {
	return &TileRenderSystem{nav: nav}
}

func (r *TileRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.nav == nil {
		return
	}
	grid, ok := r.nav.Grid().(*navigation.TileGrid)
	if !ok {
		return
	}
	size := float32(r.nav.geometry.TileSize)
	gw, gh := grid.Size()
	mesh := r.nav.Mesh()

	for y := uint32(0); y < gh; y++ {
		for x := uint32(0); x < gw; x++ {
			c := navigation.Cell{X: x, Y: y}
			t, _ := grid.Tile(c)
			clr, ok := tileColors[t]
			if !ok {
				continue
			}
			vector.FillRect(screen, float32(x)*size, float32(y)*size, size-1, size-1, clr, false)
			if r.ShowExplored {
				if _, explored := mesh.Cached(c); explored {
					vector.FillRect(screen, float32(x)*size, float32(y)*size, size-1, size-1, color.RGBA{R: 40, G: 90, B: 140, A: 60}, false)
				}
			}
		}
	}
}

// AgentRenderSystem draws agents coloured by navigation state, plus their
// velocity and followed path when Debug is set.
type AgentRenderSystem struct {
	Debug bool
}

func NewAgentRenderSystem(debug bool) *AgentRenderSystem {
	return &AgentRenderSystem{Debug: debug}
}

func (r *AgentRenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	if r.Debug {
		ecs.ForEach(w, component.FollowPathComponent.Kind(), func(_ ecs.Entity, fp *component.FollowPath) {
			for i := 1; i < len(fp.Path); i++ {
				a, b := fp.Path[i-1], fp.Path[i]
				clr := colornames.Steelblue
				if i-1 < fp.Segment {
					clr = colornames.Slategray
				}
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
			}
		})
		ecs.ForEach(w, component.SeekComponent.Kind(), func(_ ecs.Entity, s *component.Seek) {
			vector.FillCircle(screen, float32(s.Target.X), float32(s.Target.Y), 1.5, colornames.Magenta, false)
		})
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BoidComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Boid) {
		var clr color.Color = colornames.White
		if nav, ok := ecs.Get(w, e, component.NavigationComponent.Kind()); ok {
			clr = stateColors[nav.State]
		}
		vector.FillCircle(screen, float32(t.X), float32(t.Y), 3, clr, true)
		if r.Debug {
			tip := t.Vec().Add(b.Velocity.Mult(8))
			vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(tip.X), float32(tip.Y), 1, colornames.Yellow, false)
		}
	})
}
