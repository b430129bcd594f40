package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Renderer holds draw passes that run after the world has been updated.
type Renderer struct {
	passes []RenderSystem
}

func (r *Renderer) Add(pass RenderSystem) {
	if r == nil || pass == nil {
		return
	}
	r.passes = append(r.passes, pass)
}

// Draw calls all render passes in order.
func (r *Renderer) Draw(w *World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	for _, p := range r.passes {
		p.Draw(w, screen)
	}
}
