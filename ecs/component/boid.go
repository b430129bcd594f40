package component

import "github.com/jakecoffman/cp"

// Boid is the point-mass state every steering behaviour feeds into.
// Acceleration accumulates forces during a tick and is cleared on integration.
type Boid struct {
	Velocity     cp.Vector
	Acceleration cp.Vector
	MaxSpeed     float64
	MaxForce     float64
}

func (b *Boid) ApplyForce(f cp.Vector) {
	b.Acceleration = b.Acceleration.Add(f)
}

var BoidComponent = NewComponent[Boid]("boid")
