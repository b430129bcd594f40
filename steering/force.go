package steering

import (
	"github.com/jakecoffman/cp"
	"github.com/waaghals/sim-something/common"
)

// Seek returns the force that turns vel toward target at maxSpeed, capped at maxForce.
func Seek(pos, vel, target cp.Vector, maxSpeed, maxForce float64) cp.Vector {
	desired := direction(pos, target).Mult(maxSpeed)
	return truncate(desired.Sub(vel), maxForce)
}

// Arrive is Seek with the desired speed ramping down to zero inside slowingRadius.
func Arrive(pos, vel, target cp.Vector, maxSpeed, maxForce, slowingRadius float64) cp.Vector {
	dist := pos.Distance(target)
	speed := maxSpeed
	if slowingRadius > 0 && dist < slowingRadius {
		speed = common.Remap(dist, 0, slowingRadius, 0, maxSpeed)
	}
	desired := direction(pos, target).Mult(speed)
	return truncate(desired.Sub(vel), maxForce)
}

// Integrate applies one explicit Euler step and returns the new position and
// velocity. The accumulated force is consumed; callers reset it to zero.
func Integrate(pos, vel, acc cp.Vector, maxSpeed float64) (cp.Vector, cp.Vector) {
	vel = truncate(vel.Add(acc), maxSpeed)
	return pos.Add(vel), vel
}

// Anticipate projects pos lookahead units along the heading of vel.
// A resting agent anticipates its own position.
func Anticipate(pos, vel cp.Vector, lookahead float64) cp.Vector {
	return pos.Add(normalize(vel).Mult(lookahead))
}
