package component

import "github.com/jakecoffman/cp"

// Seek asks the steering pass to push the agent toward Target this tick.
// A positive SlowingRadius turns it into an arrive behaviour.
type Seek struct {
	Target        cp.Vector
	SlowingRadius float64
}

var SeekComponent = NewComponent[Seek]("seek")
