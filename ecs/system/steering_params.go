package system

// SteeringParams are the path-following tunables. Systems share one value by
// pointer so a config reload takes effect on the next tick.
type SteeringParams struct {
	// PathWidth is the corridor half-width.
	PathWidth float64
	// Lookahead is how far ahead along its heading an agent looks for the path.
	Lookahead float64
	// TargetAhead moves the seek target past the closest point.
	TargetAhead float64
	// ArrivalRadius is where agents start slowing down for the final point.
	ArrivalRadius float64
	// ArriveTolerance is how close to the final point counts as arrived.
	ArriveTolerance float64
}

func DefaultSteeringParams() SteeringParams {
	return SteeringParams{
		PathWidth:       2,
		Lookahead:       4,
		TargetAhead:     4,
		ArrivalRadius:   16,
		ArriveTolerance: 1,
	}
}
