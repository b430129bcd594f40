package component

// Dna seeds everything that should differ between otherwise identical agents,
// such as the search tie-breaker and scripted destination choice.
type Dna struct {
	Seed uint64
}

var DnaComponent = NewComponent[Dna]("dna")
