package ecs

import "strconv"

// Entity is a generational handle. A destroyed slot is reused with a bumped
// generation so stale handles stop resolving.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + ":" + strconv.Itoa(e.Gen)
}

func (e Entity) Valid() bool {
	return e.ID > 0
}
