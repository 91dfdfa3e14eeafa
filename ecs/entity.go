package ecs

import "strconv"

// Entity is a generational handle. A destroyed entity's ID may be reused, but
// the old handle stays dead because its Gen no longer matches.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

func (e Entity) Valid() bool {
	return e.ID > 0
}
