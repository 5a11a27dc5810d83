package ok

import "time"

//unionfrom:generate
type Event interface{ isEvent() }

type Started struct{ time.Time }

type Failed struct{ error }

type Retried struct{ *Attempt }

type Attempt struct{ N int }

func (Started) isEvent()  {}
func (Failed) isEvent()   {}
func (*Retried) isEvent() {}

// Unmarked unions are not checked.
type Loose interface{ isLoose() }

type Many struct{ a, b int }

func (Many) isLoose() {}
