package fresh

import "errors"

//unionfrom:generate
type Failure interface{ isFailure() }

type Wrapped struct{ error }

type Code struct{ uint16 }

func (Wrapped) isFailure() {}
func (Code) isFailure()    {}

var errBoom = errors.New("boom")
