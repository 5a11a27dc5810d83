package dups

//unionfrom:generate
type Status interface{ isStatus() }

type Open struct{ string }

type Reason struct{ error }

type Closed struct{ string } // want `Status: alternatives Open and Closed share the payload type string`

func (Open) isStatus()   {}
func (Reason) isStatus() {}
func (Closed) isStatus() {}
