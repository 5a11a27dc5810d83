package dup

//unionfrom:generate
type Status interface{ isStatus() }

type Open struct{ string }

type Closed struct{ string }

func (Open) isStatus()   {}
func (Closed) isStatus() {}
