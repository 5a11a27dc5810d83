package dup

type Celsius = float64

//unionfrom:generate
type Reading interface{ isReading() }

type Raw struct{ float64 }

type Label struct{ string }

type Temp struct{ Celsius }

type Name struct{ string }

func (Raw) isReading()   {}
func (Label) isReading() {}
func (Temp) isReading()  {}
func (Name) isReading()  {}
