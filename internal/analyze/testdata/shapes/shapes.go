package shapes

import "time"

//unionfrom:generate
type Value interface{ isValue() }

type Int struct{ int64 }

func (Int) isValue() {}

type Text struct{ string }

func (Text) isValue() {}

type Stamp struct{ time.Time }

func (Stamp) isValue() {}

type Ref struct{ *Node }

func (*Ref) isValue() {}

// Node does not implement Value.
type Node struct{ Name string }

type (
	// Record is marked but is not a union.
	//
	//unionfrom:generate
	Record struct{ A int }

	//unionfrom:generate
	Bad interface{ isBad() }
)

type Pair struct {
	int8
	int16
}

func (Pair) isBad() {}

type Empty struct{}

func (Empty) isBad() {}

// Unmarked shares the sealing method of Value but is not generated.
type Unmarked interface{ isValue() }
