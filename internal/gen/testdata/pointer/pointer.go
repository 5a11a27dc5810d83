package pointer

import "time"

//unionfrom:generate
type Node interface{ isNode() }

type Leaf struct{ *time.Time }

type Branch struct{ Children }

type Children []Node

func (*Leaf) isNode()  {}
func (Branch) isNode() {}
