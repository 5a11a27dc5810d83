package shadow

import th "unionfrom-generator/examples/myerror/thing"

//unionfrom:generate
type Event interface{ isEvent() }

type Moved struct{ th.Thing }

func (Moved) isEvent() {}
