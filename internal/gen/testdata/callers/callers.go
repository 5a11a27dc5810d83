package callers

import "unionfrom-generator/examples/myerror"

//unionfrom:generate
type Event interface{ isEvent() }

type Failed struct{ myerror.MyError }

type Count struct{ int }

func (Failed) isEvent() {}
func (Count) isEvent()  {}

// fail uses conversions generated here and in myerror.
func fail() Event {
	return EventFromFailed(myerror.MyErrorFromA(1))
}
