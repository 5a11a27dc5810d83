package shapes

//unionfrom:generate
type Shape interface{ isShape() }

type Circle struct{ float64 }

type Rect struct{ W, H float64 } // want `Shape: alternative Rect: unsupported alternative shape: only a single positional slot is supported \(got named fields\)`

func (Circle) isShape() {}
func (Rect) isShape()   {}

//unionfrom:generate
type Token interface{ isToken() }

type Pair struct { // want `Token: alternative Pair: expected exactly one field, found 2`
	int8
	int16
}

// Eof is never reached: validation stops at Pair.
type Eof struct{}

func (Pair) isToken() {}
func (Eof) isToken()  {}

//unionfrom:generate
type Signal interface{ isSignal() }

type Stop struct{} // want `Signal: alternative Stop: unsupported alternative shape: only a single positional slot is supported \(got no payload\)`

func (Stop) isSignal() {}
