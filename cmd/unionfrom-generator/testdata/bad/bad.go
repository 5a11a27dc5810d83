package bad

//unionfrom:generate
type Shape interface{ isShape() }

type Circle struct{ float64 }

type Rect struct {
	float64
	int32
}

func (Circle) isShape() {}
func (Rect) isShape()   {}
