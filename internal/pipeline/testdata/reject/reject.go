package reject

//unionfrom:generate
type Good interface{ isGood() }

type Yes struct{ bool }

func (Yes) isGood() {}

// Settings is a plain record.
//
//unionfrom:generate
type Settings struct {
	Verbose bool
}

//unionfrom:generate
type Named interface{ isNamed() }

type WithName struct{ Code int8 }

func (WithName) isNamed() {}
