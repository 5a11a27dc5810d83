package broken

//unionfrom:generate
type Broken interface{ isBroken() }

type Oops struct{ undefinedType }

func (Oops) isBroken() {}
