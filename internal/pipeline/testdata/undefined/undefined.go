package undefined

//unionfrom:generate
type Broken interface{ isBroken() }

type Oops struct{ missingType }

func (Oops) isBroken() {}
