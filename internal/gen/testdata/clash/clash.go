package clash

//unionfrom:generate
type Result interface{ isResult() }

type Ok struct{ string }

func (Ok) isResult() {}

// ResultFromOk is written by hand and collides with the generated one.
func ResultFromOk(s string) Result { return Ok{s} }
