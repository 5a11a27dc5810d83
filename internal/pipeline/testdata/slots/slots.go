package slots

//unionfrom:generate
type Bad interface{ isBad() }

type X struct {
	int8
	int16
}

func (X) isBad() {}
