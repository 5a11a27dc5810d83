package dup

//unionfrom:generate
type Code interface{ isCode() }

type Small struct{ int8 }

type Other struct{ int8 }

func (Small) isCode() {}
func (Other) isCode() {}
