package empty

//unionfrom:generate
type Nothing interface{ isNothing() }
