package fresh

import "net/netip"

//unionfrom:generate
type Endpoint interface{ isEndpoint() }

type Addr struct{ netip.AddrPort }

type Socket struct{ string }

func (Addr) isEndpoint()   {}
func (Socket) isEndpoint() {}
