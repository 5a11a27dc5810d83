package kinds

//unionfrom:generate
type Settings struct{ Verbose bool } // want `^Settings: unsupported declaration kind: only tagged unions are supported \(got record\)$`

//unionfrom:generate
type Level int // want `Level: unsupported declaration kind`

//unionfrom:generate
type Any interface{} // want `Any: unsupported declaration kind`

//unionfrom:generate
type Number interface{ ~int | ~float64 } // want `Number: unsupported declaration kind`

// Unmarked records are fine.
type Plain struct{ Name string }
