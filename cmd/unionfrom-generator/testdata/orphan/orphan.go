package orphan

// Mode is no longer a union.
type Mode string
