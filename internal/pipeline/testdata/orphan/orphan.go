package orphan

// Level used to be a marked union.
type Level int
