package selfuse

//unionfrom:generate
type Failure interface{ isFailure() }

type Code struct{ int8 }

type Reason struct{ string }

func (Code) isFailure()   {}
func (Reason) isFailure() {}

// check fails with the code itself when it is negative.
func check(n int8) Failure {
	if n < 0 {
		return FailureFromCode(n)
	}

	return nil
}
