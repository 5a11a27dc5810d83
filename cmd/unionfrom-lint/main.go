// Command unionfrom-lint reports marked declarations that unionfrom-generator
// would reject, without generating anything.
//
//	go run unionfrom-generator/cmd/unionfrom-lint ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"unionfrom-generator/pkg/unionfromanalysis"
)

func main() {
	singlechecker.Main(unionfromanalysis.Analyzer)
}
