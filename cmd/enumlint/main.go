// Command enumlint runs the enum checks as a standalone vet tool:
//
//	go vet -vettool=$(which enumlint) ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/origadmin/enumgen/internal/lint"
)

func main() {
	multichecker.Main(
		lint.StringifyAnalyzer,
		lint.DescriptionAnalyzer,
	)
}
