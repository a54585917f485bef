// Command yieldcheck reports loops in routine bodies that never reach a
// yield point.
//
//	yieldcheck ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/greenlab/routine/yieldcheck"
)

func main() {
	singlechecker.Main(yieldcheck.Analyzer)
}
