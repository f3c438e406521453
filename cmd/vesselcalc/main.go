// Command vesselcalc walks the vessel calculator wizard from a terminal or
// runs one calculation non-interactively.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
