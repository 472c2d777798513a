// Command sekfmt formats amounts and account statements as Swedish krona.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
