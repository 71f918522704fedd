// Command modthree computes binary numbers modulo three with the fsmx mod-three machine.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
