// Command randkit draws random values from the command line.
//
//	randkit randint 1 6
//	randkit sample 2 alice bob carol dave
//	randkit shuffle --uniform --record draws.log a b c d
//	randkit shuffle --uniform --replay draws.log a b c d
//
// Draws can be recorded to a file with --record (or the RANDKIT_LOCAL_OUTPUT
// environment variable) and replayed later with --replay.
package main

import (
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
