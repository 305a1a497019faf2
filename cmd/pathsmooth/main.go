// Command pathsmooth reduces and rounds waypoint paths read as JSON.
//
// Usage:
//
//	pathsmooth smooth [flags] [file]
//	pathsmooth length [file]
//
// Waypoint files hold a JSON array whose elements are either [x, y, z]
// triples or objects with "x", "y" and "z" fields. y is elevation. Output is
// always written as triples.
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
