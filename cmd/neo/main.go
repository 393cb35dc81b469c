// Command neo explores NASA's near-Earth object data set: it links objects
// to their recorded close approaches and answers lookups and filtered
// queries over the joined data.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
