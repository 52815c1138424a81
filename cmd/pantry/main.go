// Package main provides the pantry CLI: inspection, backup, restore,
// and factory reset for a Pantry content store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
