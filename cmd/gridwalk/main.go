// Command gridwalk runs path searches, flood fills and island analysis over
// ASCII map files.
package main

import (
	"os"
)

func main() {
	cmd := NewCmdRoot("gridwalk", os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
