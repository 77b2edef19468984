// main is the entry point for the mrsummary CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/mrsummary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
