// main is the entry point for the loggraph CLI.
package main

import (
	"fmt"
	"os"

	"github.com/loggraph/loggraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
