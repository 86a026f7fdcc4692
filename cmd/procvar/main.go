// Package main is the entry point for the procvar CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cibseven/procvar/cmd/procvar/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
