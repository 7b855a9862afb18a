package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Faultbox/lowpoly-tree/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup runs before exit.
func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, args); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130 // Standard shell convention for SIGINT
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
