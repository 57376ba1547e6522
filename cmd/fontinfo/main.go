// Command fontinfo resolves fonts the way a client would and reports
// what it found.
//
// Usage:
//
//	fontinfo resolve --config client.toml --size 18 --mode mono
//	fontinfo probe --stem fonts/mono --size 14 --assets ./assets
//	fontinfo config --config client.toml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
