// pipeloop reads a pipe map and prints the distance from the start tile to
// the farthest point of the loop running through it.
//
// Usage:
//
//	pipeloop [--input=<path>] [--config=<file.toml>] [--log-level=<level>] [--log-format=text|json] [--max-rounds=<n>]
//
// Without flags the map is read from day-10/input.txt.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pipeloop:", err)
		os.Exit(1)
	}
}

// run executes the root command against the given arguments and streams.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}
