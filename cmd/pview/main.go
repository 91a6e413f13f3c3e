package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &appContext{}
	if err := execute(ctx, app, newRootCmd(app)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// execute runs the command tree and closes the log file afterwards, also when
// the command failed.
func execute(ctx context.Context, app *appContext, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if cerr := app.close(); err == nil {
		err = cerr
	}
	return err
}
