package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/simonhull/firebird-suite/hatch/internal/commands"
	"github.com/simonhull/firebird-suite/hatch/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.RootCmd().ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
