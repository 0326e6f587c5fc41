package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/pthm/artmetrics/internal/cmd"
	"github.com/pthm/artmetrics/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(ctx, cmd.RootCmd, fang.WithVersion(version.Short()), fang.WithCommit(version.Commit))
	stop()

	if err != nil {
		os.Exit(1)
	}
}
