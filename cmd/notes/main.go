package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := buildRootCommand(defaultWiring())
	if err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(buildVersion()),
		fang.WithoutManpage(),
	); err != nil {
		stop()
		os.Exit(1)
	}
}
