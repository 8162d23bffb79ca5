// Package main is the entry point for the task-cli CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskcli/internal/backend/googletasks"
	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/service"
	"taskcli/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stores := func(cfg *config.Config) (service.Service, error) {
		return store.New(cfg.StorePath(), store.WithLogger(cfg.Log))
	}
	remotes := func(ctx context.Context, cfg *config.Config) (service.Remote, error) {
		return googletasks.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, stores, remotes)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
