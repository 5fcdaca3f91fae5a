// Package main is the entry point for the shrink tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/joho/godotenv"
	"go.trai.ch/shrink/cmd/shrink/commands"
	"go.trai.ch/shrink/internal/app"
	"go.trai.ch/shrink/internal/core/domain"
	_ "go.trai.ch/shrink/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Adapters are never shared between runs: Telemetry is closed on return.
	components, err := app.NewApp(ctx, graft.DisableCache())
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	cli := commands.New(components.App, components.Logger)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if code, ok := domain.ExitCode(err); ok && code > 0 {
			return code
		}
		return 1
	}
	return 0
}
