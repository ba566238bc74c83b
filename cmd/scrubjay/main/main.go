package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/scrubjay/cmd/scrubjay"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := scrubjay.NewRootCmd()
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return
	}
	stop()
	scrubjay.ReportError(cmd, err, os.Stderr)
	os.Exit(1)
}
