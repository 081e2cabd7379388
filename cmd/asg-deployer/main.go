package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/slok/asg-deployer/log"
)

// Main is the application entry point
func Main() int {
	// Operators stop a deployment with ^C, compensation still runs.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRoot().Command()
	if cmd, err := rootCmd.ExecuteContextC(ctx); err != nil {
		if _, ok := err.(usageError); ok {
			cmd.Println("")
			cmd.Println(cmd.UsageString())
		}
		log.Error(err)
		return 1
	}
	return 0
}

func main() {
	// Run main program
	exCode := Main()
	os.Exit(exCode)
}
