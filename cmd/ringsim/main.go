// Package main runs ring board simulations from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	ringsimcmd "github.com/louisbranch/randomness/internal/cmd/ringsim"
	"github.com/louisbranch/randomness/internal/platform/config"
)

func main() {
	cfg, err := ringsimcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix("[RINGSIM] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ringsimcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		if code, ok := ringsimcmd.UsageExitCode(err); ok {
			stop()
			os.Exit(code)
		}
		config.Exitf("Error: %v", err)
	}
}
