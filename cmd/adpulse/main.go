package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	adpulsecmd "github.com/louisbranch/adpulse/internal/cmd/adpulse"
	"github.com/louisbranch/adpulse/internal/platform/config"
)

// main starts the MCP server on stdio or HTTP.
func main() {
	cfg, err := adpulsecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[AdPulse] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := adpulsecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
