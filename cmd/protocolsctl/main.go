// Package main runs the protocol catalog operator CLI.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/ems-protocols/internal/cmd/protocolsctl"
	entrypoint "github.com/louisbranch/ems-protocols/internal/platform/cmd"
	"github.com/louisbranch/ems-protocols/internal/platform/config"
)

func main() {
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceProtocolsCtl))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := protocolsctl.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("%v", err)
	}
}
