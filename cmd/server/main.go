// Package main provides the BadgerChat fulfillment server entry point.
package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata" // display timezone must resolve in minimal containers

	"github.com/garyellow/badgerchat-fulfillment/internal/app"
	"github.com/garyellow/badgerchat-fulfillment/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.Initialize(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
