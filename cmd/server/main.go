package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/FSPro/backend/internal/config"
	"github.com/GriffinCanCode/FSPro/backend/internal/server"
)

func main() {
	cfg := config.LoadOrDefault()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
