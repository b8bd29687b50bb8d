package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wtop/config"
	"wtop/monitor"
)

func main() {
	logger := log.New(os.Stderr, "[wtop] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Printf("config: %v (using defaults)", err)
		cfg = config.Default()
	}

	engine := monitor.NewEngine(logger)
	if err := engine.Run(ctx, cfg); err != nil && ctx.Err() == nil {
		logger.Fatal(err)
	}
}
