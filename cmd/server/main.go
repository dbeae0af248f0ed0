// Package main HTTP сервер игры в кости
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dice_game/internal/app"
)

func main() {
	log.SetPrefix("[DICE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
