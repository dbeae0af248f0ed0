// Package main игра в кости в терминале
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dice_game/internal/cmd/play"
)

func main() {
	cfg, err := play.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PLAY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := play.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("play: %v", err)
	}
}
