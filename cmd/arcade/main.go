// Package main plays the slot machine or the plinko board in the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mini_casino/internal/app"
	"mini_casino/internal/model"
)

func main() {
	game := flag.String("game", string(model.GameSlot), "game to play: slot or plinko")
	pace := flag.Float64("pace", 1, "animation speed factor, 0 skips the animations")
	cfgPath := flag.String("config", "config.yaml", "game rules file")
	player := flag.String("player", "", "player to switch to on start")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	arcade, err := app.NewArcade(app.ArcadeOptions{
		Game:       model.GameType(*game),
		ConfigPath: *cfgPath,
		Pace:       *pace,
		Player:     *player,
		In:         os.Stdin,
		Out:        os.Stdout,
	})
	if err != nil {
		log.Fatalf("arcade: %v", err)
	}
	if err := arcade.Run(ctx); err != nil {
		log.Fatalf("arcade: %v", err)
	}
}
