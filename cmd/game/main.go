package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"horde-arena/internal/commons/logger_config"
	"horde-arena/internal/config"
	"horde-arena/internal/game"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML tuning file")
	flag.Parse()

	settings, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("load config: %v", err)
		os.Exit(1)
	}
	logger_config.SetLevel(settings.LogLevel)

	ebiten.SetWindowSize(int(settings.World.ArenaWidth), int(settings.World.ArenaHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Horde Arena")

	g, err := game.New(settings.World)
	if err != nil {
		log.Printf("new game: %v", err)
		os.Exit(1)
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("run game: %v", err)
	}
}
