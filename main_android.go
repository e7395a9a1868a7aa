//go:build android

package main

import (
	"github.com/demondragonwren/heartecho/internal/appcfg"
	"github.com/demondragonwren/heartecho/internal/game"
	"github.com/demondragonwren/heartecho/internal/logger"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	cfg := appcfg.Load()
	game.SetPlatform("android")
	mobile.SetGame(game.New(cfg, logger.NewConsole(cfg.LogLevel)))
}

func main() {}
