// Package mobile is the ebitenmobile bind target.
package mobile

import (
	"github.com/demondragonwren/heartecho/internal/appcfg"
	"github.com/demondragonwren/heartecho/internal/game"
	"github.com/demondragonwren/heartecho/internal/logger"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	cfg := appcfg.Load()
	game.SetPlatform("mobile")
	mobile.SetGame(game.New(cfg, logger.NewConsole(cfg.LogLevel)))
}

// Dummy gives gomobile an exported symbol to bind.
func Dummy() {}
