//go:build !android

package main

import (
	"os"

	"github.com/demondragonwren/heartecho/internal/appcfg"
	"github.com/demondragonwren/heartecho/internal/game"
	"github.com/demondragonwren/heartecho/internal/logger"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := appcfg.Load()
	lg := logger.NewConsole(cfg.LogLevel)

	game.SetPlatform("desktop")
	lg.Info("main", "starting", map[string]interface{}{"music": cfg.MusicPath})

	g := game.New(cfg, lg)
	runErr := ebiten.RunGame(g)
	closeErr := g.Close() // logged by Close
	if runErr != nil {
		lg.Error("main", runErr, nil)
		os.Exit(1)
	}
	if closeErr != nil {
		os.Exit(1)
	}
}
