package game

import (
	"image"
	"sync"

	"github.com/demondragonwren/heartecho/internal/appcfg"
	"github.com/demondragonwren/heartecho/internal/game/assets/fonts"
	"github.com/demondragonwren/heartecho/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	lg    *logger.Logger
	theme *Theme
	music *Music

	elapsed     float64 // seconds since start
	onIntro     bool
	startNotice float64 // seconds left on the "Game Started" placeholder

	buttons  []*MenuButton
	touchIDs []ebiten.TouchID

	closeOnce sync.Once
	closeErr  error
}

// New creates the game and starts the background music. A track that fails
// to load is logged and the game runs silent.
func New(cfg appcfg.Config, lg *logger.Logger) *Game {
	g := newGame(lg)

	m, err := OpenMusic(audioContext(), cfg.MusicPath)
	if err != nil {
		g.lg.Warning("music", "could not load music, continuing without it", err,
			map[string]interface{}{"path": cfg.MusicPath})
	} else {
		g.music = m
		g.music.Play(cfg.Volume)
		g.lg.Info("music", "started", map[string]interface{}{
			"path": cfg.MusicPath, "volume": cfg.Volume, "playing": g.music.Playing(),
		})
	}
	return g
}

func newGame(lg *logger.Logger) *Game {
	if lg == nil {
		lg = logger.Nop()
	}
	g := &Game{
		lg:      lg,
		theme:   DefaultTheme(),
		onIntro: true,
	}
	g.buttons = []*MenuButton{
		NewMenuButton("start", 200, g.onStart),
		NewMenuButton("saves", 250, nil),
		NewMenuButton("settings", 300, nil),
	}
	g.lg.Info("game", "intro", map[string]interface{}{"platform": platform, "duration": IntroDuration})
	return g
}

func (g *Game) Update() error {
	g.music.Update()

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	p, clicked := g.justClicked()
	g.tick(1/float64(tps), p, clicked)
	return nil
}

// tick advances the game by dt seconds. p is only looked at when clicked.
func (g *Game) tick(dt float64, p image.Point, clicked bool) {
	g.elapsed += dt

	if g.startNotice > 0 {
		g.startNotice -= dt
		if g.startNotice < 0 {
			g.startNotice = 0
		}
	}

	if g.onIntro && g.elapsed >= IntroDuration {
		g.onIntro = false
		g.lg.Info("game", "menu", map[string]interface{}{"elapsed": g.elapsed})
	}

	// the menu is hidden while the notice is up
	if g.onIntro || g.startNotice > 0 || !clicked {
		return
	}
	for _, b := range g.buttons {
		if b.Contains(p.X, p.Y) {
			b.OnClick()
			return
		}
	}
	g.lg.Debug("menu", "click missed", map[string]interface{}{"x": p.X, "y": p.Y})
}

func (g *Game) justClicked() (image.Point, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return image.Pt(x, y), true
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		return image.Pt(x, y), true
	}
	return image.Point{}, false
}

// onStart is a placeholder: there is no game to start yet.
func (g *Game) onStart() {
	g.startNotice = StartNoticeDuration
	g.lg.Info("menu", "start pressed", nil)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)

	switch {
	case g.onIntro:
		g.drawCentered(screen, introText)
	case g.startNotice > 0:
		g.drawCentered(screen, startedText)
	default:
		for _, b := range g.buttons {
			b.Draw(screen, g.theme)
		}
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, s string) {
	fonts.DrawTop(screen, s, centeredX(s), ScreenH/2-10, FontSize, g.theme.Text)
}

func centeredX(s string) int {
	return ScreenW/2 - fonts.Width(s, FontSize)/2
}

func (g *Game) Layout(_, _ int) (int, int) { return ScreenW, ScreenH }

// Close releases the music. Only the first call does any work.
func (g *Game) Close() error {
	g.closeOnce.Do(func() {
		g.closeErr = g.music.Close()
		g.music = nil
		if g.closeErr != nil {
			g.lg.Error("music", g.closeErr, nil)
		}
		g.lg.Info("game", "shutdown", map[string]interface{}{"elapsed": g.elapsed})
	})
	return g.closeErr
}
