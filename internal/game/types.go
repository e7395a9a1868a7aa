package game

// ---- Layout / timing ----

const (
	ScreenW     = 800
	ScreenH     = 450
	WindowTitle = "Ultra Compact Elegant Game Intro"

	// seconds
	IntroDuration       = 6.33
	StartNoticeDuration = 1.0

	FontSize = 20

	// menu column, matches the start hit box
	menuX    = ScreenW/2 - 50
	menuBtnW = 100
	menuBtnH = 30

	introText   = "bxymf presents..."
	startedText = "Game Started"

	defaultTPS = 60
)

// ---- Small utility types ----

type rect struct{ x, y, w, h int }

// contains includes the left and top edges, not the right and bottom ones.
func (r rect) contains(mx, my int) bool {
	return mx >= r.x && mx < r.x+r.w && my >= r.y && my < r.y+r.h
}
