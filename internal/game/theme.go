package game

import "image/color"

// Theme is the two-colour palette shared by both screens.
type Theme struct {
	Background color.NRGBA
	Text       color.NRGBA
}

func DefaultTheme() *Theme {
	return &Theme{
		Background: color.NRGBA{245, 245, 245, 255}, // ray white
		Text:       color.NRGBA{200, 200, 200, 255}, // light gray
	}
}
