package fonts

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DPI 72 makes the face size equal to its pixel height, so a size-20 face
// lines up with the layout constants.
const dpi = 72

type key struct {
	name string
	size float64
}

var (
	mu    sync.Mutex
	cache = map[key]font.Face{}
	ttfs  = map[string][]byte{"regular": goregular.TTF}
)

func face(name string, size float64) font.Face {
	k := key{name, size}
	mu.Lock()
	defer mu.Unlock()

	if f, ok := cache[k]; ok {
		return f
	}
	data, ok := ttfs[name]
	if !ok {
		panic("fonts: unknown face " + name)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		panic("fonts: parse: " + err.Error())
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("fonts: face: " + err.Error())
	}
	cache[k] = f
	return f
}

func UI(size float64) font.Face { return face("regular", size) }

// Width is the advance of s in pixels at the given size.
func Width(s string, size float64) int {
	return font.MeasureString(UI(size), s).Ceil()
}

// DrawTop draws s with its top edge at y instead of at the baseline.
func DrawTop(dst *ebiten.Image, s string, x, y int, size float64, col color.Color) {
	f := UI(size)
	text.Draw(dst, s, f, x, y+f.Metrics().Ascent.Round(), col)
}
