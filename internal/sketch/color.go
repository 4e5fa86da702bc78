package sketch

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSB builds a colour from hue in degrees, saturation and brightness in
// [0,100] and alpha in [0,1].
func HSB(h, s, b, a float64) color.NRGBA {
	c := colorful.Hsv(math.Mod(h, 360), clamp01(s/100), clamp01(b/100))
	return withAlpha(c, a)
}

// Gray builds a neutral colour from an 8-bit level and alpha in [0,1].
func Gray(level, a float64) color.NRGBA {
	v := clamp01(level / 255)
	return withAlpha(colorful.Color{R: v, G: v, B: v}, a)
}

// Lerp interpolates between two colours in RGB space, alpha included.
func Lerp(from, to color.Color, t float64) color.NRGBA {
	t = clamp01(t)
	c1, a1 := Split(from)
	c2, a2 := Split(to)
	return withAlpha(c1.BlendRgb(c2, t), a1+(a2-a1)*t)
}

// Split separates a colour into its opaque RGB part and its alpha in [0,1].
func Split(c color.Color) (colorful.Color, float64) {
	if c == nil {
		return colorful.Color{}, 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}, float64(n.A) / 255
}

// Over composites c with its alpha on top of an opaque backdrop.
func Over(c, backdrop color.Color) colorful.Color {
	fg, a := Split(c)
	bg, _ := Split(backdrop)
	return bg.BlendRgb(fg, a)
}

// Hex formats the opaque part of c as #rrggbb.
func Hex(c color.Color) string {
	rgb, _ := Split(c)
	return rgb.Clamped().Hex()
}

func withAlpha(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(a) * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette used across the sketches.
var (
	BrightBlue     = HSB(220, 80, 90, 1)
	VibrantMagenta = HSB(330, 70, 100, 1)
	WarmYellow     = HSB(50, 100, 90, 1)
	SpringGreen    = HSB(120, 60, 80, 1)
	RedOrange      = HSB(20, 90, 100, 1)
	BrightCyan     = HSB(180, 60, 100, 1)
	DeepPurple     = HSB(280, 70, 85, 1)
	LimeGreen      = HSB(90, 70, 100, 1)
	LightGray      = HSB(0, 0, 90, 1)
	SunsetOrange   = HSB(30, 100, 100, 1)
	White          = Gray(255, 1)
)
