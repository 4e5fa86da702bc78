package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

// textSpacing is the extra gap between glyphs passed to raylib.
const textSpacing = 1

// surface draws sketch primitives with raylib into whatever target is
// bound: the canvas render texture while a frame is open.
type surface struct {
	sketch.Pen
	font   rl.Font
	width  float32
	height float32
}

// toRL converts any colour to raylib's straight-alpha RGBA.
func toRL(c color.Color) rl.Color {
	cc, a := sketch.Split(c)
	r, g, b := cc.RGB255()
	return rl.NewColor(r, g, b, uint8(a*255+0.5))
}

func (s *surface) Background(c color.Color) {
	rl.ClearBackground(toRL(c))
}

func (s *surface) Gradient(top, bottom color.Color) {
	rl.DrawRectangleGradientV(0, 0, int32(s.width), int32(s.height), toRL(top), toRL(bottom))
}

func (s *surface) weight() float32 {
	return float32(max(s.Weight, 0.5))
}

func (s *surface) Line(x1, y1, x2, y2 float64) {
	if !s.Stroking() {
		return
	}
	rl.DrawLineEx(
		rl.NewVector2(float32(x1), float32(y1)),
		rl.NewVector2(float32(x2), float32(y2)),
		s.weight(), toRL(s.StrokeColor))
}

func (s *surface) Point(x, y float64) {
	if !s.Stroking() {
		return
	}
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), s.weight()/2, toRL(s.StrokeColor))
}

func (s *surface) Rect(x, y, w, h float64) {
	rec := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	if s.Filling() {
		rl.DrawRectangleRec(rec, toRL(s.FillColor))
	}
	if s.Stroking() {
		rl.DrawRectangleLinesEx(rec, s.weight(), toRL(s.StrokeColor))
	}
}

func (s *surface) Ellipse(cx, cy, w, h float64) {
	if s.Filling() {
		rl.DrawEllipse(int32(cx), int32(cy), float32(w/2), float32(h/2), toRL(s.FillColor))
	}
	if s.Stroking() {
		rl.DrawEllipseLines(int32(cx), int32(cy), float32(w/2), float32(h/2), toRL(s.StrokeColor))
	}
}

func (s *surface) Text(str string, x, y float64, align sketch.Align) {
	if !s.Filling() {
		return
	}
	switch align {
	case sketch.AlignCenter:
		x -= s.TextWidth(str) / 2
	case sketch.AlignRight:
		x -= s.TextWidth(str)
	}
	// raylib anchors text at its top-left corner.
	pos := rl.NewVector2(float32(x), float32(y-s.FontSize))
	rl.DrawTextEx(s.font, str, pos, float32(s.FontSize), textSpacing, toRL(s.FillColor))
}

func (s *surface) TextWidth(str string) float64 {
	return float64(rl.MeasureTextEx(s.font, str, float32(s.FontSize), textSpacing).X)
}

// display owns the canvas render texture. Frames painted into it persist
// until the next render, so a static animation keeps showing its single
// paint while the window redraws every frame around it.
type display struct {
	target  rl.RenderTexture2D
	loaded  bool
	surface surface
}

func newDisplay(font rl.Font) *display {
	return &display{surface: surface{font: font}}
}

func (d *display) Begin(width, height float64) sketch.Surface {
	w, h := int32(max(width, 1)), int32(max(height, 1))
	if !d.loaded || d.target.Texture.Width != w || d.target.Texture.Height != h {
		if d.loaded {
			rl.UnloadRenderTexture(d.target)
		}
		d.target = rl.LoadRenderTexture(w, h)
		d.loaded = true
	}
	d.surface.Pen = sketch.DefaultPen()
	d.surface.width, d.surface.height = float32(width), float32(height)
	rl.BeginTextureMode(d.target)
	return &d.surface
}

func (d *display) End() {
	rl.EndTextureMode()
}

// draw blits the canvas at (x, y). Render textures are stored upside down.
func (d *display) draw(x, y float32) {
	if !d.loaded {
		return
	}
	tex := d.target.Texture
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	rl.DrawTextureRec(tex, src, rl.NewVector2(x, y), rl.White)
}

func (d *display) unload() {
	if d.loaded {
		rl.UnloadRenderTexture(d.target)
		d.loaded = false
	}
}
