package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxRecordedFrames bounds a recording so a forgotten capture cannot eat
// all memory.
const MaxRecordedFrames = 600

// Recorder accumulates canvas frames and writes them as an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delay  int
	seen   int
}

// NewRecorder captures frames meant to be played back at fps.
func NewRecorder(fps int) *Recorder {
	if fps <= 0 {
		fps = 50
	}
	return &Recorder{delay: max(100/fps, 2)}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture rasterises the canvas: each cell becomes a CellWidth x CellHeight
// block of its background with lit dots (and text cells) drawn as
// DotSize squares of the foreground.
func (r *Recorder) Capture(c *Canvas) {
	if len(r.frames) >= MaxRecordedFrames || c.Width == 0 || c.Height == 0 {
		return
	}
	imgW, imgH := c.Width*CellWidth, c.Height*CellHeight
	rgba := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			cl := c.Grid[row][col]
			baseX, baseY := col*CellWidth, row*CellHeight
			draw.Draw(rgba, image.Rect(baseX, baseY, baseX+CellWidth, baseY+CellHeight),
				image.NewUniform(rgbaOf(cl.bg)), image.Point{}, draw.Src)

			fg := image.NewUniform(rgbaOf(cl.fg))
			if cl.text != 0 {
				// Text is shown as a solid underline-height bar.
				draw.Draw(rgba, image.Rect(baseX+1, baseY+CellHeight-6, baseX+CellWidth-1, baseY+CellHeight-3),
					fg, image.Point{}, draw.Src)
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if cl.dots&rune(pixelMap[dy][dx]) == 0 {
						continue
					}
					x, y := baseX+dx*DotSize, baseY+dy*DotSize
					draw.Draw(rgba, image.Rect(x, y, x+DotSize, y+DotSize), fg, image.Point{}, draw.Src)
				}
			}
		}
	}
	img := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.Draw(img, img.Bounds(), rgba, image.Point{}, draw.Src)
	r.frames = append(r.frames, img)
}

// Save writes the captured frames to path and clears the recorder.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames captured")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	r.frames = nil
	return nil
}

func rgbaOf(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
