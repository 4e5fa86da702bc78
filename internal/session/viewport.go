package session

// TopbarHeight is the band, in logical pixels, the topbar takes from the
// window while visible.
const TopbarHeight = 64

// ComputeCanvasSize derives the canvas size from the window size.
func ComputeCanvasSize(windowWidth, windowHeight int, topbarVisible bool) (int, int) {
	h := windowHeight
	if topbarVisible {
		h -= TopbarHeight
	}
	return max(windowWidth, 0), max(h, 0)
}
