package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/sketchdeck/internal/sketch"
)

// TopbarRows is the height of the topbar in terminal rows.
const TopbarRows = 4

// styles are rebuilt from the theme on every view; they are cheap values.
type styles struct {
	bar      lipgloss.Style
	brand    lipgloss.Style
	tab      lipgloss.Style
	active   lipgloss.Style
	hint     lipgloss.Style
	rule     lipgloss.Style
	rec      lipgloss.Style
	keyHint  lipgloss.Style
	chipText lipgloss.Style
}

func newStyles(t Theme) styles {
	bar := lipgloss.NewStyle().Background(t.Background).Foreground(t.Text)
	return styles{
		bar:   bar,
		brand: bar.Bold(true).Foreground(t.Primary),
		tab:   bar.Foreground(t.Muted).Padding(0, 1),
		active: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 1),
		hint:     bar.Foreground(t.Muted),
		rule:     bar.Foreground(t.Border),
		rec:      bar.Bold(true).Foreground(t.Recording),
		keyHint:  bar.Foreground(t.Muted).Italic(true),
		chipText: lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface),
	}
}

// topbar renders the selector band: brand and animation tabs, key hints
// with the theme state, and a rule. It always spans TopbarRows lines of
// exactly width cells.
func topbar(t Theme, width int, reg *sketch.Registry, active string, dark, recording bool) []string {
	st := newStyles(t)
	fill := func(s string) string {
		pad := width - lipgloss.Width(s)
		if pad > 0 {
			s += st.bar.Render(strings.Repeat(" ", pad))
		}
		return truncate(s, width)
	}

	tabs := []string{st.brand.Render(" sketchdeck ")}
	for i, d := range reg.List() {
		label := fmt.Sprintf("%d %s", i+1, d.Title)
		if d.ID == active {
			tabs = append(tabs, st.active.Render(label))
		} else {
			tabs = append(tabs, st.tab.Render(label))
		}
	}

	mode := "☾ dark"
	if !dark {
		mode = "☀ light"
	}
	status := st.hint.Render(" d: " + mode + "  t: hide topbar  tab/←→: switch  r: reset  g: gif  q: quit")
	if recording {
		status += st.rec.Render("  ● REC")
	}

	return []string{
		fill(""),
		fill(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)),
		fill(status),
		fill(st.rule.Render(strings.Repeat("─", max(width, 0)))),
	}
}

// truncate cuts a styled line to width cells.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// panelOverlays lays out the info panel as overlays in the bottom-left
// corner of a cols x rows canvas. The text fades in from the panel
// background as opacity goes from 0 to 1.
func panelOverlays(t Theme, d sketch.Descriptor, opacity float64, cols, rows int) []Overlay {
	if opacity <= 0 || rows < 4 || cols < 8 {
		return nil
	}
	bg, _ := colorful.Hex(string(t.Surface))
	title, _ := colorful.Hex(string(t.Primary))
	body, _ := colorful.Hex(string(t.Text))
	title = bg.BlendLab(title, opacity).Clamped()
	body = bg.BlendLab(body, opacity).Clamped()

	inner := max(len([]rune(d.Title)), len([]rune(d.Description))) + 2
	inner = min(inner, cols-4)
	line := func(s string) string {
		r := []rune(s)
		if len(r) > inner-2 {
			r = r[:inner-2]
		}
		return " " + string(r) + strings.Repeat(" ", inner-1-len(r))
	}

	// Slide up from the bottom edge while fading in.
	rest := rows - 5
	top := rest + 2 - int(opacity*2)
	col := 2
	return []Overlay{
		{Row: top, Col: col, Text: strings.Repeat(" ", inner), FG: body, BG: bg},
		{Row: top + 1, Col: col, Text: line(d.Title), FG: title, BG: bg},
		{Row: top + 2, Col: col, Text: line(d.Description), FG: body, BG: bg},
		{Row: top + 3, Col: col, Text: strings.Repeat(" ", inner), FG: body, BG: bg},
	}
}

// chipOverlay is the hint shown top-right while the topbar is hidden.
func chipOverlay(t Theme, cols int) []Overlay {
	const text = " t: show topbar "
	if cols < len(text)+2 {
		return nil
	}
	bg, _ := colorful.Hex(string(t.Surface))
	fg, _ := colorful.Hex(string(t.Muted))
	return []Overlay{{Row: 0, Col: cols - len(text) - 1, Text: text, FG: fg, BG: bg}}
}
