package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jadipas/freddie/internal/session"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// heatStyles colors the tempo-closeness marker next to recommended songs.
// Hotter means closer to the selected song's BPM.
var heatStyles = map[session.Intensity]lipgloss.Style{
	session.IntensityHot:   NewBold("#FF2D55"),
	session.IntensityWarm:  NewBold("#FF8C00"),
	session.IntensityMild:  NewStyle("#FFD60A"),
	session.IntensityCool:  NewStyle("#64D2FF"),
	session.IntensityFaint: NewStyle("#626262"),
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// heatMarker renders the colored intensity dot for a song, or "" for songs
// outside the current recommendation list.
func heatMarker(intensity session.Intensity) string {
	style, ok := heatStyles[intensity]
	if !ok {
		return ""
	}
	return style.Render("●")
}
