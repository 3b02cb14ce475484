package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/list"
	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/session"
	"github.com/jadipas/freddie/internal/shared"
)

var (
	_ list.Item = librarySongItem{}
	_ list.Item = playlistSongItem{}
)

// librarySongItem wraps a library [models.Song] plus its current
// recommendation standing to implement [list.Item].
type librarySongItem struct {
	song      models.Song
	diff      float64 // BPM distance from the selection; NaN when not recommended
	intensity session.Intensity
	selected  bool
}

func (i librarySongItem) FilterValue() string { return i.song.Title }

func (i librarySongItem) Title() string {
	title := i.song.Title
	if title == "" {
		title = i.song.FilePath
	}
	if i.selected {
		title = fmt.Sprintf("▶ %s", title)
	}
	if marker := heatMarker(i.intensity); marker != "" {
		title = fmt.Sprintf("%s %s", marker, title)
	}
	return title
}

func (i librarySongItem) Description() string {
	desc := i.song.Artist
	if i.song.HasBPM() {
		desc = fmt.Sprintf("%s • %.0f BPM", desc, i.song.BPM)
	} else {
		desc = fmt.Sprintf("%s • BPM unknown", desc)
	}
	if !math.IsNaN(i.diff) {
		if math.IsInf(i.diff, 1) {
			desc = fmt.Sprintf("%s • Δ —", desc)
		} else {
			desc = fmt.Sprintf("%s • Δ %.0f", desc, i.diff)
		}
	}
	return desc
}

// playlistSongItem wraps a playlist [models.Song] to implement [list.Item].
type playlistSongItem struct {
	song     models.Song
	position int
	selected bool
}

func (i playlistSongItem) FilterValue() string { return i.song.Title }

func (i playlistSongItem) Title() string {
	title := i.song.Title
	if title == "" {
		title = i.song.FilePath
	}
	if i.selected {
		title = fmt.Sprintf("▶ %s", title)
	}
	return fmt.Sprintf("%d. %s", i.position, title)
}

func (i playlistSongItem) Description() string {
	desc := i.song.Artist
	if i.song.Duration > 0 {
		desc = fmt.Sprintf("%s • %s", desc, shared.FormatDuration(i.song.Duration))
	}
	if i.song.HasBPM() {
		desc = fmt.Sprintf("%s • %.0f BPM", desc, i.song.BPM)
	}
	return desc
}

// libraryItems builds the library list from the session, annotating songs
// that appear in the current recommendation list.
func libraryItems(sess *session.Session) []list.Item {
	diffs := make(map[string]float64, len(sess.Recommendations()))
	for _, rec := range sess.Recommendations() {
		diffs[rec.Song.FilePath] = rec.BPMDifference
	}

	items := make([]list.Item, len(sess.Library()))
	for i, song := range sess.Library() {
		diff := math.NaN()
		if d, ok := diffs[song.FilePath]; ok {
			diff = d
		}
		items[i] = librarySongItem{
			song:      song,
			diff:      diff,
			intensity: sess.IntensityFor(song.FilePath),
			selected:  song.FilePath == sess.SelectedPath(),
		}
	}
	return items
}

// playlistItems builds the performance-order list from the session.
func playlistItems(sess *session.Session) []list.Item {
	items := make([]list.Item, len(sess.Playlist()))
	for i, song := range sess.Playlist() {
		items[i] = playlistSongItem{
			song:     song,
			position: i + 1,
			selected: song.FilePath == sess.SelectedPath(),
		}
	}
	return items
}
