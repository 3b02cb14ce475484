package session

import (
	"fmt"

	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/shared"
)

// View identifies which of the two song sequences is on screen.
type View int

const (
	ViewLibrary View = iota
	ViewPlaylist
)

func (v View) String() string {
	if v == ViewPlaylist {
		return "playlist"
	}
	return "library"
}

// Recommendation count bounds. User input is clamped into this range.
const (
	MinRecommendations     = 1
	MaxRecommendations     = 10
	DefaultRecommendations = 5
)

// Options fixes the session behaviors that differed between observed versions
// of the frontend. The zero value plus DefaultRecommendations matches the
// canonical behavior: playlist selection never recomputes, moving a song
// switches to the playlist view.
type Options struct {
	RecommendationCount     int
	RecomputeInPlaylistView bool
	SwitchViewOnMove        bool
}

// DefaultOptions returns the canonical session behavior.
func DefaultOptions() Options {
	return Options{
		RecommendationCount: DefaultRecommendations,
		SwitchViewOnMove:    true,
	}
}

// Session is the state machine for one interactive session: two disjoint
// ordered song sequences, an optional selection, the current view, and the
// last computed recommendation list.
//
// Mutation happens only through the transition methods, each of which bumps
// the version stamp. Transitions return the file_path the rendering layer
// should bring into view.
type Session struct {
	library             []models.Song
	playlist            []models.Song
	selected            string
	view                View
	recommendationCount int
	opts                Options
	version             uint64
	recs                []Recommendation
	intensities         map[string]Intensity
}

// New creates a session over a freshly loaded (or recovered) catalog:
// everything in the library, nothing in the playlist, no selection.
func New(catalog models.Catalog, opts Options) *Session {
	return &Session{
		library:             append([]models.Song(nil), catalog...),
		view:                ViewLibrary,
		recommendationCount: clampCount(opts.RecommendationCount),
		opts:                opts,
	}
}

// Library returns the ordered songs still in the browsing view.
func (s *Session) Library() []models.Song { return s.library }

// Playlist returns the ordered songs in performance order.
func (s *Session) Playlist() []models.Song { return s.playlist }

// View returns the sequence currently on screen.
func (s *Session) View() View { return s.view }

// Version returns the transition counter. Asynchronous work captures it at
// dispatch; a completion whose captured version no longer matches must be
// discarded.
func (s *Session) Version() uint64 { return s.version }

// RecommendationCount returns the clamped number of recommendations computed
// per selection.
func (s *Session) RecommendationCount() int { return s.recommendationCount }

// SelectedPath returns the file_path of the selected song, or "".
func (s *Session) SelectedPath() string { return s.selected }

// Selected resolves the selection against both sequences.
func (s *Session) Selected() (models.Song, bool) {
	if s.selected == "" {
		return models.Song{}, false
	}
	if i := indexOf(s.library, s.selected); i >= 0 {
		return s.library[i], true
	}
	if i := indexOf(s.playlist, s.selected); i >= 0 {
		return s.playlist[i], true
	}
	return models.Song{}, false
}

// Recommendations returns the recommendation list from the last recompute.
func (s *Session) Recommendations() []Recommendation { return s.recs }

// IntensityFor returns the display heat for a song, IntensityNone when the
// song is not in the current recommendation list.
func (s *Session) IntensityFor(filePath string) Intensity {
	return s.intensities[filePath]
}

// TotalSongs returns the combined size of both sequences, which is invariant
// across every transition except ReplaceCatalog.
func (s *Session) TotalSongs() int { return len(s.library) + len(s.playlist) }

// Select sets the selection to the song at filePath.
//
// A library selection recomputes the recommendation list against the current
// library. A playlist selection only highlights; it recomputes solely when
// the legacy-parity option asks for it. Unknown paths leave the session
// untouched.
func (s *Session) Select(filePath string) (string, error) {
	if indexOf(s.library, filePath) >= 0 {
		s.version++
		s.selected = filePath
		s.recompute()
		return filePath, nil
	}

	if indexOf(s.playlist, filePath) >= 0 {
		s.version++
		s.selected = filePath
		if s.opts.RecomputeInPlaylistView {
			s.recompute()
		}
		return filePath, nil
	}

	return "", fmt.Errorf("%w: %s", shared.ErrSongNotFound, filePath)
}

// Move takes a song out of the library, preserving the order of the
// remainder, and appends it to the playlist tail. The selection is left
// alone (it may now resolve inside the playlist) and the recommendation list
// is not recomputed.
func (s *Session) Move(filePath string) (string, error) {
	i := indexOf(s.library, filePath)
	if i < 0 {
		return "", fmt.Errorf("%w: %s not in library", shared.ErrSongNotFound, filePath)
	}

	s.version++
	song := s.library[i]
	s.library = append(s.library[:i], s.library[i+1:]...)
	s.playlist = append(s.playlist, song)

	if s.opts.SwitchViewOnMove {
		s.view = ViewPlaylist
	}

	return filePath, nil
}

// ToggleView flips between the library and playlist views. Pure view change:
// sequences, selection, and recommendations are untouched.
func (s *Session) ToggleView() View {
	s.version++
	if s.view == ViewLibrary {
		s.view = ViewPlaylist
	} else {
		s.view = ViewLibrary
	}
	return s.view
}

// SetRecommendationCount clamps k into [MinRecommendations,
// MaxRecommendations], stores it, and recomputes when the selection currently
// resolves in the library. Returns the clamped value.
func (s *Session) SetRecommendationCount(k int) int {
	s.version++
	s.recommendationCount = clampCount(k)
	if s.selected != "" && indexOf(s.library, s.selected) >= 0 {
		s.recompute()
	}
	return s.recommendationCount
}

// ReplaceCatalog resets the session around a recovered catalog, as if it had
// been created fresh from it.
func (s *Session) ReplaceCatalog(catalog models.Catalog) {
	s.version++
	s.library = append([]models.Song(nil), catalog...)
	s.playlist = nil
	s.selected = ""
	s.view = ViewLibrary
	s.recs = nil
	s.intensities = nil
}

// recompute rescores the library against the selection. Candidates are always
// the library, even when the selection resolves inside the playlist.
func (s *Session) recompute() {
	selected, ok := s.Selected()
	if !ok {
		s.recs = nil
		s.intensities = nil
		return
	}

	s.recs = Score(s.library, selected, s.recommendationCount)
	s.intensities = Intensities(s.recs)
}

func clampCount(k int) int {
	if k < MinRecommendations {
		return MinRecommendations
	}
	if k > MaxRecommendations {
		return MaxRecommendations
	}
	return k
}

func indexOf(songs []models.Song, filePath string) int {
	if filePath == "" {
		return -1
	}
	for i, song := range songs {
		if song.FilePath == filePath {
			return i
		}
	}
	return -1
}
