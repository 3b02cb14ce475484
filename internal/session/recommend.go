package session

import (
	"math"
	"sort"

	"github.com/jadipas/freddie/internal/models"
)

// Recommendation pairs a candidate song with its tempo distance from the
// selected song. Lists are always sorted ascending by BPMDifference.
type Recommendation struct {
	Song          models.Song
	BPMDifference float64
}

// BPMDifference computes the absolute tempo distance between two songs.
// A song with no usable tempo is maximally distant from everything,
// including another such song.
func BPMDifference(a, b models.Song) float64 {
	if !a.HasBPM() || !b.HasBPM() {
		return math.Inf(1)
	}
	return math.Abs(a.BPM - b.BPM)
}

// Score ranks candidates by tempo closeness to selected and returns at most k
// entries. The selected song itself is excluded by file_path. The sort is
// stable: candidates at equal distance keep their relative catalog order, so
// identical inputs always produce identical output.
func Score(candidates []models.Song, selected models.Song, k int) []Recommendation {
	if k <= 0 {
		return nil
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, song := range candidates {
		if song.FilePath == selected.FilePath {
			continue
		}
		recs = append(recs, Recommendation{Song: song, BPMDifference: BPMDifference(song, selected)})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].BPMDifference < recs[j].BPMDifference
	})

	if len(recs) > k {
		recs = recs[:k]
	}

	return recs
}

// Intensity is the display heat of a recommended song. Closer tempo means
// hotter. Songs outside the current recommendation list get IntensityNone.
type Intensity int

const (
	IntensityNone Intensity = iota
	IntensityFaint
	IntensityCool
	IntensityMild
	IntensityWarm
	IntensityHot
)

// Intensities buckets a recommendation list into the five heat levels.
//
// Each difference is normalized over the list's [min, max] range (a zero
// range counts as 1 so a single-tempo list doesn't divide by zero) and binned
// at 0.2/0.4/0.6/0.8. Entries whose difference is the missing-tempo sentinel
// always land in the faintest bin.
func Intensities(recs []Recommendation) map[string]Intensity {
	result := make(map[string]Intensity, len(recs))
	if len(recs) == 0 {
		return result
	}

	minDiff := recs[0].BPMDifference
	maxDiff := recs[len(recs)-1].BPMDifference
	span := maxDiff - minDiff
	if span == 0 || math.IsNaN(span) {
		span = 1
	}

	for _, rec := range recs {
		if math.IsInf(rec.BPMDifference, 1) {
			result[rec.Song.FilePath] = IntensityFaint
			continue
		}

		normalized := (rec.BPMDifference - minDiff) / span
		switch {
		case normalized < 0.2:
			result[rec.Song.FilePath] = IntensityHot
		case normalized < 0.4:
			result[rec.Song.FilePath] = IntensityWarm
		case normalized < 0.6:
			result[rec.Song.FilePath] = IntensityMild
		case normalized < 0.8:
			result[rec.Song.FilePath] = IntensityCool
		default:
			result[rec.Song.FilePath] = IntensityFaint
		}
	}

	return result
}
