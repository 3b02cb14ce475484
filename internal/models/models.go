package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/jadipas/freddie/internal/shared"
)

// Song represents one audio file's extracted metadata.
//
// FilePath is the sole identity key: no two songs in a catalog share it.
// BPM is always a normalized float64 after decoding; [Song.HasBPM] reports
// whether the value is real or the sentinel.
type Song struct {
	FilePath string  `json:"file_path"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album,omitempty"`
	Genre    string  `json:"genre,omitempty"`
	Duration float64 `json:"duration"`
	BPM      float64 `json:"-"`

	// Extractor extras, preserved when present.
	FileType      string `json:"file_type,omitempty"`
	Bitrate       int    `json:"bitrate,omitempty"`
	SampleRate    int    `json:"sample_rate,omitempty"`
	Channels      int    `json:"channels,omitempty"`
	Year          string `json:"year,omitempty"`
	TrackNumber   string `json:"track_number,omitempty"`
	Key           string `json:"key,omitempty"`
	BPMCalculated bool   `json:"bpm_calculated,omitempty"`
}

// Catalog is the ordered song sequence delivered by the backend or an upload.
// Order is the initial library order.
type Catalog []Song

// Document is the catalog envelope served by the metadata backend.
type Document struct {
	Timestamp string  `json:"timestamp,omitempty"`
	System    string  `json:"system,omitempty"`
	FileCount int     `json:"file_count,omitempty"`
	Metadata  Catalog `json:"metadata"`
}

// NewDocument wraps a catalog in a [Document] envelope for serving.
func NewDocument(catalog Catalog) Document {
	return Document{
		Timestamp: time.Now().Format(time.RFC3339),
		System:    runtime.GOOS,
		FileCount: len(catalog),
		Metadata:  catalog,
	}
}

// NormalizeBPM converts a decoded bpm value (number, numeric string, or
// anything else) into a float64, returning +Inf for values that cannot be
// interpreted as a finite tempo.
func NormalizeBPM(v any) float64 {
	switch bpm := v.(type) {
	case float64:
		if math.IsNaN(bpm) || math.IsInf(bpm, 0) {
			return math.Inf(1)
		}
		return bpm
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(bpm), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return math.Inf(1)
		}
		return parsed
	default:
		return math.Inf(1)
	}
}

// HasBPM reports whether the song carries a real tempo rather than the sentinel.
func (s Song) HasBPM() bool {
	return !math.IsInf(s.BPM, 1)
}

// UnmarshalJSON decodes a song, normalizing the loosely-typed bpm field.
func (s *Song) UnmarshalJSON(data []byte) error {
	type alias Song
	aux := struct {
		*alias
		BPM any `json:"bpm"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.BPM = NormalizeBPM(aux.BPM)
	return nil
}

// MarshalJSON encodes the song with bpm as a number, omitting it entirely
// when only the sentinel is known.
func (s Song) MarshalJSON() ([]byte, error) {
	type alias Song
	aux := struct {
		alias
		BPM *float64 `json:"bpm,omitempty"`
	}{alias: alias(s)}

	if s.HasBPM() {
		aux.BPM = &s.BPM
	}

	return json.Marshal(aux)
}

// ParseCatalog decodes a catalog payload in either accepted wire form: the
// document envelope with a metadata array, or a bare song array.
//
// Duplicate file_paths keep the first occurrence so a session never holds the
// same song twice.
func ParseCatalog(data []byte) (Catalog, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty catalog payload")
	}

	var songs Catalog
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &songs); err != nil {
			return nil, fmt.Errorf("failed to parse song array: %w", err)
		}
	} else {
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog document: %w", err)
		}
		if doc.Metadata == nil {
			return nil, fmt.Errorf("catalog document has no metadata field")
		}
		songs = doc.Metadata
	}

	return dedupe(songs), nil
}

// ValidateUpload applies the ingestion checks in their fixed order: a file
// must be chosen, it must be a .json file, and its content must parse as a
// catalog. The returned errors wrap the upload reject sentinels in
// [shared] so callers can surface the reason verbatim.
func ValidateUpload(filename string, data []byte) (Catalog, error) {
	if filename == "" {
		return nil, shared.ErrNoFileSelected
	}

	if !strings.EqualFold(filepath.Ext(filename), ".json") {
		return nil, fmt.Errorf("%w: %s", shared.ErrWrongFileType, filepath.Base(filename))
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidJSON, err)
	}

	return catalog, nil
}

func dedupe(songs Catalog) Catalog {
	seen := make(map[string]bool, len(songs))
	result := make(Catalog, 0, len(songs))
	for _, song := range songs {
		if seen[song.FilePath] {
			continue
		}
		seen[song.FilePath] = true
		result = append(result, song)
	}
	return result
}
