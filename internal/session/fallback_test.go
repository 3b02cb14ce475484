package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jadipas/freddie/internal/shared"
)

func TestFallback(t *testing.T) {
	valid := []byte(`{"metadata":[{"file_path":"/a.mp3","title":"A","bpm":120}]}`)

	t.Run("starts awaiting a file", func(t *testing.T) {
		f := NewFallback()
		if f.State() != AwaitingFile {
			t.Errorf("expected AwaitingFile, got %v", f.State())
		}
		if f.Reason() != nil {
			t.Errorf("expected no reason, got %v", f.Reason())
		}
	})

	t.Run("rejects in validation order", func(t *testing.T) {
		cases := []struct {
			name     string
			filename string
			data     []byte
			want     error
		}{
			{"no file", "", valid, shared.ErrNoFileSelected},
			{"wrong extension", "data.txt", valid, shared.ErrWrongFileType},
			{"unparseable content", "data.json", []byte("{broken"), shared.ErrInvalidJSON},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := NewFallback()

				_, err := f.Submit(tc.filename, tc.data)
				if !errors.Is(err, tc.want) {
					t.Errorf("expected %v, got %v", tc.want, err)
				}
				if f.State() != AwaitingFile {
					t.Errorf("rejection must return to AwaitingFile, got %v", f.State())
				}
				if !errors.Is(f.Reason(), tc.want) {
					t.Errorf("reason not recorded: %v", f.Reason())
				}
			})
		}
	})

	t.Run("retry after rejection succeeds", func(t *testing.T) {
		f := NewFallback()

		if _, err := f.Submit("data.txt", valid); err == nil {
			t.Fatal("expected rejection")
		}

		catalog, err := f.Submit("data.json", valid)
		if err != nil {
			t.Fatalf("retry should be accepted: %v", err)
		}
		if f.State() != Accepted {
			t.Errorf("expected Accepted, got %v", f.State())
		}
		if f.Reason() != nil {
			t.Errorf("acceptance should clear the reason, got %v", f.Reason())
		}
		if len(catalog) != 1 || catalog[0].FilePath != "/a.mp3" {
			t.Errorf("unexpected recovered catalog: %+v", catalog)
		}
	})

	t.Run("accepts a bare song array", func(t *testing.T) {
		f := NewFallback()

		catalog, err := f.Submit("songs.json", []byte(`[{"file_path":"/a.mp3","title":"A","bpm":"128"}]`))
		if err != nil {
			t.Fatalf("bare array should be accepted: %v", err)
		}
		if catalog[0].BPM != 128 {
			t.Errorf("bpm should be normalized on ingest, got %v", catalog[0].BPM)
		}
	})

	t.Run("Reject records transport failures", func(t *testing.T) {
		f := NewFallback()
		if _, err := f.Submit("data.json", valid); err != nil {
			t.Fatalf("unexpected rejection: %v", err)
		}

		cause := fmt.Errorf("%w: status 502", shared.ErrUploadRejected)
		f.Reject(cause)

		if f.State() != AwaitingFile {
			t.Errorf("transport failure must return to AwaitingFile, got %v", f.State())
		}
		if !errors.Is(f.Reason(), shared.ErrUploadRejected) {
			t.Errorf("reason not recorded: %v", f.Reason())
		}
	})
}
