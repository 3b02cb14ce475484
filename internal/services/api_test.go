package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jadipas/freddie/internal/shared"
)

func TestAPIService(t *testing.T) {
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		t.Run("parses the catalog document", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/audio_metadata" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"file_count":2,"metadata":[
					{"file_path":"/a.mp3","title":"A","bpm":120},
					{"file_path":"/b.mp3","title":"B","bpm":"122"}
				]}`))
			}))
			defer srv.Close()

			svc := NewAPIService(srv.URL, srv.Client(), 0)
			catalog, err := svc.Load(ctx)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if len(catalog) != 2 {
				t.Fatalf("expected 2 songs, got %d", len(catalog))
			}
			if catalog[1].BPM != 122 {
				t.Errorf("string bpm not normalized: %v", catalog[1].BPM)
			}
		})

		t.Run("accepts a bare array", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"file_path":"/a.mp3","title":"A","bpm":120}]`))
			}))
			defer srv.Close()

			svc := NewAPIService(srv.URL, srv.Client(), 0)
			catalog, err := svc.Load(ctx)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if len(catalog) != 1 {
				t.Errorf("expected 1 song, got %d", len(catalog))
			}
		})

		t.Run("404 maps to ErrCatalogUnavailable", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "not found", http.StatusNotFound)
			}))
			defer srv.Close()

			svc := NewAPIService(srv.URL, srv.Client(), 0)
			if _, err := svc.Load(ctx); !errors.Is(err, shared.ErrCatalogUnavailable) {
				t.Errorf("expected ErrCatalogUnavailable, got %v", err)
			}
		})

		t.Run("malformed payload maps to ErrCatalogUnavailable", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not json</html>"))
			}))
			defer srv.Close()

			svc := NewAPIService(srv.URL, srv.Client(), 0)
			if _, err := svc.Load(ctx); !errors.Is(err, shared.ErrCatalogUnavailable) {
				t.Errorf("expected ErrCatalogUnavailable, got %v", err)
			}
		})

		t.Run("unreachable backend maps to ErrCatalogUnavailable", func(t *testing.T) {
			svc := NewAPIService("http://127.0.0.1:1", http.DefaultClient, 0)
			if _, err := svc.Load(ctx); !errors.Is(err, shared.ErrCatalogUnavailable) {
				t.Errorf("expected ErrCatalogUnavailable, got %v", err)
			}
		})
	})

	t.Run("Upload", func(t *testing.T) {
		t.Run("posts multipart under field file", func(t *testing.T) {
			var gotFilename string
			var gotBody []byte

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/catalog/upload" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				file, header, err := r.FormFile("file")
				if err != nil {
					t.Errorf("missing file field: %v", err)
					http.Error(w, "bad request", http.StatusBadRequest)
					return
				}
				defer file.Close()
				gotFilename = header.Filename
				gotBody, _ = io.ReadAll(file)
				w.Write([]byte(`{"status":"ok"}`))
			}))
			defer srv.Close()

			svc := NewAPIService(srv.URL, srv.Client(), 0)
			payload := []byte(`{"metadata":[]}`)
			if err := svc.Upload(ctx, "replacement.json", payload); err != nil {
				t.Fatalf("upload failed: %v", err)
			}

			if gotFilename != "replacement.json" {
				t.Errorf("expected filename replacement.json, got %s", gotFilename)
			}
			if string(gotBody) != string(payload) {
				t.Errorf("payload not forwarded intact")
			}
		})

		t.Run("non-2xx maps to ErrUploadRejected", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusBadGateway)
			}))
			defer srv.Close()

			svc := NewAPIService(srv.URL, srv.Client(), 0)
			if err := svc.Upload(ctx, "replacement.json", []byte("{}")); !errors.Is(err, shared.ErrUploadRejected) {
				t.Errorf("expected ErrUploadRejected, got %v", err)
			}
		})
	})

	t.Run("Health", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok","catalog_present":true}`))
		}))
		defer srv.Close()

		svc := NewAPIService(srv.URL, srv.Client(), 0)
		present, err := svc.Health(ctx)
		if err != nil {
			t.Fatalf("health failed: %v", err)
		}
		if !present {
			t.Error("expected catalog_present true")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		svc := NewAPIService("", nil, 0)
		if svc.baseURL == "" {
			t.Error("expected default base URL")
		}
		if svc.httpClient == nil {
			t.Error("expected default HTTP client")
		}
		if svc.limiter == nil {
			t.Error("expected a limiter even when disabled")
		}
	})
}
