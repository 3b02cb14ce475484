package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/shared"
	tu "github.com/jadipas/freddie/internal/testing"
	"github.com/urfave/cli/v3"
)

func testApp(svc *tu.MockCatalogService, output *bytes.Buffer) *cli.Command {
	runner := NewRunner(RunnerOpts{
		Catalog: svc,
		Output:  output,
		Logger:  shared.NewLogger(&bytes.Buffer{}),
	})

	return &cli.Command{
		Name:     "freddie",
		Commands: runner.register(),
	}
}

func TestCatalogFetch(t *testing.T) {
	catalog := models.Catalog{
		tu.SongFixture("/a.mp3", "A", 120),
		tu.SongFixture("/b.mp3", "B", 122),
	}

	t.Run("emits the JSON document by default", func(t *testing.T) {
		output := &bytes.Buffer{}
		app := testApp(&tu.MockCatalogService{Catalog: catalog}, output)

		if err := app.Run(context.Background(), []string{"freddie", "catalog", "fetch"}); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		if !strings.Contains(output.String(), `"metadata"`) {
			t.Errorf("expected the catalog document, got %s", output.String())
		}
	})

	t.Run("json disabled gives a plain summary", func(t *testing.T) {
		output := &bytes.Buffer{}
		app := testApp(&tu.MockCatalogService{Catalog: catalog}, output)

		if err := app.Run(context.Background(), []string{"freddie", "catalog", "fetch", "--json=false"}); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		result := output.String()
		if !strings.Contains(result, "2 songs") {
			t.Errorf("expected a song count summary, got %q", result)
		}
		if strings.Contains(result, `"metadata"`) {
			t.Errorf("summary output should not contain the JSON document: %q", result)
		}
	})
}

func TestCatalogUpload(t *testing.T) {
	valid := []byte(`{"metadata":[{"file_path":"/a.mp3","title":"A","bpm":120}]}`)

	t.Run("confirms a replaced catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "replacement.json")
		if err := os.WriteFile(path, valid, 0644); err != nil {
			t.Fatalf("failed to write upload file: %v", err)
		}

		output := &bytes.Buffer{}
		svc := &tu.MockCatalogService{}
		app := testApp(svc, output)

		if err := app.Run(context.Background(), []string{"freddie", "catalog", "upload", path}); err != nil {
			t.Fatalf("upload failed: %v", err)
		}

		if svc.UploadCalls != 1 {
			t.Errorf("expected one upload call, got %d", svc.UploadCalls)
		}
		if !strings.Contains(output.String(), "✓ Catalog replaced (1 songs)") {
			t.Errorf("expected confirmation line, got %q", output.String())
		}
	})

	t.Run("rejects a wrong file type before uploading", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "replacement.txt")
		if err := os.WriteFile(path, valid, 0644); err != nil {
			t.Fatalf("failed to write upload file: %v", err)
		}

		svc := &tu.MockCatalogService{}
		app := testApp(svc, &bytes.Buffer{})

		err := app.Run(context.Background(), []string{"freddie", "catalog", "upload", path})
		if err == nil {
			t.Fatal("expected rejection for a .txt file")
		}
		if svc.UploadCalls != 0 {
			t.Errorf("rejected file must not be uploaded, got %d calls", svc.UploadCalls)
		}
	})
}
