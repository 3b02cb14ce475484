package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/session"
	"github.com/jadipas/freddie/internal/shared"
	"github.com/urfave/cli/v3"
)

// CatalogFetch fetches the catalog document from the backend and prints or saves it.
func (r *Runner) CatalogFetch(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.catalog.Load(ctx)
	if err != nil {
		return err
	}

	doc := models.NewDocument(catalog)

	if output := cmd.String("output"); output != "" {
		data, err := marshalDocument(doc, cmd.Bool("pretty"))
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		r.logger.Info("catalog saved", "path", output, "songs", len(catalog))
		return nil
	}

	if !cmd.Bool("json") {
		return r.writePlain("Fetched catalog from %s: %d songs\n", r.catalog.Name(), len(catalog))
	}

	return r.writeJSON(doc, cmd.Bool("pretty"))
}

// CatalogShow prints the catalog as a readable song list.
func (r *Runner) CatalogShow(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.catalog.Load(ctx)
	if err != nil {
		return err
	}

	r.writePlain("Catalog (%d songs)\n\n", len(catalog))
	for i, song := range catalog {
		bpm := "—"
		if song.HasBPM() {
			bpm = fmt.Sprintf("%.0f", song.BPM)
		}
		r.writePlain("%3d. %s - %s [%s BPM, %s]\n", i+1, song.Artist, song.Title, bpm, shared.FormatDuration(song.Duration))
	}

	return nil
}

// CatalogRecommend ranks catalog songs by tempo closeness to the given song.
func (r *Runner) CatalogRecommend(ctx context.Context, cmd *cli.Command) error {
	filePath := cmd.StringArg("file_path")
	if filePath == "" {
		return fmt.Errorf("%w: file_path", shared.ErrMissingArgument)
	}

	catalog, err := r.catalog.Load(ctx)
	if err != nil {
		return err
	}

	var selected *models.Song
	for i := range catalog {
		if catalog[i].FilePath == filePath {
			selected = &catalog[i]
			break
		}
	}
	if selected == nil {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, filePath)
	}

	k := int(cmd.Int("count"))
	recs := session.Score(catalog, *selected, clampRecommendations(k))

	r.writePlain("Closest to %s - %s (%.0f BPM):\n\n", selected.Artist, selected.Title, selected.BPM)
	for i, rec := range recs {
		diff := "Δ —"
		if !math.IsInf(rec.BPMDifference, 1) {
			diff = fmt.Sprintf("Δ %.0f", rec.BPMDifference)
		}
		r.writePlain("%2d. %s - %s [%s]\n", i+1, rec.Song.Artist, rec.Song.Title, diff)
	}

	return nil
}

// CatalogUpload validates a replacement catalog file through the ingestion
// fallback and pushes it to the backend for durable persistence.
func (r *Runner) CatalogUpload(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")

	data, err := shared.VerifyAndReadFile(path)
	if err != nil {
		return err
	}

	fallback := session.NewFallback()
	catalog, err := fallback.Submit(filepath.Base(path), data)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUploadRejected, err)
	}

	r.logger.Info("uploading catalog", "path", path, "songs", len(catalog))

	if err := r.catalog.Upload(ctx, filepath.Base(path), data); err != nil {
		return err
	}

	return r.writePlainln("✓ Catalog replaced (%d songs)", len(catalog))
}

func marshalDocument(doc models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func clampRecommendations(k int) int {
	if k < session.MinRecommendations {
		return session.MinRecommendations
	}
	if k > session.MaxRecommendations {
		return session.MaxRecommendations
	}
	return k
}
