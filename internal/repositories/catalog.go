package repositories

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/shared"
)

// CatalogRepository stores the current catalog in SQLite.
//
// The table always holds at most one catalog: Replace wipes and reinserts
// inside a single transaction so readers never observe a half-written
// catalog.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a repository over an open database. The
// schema must already be migrated (see shared.RunMigrations).
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Replace swaps the stored catalog for the given one, preserving order via
// the sequence column.
func (r *CatalogRepository) Replace(catalog models.Catalog) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM songs"); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO songs (id, sequence, file_path, title, artist, album, genre, duration, bpm, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i, song := range catalog {
		var bpm sql.NullFloat64
		if song.HasBPM() {
			bpm = sql.NullFloat64{Float64: song.BPM, Valid: true}
		}

		_, err := stmt.Exec(
			shared.GenerateID(),
			i,
			song.FilePath,
			song.Title,
			song.Artist,
			song.Album,
			song.Genre,
			song.Duration,
			bpm,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert song %s: %w", song.FilePath, err)
		}
	}

	return tx.Commit()
}

// Load returns the stored catalog in its original order.
func (r *CatalogRepository) Load() (models.Catalog, error) {
	rows, err := r.db.Query(`
		SELECT file_path, title, artist, album, genre, duration, bpm
		FROM songs
		ORDER BY sequence ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var catalog models.Catalog
	for rows.Next() {
		var song models.Song
		var bpm sql.NullFloat64

		if err := rows.Scan(&song.FilePath, &song.Title, &song.Artist, &song.Album, &song.Genre, &song.Duration, &bpm); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}

		if bpm.Valid {
			song.BPM = bpm.Float64
		} else {
			song.BPM = math.Inf(1)
		}

		catalog = append(catalog, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	return catalog, nil
}

// Count returns the number of stored songs.
func (r *CatalogRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM songs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}
