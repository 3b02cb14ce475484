package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/repositories"
	"github.com/jadipas/freddie/internal/shared"
)

// Upload size cap. Catalogs top out in the low thousands of songs.
const maxUploadBytes = 32 << 20

// CatalogHandler serves the catalog document and accepts replacement
// catalog uploads.
//
// GET /audio_metadata prefers the stored catalog and falls back to the seed
// metadata file on disk; when neither exists the response is a 404, which is
// exactly the condition the client's ingestion fallback recovers from.
type CatalogHandler struct {
	store    *repositories.CatalogRepository
	seedPath string
	logger   *log.Logger
}

var _ Handler = (*CatalogHandler)(nil)

// NewCatalogHandler creates the handler. seedPath may be empty when no seed
// metadata file is configured.
func NewCatalogHandler(store *repositories.CatalogRepository, seedPath string, logger *log.Logger) *CatalogHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CatalogHandler{store: store, seedPath: seedPath, logger: logger}
}

// Routes returns the method/path pairs this handler serves. The router
// enforces the methods, so the path dispatch below never sees any other.
func (h *CatalogHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/audio_metadata"},
		{Method: http.MethodPost, Path: "/catalog/upload"},
		{Method: http.MethodGet, Path: "/health"},
	}
}

// ServeHTTP dispatches to the route-specific handlers.
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/audio_metadata":
		h.getMetadata(w, r)
	case "/catalog/upload":
		h.upload(w, r)
	case "/health":
		h.health(w, r)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (h *CatalogHandler) getMetadata(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.loadCatalog()
	if err != nil {
		h.logger.Warn("no catalog available", "error", err)
		writeError(w, http.StatusNotFound, "no catalog available")
		return
	}

	writeJSON(w, http.StatusOK, models.NewDocument(catalog))
}

func (h *CatalogHandler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "malformed multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, shared.ErrNoFileSelected.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	catalog, err := models.ValidateUpload(header.Filename, data)
	if err != nil {
		h.logger.Warn("upload rejected", "file", header.Filename, "reason", err)
		writeError(w, http.StatusBadRequest, rejectReason(err))
		return
	}

	if err := h.store.Replace(catalog); err != nil {
		h.logger.Error("failed to persist catalog", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to persist catalog")
		return
	}

	h.logger.Info("catalog replaced", "file", header.Filename, "songs", len(catalog))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"file_count": len(catalog),
	})
}

func (h *CatalogHandler) health(w http.ResponseWriter, r *http.Request) {
	_, err := h.loadCatalog()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"catalog_present": err == nil,
	})
}

// loadCatalog prefers the durable store and falls back to the seed metadata
// file.
func (h *CatalogHandler) loadCatalog() (models.Catalog, error) {
	if h.store != nil {
		count, err := h.store.Count()
		if err == nil && count > 0 {
			return h.store.Load()
		}
	}

	if h.seedPath == "" {
		return nil, shared.ErrCatalogUnavailable
	}

	data, err := os.ReadFile(h.seedPath)
	if err != nil {
		return nil, shared.ErrCatalogUnavailable
	}

	catalog, err := models.ParseCatalog(data)
	if err != nil {
		return nil, shared.ErrCatalogUnavailable
	}

	return catalog, nil
}

// rejectReason maps a validation error to the user-facing reason string.
func rejectReason(err error) string {
	for _, sentinel := range []error{shared.ErrNoFileSelected, shared.ErrWrongFileType, shared.ErrInvalidJSON} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
