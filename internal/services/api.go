// HTTP client for the metadata backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/shared"
	"golang.org/x/time/rate"
)

// Backend endpoints. The metadata path matches the original extractor
// backend; upload is the recovery endpoint.
const (
	metadataEndpoint = "/audio_metadata"
	uploadEndpoint   = "/catalog/upload"
	healthEndpoint   = "/health"
)

// APIService implements [CatalogService] over HTTP against the metadata
// backend. Requests are rate limited so a flapping backend is not hammered
// by retries.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ CatalogService = (*APIService)(nil)

// NewAPIService creates a backend client. A nil client falls back to
// [http.DefaultClient]; a non-positive rate disables limiting.
func NewAPIService(baseURL string, client *http.Client, requestsPerSecond float64) *APIService {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8502"
	}
	if client == nil {
		client = http.DefaultClient
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// Name returns the backend's display name.
func (a *APIService) Name() string { return "metadata backend" }

// Load fetches and parses the catalog document from the backend.
//
// Every failure mode the session cares about (unreachable backend, non-2xx
// response, unparseable payload) collapses into [shared.ErrCatalogUnavailable]
// so the caller has a single signal to enter the fallback on.
func (a *APIService) Load(ctx context.Context) (models.Catalog, error) {
	body, status, err := a.get(ctx, metadataEndpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCatalogUnavailable, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: backend returned status %d", shared.ErrCatalogUnavailable, status)
	}

	catalog, err := models.ParseCatalog(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCatalogUnavailable, err)
	}

	return catalog, nil
}

// Upload posts a replacement catalog file as multipart form data under the
// field name "file".
func (a *APIService) Upload(ctx context.Context, filename string, data []byte) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUploadRejected, err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+uploadEndpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUploadRejected, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrUploadRejected, resp.StatusCode, string(body))
	}

	return nil
}

// Health calls the backend's health endpoint and reports whether a catalog is
// available.
func (a *APIService) Health(ctx context.Context) (bool, error) {
	body, status, err := a.get(ctx, healthEndpoint)
	if err != nil {
		return false, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	if status < 200 || status >= 300 {
		return false, fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, status)
	}

	var health struct {
		Status         string `json:"status"`
		CatalogPresent bool   `json:"catalog_present"`
	}
	if err := json.Unmarshal(body, &health); err != nil {
		return false, nil
	}

	return health.CatalogPresent, nil
}

func (a *APIService) get(ctx context.Context, path string) ([]byte, int, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
