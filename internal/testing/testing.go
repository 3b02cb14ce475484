// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/jadipas/freddie/internal/models"
)

// MockCatalogService is a configurable test double for services.CatalogService.
type MockCatalogService struct {
	Catalog     models.Catalog
	LoadErr     error
	UploadErr   error
	Healthy     bool
	HealthErr   error
	LoadCalls   int
	UploadCalls int
	Uploaded    []byte
}

func (m *MockCatalogService) Load(ctx context.Context) (models.Catalog, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Catalog, nil
}

func (m *MockCatalogService) Upload(ctx context.Context, filename string, data []byte) error {
	m.UploadCalls++
	m.Uploaded = data
	return m.UploadErr
}

func (m *MockCatalogService) Health(ctx context.Context) (bool, error) {
	return m.Healthy, m.HealthErr
}

func (m *MockCatalogService) Name() string { return "mock backend" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// SongFixture builds a song with just the fields the scorer cares about.
func SongFixture(filePath, title string, bpm float64) models.Song {
	return models.Song{
		FilePath: filePath,
		Title:    title,
		Artist:   "Test Artist",
		Genre:    "House",
		Duration: 200,
		BPM:      bpm,
	}
}
