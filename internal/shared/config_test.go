package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./freddie.db" {
			t.Errorf("expected database path ./freddie.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8502 {
			t.Errorf("expected server port 8502, got %d", config.Server.Port)
		}

		if config.Backend.BaseURL != "http://127.0.0.1:8502" {
			t.Errorf("expected backend base URL http://127.0.0.1:8502, got %s", config.Backend.BaseURL)
		}

		if config.UI.RecommendationCount != 5 {
			t.Errorf("expected recommendation count 5, got %d", config.UI.RecommendationCount)
		}

		if config.UI.RecomputeInPlaylistView {
			t.Error("expected recompute_in_playlist_view to default to false")
		}

		if !config.UI.SwitchViewOnMove {
			t.Error("expected switch_view_on_move to default to true")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[backend]
base_url = "http://localhost:9000"
metadata_path = "/data/audio_metadata.json"
rate_limit = 2.5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 8080

[ui]
recommendation_count = 8
recompute_in_playlist_view = true
switch_view_on_move = false
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Backend.BaseURL != "http://localhost:9000" {
			t.Errorf("expected backend base URL http://localhost:9000, got %s", config.Backend.BaseURL)
		}

		if config.Backend.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %v", config.Backend.RateLimit)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.UI.RecommendationCount != 8 {
			t.Errorf("expected recommendation count 8, got %d", config.UI.RecommendationCount)
		}

		if !config.UI.RecomputeInPlaylistView || config.UI.SwitchViewOnMove {
			t.Error("ui switches not parsed")
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
