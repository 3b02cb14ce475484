package shared

import (
	"bytes"
	"testing"
)

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if len(first) != 36 {
		t.Errorf("expected uuid string of length 36, got %d", len(first))
	}
	if first == second {
		t.Error("consecutive ids should differ")
	}
}

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 42, "0:42"},
		{"exact minute", 60, "1:00"},
		{"fractional seconds truncate", 183.7, "3:03"},
		{"long track", 3725, "62:05"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("writes to the provided writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		logger.Info("hello")
		if buf.Len() == 0 {
			t.Error("expected log output in buffer")
		}
	})

	t.Run("nil writer falls back to stderr", func(t *testing.T) {
		if NewLogger(nil) == nil {
			t.Error("expected a logger")
		}
	})

	t.Run("WithLogger carries key-values", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "test")

		logger.Info("tagged")
		if !bytes.Contains(buf.Bytes(), []byte("component")) {
			t.Errorf("expected component key in output, got %s", buf.String())
		}
	})
}
