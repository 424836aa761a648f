package formatting_test

import (
	"errors"
	"testing"

	"github.com/framepromptly/framepromptly/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 1, "0 B"},
		{512, 0, "512 B"},
		{1024, 0, "1 KB"},
		{1536, 1, "1.5 KB"},
		{1048576, 0, "1 MB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		s    string
		want int64
	}{
		{"512", 512},
		{"1KB", 1024},
		{"1 KB", 1024},
		{"50MB", 50 * 1024 * 1024},
		{"1.5 KB", 1536},
	}

	for _, tt := range tests {
		got, err := formatting.ParseBytes(tt.s)
		if err != nil {
			t.Errorf("ParseBytes(%q) error: %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBytes(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestParseBytesInvalid(t *testing.T) {
	if _, err := formatting.ParseBytes("not a size"); err == nil {
		t.Error("expected error for invalid input")
	}
}

type enhanced struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}

func TestParseDirectJSON(t *testing.T) {
	result, err := formatting.Parse[enhanced](`{"enhancedPrompt": "refined"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EnhancedPrompt != "refined" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestParseFencedJSON(t *testing.T) {
	content := "Here is the result:\n```json\n{\"enhancedPrompt\": \"refined\"}\n```"

	result, err := formatting.Parse[enhanced](content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EnhancedPrompt != "refined" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestParseFailure(t *testing.T) {
	_, err := formatting.Parse[enhanced]("no json here")
	if !errors.Is(err, formatting.ErrParseFailed) {
		t.Errorf("expected ErrParseFailed, got %v", err)
	}
}
