package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jfmyers9/radionet/internal/directory"
	"github.com/jfmyers9/radionet/pkg/radionet"
	"github.com/mattn/go-runewidth"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "Antenne Bayern Classic Rock Live",
			width:    20,
			expected: "Antenne Bayern Cl...",
		},
		{
			name:     "handle wide characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate wide characters",
			input:    "日本語のラジオ局",
			width:    10,
			expected: "日本語... ",
		},
		{
			name:     "minimum width for truncation",
			input:    "Hello",
			width:    3,
			expected: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := padToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("padToWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			if tt.width > 0 {
				if w := runewidth.StringWidth(result); w != tt.width {
					t.Errorf("padToWidth(%q, %d) produced width %d, expected %d",
						tt.input, tt.width, w, tt.width)
				}
			}
		})
	}
}

func TestPrintStations(t *testing.T) {
	stations := []*directory.Station{
		{ID: "dancefm", Name: "Dance FM", City: "Bucharest", Country: "Romania", Genres: []string{"Dance", "Pop"}},
		{ID: "eska", Name: "Eska", Country: "Poland"},
	}

	var buf bytes.Buffer
	printStations(&buf, stations)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Bucharest, Romania") || !strings.HasSuffix(lines[0], "Dance, Pop") {
		t.Errorf("unexpected line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Poland") {
		t.Errorf("unexpected line: %q", lines[1])
	}
	if strings.Index(lines[0], "Dance FM") != strings.Index(lines[1], "Eska") {
		t.Error("expected name column to be aligned")
	}
}

func TestPrintStationSkipsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	printStation(&buf, &directory.Station{ID: "x", Name: "X", StreamURL: "http://x"})

	out := buf.String()
	if strings.Contains(out, "Genres") || strings.Contains(out, "Logo") {
		t.Errorf("expected empty fields left out, got %q", out)
	}
	if !strings.Contains(out, "http://x") {
		t.Errorf("expected stream in output, got %q", out)
	}
}

func TestPrintTags(t *testing.T) {
	var buf bytes.Buffer
	printTags(&buf, []radionet.Tag{{Name: "Rock", Slug: "rock", Count: 300}})

	if !strings.Contains(buf.String(), "rock") || !strings.HasSuffix(buf.String(), "300\n") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestCheckStatus(t *testing.T) {
	if err := checkStatus(directory.StatusOK, "x"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := checkStatus(directory.StatusNotFound, "x"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
	if err := checkStatus(directory.StatusFailed, "x"); err == nil || !strings.Contains(err.Error(), "unavailable") {
		t.Errorf("expected unavailable error, got %v", err)
	}
}

func TestValidTagType(t *testing.T) {
	if err := validTagType("genres"); err != nil {
		t.Errorf("expected genres valid, got %v", err)
	}
	if err := validTagType("moods"); err == nil {
		t.Error("expected moods invalid")
	}
}
