package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// ── fitText ──────────────────────────────────────────────────────────────────

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short text untouched", in: "hello", max: 10, want: "hello"},
		{name: "exact length untouched", in: "hello", max: 5, want: "hello"},
		{name: "truncated with ellipsis", in: "hello world", max: 8, want: "hello..."},
		{name: "tiny max has no ellipsis", in: "hello", max: 2, want: "he"},
		{name: "zero max untouched", in: "hello", max: 0, want: "hello"},
		{name: "empty input", in: "", max: 5, want: ""},
		{name: "cyrillic truncated on rune boundary", in: "заметка о городе", max: 10, want: "заметка..."},
		{name: "cyrillic within limit by runes not bytes", in: "заметка", max: 7, want: "заметка"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fitText(tc.in, tc.max)
			assert.Equal(t, tc.want, got)
			assert.True(t, utf8.ValidString(got), "truncation must never split a rune")
		})
	}
}

func TestFitText_NeverProducesInvalidUTF8(t *testing.T) {
	title := strings.Repeat("ночь", 20)
	for max := 0; max < 30; max++ {
		assert.True(t, utf8.ValidString(fitText(title, max)), "max=%d", max)
	}
}

// ── formatTime ───────────────────────────────────────────────────────────────

func TestFormatTime_ZeroValueRendersDash(t *testing.T) {
	assert.Equal(t, "-", formatTime(time.Time{}))
}
