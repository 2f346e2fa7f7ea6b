package tui

import (
	"strings"
	"testing"
)

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits exactly", "hello", 5, "hello"},
		{"fits with room", "hi", 10, "hi"},
		{"truncated", "hello world", 8, "hello..."},
		{"truncated to 4", "abcdef", 4, "a..."},
		{"maxLen 3 no ellipsis", "abcdef", 3, "abc"},
		{"maxLen 2 no ellipsis", "abcdef", 2, "ab"},
		{"maxLen 1", "abcdef", 1, "a"},
		{"maxLen 0", "abcdef", 0, ""},
		{"empty string", "", 5, ""},
		{"single char fits", "a", 1, "a"},
		{"long calculator title", "Relativistic Brachistochrone", 15, "Relativistic..."},
		{"multibyte runes truncated", "こんにちは世界abc", 5, "こん..."},
		{"multibyte runes fit", "こんにちは", 5, "こんにちは"},
		{"multibyte short truncate", "日本語テスト", 2, "日本"},
		{"multibyte single rune", "🚀rocket", 4, "🚀..."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TruncateWithEllipsis(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFooterCompactMode(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	f := Footer{
		Width:    CompactWidth - 1,
		Bindings: HomeFooterBindings(km),
	}
	output := f.View()
	// In compact mode, descriptions should NOT appear.
	if strings.Contains(output, ":up") || strings.Contains(output, ":down") {
		t.Error("compact footer should not contain key:desc pairs")
	}
	// But keys should still appear.
	if !strings.Contains(output, "↑") {
		t.Error("compact footer should still contain key symbols")
	}
}

func TestFooterNormalMode(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	f := Footer{
		Width:    CompactWidth + 20,
		Bindings: HomeFooterBindings(km),
	}
	output := f.View()
	// Normal mode should contain colon separators.
	if !strings.Contains(output, ":") {
		t.Error("normal footer should contain colon separators")
	}
	if !strings.Contains(output, "quit") {
		t.Error("normal footer should contain descriptions")
	}
}
