package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/nighttype/internal/archetype"
)

// tenPerRune measures every rune as 10 pixels.
func tenPerRune(s string) int { return 10 * utf8.RuneCountInString(s) }

func TestWrapText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		maxW int
		want []string
	}{
		{"empty", "   ", 100, nil},
		{"fits", "short", 100, []string{"short"}},
		{"greedy", "the quick brown fox", 100, []string{"the quick", "brown fox"}},
		{"overlong word", "abcdefghijkl", 50, []string{"abcde", "fghij", "kl"}},
		{"mandatory break", "a\nb", 100, []string{"a", "b"}},
		{"trailing spaces", "one two   ", 40, []string{"one", "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.maxW, tenPerRune)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("wrapText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapTextNoSpaces(t *testing.T) {
	in := "夜の性格診断をはじめよう"
	lines := wrapText(in, 30, tenPerRune)
	if strings.Join(lines, "") != in {
		t.Errorf("lines %q lost text", lines)
	}
	for _, l := range lines {
		if tenPerRune(l) > 30 {
			t.Errorf("line %q exceeds width", l)
		}
	}
}

func TestWrapDescriptionsFitCard(t *testing.T) {
	c := newCanvas(1, 1, DefaultFontSet())
	fc, err := c.face(styleRegular, 34)
	if err != nil {
		t.Fatal(err)
	}
	reg := archetype.Builtin()
	for _, code := range reg.AllCodes() {
		p := reg.Lookup(code)
		for _, line := range wrapText(p.Description, contentW, fc.width) {
			if w := fc.width(line); w > contentW && utf8.RuneCountInString(line) > 1 {
				t.Errorf("%s: line %q is %dpx, max %d", code, line, w, contentW)
			}
		}
	}
}

func TestWrapItems(t *testing.T) {
	got := wrapItems([]string{"#a", "", "#bb", "#ccc"}, " · ", 80, tenPerRune)
	want := []string{"#a · #bb", "#ccc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrapItems mismatch (-want +got):\n%s", diff)
	}
}

func TestClampLines(t *testing.T) {
	lines := []string{"aaaa", "bbbb", "cccc"}
	if got := clampLines(lines, 3, 50, tenPerRune); len(got) != 3 {
		t.Errorf("clampLines kept %d, want 3", len(got))
	}
	got := clampLines(lines, 2, 50, tenPerRune)
	want := []string{"aaaa", "bbbb…"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clampLines mismatch (-want +got):\n%s", diff)
	}
	if lines[1] != "bbbb" {
		t.Error("clampLines modified its input")
	}
}

func TestEllipsize(t *testing.T) {
	tests := []struct {
		in   string
		maxW int
		want string
	}{
		{"abcdef", 40, "abc…"},
		{"ab, cd", 40, "ab…"},
		{"abc", 5, "…"},
	}
	for _, tt := range tests {
		if got := ellipsize(tt.in, tt.maxW, tenPerRune); got != tt.want {
			t.Errorf("ellipsize(%q, %d) = %q, want %q", tt.in, tt.maxW, got, tt.want)
		}
	}
}
