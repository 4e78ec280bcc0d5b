package render

import (
	"strings"

	"github.com/rivo/uniseg"
)

// wrapText breaks s into lines no wider than maxW using Unicode line
// break opportunities. A segment wider than maxW on its own is split at
// grapheme boundaries. Trailing spaces are trimmed from each line.
func wrapText(s string, maxW int, measure func(string) int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var lines []string
	var cur string
	flush := func() {
		if t := strings.TrimRight(cur, " "); t != "" {
			lines = append(lines, t)
		}
		cur = ""
	}

	state := -1
	rest := s
	for rest != "" {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		seg = strings.TrimRight(seg, "\r\n")

		switch {
		case measure(strings.TrimRight(cur+seg, " ")) <= maxW:
			cur += seg
		case measure(strings.TrimRight(seg, " ")) <= maxW:
			flush()
			cur = seg
		default:
			flush()
			for _, piece := range splitGraphemes(seg, maxW, measure) {
				flush()
				cur = piece
			}
		}
		if mustBreak && rest != "" {
			flush()
		}
	}
	flush()
	return lines
}

// splitGraphemes splits an unbreakable segment into pieces of at most
// maxW. A single grapheme wider than maxW forms its own piece.
func splitGraphemes(seg string, maxW int, measure func(string) int) []string {
	var pieces []string
	var cur string
	g := uniseg.NewGraphemes(seg)
	for g.Next() {
		c := g.Str()
		if cur != "" && measure(cur+c) > maxW {
			pieces = append(pieces, cur)
			cur = ""
		}
		cur += c
	}
	if cur != "" {
		pieces = append(pieces, cur)
	}
	return pieces
}

// wrapItems packs items onto lines joined by sep. Items are never split
// unless one alone exceeds maxW.
func wrapItems(items []string, sep string, maxW int, measure func(string) int) []string {
	var lines []string
	var cur string
	for _, it := range items {
		if it == "" {
			continue
		}
		if cur == "" {
			cur = it
			continue
		}
		if next := cur + sep + it; measure(next) <= maxW {
			cur = next
			continue
		}
		lines = append(lines, cur)
		cur = it
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// clampLines keeps at most n lines. When lines are dropped the last kept
// line is shortened to end in an ellipsis that fits maxW.
func clampLines(lines []string, n, maxW int, measure func(string) int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	out[n-1] = ellipsize(out[n-1], maxW, measure)
	return out
}

const ellipsis = "…"

func ellipsize(s string, maxW int, measure func(string) int) string {
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	for len(clusters) > 0 {
		cand := strings.TrimRight(strings.Join(clusters, ""), " .,") + ellipsis
		if measure(cand) <= maxW {
			return cand
		}
		clusters = clusters[:len(clusters)-1]
	}
	return ellipsis
}
