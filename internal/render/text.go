package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/report"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	faint  = color.New(color.FgHiBlack).SprintFunc()
	accent = color.New(color.FgMagenta, color.Bold).SprintFunc()
	pink   = color.New(color.FgHiMagenta).SprintFunc()
)

var tierColors = map[archetype.Tier]*color.Color{
	archetype.TierN:   color.New(color.FgWhite),
	archetype.TierR:   color.New(color.FgCyan),
	archetype.TierSR:  color.New(color.FgYellow),
	archetype.TierSSR: color.New(color.FgHiRed, color.Bold),
}

// TierString colours a rarity tier for the terminal.
func TierString(t archetype.Tier) string {
	if c, ok := tierColors[t]; ok {
		return c.Sprint(t)
	}
	return string(t)
}

const (
	textWidth = 72
	barCells  = 24
)

// Text writes a terminal rendering of a report to w.
func Text(w io.Writer, r *report.Report) error {
	var b strings.Builder
	p := r.Profile

	fmt.Fprintf(&b, "%s\n", faint("YOUR NIGHT TYPE"))
	fmt.Fprintf(&b, "%s  %s  %s\n", p.Emoji, accent(string(r.Code)), bold(p.Name))
	if p.Subtitle != "" {
		fmt.Fprintf(&b, "%s\n", p.Subtitle)
	}
	fmt.Fprintf(&b, "rarity %s %.1f%%\n\n", TierString(r.Rarity.Tier), r.Rarity.Percent)

	if len(r.Scores) > 0 {
		labelW := 0
		for _, s := range r.Scores {
			pos, neg := s.Axis.Traits()
			labelW = max(labelW, runewidth.StringWidth(pos), runewidth.StringWidth(neg))
		}
		for _, s := range r.Scores {
			pos, neg := s.Axis.Traits()
			fmt.Fprintf(&b, "%s %s %s %+d\n",
				runewidth.FillRight(pos, labelW), scoreBar(s.Value), runewidth.FillRight(neg, labelW), s.Value)
		}
		b.WriteString("\n")
	}

	writeParagraph(&b, "", p.Description)
	writeParagraph(&b, "night style", p.NightStyle)
	writeParagraph(&b, "love hint", p.LoveHint)

	if len(r.Matches) > 0 {
		b.WriteString(bold("best matches") + "\n")
		nameW := 0
		for _, m := range r.Matches {
			nameW = max(nameW, runewidth.StringWidth(m.Name))
		}
		for _, m := range r.Matches {
			fmt.Fprintf(&b, "  %s %s %s  %d/5 %s\n", m.Partner, m.Emoji, runewidth.FillRight(m.Name, nameW), m.Score, faint(m.Label))
		}
		b.WriteString("\n")
	}

	if len(p.Tags) > 0 {
		b.WriteString(pink(strings.Join(p.Tags, " · ")) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// scoreBar draws an axis sum as a fixed-width cell bar with the same
// (v+6)/12 fill as the card.
func scoreBar(v int) string {
	n := barCells * (v + 6) / 12
	n = min(max(n, 1), barCells)
	return "[" + strings.Repeat("█", n) + strings.Repeat("░", barCells-n) + "]"
}

func writeParagraph(b *strings.Builder, title, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	if title != "" {
		b.WriteString(bold(title) + "\n")
	}
	for _, line := range wrapText(body, textWidth, runewidth.StringWidth) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}
