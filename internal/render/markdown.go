package render

import (
	"fmt"
	"strings"

	"github.com/dshills/nighttype/internal/report"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder
	p := r.Profile

	// Summary
	fmt.Fprintf(&b, "# %s %s\n\n", p.Emoji, p.Name)
	if p.Subtitle != "" {
		fmt.Fprintf(&b, "*%s*\n\n", p.Subtitle)
	}
	fmt.Fprintf(&b, "**Type:** `%s`\n", r.Code)
	fmt.Fprintf(&b, "**Rarity:** %s (%.1f%%)\n\n", r.Rarity.Tier, r.Rarity.Percent)

	if len(r.Scores) > 0 {
		b.WriteString("## Scores\n\n")
		b.WriteString("| Axis | Score | Leaning |\n")
		b.WriteString("|---|---:|---|\n")
		for _, s := range r.Scores {
			fmt.Fprintf(&b, "| %s | %+d | %s (%s) |\n", s.Label, s.Value, s.Trait, s.Letter)
		}
		b.WriteString("\n")
	}

	renderSection(&b, "Personality", p.Description)
	renderSection(&b, "Night Style", p.NightStyle)
	renderSection(&b, "Love Hint", p.LoveHint)

	if len(r.Matches) > 0 {
		b.WriteString("## Best Matches\n\n")
		for _, m := range r.Matches {
			fmt.Fprintf(&b, "### %s %s (`%s`) [%d/5 %s]\n\n", m.Emoji, m.Name, m.Partner, m.Score, m.Label)
			fmt.Fprintf(&b, "%s\n\n", m.Description)
		}
	}

	if len(p.Tags) > 0 {
		b.WriteString("## Tags\n\n")
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = "`" + t + "`"
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(tags, " "))
	}

	if r.Share.Text != "" {
		b.WriteString("## Share\n\n")
		for _, line := range strings.Split(r.Share.Text, "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
		b.WriteString("\n")
		if r.Share.URL != "" {
			fmt.Fprintf(&b, "[Post on X](%s)\n\n", r.Share.URL)
		}
	}

	if r.Input.Source != "" {
		b.WriteString("## Input\n\n")
		fmt.Fprintf(&b, "- %s", r.Input.Source)
		if r.Input.Mode != "" {
			fmt.Fprintf(&b, " (%s)", r.Input.Mode)
		}
		b.WriteString("\n")
		if r.Input.Hash != "" {
			fmt.Fprintf(&b, "- %s\n", r.Input.Hash)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderSection(b *strings.Builder, title, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, body)
}
