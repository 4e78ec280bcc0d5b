// Package report assembles one quiz outcome for output.
package report

import (
	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/compat"
	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/scoring"
	"github.com/dshills/nighttype/internal/share"
)

// DefaultMatches is the number of ranked partners included by default.
const DefaultMatches = 3

// Report is the top-level output object.
type Report struct {
	Tool    string            `json:"tool"`
	Version string            `json:"version"`
	Input   Input             `json:"input"`
	Code    quiz.Code         `json:"code"`
	Scores  []AxisScore       `json:"scores,omitempty"`
	Profile archetype.Profile `json:"profile"`
	Rarity  archetype.Rarity  `json:"rarity"`
	Matches []Match           `json:"matches"`
	Share   Share             `json:"share"`
}

// Input describes where the answers came from.
type Input struct {
	Source string `json:"source,omitempty"`
	Hash   string `json:"hash,omitempty"`
	Mode   string `json:"mode,omitempty"`
}

// AxisScore is one axis of the score vector with the letter it produced.
type AxisScore struct {
	Axis   quiz.Axis `json:"axis"`
	Label  string    `json:"label"`
	Value  int       `json:"value"`
	Letter string    `json:"letter"`
	Trait  string    `json:"trait"`
}

// Match is a ranked partner with display fields from its profile.
type Match struct {
	compat.Result
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Share holds the share text and the post-composer link.
type Share struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Options control report assembly.
type Options struct {
	Tool    string
	Version string
	Input   Input
	// Matches is the number of ranked partners to include. Zero means
	// DefaultMatches; negative means all.
	Matches int
}

// Build assembles the report for code. The profile is looked up fail
// closed, so an unknown code reports the default profile. A nil vector
// omits the scores.
func Build(reg *archetype.Registry, code quiz.Code, v scoring.Vector, opts Options) *Report {
	p := reg.Lookup(code)
	n := opts.Matches
	if n == 0 {
		n = DefaultMatches
	}

	r := &Report{
		Tool:    opts.Tool,
		Version: opts.Version,
		Input:   opts.Input,
		Code:    p.Code,
		Scores:  Scores(v),
		Profile: p,
		Rarity:  reg.Rarity(p.Code),
	}

	for _, res := range compat.NewResolver(reg).Top(p.Code, n) {
		partner := reg.Lookup(res.Partner)
		r.Matches = append(r.Matches, Match{Result: res, Name: partner.Name, Emoji: partner.Emoji})
	}

	text := share.Text(share.FieldsOf(p))
	r.Share = Share{Text: text, URL: share.IntentURL(text)}
	return r
}

// Scores lists v in axis order. It returns nil for a nil vector.
func Scores(v scoring.Vector) []AxisScore {
	if v == nil {
		return nil
	}
	out := make([]AxisScore, 0, quiz.AxisCount)
	for _, a := range quiz.Axes() {
		val := v.Get(a)
		pos, neg := a.Traits()
		trait := neg
		if val >= 0 {
			trait = pos
		}
		out = append(out, AxisScore{
			Axis:   a,
			Label:  a.Label(),
			Value:  val,
			Letter: string(a.Letter(val)),
			Trait:  trait,
		})
	}
	return out
}
