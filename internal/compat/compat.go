// Package compat scores the compatibility of two type codes.
package compat

import (
	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/quiz"
)

// Rule names the priority rule that produced a result.
type Rule string

const (
	RuleSameType  Rule = "same_type"
	RulePrimary   Rule = "primary"
	RuleSecondary Rule = "secondary"
	RuleTertiary  Rule = "tertiary"
	RuleContrast  Rule = "contrast"
	RuleCalm      Rule = "calm"
)

// ContrastDistance is the Hamming distance at which unrelated types count
// as a contrast pairing.
const ContrastDistance = 3

// Result is the compatibility of one code with a partner code.
type Result struct {
	Partner     quiz.Code `json:"partner"`
	Score       int       `json:"score"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Rule        Rule      `json:"rule"`
}

type ruleText struct {
	score       int
	label       string
	description string
}

var texts = map[Rule]ruleText{
	RuleSameType:  {3, "same type", "Two of a kind. You read each other effortlessly, blind spots included."},
	RulePrimary:   {5, "soulmate", "Made for each other."},
	RuleSecondary: {4, "great match", "A pairing that brings out the best in both of you."},
	RuleTertiary:  {3, "good match", "Easy chemistry with room to grow."},
	RuleContrast:  {2, "contrast", "Opposites on most axes. Sparks fly, and so do misunderstandings."},
	RuleCalm:      {1, "calm", "Similar enough to be comfortable, different enough to stay curious."},
}

// Resolver evaluates compatibility against a registry.
type Resolver struct {
	reg *archetype.Registry
}

// NewResolver returns a resolver over reg.
func NewResolver(reg *archetype.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve scores a against b. Rules are evaluated top to bottom and the
// first match wins: same type, primary, secondary, tertiary, then Hamming
// distance. Match references that are empty or unknown are skipped.
func (r *Resolver) Resolve(a, b quiz.Code) Result {
	if a == b {
		return build(b, RuleSameType, "")
	}

	pa, okA := r.reg.Get(a)
	pb, okB := r.reg.Get(b)

	tiers := []struct {
		rule       Rule
		aRef, bRef quiz.Code
		aWhy, bWhy string
	}{
		{RulePrimary, pa.PrimaryMatch, pb.PrimaryMatch, pa.MatchReason, pb.MatchReason},
		{RuleSecondary, pa.SecondaryMatch, pb.SecondaryMatch, pa.MatchReason2, pb.MatchReason2},
		{RuleTertiary, pa.TertiaryMatch, pb.TertiaryMatch, pa.MatchReason3, pb.MatchReason3},
	}
	for _, t := range tiers {
		aDeclares := okA && t.aRef != "" && t.aRef == b
		bDeclares := okB && t.bRef != "" && t.bRef == a
		switch {
		case aDeclares:
			return build(b, t.rule, t.aWhy)
		case bDeclares:
			return build(b, t.rule, t.bWhy)
		}
	}

	if Hamming(a, b) >= ContrastDistance {
		return build(b, RuleContrast, "")
	}
	return build(b, RuleCalm, "")
}

func build(partner quiz.Code, rule Rule, reason string) Result {
	t := texts[rule]
	desc := reason
	if desc == "" {
		desc = t.description
	}
	return Result{
		Partner:     partner,
		Score:       t.score,
		Label:       t.label,
		Description: desc,
		Rule:        rule,
	}
}

// Hamming counts the letter positions where a and b differ. Length
// differences count as differing positions.
func Hamming(a, b quiz.Code) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	d := 0
	for i := 0; i < n; i++ {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			d++
		}
	}
	return d
}
