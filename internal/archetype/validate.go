package archetype

import (
	"fmt"

	"github.com/dshills/nighttype/internal/quiz"
)

// ValidationError describes a single registry integrity violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks registry integrity. entries is the raw list the registry
// was built from, used to report duplicates; pass nil to skip that check.
func Validate(r *Registry, entries []Profile) []ValidationError {
	var errs []ValidationError

	seen := make(map[quiz.Code]bool)
	for i, p := range entries {
		if seen[p.Code] {
			errs = append(errs, ValidationError{fmt.Sprintf("types[%d].code", i), fmt.Sprintf("duplicate code: %q", p.Code)})
		}
		seen[p.Code] = true
	}

	for _, code := range r.order {
		p := r.profiles[code]
		prefix := fmt.Sprintf("types[%s]", code)
		if !code.Valid() {
			errs = append(errs, ValidationError{prefix + ".code", fmt.Sprintf("invalid code: %q", code)})
		}
		if p.Name == "" {
			errs = append(errs, ValidationError{prefix + ".name", "required"})
		}
		if p.Emoji == "" {
			errs = append(errs, ValidationError{prefix + ".emoji", "required"})
		}
		if p.Description == "" {
			errs = append(errs, ValidationError{prefix + ".description", "required"})
		}
		if !p.RarityTier.Valid() {
			errs = append(errs, ValidationError{prefix + ".rarity_tier", fmt.Sprintf("invalid: %q, want one of %v", p.RarityTier, Tiers())})
		}
		if p.RarityPercent <= 0 || p.RarityPercent > 100 {
			errs = append(errs, ValidationError{prefix + ".rarity_percent", fmt.Sprintf("out of range: %v", p.RarityPercent)})
		}
		matches := []struct {
			field string
			ref   quiz.Code
		}{
			{"primary_match", p.PrimaryMatch},
			{"secondary_match", p.SecondaryMatch},
			{"tertiary_match", p.TertiaryMatch},
		}
		for _, m := range matches {
			if m.ref == "" {
				continue
			}
			if _, ok := r.profiles[m.ref]; !ok {
				errs = append(errs, ValidationError{prefix + "." + m.field, fmt.Sprintf("unknown code: %q", m.ref)})
			} else if m.ref == code {
				errs = append(errs, ValidationError{prefix + "." + m.field, "references itself"})
			}
		}
	}

	for _, code := range quiz.AllCodes() {
		if _, ok := r.profiles[code]; !ok {
			errs = append(errs, ValidationError{"types", fmt.Sprintf("missing profile for %s", code)})
		}
	}

	if _, ok := r.profiles[r.defaultCode]; !ok {
		errs = append(errs, ValidationError{"default", fmt.Sprintf("unknown code: %q", r.defaultCode)})
	}

	return errs
}
