// Package archetype holds the 16 type profiles and answers lookups against
// them. The built-in registry is parsed once from embedded YAML.
package archetype

import (
	"embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dshills/nighttype/internal/quiz"
)

//go:embed builtin/types.yaml
var builtinFS embed.FS

// Profile describes one personality type.
type Profile struct {
	Code           quiz.Code `yaml:"code" json:"code"`
	Name           string    `yaml:"name" json:"name"`
	Subtitle       string    `yaml:"subtitle" json:"subtitle"`
	Emoji          string    `yaml:"emoji" json:"emoji"`
	Description    string    `yaml:"description" json:"description"`
	NightStyle     string    `yaml:"night_style" json:"night_style"`
	LoveHint       string    `yaml:"love_hint" json:"love_hint"`
	Tags           []string  `yaml:"tags" json:"tags"`
	Color          string    `yaml:"color" json:"color"`
	PrimaryMatch   quiz.Code `yaml:"primary_match" json:"primary_match,omitempty"`
	MatchReason    string    `yaml:"match_reason" json:"match_reason,omitempty"`
	SecondaryMatch quiz.Code `yaml:"secondary_match" json:"secondary_match,omitempty"`
	MatchReason2   string    `yaml:"match_reason_2" json:"match_reason_2,omitempty"`
	TertiaryMatch  quiz.Code `yaml:"tertiary_match" json:"tertiary_match,omitempty"`
	MatchReason3   string    `yaml:"match_reason_3" json:"match_reason_3,omitempty"`
	RarityPercent  float64   `yaml:"rarity_percent" json:"rarity_percent"`
	RarityTier     Tier      `yaml:"rarity_tier" json:"rarity_tier"`
}

// Rarity is a type's curated commonness estimate. Percentages across types
// are independent and are not a probability distribution.
type Rarity struct {
	Percent float64 `json:"percent"`
	Tier    Tier    `json:"tier"`
}

// Registry is an immutable code-to-profile table with a stable order.
type Registry struct {
	profiles    map[quiz.Code]Profile
	order       []quiz.Code
	defaultCode quiz.Code
}

type registryDoc struct {
	Default quiz.Code `yaml:"default"`
	Types   []Profile `yaml:"types"`
}

var builtin = mustLoadBuiltin()

func mustLoadBuiltin() *Registry {
	data, err := builtinFS.ReadFile("builtin/types.yaml")
	if err != nil {
		panic(fmt.Sprintf("archetype: read embedded registry: %v", err))
	}
	r, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("archetype: embedded registry: %v", err))
	}
	return r
}

// Builtin returns the embedded registry.
func Builtin() *Registry { return builtin }

// Load parses a YAML registry and validates it.
func Load(data []byte) (*Registry, error) {
	var doc registryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("archetype.Load: parse: %w", err)
	}
	r := &Registry{
		profiles:    make(map[quiz.Code]Profile, len(doc.Types)),
		defaultCode: doc.Default,
	}
	for _, p := range doc.Types {
		if _, dup := r.profiles[p.Code]; !dup {
			r.order = append(r.order, p.Code)
		}
		r.profiles[p.Code] = p
	}
	if errs := Validate(r, doc.Types); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, fmt.Errorf("archetype.Load: %w", errors.Join(joined...))
	}
	return r, nil
}

// Get returns the profile for code and whether it exists.
func (r *Registry) Get(code quiz.Code) (Profile, bool) {
	p, ok := r.profiles[code]
	return p.clone(), ok
}

// Lookup returns the profile for code, or the default profile when code is
// unknown. It never fails.
func (r *Registry) Lookup(code quiz.Code) Profile {
	if p, ok := r.profiles[code]; ok {
		return p.clone()
	}
	return r.Default()
}

// Default returns the designated fallback profile.
func (r *Registry) Default() Profile { return r.profiles[r.defaultCode].clone() }

// clone copies the slice fields so callers cannot write into the registry.
func (p Profile) clone() Profile {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// AllCodes returns every registered code in registry order.
func (r *Registry) AllCodes() []quiz.Code {
	out := make([]quiz.Code, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int { return len(r.order) }

// Rarity returns the rarity of code, falling back like Lookup.
func (r *Registry) Rarity(code quiz.Code) Rarity {
	p := r.Lookup(code)
	return Rarity{Percent: p.RarityPercent, Tier: p.RarityTier}
}
