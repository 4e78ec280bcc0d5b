// Package sheet reads answer sheets: YAML files holding one quiz run's
// answers, either graded, binary, or as explicit axis responses.
package sheet

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/scoring"
)

var (
	ErrEmpty     = errors.New("sheet has no answers")
	ErrAmbiguous = errors.New("sheet sets more than one of answers, choices, responses")
)

// Mode names the answer shape a sheet uses.
type Mode string

const (
	ModeGraded    Mode = "graded"
	ModeBinary    Mode = "binary"
	ModeResponses Mode = "responses"
)

// Sheet is a loaded answer sheet.
type Sheet struct {
	FilePath  string             `yaml:"-"`
	Hash      string             `yaml:"-"`
	Mode      Mode               `yaml:"-"`
	Answers   []int              `yaml:"answers"`
	Choices   []scoring.Choice   `yaml:"choices"`
	Responses []scoring.Response `yaml:"responses"`
}

// Load reads a sheet file and computes its SHA-256 hash.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet.Load: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sheet.Load: %s: %w", path, err)
	}
	s.FilePath = path
	return s, nil
}

// Parse decodes a sheet. Exactly one of answers, choices, or responses
// must be set.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sheet.Parse: %w", err)
	}
	set := 0
	if len(s.Answers) > 0 {
		s.Mode = ModeGraded
		set++
	}
	if len(s.Choices) > 0 {
		s.Mode = ModeBinary
		set++
	}
	if len(s.Responses) > 0 {
		s.Mode = ModeResponses
		set++
	}
	switch set {
	case 0:
		return nil, fmt.Errorf("sheet.Parse: %w", ErrEmpty)
	case 1:
	default:
		return nil, fmt.Errorf("sheet.Parse: %w", ErrAmbiguous)
	}
	h := sha256.Sum256(data)
	s.Hash = fmt.Sprintf("sha256:%x", h)
	return &s, nil
}

// Resolve turns the sheet into scoring responses. Graded and binary
// answers are paired with bank questions in order; explicit responses are
// returned as written.
func (s *Sheet) Resolve(bank *quiz.Bank) ([]scoring.Response, error) {
	switch s.Mode {
	case ModeGraded:
		return scoring.FromGraded(bank, s.Answers)
	case ModeBinary:
		return scoring.FromChoices(bank, s.Choices)
	case ModeResponses:
		out := make([]scoring.Response, len(s.Responses))
		copy(out, s.Responses)
		return out, nil
	}
	return nil, fmt.Errorf("sheet.Resolve: %w", ErrEmpty)
}
