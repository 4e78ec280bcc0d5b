package scoring

import (
	"fmt"
	"strings"
)

// Choice is a binary answer.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

// Valid reports whether c is A or B, in either case.
func (c Choice) Valid() bool {
	_, err := c.Value()
	return err == nil
}

// Value maps A to +1 and B to -1.
func (c Choice) Value() (int, error) {
	switch Choice(strings.ToUpper(string(c))) {
	case ChoiceA:
		return 1, nil
	case ChoiceB:
		return -1, nil
	}
	return 0, fmt.Errorf("%q: %w", string(c), ErrInvalidChoice)
}

// ScaleOption is one point of the 5-point graded scale.
type ScaleOption struct {
	Value int
	Label string
}

// Scale lists the graded options from strongest A to strongest B.
var Scale = []ScaleOption{
	{2, "A"},
	{1, "slightly A"},
	{0, "neutral"},
	{-1, "slightly B"},
	{-2, "B"},
}
