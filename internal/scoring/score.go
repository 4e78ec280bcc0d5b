// Package scoring reduces quiz responses to a score vector and a type code.
package scoring

import (
	"errors"
	"fmt"

	"github.com/dshills/nighttype/internal/quiz"
)

var (
	ErrUnknownAxis    = errors.New("unknown axis")
	ErrAnswerCount    = errors.New("answer count does not match question count")
	ErrInvalidChoice  = errors.New("invalid choice")
	ErrSessionDone    = errors.New("quiz session already complete")
	ErrSessionPending = errors.New("quiz session not complete")
)

// Graded answer range. Values outside it are accepted unclamped by Score.
const (
	MinGraded = -2
	MaxGraded = 2
)

// Response is one answer on one axis. Positive values agree with option A,
// negative with option B; the magnitude is the strength.
type Response struct {
	Axis  quiz.Axis `json:"axis" yaml:"axis"`
	Value int       `json:"value" yaml:"value"`
}

// Vector maps each axis to the sum of its responses. Missing axes read as 0.
type Vector map[quiz.Axis]int

// Get returns the sum for axis a.
func (v Vector) Get(a quiz.Axis) int { return v[a] }

// Score accumulates responses into a vector and derives the type code.
// The only validation is axis membership.
func Score(responses []Response) (Vector, quiz.Code, error) {
	v := make(Vector, quiz.AxisCount)
	for _, a := range quiz.Axes() {
		v[a] = 0
	}
	for i, r := range responses {
		if !r.Axis.Valid() {
			return nil, "", fmt.Errorf("scoring.Score: responses[%d]: %q: %w", i, r.Axis, ErrUnknownAxis)
		}
		v[r.Axis] += r.Value
	}
	return v, DeriveCode(v), nil
}

// DeriveCode picks one letter per axis. A zero sum resolves to the
// positive letter.
func DeriveCode(v Vector) quiz.Code {
	var b [quiz.AxisCount]byte
	for i, a := range quiz.Axes() {
		b[i] = a.Letter(v[a])
	}
	return quiz.Code(b[:])
}

// FromGraded pairs graded answers with the bank's questions in order.
func FromGraded(bank *quiz.Bank, values []int) ([]Response, error) {
	if len(values) != bank.Len() {
		return nil, fmt.Errorf("scoring.FromGraded: got %d answers, want %d: %w", len(values), bank.Len(), ErrAnswerCount)
	}
	out := make([]Response, len(values))
	for i, q := range bank.Questions() {
		out[i] = Response{Axis: q.Axis, Value: values[i]}
	}
	return out, nil
}

// FromChoices pairs binary answers with the bank's questions in order.
func FromChoices(bank *quiz.Bank, choices []Choice) ([]Response, error) {
	if len(choices) != bank.Len() {
		return nil, fmt.Errorf("scoring.FromChoices: got %d answers, want %d: %w", len(choices), bank.Len(), ErrAnswerCount)
	}
	out := make([]Response, len(choices))
	for i, c := range choices {
		val, err := c.Value()
		if err != nil {
			return nil, fmt.Errorf("scoring.FromChoices: answers[%d]: %w", i, err)
		}
		out[i] = Response{Axis: bank.Question(i).Axis, Value: val}
	}
	return out, nil
}
