package scoring

import (
	"fmt"

	"github.com/dshills/nighttype/internal/quiz"
)

// Session streams answers for one quiz run, one question at a time.
// It is not safe for concurrent use.
type Session struct {
	bank      *quiz.Bank
	responses []Response
}

// NewSession starts a session over bank.
func NewSession(bank *quiz.Bank) *Session {
	return &Session{bank: bank, responses: make([]Response, 0, bank.Len())}
}

// Current returns the next unanswered question and its zero-based index.
func (s *Session) Current() (quiz.Question, int, bool) {
	if s.Done() {
		return quiz.Question{}, s.bank.Len(), false
	}
	i := len(s.responses)
	return s.bank.Question(i), i, true
}

// Answer records a graded value for the current question.
func (s *Session) Answer(value int) error {
	q, _, ok := s.Current()
	if !ok {
		return ErrSessionDone
	}
	s.responses = append(s.responses, Response{Axis: q.Axis, Value: value})
	return nil
}

// AnswerChoice records a binary answer for the current question.
func (s *Session) AnswerChoice(c Choice) error {
	v, err := c.Value()
	if err != nil {
		return fmt.Errorf("scoring.AnswerChoice: %w", err)
	}
	return s.Answer(v)
}

// Progress returns the answered share of the quiz as a whole percent.
func (s *Session) Progress() int {
	if s.bank.Len() == 0 {
		return 100
	}
	return len(s.responses) * 100 / s.bank.Len()
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool { return len(s.responses) >= s.bank.Len() }

// Result scores a completed session.
func (s *Session) Result() (Vector, quiz.Code, error) {
	if !s.Done() {
		return nil, "", ErrSessionPending
	}
	return Score(s.responses)
}
