package scoring

import (
	"errors"
	"testing"

	"github.com/dshills/nighttype/internal/quiz"
)

func vec(i, t, e, a int) Vector {
	return Vector{
		quiz.AxisInitiative: i,
		quiz.AxisTempo:      t,
		quiz.AxisExpression: e,
		quiz.AxisAdventure:  a,
	}
}

func TestDeriveCodeAllSignCombinations(t *testing.T) {
	seen := make(map[quiz.Code]bool)
	for mask := 0; mask < 16; mask++ {
		vals := [4]int{}
		for i := range vals {
			if mask&(1<<i) != 0 {
				vals[i] = -3
			} else {
				vals[i] = 2
			}
		}
		code := DeriveCode(vec(vals[0], vals[1], vals[2], vals[3]))
		if !code.Valid() {
			t.Errorf("mask %04b: invalid code %s", mask, code)
		}
		if seen[code] {
			t.Errorf("mask %04b: duplicate code %s", mask, code)
		}
		seen[code] = true
	}
	for _, c := range quiz.AllCodes() {
		if !seen[c] {
			t.Errorf("code %s not reachable", c)
		}
	}
}

func TestDeriveCodeTieBreak(t *testing.T) {
	if got := DeriveCode(vec(0, 0, 0, 0)); got != "LSVT" {
		t.Errorf("zero vector = %s, want LSVT", got)
	}
	if got := DeriveCode(Vector{}); got != "LSVT" {
		t.Errorf("empty vector = %s, want LSVT", got)
	}
	if got := DeriveCode(nil); got != "LSVT" {
		t.Errorf("nil vector = %s, want LSVT", got)
	}
}

func TestScoreWorkedSheet(t *testing.T) {
	responses := []Response{
		{quiz.AxisInitiative, 2}, {quiz.AxisInitiative, 2}, {quiz.AxisInitiative, -1},
		{quiz.AxisTempo, 1}, {quiz.AxisTempo, -2}, {quiz.AxisTempo, 0},
		{quiz.AxisExpression, 1}, {quiz.AxisExpression, 1}, {quiz.AxisExpression, 0},
		{quiz.AxisAdventure, -2}, {quiz.AxisAdventure, -1}, {quiz.AxisAdventure, -1},
	}
	v, code, err := Score(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := vec(3, -1, 2, -4)
	for _, a := range quiz.Axes() {
		if v.Get(a) != want.Get(a) {
			t.Errorf("%s = %d, want %d", a, v.Get(a), want.Get(a))
		}
	}
	if code != "LQVC" {
		t.Errorf("code = %s, want LQVC", code)
	}
}

func TestScoreAllZero(t *testing.T) {
	values := make([]int, 12)
	responses, err := FromGraded(quiz.Builtin(), values)
	if err != nil {
		t.Fatal(err)
	}
	v, code, err := Score(responses)
	if err != nil {
		t.Fatal(err)
	}
	if code != "LSVT" {
		t.Errorf("code = %s, want LSVT", code)
	}
	if len(v) != quiz.AxisCount {
		t.Errorf("vector has %d axes, want %d", len(v), quiz.AxisCount)
	}
}

func TestScoreUnknownAxis(t *testing.T) {
	_, _, err := Score([]Response{{Axis: "mood", Value: 1}})
	if !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestScoreOutOfRangeAccepted(t *testing.T) {
	v, code, err := Score([]Response{{quiz.AxisTempo, -9}, {quiz.AxisInitiative, 40}})
	if err != nil {
		t.Fatal(err)
	}
	if v.Get(quiz.AxisTempo) != -9 || v.Get(quiz.AxisInitiative) != 40 {
		t.Errorf("values were clamped: %v", v)
	}
	if code != "LQVT" {
		t.Errorf("code = %s, want LQVT", code)
	}
}

func TestBinaryAndGradedAgree(t *testing.T) {
	bank := quiz.Builtin()
	tests := []struct {
		name    string
		choices string
		graded  []int
	}{
		{"all A", "AAAAAAAAAAAA", []int{2, 2, 2, 1, 1, 1, 2, 1, 0, 2, 2, 2}},
		{"all B", "BBBBBBBBBBBB", []int{-2, -2, -2, -1, -1, -1, -2, -1, -1, -2, -2, -2}},
		{"mixed", "ABBBABAAABBA", []int{2, -1, -2, -2, 1, -1, 1, 2, -1, -2, -1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choices := make([]Choice, len(tt.choices))
			for i, r := range tt.choices {
				choices[i] = Choice(string(r))
			}
			br, err := FromChoices(bank, choices)
			if err != nil {
				t.Fatal(err)
			}
			gr, err := FromGraded(bank, tt.graded)
			if err != nil {
				t.Fatal(err)
			}
			_, bc, err := Score(br)
			if err != nil {
				t.Fatal(err)
			}
			_, gc, err := Score(gr)
			if err != nil {
				t.Fatal(err)
			}
			if bc != gc {
				t.Errorf("binary %s != graded %s", bc, gc)
			}
		})
	}
}

func TestFromGradedWrongCount(t *testing.T) {
	_, err := FromGraded(quiz.Builtin(), []int{1, 2})
	if !errors.Is(err, ErrAnswerCount) {
		t.Errorf("expected ErrAnswerCount, got %v", err)
	}
}

func TestFromChoicesInvalid(t *testing.T) {
	choices := make([]Choice, 12)
	for i := range choices {
		choices[i] = ChoiceA
	}
	choices[5] = "C"
	_, err := FromChoices(quiz.Builtin(), choices)
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("expected ErrInvalidChoice, got %v", err)
	}
}

func TestChoiceValue(t *testing.T) {
	for _, tt := range []struct {
		c    Choice
		want int
	}{{"A", 1}, {"a", 1}, {"B", -1}, {"b", -1}} {
		got, err := tt.c.Value()
		if err != nil || got != tt.want {
			t.Errorf("%q.Value() = %d, %v", tt.c, got, err)
		}
	}
	if Choice("x").Valid() {
		t.Error("expected x to be invalid")
	}
}

func TestChoiceValidMatchesValue(t *testing.T) {
	for _, c := range []Choice{"A", "a", "B", "b", "x", "", "AB"} {
		_, err := c.Value()
		if got, want := c.Valid(), err == nil; got != want {
			t.Errorf("%q.Valid() = %v, want %v", c, got, want)
		}
	}
}

func TestSession(t *testing.T) {
	bank := quiz.Builtin()
	s := NewSession(bank)
	if s.Progress() != 0 {
		t.Errorf("initial progress = %d", s.Progress())
	}
	if _, _, err := s.Result(); !errors.Is(err, ErrSessionPending) {
		t.Errorf("expected ErrSessionPending, got %v", err)
	}
	for i := 0; i < bank.Len(); i++ {
		q, idx, ok := s.Current()
		if !ok || idx != i || q.ID != bank.Question(i).ID {
			t.Fatalf("step %d: Current() = %d, %d, %v", i, q.ID, idx, ok)
		}
		var err error
		if i%2 == 0 {
			err = s.Answer(-2)
		} else {
			err = s.AnswerChoice(ChoiceB)
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if !s.Done() || s.Progress() != 100 {
		t.Errorf("done=%v progress=%d", s.Done(), s.Progress())
	}
	if err := s.Answer(1); !errors.Is(err, ErrSessionDone) {
		t.Errorf("expected ErrSessionDone, got %v", err)
	}
	_, code, err := s.Result()
	if err != nil {
		t.Fatal(err)
	}
	if code != "FQAC" {
		t.Errorf("code = %s, want FQAC", code)
	}
}

func TestSessionProgressMidway(t *testing.T) {
	s := NewSession(quiz.Builtin())
	for i := 0; i < 3; i++ {
		if err := s.Answer(1); err != nil {
			t.Fatal(err)
		}
	}
	if s.Progress() != 25 {
		t.Errorf("progress = %d, want 25", s.Progress())
	}
}
