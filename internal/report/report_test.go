package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/scoring"
)

func TestBuild(t *testing.T) {
	reg := archetype.Builtin()
	v := scoring.Vector{
		quiz.AxisInitiative: 3,
		quiz.AxisTempo:      -1,
		quiz.AxisExpression: 2,
		quiz.AxisAdventure:  -4,
	}
	r := Build(reg, "LQVC", v, Options{Tool: "nighttype", Version: "test"})

	if r.Code != "LQVC" || r.Profile.Code != "LQVC" {
		t.Fatalf("code = %s / %s, want LQVC", r.Code, r.Profile.Code)
	}
	if r.Rarity != reg.Rarity("LQVC") {
		t.Errorf("rarity = %+v", r.Rarity)
	}
	if len(r.Matches) != DefaultMatches {
		t.Fatalf("matches = %d, want %d", len(r.Matches), DefaultMatches)
	}
	for i := 1; i < len(r.Matches); i++ {
		if r.Matches[i-1].Score < r.Matches[i].Score {
			t.Errorf("matches not sorted: %+v", r.Matches)
		}
	}
	if r.Matches[0].Name == "" {
		t.Error("match name not filled")
	}
	if r.Share.Text == "" || r.Share.URL == "" {
		t.Error("share not filled")
	}

	want := []AxisScore{
		{quiz.AxisInitiative, "Initiative", 3, "L", "Lead"},
		{quiz.AxisTempo, "Tempo", -1, "Q", "Quick"},
		{quiz.AxisExpression, "Expression", 2, "V", "Verbal"},
		{quiz.AxisAdventure, "Adventure", -4, "C", "Comfort"},
	}
	if diff := cmp.Diff(want, r.Scores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildUnknownCodeFallsBack(t *testing.T) {
	reg := archetype.Builtin()
	r := Build(reg, "ZZZZ", nil, Options{})
	if r.Code != reg.Default().Code {
		t.Errorf("code = %s, want default %s", r.Code, reg.Default().Code)
	}
	if r.Scores != nil {
		t.Errorf("scores = %+v, want nil", r.Scores)
	}
}

func TestBuildMatchCount(t *testing.T) {
	reg := archetype.Builtin()
	tests := []struct {
		n    int
		want int
	}{
		{0, DefaultMatches},
		{1, 1},
		{-1, 15},
		{40, 15},
	}
	for _, tt := range tests {
		r := Build(reg, "FSAT", nil, Options{Matches: tt.n})
		if len(r.Matches) != tt.want {
			t.Errorf("Matches=%d: got %d, want %d", tt.n, len(r.Matches), tt.want)
		}
	}
}

func TestScoresZeroIsPositive(t *testing.T) {
	got := Scores(scoring.Vector{})
	for _, s := range got {
		pos, _ := s.Axis.Traits()
		if s.Value != 0 || s.Trait != pos || s.Letter != string(s.Axis.Positive()) {
			t.Errorf("%s = %+v", s.Axis, s)
		}
	}
}
