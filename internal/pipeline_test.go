package internal

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/compat"
	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/render"
	"github.com/dshills/nighttype/internal/report"
	"github.com/dshills/nighttype/internal/scoring"
	"github.com/dshills/nighttype/internal/sheet"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

func scoreSheet(t *testing.T, name string) (scoring.Vector, quiz.Code) {
	t.Helper()
	s, err := sheet.Load(filepath.Join(projectRoot(), "testdata", "sheets", name))
	if err != nil {
		t.Fatalf("failed to load sheet: %v", err)
	}
	responses, err := s.Resolve(quiz.Builtin())
	if err != nil {
		t.Fatalf("failed to resolve sheet: %v", err)
	}
	v, code, err := scoring.Score(responses)
	if err != nil {
		t.Fatalf("failed to score sheet: %v", err)
	}
	return v, code
}

func TestPipelineSheetToCard(t *testing.T) {
	tests := []struct {
		sheet string
		want  quiz.Code
	}{
		{"graded.yaml", "LQVC"},
		{"binary.yaml", "LQVC"},
		{"responses.yaml", "LQAT"},
	}
	reg := archetype.Builtin()
	r := render.NewRenderer(nil)
	for _, tt := range tests {
		t.Run(tt.sheet, func(t *testing.T) {
			v, code := scoreSheet(t, tt.sheet)
			if code != tt.want {
				t.Fatalf("code = %s, want %s", code, tt.want)
			}

			rep := report.Build(reg, code, v, report.Options{})
			if rep.Profile.Code != code {
				t.Errorf("profile = %s, want %s", rep.Profile.Code, code)
			}
			for _, s := range rep.Scores {
				if s.Letter != string(s.Axis.Letter(s.Value)) {
					t.Errorf("%s: letter %s does not match value %d", s.Axis, s.Letter, s.Value)
				}
			}

			// Same inputs, same bytes.
			if render.Markdown(rep) != render.Markdown(report.Build(reg, code, v, report.Options{})) {
				t.Error("markdown is not deterministic")
			}
			first, err := r.Render(code, rep.Profile, v)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			second, err := render.NewRenderer(nil).Render(code, rep.Profile, v)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if !bytes.Equal(first, second) {
				t.Error("card is not byte-identical across renderers")
			}
		})
	}
}

// Every code the scorer can produce has a profile, a rarity and a full
// ranking of the other fifteen types.
func TestPipelineEveryCodeResolves(t *testing.T) {
	reg := archetype.Builtin()
	res := compat.NewResolver(reg)
	for _, code := range quiz.AllCodes() {
		p, ok := reg.Get(code)
		if !ok {
			t.Errorf("%s: no profile", code)
			continue
		}
		if reg.Rarity(code).Tier == "" {
			t.Errorf("%s: no rarity tier", code)
		}
		ranked := res.RankAllAgainst(code)
		if len(ranked) != 15 {
			t.Errorf("%s: ranked %d partners, want 15", code, len(ranked))
		}
		if p.PrimaryMatch != "" && ranked[0].Score != 5 {
			t.Errorf("%s: top match scores %d, want 5", code, ranked[0].Score)
		}
	}
}
