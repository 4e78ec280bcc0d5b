package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/report"
	"github.com/dshills/nighttype/internal/scoring"
	"github.com/dshills/nighttype/internal/sheet"
)

func newScoreCmd(a *app) *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "score <sheet-file>",
		Short: "Score an answer sheet",
		Long: `Score a YAML answer sheet. A sheet sets exactly one of:

  answers:   12 graded values from -2 (option B) to 2 (option A)
  choices:   12 binary answers, A or B
  responses: explicit {axis, value} pairs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(a, args[0], f)
		},
	}
	addReportFlags(cmd, f)
	return cmd
}

func runScore(a *app, path string, f *reportFlags) error {
	a.log.Debug("loading sheet", zap.String("path", path))
	s, err := sheet.Load(path)
	if err != nil {
		return exitError(3, "failed to load sheet: %v", err)
	}

	responses, err := s.Resolve(quiz.Builtin())
	if err != nil {
		return exitError(2, "invalid sheet: %v", err)
	}
	v, code, err := scoring.Score(responses)
	if err != nil {
		return exitError(2, "invalid sheet: %v", err)
	}
	a.log.Debug("sheet scored", zap.String("code", string(code)), zap.Any("scores", v))

	rep := a.buildReport(code, v, report.Input{
		Source: filepath.Base(path),
		Hash:   s.Hash,
		Mode:   string(s.Mode),
	}, f)
	return a.emitReport(rep, v, f)
}
