package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/report"
	"github.com/dshills/nighttype/internal/scoring"
)

// asker collects one answer for a question.
type asker interface {
	Graded(q quiz.Question) (int, error)
	Choice(q quiz.Question) (scoring.Choice, error)
}

type quizFlags struct {
	reportFlags
	binary bool
}

func newQuizCmd(a *app) *cobra.Command {
	f := &quizFlags{}
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer the 12 questions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("binary") {
				f.binary = a.config().Quiz.Binary
			}
			return runQuiz(a, promptAsker{}, f)
		},
	}
	addReportFlags(cmd, &f.reportFlags)
	cmd.Flags().BoolVar(&f.binary, "binary", false, "Answer with A/B only instead of the 5-point scale")
	return cmd
}

var (
	progressColor = color.New(color.FgHiBlack).SprintFunc()
	questionColor = color.New(color.Bold).SprintFunc()
)

func runQuiz(a *app, ask asker, f *quizFlags) error {
	bank := quiz.Builtin()
	s := scoring.NewSession(bank)
	mode := "graded"
	if f.binary {
		mode = "binary"
	}
	a.log.Debug("quiz started", zap.String("mode", mode), zap.Int("questions", bank.Len()))

	for {
		q, i, ok := s.Current()
		if !ok {
			break
		}
		fmt.Fprintf(a.stdout, "\n%s\n%s\n", progressColor(fmt.Sprintf("Q%d/%d  %d%%", i+1, bank.Len(), s.Progress())), questionColor(q.Text))

		var err error
		if f.binary {
			var c scoring.Choice
			if c, err = ask.Choice(q); err == nil {
				err = s.AnswerChoice(c)
			}
		} else {
			var v int
			if v, err = ask.Graded(q); err == nil {
				err = s.Answer(v)
			}
		}
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return exitError(2, "quiz cancelled")
			}
			return exitError(2, "failed to read answer: %v", err)
		}
	}

	v, code, err := s.Result()
	if err != nil {
		return exitError(2, "failed to score quiz: %v", err)
	}
	fmt.Fprintln(a.stdout)
	rep := a.buildReport(code, v, report.Input{Source: "interactive", Mode: mode}, &f.reportFlags)
	return a.emitReport(rep, v, &f.reportFlags)
}

// promptAsker asks on the terminal with promptui selects.
type promptAsker struct{}

func (promptAsker) Graded(q quiz.Question) (int, error) {
	items := make([]string, len(scoring.Scale))
	for i, opt := range scoring.Scale {
		items[i] = scaleItem(q, opt)
	}
	sel := promptui.Select{
		Label:     "How much do you agree?",
		Items:     items,
		Size:      len(items),
		CursorPos: 2,
		HideHelp:  true,
	}
	i, _, err := sel.Run()
	if err != nil {
		return 0, err
	}
	return scoring.Scale[i].Value, nil
}

func (promptAsker) Choice(q quiz.Question) (scoring.Choice, error) {
	sel := promptui.Select{
		Label:    "Pick one",
		Items:    []string{"A: " + q.OptionA.Text, "B: " + q.OptionB.Text},
		HideHelp: true,
	}
	i, _, err := sel.Run()
	if err != nil {
		return "", err
	}
	if i == 0 {
		return scoring.ChoiceA, nil
	}
	return scoring.ChoiceB, nil
}

// scaleItem labels a scale point, spelling out the option text at the
// two ends.
func scaleItem(q quiz.Question, opt scoring.ScaleOption) string {
	switch opt.Value {
	case scoring.MaxGraded:
		return "A: " + q.OptionA.Text
	case scoring.MinGraded:
		return "B: " + q.OptionB.Text
	default:
		return opt.Label
	}
}
