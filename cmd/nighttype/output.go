package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/config"
	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/render"
	"github.com/dshills/nighttype/internal/report"
	"github.com/dshills/nighttype/internal/scoring"
)

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// reportFlags are the output flags shared by commands that print a report.
type reportFlags struct {
	format  string
	out     string
	card    string
	matches int
}

func addReportFlags(cmd *cobra.Command, f *reportFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "", "Output format: text, json, or md (default from config)")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.card, "card", "", "Also write the result card PNG to this path")
	flags.IntVar(&f.matches, "matches", 0, "Number of ranked matches to include (-1 for all)")
}

func (a *app) config() *config.Config {
	if a.cfg == nil {
		a.cfg = &config.Config{
			Output: config.Output{Dir: ".", Format: config.FormatText},
			Render: config.Render{Concurrency: 4, Matches: report.DefaultMatches},
		}
	}
	return a.cfg
}

func (a *app) buildReport(code quiz.Code, v scoring.Vector, in report.Input, f *reportFlags) *report.Report {
	n := f.matches
	if n == 0 {
		n = a.config().Render.Matches
	}
	return report.Build(archetype.Builtin(), code, v, report.Options{
		Tool:    toolName,
		Version: version,
		Input:   in,
		Matches: n,
	})
}

// emitReport writes rep in the requested format and the card if asked.
func (a *app) emitReport(rep *report.Report, v scoring.Vector, f *reportFlags) error {
	format := f.format
	if format == "" {
		format = a.config().Output.Format
	}

	var output []byte
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = append(data, '\n')
	case config.FormatMD:
		output = []byte(render.Markdown(rep))
	case config.FormatText:
		var buf bytes.Buffer
		if err := render.Text(&buf, rep); err != nil {
			return exitError(4, "failed to render report: %v", err)
		}
		output = buf.Bytes()
	default:
		return exitError(2, "unknown format: %s", format)
	}

	if err := a.writeOutput(f.out, output); err != nil {
		return err
	}

	if f.card != "" {
		if err := a.writeCard(f.card, rep, v); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeOutput(path string, data []byte) error {
	if path == "" {
		if _, err := a.stdout.Write(data); err != nil {
			return exitError(4, "failed to write output: %v", err)
		}
		return nil
	}
	a.log.Debug("writing output", zap.String("path", path))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return exitError(4, "failed to write output: %v", err)
	}
	return nil
}

func (a *app) renderer() (*render.Renderer, error) {
	fonts, err := render.LoadFontSet(a.config().Fonts.Paths()...)
	if err != nil {
		return nil, exitError(3, "failed to load fonts: %v", err)
	}
	return render.NewRenderer(fonts), nil
}

func (a *app) writeCard(path string, rep *report.Report, v scoring.Vector) error {
	r, err := a.renderer()
	if err != nil {
		return err
	}
	data, err := r.Render(rep.Code, rep.Profile, v)
	if err != nil {
		return exitError(4, "failed to render card: %v", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return exitError(4, "failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return exitError(4, "failed to write card: %v", err)
	}
	a.log.Debug("card written", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func parseCodeArg(s string) (quiz.Code, error) {
	code, err := quiz.ParseCode(s)
	if err != nil {
		return "", exitError(2, "invalid type code %q: expected one of L/F, S/Q, V/A, T/C per position", s)
	}
	return code, nil
}
