package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/compat"
	"github.com/dshills/nighttype/internal/config"
)

func newCompatCmd(a *app) *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   "compat <code-a> <code-b>",
		Short: "Score the compatibility of two types",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompat(a, args[0], args[1], f)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text or json")
	return cmd
}

func runCompat(a *app, argA, argB string, f *listFlags) error {
	codeA, err := parseCodeArg(argA)
	if err != nil {
		return err
	}
	codeB, err := parseCodeArg(argB)
	if err != nil {
		return err
	}
	reg := archetype.Builtin()
	res := compat.NewResolver(reg).Resolve(codeA, codeB)

	switch f.format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return a.writeOutput("", append(data, '\n'))
	case config.FormatText:
	default:
		return exitError(2, "unknown format: %s", f.format)
	}

	pa, pb := reg.Lookup(codeA), reg.Lookup(codeB)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  x  %s %s\n", codeA, pa.Name, codeB, pb.Name)
	fmt.Fprintf(&b, "%s %d/5 %s\n", hearts(res.Score), res.Score, res.Label)
	fmt.Fprintf(&b, "%s\n", res.Description)
	return a.writeOutput("", []byte(b.String()))
}

func newMatchesCmd(a *app) *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   "matches <code>",
		Short: "Rank every other type against a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatches(a, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text or json")
	return cmd
}

func runMatches(a *app, arg string, f *listFlags) error {
	code, err := parseCodeArg(arg)
	if err != nil {
		return err
	}
	reg := archetype.Builtin()
	ranked := compat.NewResolver(reg).RankAllAgainst(code)

	switch f.format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return a.writeOutput("", append(data, '\n'))
	case config.FormatText:
	default:
		return exitError(2, "unknown format: %s", f.format)
	}

	nameW, labelW := 0, 0
	for _, r := range ranked {
		nameW = max(nameW, runewidth.StringWidth(reg.Lookup(r.Partner).Name))
		labelW = max(labelW, runewidth.StringWidth(r.Label))
	}
	var b strings.Builder
	for i, r := range ranked {
		p := reg.Lookup(r.Partner)
		fmt.Fprintf(&b, "%2d. %s %s  %s %s  %s\n",
			i+1, r.Partner, runewidth.FillRight(p.Name, nameW), hearts(r.Score),
			runewidth.FillRight(r.Label, labelW), r.Description)
	}
	return a.writeOutput("", []byte(b.String()))
}

// hearts draws a 1..5 score as filled and empty hearts.
func hearts(score int) string {
	score = min(max(score, 0), 5)
	return strings.Repeat("♥", score) + strings.Repeat("♡", 5-score)
}
