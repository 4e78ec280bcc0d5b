package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/config"
	"github.com/dshills/nighttype/internal/quiz"
	"github.com/dshills/nighttype/internal/render"
	"github.com/dshills/nighttype/internal/report"
)

type listFlags struct {
	format   string
	byRarity bool
}

func newTypesCmd(a *app) *cobra.Command {
	f := &listFlags{}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List all 16 types with their rarity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(a, f)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&f.byRarity, "by-rarity", false, "List the rarest tiers first")
	return cmd
}

type typeEntry struct {
	Code     quiz.Code        `json:"code"`
	Name     string           `json:"name"`
	Emoji    string           `json:"emoji"`
	Subtitle string           `json:"subtitle"`
	Rarity   archetype.Rarity `json:"rarity"`
}

func runTypes(a *app, f *listFlags) error {
	reg := archetype.Builtin()
	entries := make([]typeEntry, 0, reg.Len())
	for _, code := range reg.AllCodes() {
		p := reg.Lookup(code)
		entries = append(entries, typeEntry{
			Code:     code,
			Name:     p.Name,
			Emoji:    p.Emoji,
			Subtitle: p.Subtitle,
			Rarity:   reg.Rarity(code),
		})
	}

	if f.byRarity {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Rarity.Tier.Rarer(entries[j].Rarity.Tier)
		})
	}

	switch f.format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return a.writeOutput("", append(data, '\n'))
	case config.FormatText:
	default:
		return exitError(2, "unknown format: %s", f.format)
	}

	nameW := 0
	for _, e := range entries {
		nameW = max(nameW, runewidth.StringWidth(e.Name))
	}
	var b strings.Builder
	for _, e := range entries {
		tier := string(e.Rarity.Tier)
		fmt.Fprintf(&b, "%s  %s  %s  %s%s %5.1f%%\n",
			e.Code,
			runewidth.FillRight(e.Emoji, 2),
			runewidth.FillRight(e.Name, nameW),
			render.TierString(e.Rarity.Tier),
			strings.Repeat(" ", max(0, 3-len(tier))),
			e.Rarity.Percent)
	}
	return a.writeOutput("", []byte(b.String()))
}

func newShowCmd(a *app) *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "show <code>",
		Short: "Show the profile of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(a, args[0], f)
		},
	}
	addReportFlags(cmd, f)
	return cmd
}

func runShow(a *app, arg string, f *reportFlags) error {
	code, err := parseCodeArg(arg)
	if err != nil {
		return err
	}
	rep := a.buildReport(code, nil, report.Input{}, f)
	return a.emitReport(rep, nil, f)
}
