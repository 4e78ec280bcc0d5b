package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/share"
)

type shareFlags struct {
	print bool
	url   bool
}

func newShareCmd(a *app) *cobra.Command {
	f := &shareFlags{}
	cmd := &cobra.Command{
		Use:   "share <code>",
		Short: "Copy the share text of a type to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShare(a, args[0], f, nil)
		},
	}
	cmd.Flags().BoolVar(&f.print, "print", false, "Print the share text instead of copying it")
	cmd.Flags().BoolVar(&f.url, "url", false, "Also print a link that opens a prefilled post on X")
	return cmd
}

func runShare(a *app, arg string, f *shareFlags, cb share.Clipboard) error {
	code, err := parseCodeArg(arg)
	if err != nil {
		return err
	}
	text := share.Text(share.FieldsOf(archetype.Builtin().Lookup(code)))

	var target share.Target
	if f.print {
		target = share.WriterTarget{W: a.stdout}
	}
	outcome := share.NewSharer(target, cb, a.log).ShareOrCopy(text)
	if outcome == share.OutcomeCopied {
		fmt.Fprintln(a.stdout, "Copied to clipboard. Paste it anywhere to share.")
	}
	if f.url {
		fmt.Fprintln(a.stdout, share.IntentURL(text))
	}
	return nil
}
