package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/report"
)

type cardFlags struct {
	out string
}

func newCardCmd(a *app) *cobra.Command {
	f := &cardFlags{}
	cmd := &cobra.Command{
		Use:   "card <code>",
		Short: "Render the result card PNG of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(a, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.out, "out", "", "PNG output path (default: <output.dir>/<code>.png)")
	return cmd
}

func runCard(a *app, arg string, f *cardFlags) error {
	code, err := parseCodeArg(arg)
	if err != nil {
		return err
	}
	path := f.out
	if path == "" {
		path = filepath.Join(a.config().Output.Dir, string(code)+".png")
	}
	rep := report.Build(archetype.Builtin(), code, nil, report.Options{})
	if err := a.writeCard(path, rep, nil); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}

type galleryFlags struct {
	dir         string
	concurrency int
}

func newGalleryCmd(a *app) *cobra.Command {
	f := &galleryFlags{}
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render the cards of all 16 types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("concurrency") {
				f.concurrency = a.config().Render.Concurrency
			}
			return runGallery(cmd.Context(), a, f)
		},
	}
	cmd.Flags().StringVar(&f.dir, "dir", "", "Output directory (default: output.dir from config)")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 4, "Cards rendered at once (0 for no limit)")
	return cmd
}

func runGallery(ctx context.Context, a *app, f *galleryFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	dir := f.dir
	if dir == "" {
		dir = a.config().Output.Dir
	}
	r, err := a.renderer()
	if err != nil {
		return err
	}

	reg := archetype.Builtin()
	a.log.Debug("rendering gallery", zap.String("dir", dir), zap.Int("concurrency", f.concurrency))
	cards, err := r.RenderAll(ctx, reg, f.concurrency)
	if err != nil {
		return exitError(4, "failed to render gallery: %v", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return exitError(4, "failed to create %s: %v", dir, err)
	}
	for _, code := range reg.AllCodes() {
		path := filepath.Join(dir, string(code)+".png")
		if err := os.WriteFile(path, cards[code], 0644); err != nil {
			return exitError(4, "failed to write card: %v", err)
		}
		fmt.Fprintln(a.stdout, path)
	}
	return nil
}
