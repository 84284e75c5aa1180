package main

import (
	"fmt"
	"io"

	"github.com/signadot/ical-format/go-ical/outline"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewFiles(cfg, cc.Out, cc.In, files(args))
}

func viewFiles(cfg *ViewConfig, w io.Writer, in io.Reader, fs []string) error {
	opts := append(cfg.outlineOpts(w), outline.WithPositions(!cfg.NoPos))
	for i, file := range fs {
		n, err := loadFile(cfg.MainConfig, in, file)
		if err != nil {
			return err
		}
		if err := outline.Write(w, n, opts...); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
		if i < len(fs)-1 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
