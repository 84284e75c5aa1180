package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ical-format/go-ical/ir"
	"github.com/signadot/ical-format/go-ical/snap"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	return patchFiles(cfg, cc.Out, cc.In, p, files(args[1:]))
}

func patchFiles(cfg *PatchConfig, w io.Writer, in io.Reader, p []byte, fs []string) error {
	for _, file := range fs {
		n, err := loadFile(cfg.MainConfig, in, file)
		if err != nil {
			return err
		}
		var res *ir.Node
		if cfg.Merge {
			res, err = snap.MergePatch(n, p)
		} else {
			res, err = snap.ApplyPatch(n, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := writeSnapshot(cfg.MainConfig, w, res); err != nil {
			return err
		}
		theLog.Info("patched", "file", file, "merge", cfg.Merge)
	}
	return nil
}
