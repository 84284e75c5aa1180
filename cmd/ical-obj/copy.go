package main

import (
	"fmt"
	"io"

	"github.com/signadot/ical-format/go-ical/ir"

	"github.com/scott-cotton/cli"
)

func copyNodes(cfg *CopyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Copy.Parse(cc, args)
	if err != nil {
		return err
	}
	return copyFiles(cfg, cc.Out, cc.In, files(args))
}

func copyFiles(cfg *CopyConfig, w io.Writer, in io.Reader, fs []string) error {
	for _, file := range fs {
		n, err := loadFile(cfg.MainConfig, in, file)
		if err != nil {
			return err
		}
		cp := n.Clone()
		markRoots(n, cp)
		if cfg.Name != "" {
			cp.SetName(cfg.Name)
		}
		if err := writeSnapshot(cfg.MainConfig, w, cp); err != nil {
			return fmt.Errorf("error writing copy of %s: %w", file, err)
		}
	}
	return nil
}

// markRoots re-marks the nodes of cp whose counterparts in src are roots.
// Clone does not carry capabilities, the root mark among them, but keeps
// the shape, so the two trees are walked by child index.
func markRoots(src, cp *ir.Node) {
	if ir.IsRoot(src) {
		ir.MarkRoot(cp)
	}
	for i, c := range src.Children().All() {
		markRoots(c, cp.Children().At(i))
	}
}
