package main

import (
	"fmt"
	"io"

	"github.com/signadot/ical-format/go-ical/ir"
	"github.com/signadot/ical-format/go-ical/snap"
	"github.com/signadot/ical-format/go-ical/treediff"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files, got %d", cli.ErrUsage, len(args))
	}
	from, err := loadFile(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return err
	}
	to, err := loadFile(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return err
	}
	same, err := diffNodes(cfg, cc.Out, from, to)
	if err != nil {
		return err
	}
	if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffNodes writes the differences between from and to and reports whether
// there were none.
func diffNodes(cfg *DiffConfig, w io.Writer, from, to *ir.Node) (bool, error) {
	if cfg.Merge {
		d, err := snap.MergeDiff(from, to)
		if err != nil {
			return false, err
		}
		if string(d) == "{}" {
			return true, nil
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return false, err
	}
	changes := treediff.Diff(from, to)
	if !cfg.colored(w) {
		return len(changes) == 0, treediff.Format(w, changes)
	}
	for _, c := range changes {
		var s string
		switch c.Op {
		case treediff.Delete:
			s = color.RedString("%s", c)
		case treediff.Insert:
			s = color.GreenString("%s", c)
		default:
			s = color.YellowString("%s", c)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return false, err
		}
	}
	return len(changes) == 0, nil
}
