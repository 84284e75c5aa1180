package main

import (
	"fmt"
	"io"

	"github.com/signadot/ical-format/go-ical/outline"
	"github.com/signadot/ical-format/go-ical/query"

	"github.com/scott-cotton/cli"
)

func selectNodes(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return selectFiles(cfg, cc.Out, cc.In, q, files(args[1:]))
}

func selectFiles(cfg *SelectConfig, w io.Writer, in io.Reader, q *query.Query, fs []string) error {
	total := 0
	for _, file := range fs {
		n, err := loadFile(cfg.MainConfig, in, file)
		if err != nil {
			return err
		}
		res, err := q.Select(n)
		if err != nil {
			return fmt.Errorf("error selecting in %s: %w", file, err)
		}
		total += len(res)
		for _, x := range res {
			if cfg.Outline {
				if err := outline.Write(w, x, cfg.outlineOpts(w)...); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(w, x.Path()); err != nil {
				return err
			}
		}
	}
	if total == 0 {
		theLog.Warn("no matches", "expr", q.String())
	}
	return nil
}
