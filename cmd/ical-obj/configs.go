package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/signadot/ical-format/go-ical/ical"
	"github.com/signadot/ical-format/go-ical/outline"
	"github.com/signadot/ical-format/go-ical/snap"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	J       bool `cli:"name=j aliases=json desc='read and write json snapshots'"`
	Y       bool `cli:"name=y aliases=yaml desc='read and write yaml snapshots (default)'"`
	Color   bool `cli:"name=color desc='color output'"`
	Quiet   bool `cli:"name=q aliases=quiet desc='log warnings and errors only'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) format() snap.Format {
	if cfg.J {
		return snap.JSONFormat
	}
	return snap.YAMLFormat
}

func (cfg *MainConfig) logLevel() slog.Level {
	switch {
	case cfg.Quiet:
		return slog.LevelWarn
	case cfg.Verbose:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func (cfg *MainConfig) snapOpts() []snap.Option {
	return []snap.Option{
		snap.WithFormat(cfg.format()),
		snap.Indent(true),
	}
}

// colored reports whether output to w is colored: always with -color,
// otherwise when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) outlineOpts(w io.Writer) []outline.Option {
	res := []outline.Option{outline.WithComponents(ical.IsComponent)}
	if cfg.colored(w) {
		res = append(res, outline.WithColors(outline.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	NoPos bool `cli:"name=np aliases=no-pos desc='omit source positions'"`

	View *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Outline bool `cli:"name=t aliases=tree desc='print the outline of each match'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='print a JSON merge patch instead of a change list'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='patch is a JSON merge patch'"`

	Patch *cli.Command
}

type CopyConfig struct {
	*MainConfig
	Name string `cli:"name=n aliases=name desc='rename the copies'"`

	Copy *cli.Command
}
