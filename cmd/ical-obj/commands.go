package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ical-obj").
		WithSynopsis("ical-obj [opts] command [opts]").
		WithDescription("ical-obj inspects and edits calendar object tree snapshots.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return objMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			SelectCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			CopyCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [opts] [files]").
		WithDescription("print snapshots as indented outlines").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select [opts] <expr> [files]").
		WithDescription("print the paths of nodes matching a boolean expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectNodes(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] <from> <to>").
		WithDescription("compare two snapshots; exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [opts] <patchfile> [files]").
		WithDescription("apply a JSON patch (RFC 6902) or merge patch (RFC 7386) to snapshots").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func CopyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CopyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Copy, "copy").
		WithAliases("cp").
		WithSynopsis("copy [opts] [files]").
		WithDescription("structurally copy snapshots and write the copies").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return copyNodes(cfg, cc, args)
		})
}
