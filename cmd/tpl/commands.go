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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout, dump defaults to output.json)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tpl").
		WithSynopsis("tpl [opts] command [opts]").
		WithDescription("tpl is a tool for working with Photoshop tool preset resources.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tplMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			ViewCommand(cfg),
			ToolsCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump <preset.tpl>").
		WithDescription("decode a tool preset file and write it as json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view decoded tool presets with colors").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func ToolsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToolsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tools, "tools").
		WithAliases("t", "ls").
		WithSynopsis("tools [files]").
		WithDescription("list tool types and names in preset files").
		WithRun(func(cc *cli.Context, args []string) error {
			return tools(cfg, cc, args)
		})
}
