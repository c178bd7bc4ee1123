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

	return cli.NewCommandAt(&cfg.Main, "objedit").
		WithSynopsis("objedit [opts] command [opts]").
		WithDescription("objedit merges, patches, and edits structured documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return objeditMain(cfg, cc, args)
		}).
		WithSubs(
			PatchCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			EvalCommand(cfg),
			SetImageCommand(cfg),
			JSONPatchCommand(cfg))
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "c",
			Description: "merge named array property by contents",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.instructionOpt(true)), "(prop)"),
		},
		&cli.Opt{
			Name:        "k",
			Description: "merge named array property by key",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.instructionOpt(false)), "(prop=key)"),
		},
		&cli.Opt{
			Name:        "e",
			Description: "expand $[...] in the fragment with key=val",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptFunc(cfg.Env)), "(key=val)"),
		})
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <fragment> [files]").
		WithDescription("merge a fragment into documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <objectpath> [files]").
		WithDescription("get document elements from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff documents by line").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e key=val [-e key2=val2]...] [files]").
		WithDescription("expand $[...] expressions in documents").
		WithOpts(&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptFunc(cfg.Env)), "(key=val)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func SetImageCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetImageConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set-image").
		WithAliases("si").
		WithSynopsis("set-image [-container c -image img | -registry r -repo p -tag t] [files]").
		WithDescription("set or rewrite container images in workload manifests").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return setImage(cfg, cc, args)
		})
	cfg.SetImage = cmd
	return cmd
}

func JSONPatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONPatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("jsonpatch").
		WithAliases("jp").
		WithSynopsis("jsonpatch <patchfile> [files]").
		WithDescription("apply an RFC 6902 JSON patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonPatch(cfg, cc, args)
		})
	cfg.JSONPatch = cmd
	return cmd
}
