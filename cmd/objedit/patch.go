package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/objedit/objedit"
	"github.com/objedit/objedit/encode"
	evalpkg "github.com/objedit/objedit/eval"
	"github.com/objedit/objedit/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a fragment argument", cli.ErrUsage)
	}
	frag, err := fragmentArg(cfg, args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := patchArg(cfg, cc, arg, frag); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
	}
	return nil
}

func fragmentArg(cfg *PatchConfig, arg string) (*ir.Node, error) {
	var frag *ir.Node
	var err error
	if cfg.String {
		frag, err = encode.Decode([]byte(arg))
	} else {
		frag, err = readDoc(arg)
	}
	if err != nil {
		return nil, err
	}
	if len(cfg.Env) > 0 {
		if err := evalpkg.Expand(frag, evalpkg.Env(cfg.Env)); err != nil {
			return nil, err
		}
	}
	return objedit.NewFragment(frag, cfg.Entries...), nil
}

func patchArg(cfg *PatchConfig, cc *cli.Context, arg string, frag *ir.Node) error {
	target, err := readDoc(arg)
	if err != nil {
		return err
	}
	res, err := objedit.UpdateObject(target, func(ops *objedit.Ops) {
		ops.Change(objedit.Change{
			Merge: func(_ *ir.Node) *ir.Node {
				// each document gets its own copy, tags intact
				return frag.Clone()
			},
		})
	})
	if err != nil {
		return err
	}
	if cfg.Comments {
		for _, c := range res.Comments {
			fmt.Fprintf(os.Stderr, "# %s: %s\n", c.Path, c.Comment)
		}
	}
	return encode.Encode(res.Result, cc.Out, cfg.encOpts(cc.Out)...)
}
