package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	evalpkg "github.com/objedit/objedit/eval"

	"github.com/objedit/objedit/encode"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(arg)
		if err != nil {
			return err
		}
		if err := evalpkg.Expand(doc, evalpkg.Env(cfg.Env)); err != nil {
			return fmt.Errorf("error expanding %s: %w", arg, err)
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
