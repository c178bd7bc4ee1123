package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/objedit/objedit"
	"github.com/objedit/objedit/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	pathArg := args[0]
	if pathArg == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if pathArg[0] != '$' {
		pathArg = "$" + pathArg
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(arg)
		if err != nil {
			return err
		}
		res, err := objedit.ResolvePathString(doc, pathArg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if res == nil {
			// absent is not an error, just no output
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
