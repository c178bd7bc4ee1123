package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/objedit/objedit/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff wants two arguments", cli.ErrUsage)
	}
	from, err := readDoc(args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(args[1])
	if err != nil {
		return err
	}
	out, err := libdiff.DiffNodes(from, to, cfg.diffColors(cc))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cc.Out, out)
	return err
}

func (cfg *DiffConfig) diffColors(cc *cli.Context) *libdiff.Colors {
	if cfg.Color {
		return libdiff.NewColors()
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}
