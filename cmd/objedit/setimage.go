package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/objedit/objedit"
	"github.com/objedit/objedit/encode"
	"github.com/objedit/objedit/manifest"
)

func setImage(cfg *SetImageConfig, cc *cli.Context, args []string) error {
	args, err := cfg.SetImage.Parse(cc, args)
	if err != nil {
		cfg.SetImage.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	named := cfg.Container != "" || cfg.Image != ""
	rewrite := cfg.Registry != "" || cfg.Repo != "" || cfg.Suffix != "" || cfg.Tag != ""
	switch {
	case named && rewrite:
		return fmt.Errorf("%w: -container/-image and rewrite flags are exclusive", cli.ErrUsage)
	case named && (cfg.Container == "" || cfg.Image == ""):
		return fmt.Errorf("%w: -container and -image go together", cli.ErrUsage)
	case !named && !rewrite:
		return fmt.Errorf("%w: nothing to do", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := setImageArg(cfg, cc, arg, named); err != nil {
			return fmt.Errorf("error setting image in %s: %w", arg, err)
		}
	}
	return nil
}

func setImageArg(cfg *SetImageConfig, cc *cli.Context, arg string, named bool) error {
	doc, err := readDoc(arg)
	if err != nil {
		return err
	}
	if named {
		res, err := objedit.UpdateObject(doc, func(ops *objedit.Ops) {
			ops.Change(manifest.SetImageChange(cfg.Container, cfg.Image))
		})
		if err != nil {
			return err
		}
		for _, c := range res.Comments {
			fmt.Fprintf(os.Stderr, "# %s: %s\n", c.Path, c.Comment)
		}
		return encode.Encode(res.Result, cc.Out, cfg.encOpts(cc.Out)...)
	}
	rw := &manifest.ImageRewrite{
		Registry: cfg.Registry,
		Repo:     cfg.Repo,
		Suffix:   cfg.Suffix,
		Tag:      cfg.Tag,
	}
	n, err := rw.RewriteAll(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "rewrote %d image(s)\n", n)
	return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
}
