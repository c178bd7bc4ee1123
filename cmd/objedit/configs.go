package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/objedit/objedit"
	"github.com/objedit/objedit/encode"
	"github.com/objedit/objedit/ir"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='output json'"`
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeJSON(cfg.J),
	}
	if cfg.J {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func readDoc(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	node, err := encode.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

type PatchConfig struct {
	*MainConfig
	String   bool `cli:"name=s desc='fragment arg as string'"`
	Comments bool `cli:"name=v desc='print comment log to stderr'"`

	Entries []*objedit.ChannelEntry
	Env     map[string]any

	Patch *cli.Command
}

// envOptFunc parses -e key=val into env; values are decoded as YAML so
// numbers, booleans, and inline structures work.
func envOptFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		key, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -e wants key=val, got %q", cli.ErrUsage, a)
		}
		node, err := encode.Decode([]byte(val))
		if err != nil {
			return nil, fmt.Errorf("error decoding value for %s: %w", key, err)
		}
		env[key] = ir.ToAny(node)
		return a, nil
	}
}

// instructionOpt parses -c prop and -k prop=key into channel entries, in
// declaration order.
func (cfg *PatchConfig) instructionOpt(byContents bool) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		ins := objedit.Instructions{Prop: a, MergeByContents: byContents}
		if !byContents {
			prop, key, ok := strings.Cut(a, "=")
			if !ok {
				return nil, fmt.Errorf("%w: -k wants prop=key, got %q", cli.ErrUsage, a)
			}
			ins.Prop, ins.MergeByProp = prop, key
		}
		cfg.Entries = append(cfg.Entries, objedit.AddInstructions(ins))
		return a, nil
	}
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}

type SetImageConfig struct {
	*MainConfig
	Container string `cli:"name=container aliases=c desc='container name to set'"`
	Image     string `cli:"name=image aliases=i desc='image reference to set'"`
	Registry  string `cli:"name=registry desc='rewrite registry'"`
	Repo      string `cli:"name=repo desc='rewrite repository'"`
	Suffix    string `cli:"name=suffix desc='rewrite image name suffix'"`
	Tag       string `cli:"name=tag desc='rewrite tag'"`

	SetImage *cli.Command
}

type JSONPatchConfig struct {
	*MainConfig

	JSONPatch *cli.Command
}
