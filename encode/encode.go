package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/objedit/objedit/ir"
)

// Decode parses a YAML (or JSON, a YAML subset) document into a tree.
// Object field order is preserved.
func Decode(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLAny(v)
}

func fromYAMLAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			val, err := fromYAMLAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{
				Key: ir.FromString(fmt.Sprint(item.Key)),
				Val: val,
			})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		res := make([]*ir.Node, len(x))
		for i, xv := range x {
			y, err := fromYAMLAny(xv)
			if err != nil {
				return nil, err
			}
			res[i] = y
		}
		return ir.FromSlice(res), nil
	default:
		return ir.FromAny(v)
	}
}

// Encode writes node to w as YAML, or JSON with the EncodeJSON option.
// Object field order is preserved.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	cfg := &EncodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	d, err := yaml.Marshal(toYAMLAny(node))
	if err != nil {
		return err
	}
	if cfg.JSON {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return err
		}
		d = append(d, '\n')
	}
	if cfg.Colors != nil && !cfg.JSON {
		d = cfg.Colors.colorize(d)
	}
	_, err = w.Write(d)
	return err
}

func toYAMLAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: toYAMLAny(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toYAMLAny(elt)
		}
		return res
	default:
		return ir.ToAny(node)
	}
}
