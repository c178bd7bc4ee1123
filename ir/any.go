package ir

import (
	"encoding/json"
	"fmt"
)

// FromAny converts an ordinary Go value (maps, slices, scalars, or values
// already in IR form) to a node. Values outside the plain-data set are
// round-tripped through JSON.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return &Node{Type: NumberType, Number: x.String()}, nil
	case map[string]any:
		res := make(map[string]*Node, len(x))
		for k, xv := range x {
			y, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			res[k] = y
		}
		return FromMap(res), nil
	case []any:
		res := make([]*Node, len(x))
		for i, xv := range x {
			y, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			res[i] = y
		}
		return FromSlice(res), nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to ir: %w", v, err)
		}
		var jv any
		if err := json.Unmarshal(d, &jv); err != nil {
			return nil, err
		}
		return FromAny(jv)
	}
}

// ToAny converts a node to an ordinary Go value: map[string]any for
// objects, []any for arrays, and Go scalars otherwise. Field order is not
// preserved; callers needing order work with nodes directly.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
