package eval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/objedit/objedit/debug"
	"github.com/objedit/objedit/encode"
	"github.com/objedit/objedit/ir"
)

// Env is the evaluation environment for $[...] expressions.
type Env map[string]any

// Expand walks node and expands $[...] expressions in string values,
// modifying node in place. A string value that is exactly one $[...]
// expression is replaced by the evaluation result, so expressions can
// produce numbers, booleans, objects, or arrays. Expressions embedded in
// a larger string are rendered as text and substituted.
func Expand(node *ir.Node, env Env) error {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		for i := range node.Fields {
			if err := Expand(node.Values[i], env); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for _, elt := range node.Values {
			if err := Expand(elt, env); err != nil {
				return err
			}
		}
	case ir.StringType:
		raw := wholeExpr(node.String)
		if raw == "" {
			xs, err := ExpandString(node.String, env)
			if err != nil {
				return fmt.Errorf("error expanding %q: %w", node.String, err)
			}
			node.String = xs
			return nil
		}
		val, err := evalExpr(raw, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", raw, err)
		}
		repl, err := ir.FromAny(val)
		if err != nil {
			return fmt.Errorf("could not translate evaluation result: %w", err)
		}
		if repl == nil {
			repl = ir.Null()
		}
		repl.Parent = node.Parent
		repl.ParentIndex = node.ParentIndex
		repl.ParentField = node.ParentField
		*node = *repl
	}
	return nil
}

// wholeExpr returns the expression body when v is exactly one $[...]
// expression, and "" otherwise.
func wholeExpr(v string) string {
	if !strings.HasPrefix(v, "$[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	body := v[2 : len(v)-1]
	// an escaped or extra closing bracket means embedded text follows
	if strings.ContainsAny(body, "]\\") {
		return ""
	}
	return body
}

func evalExpr(input string, env Env) (any, error) {
	program, err := expr.Compile(input)
	if err != nil {
		return nil, err
	}
	x, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, x)
	}
	return x, nil
}

// ExpandString expands $[...] expressions in a string.
//
// Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is treated
// as a literal string rather than an expression.
func ExpandString(v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1 // position of the $ that starts the expression
	i := 0
	n := len(v)
	var outBuf []byte // accumulates the final output
	var keyBuf []byte // accumulates the current expression content (unescaped)

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$':
			if next == '[' && exprStart == -1 {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				key := strings.TrimSpace(string(keyBuf))
				x, err := evalExpr(key, env)
				if err != nil {
					return "", fmt.Errorf("error evaluating %q: %w", key, err)
				}
				anyBytes, err := anyToBytes(x)
				if err != nil {
					return "", fmt.Errorf("could not render evaluation result for %s: %w", key, err)
				}
				outBuf = append(outBuf, anyBytes...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	if exprStart == -1 {
		outBuf = append(outBuf, v[n-1])
		return string(outBuf), nil
	}

	// still inside an expression: valid only if the last char closes it
	if i >= n || v[n-1] != ']' {
		outBuf = append(outBuf, v[exprStart:n]...)
		return string(outBuf), nil
	}

	key := strings.TrimSpace(string(keyBuf))
	x, err := evalExpr(key, env)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", key, err)
	}
	anyBytes, err := anyToBytes(x)
	if err != nil {
		return "", fmt.Errorf("could not render evaluation result for %s: %w", key, err)
	}
	outBuf = append(outBuf, anyBytes...)
	return string(outBuf), nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case json.Number:
		return []byte(x), nil
	default:
		node, err := ir.FromAny(v)
		if err != nil {
			return nil, err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(node, buf, encode.EncodeJSON(true)); err != nil {
			return nil, err
		}
		d := buf.Bytes()
		return bytes.TrimRight(d, "\n"), nil
	}
}
