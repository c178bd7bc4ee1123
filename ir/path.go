package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of y in its tree in $-rooted syntax.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"

	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Step is one key in a Path: either an object field name or an array index.
type Step struct {
	Field *string
	Index *int
}

func FieldStep(name string) Step {
	return Step{Field: &name}
}

func IndexStep(i int) Step {
	return Step{Index: &i}
}

// Path is an ordered sequence of keys from a tree root to a location.
// The empty path denotes the root itself.
type Path []Step

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, s := range p {
		if s.Field != nil {
			f := *s.Field
			if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
				buf.WriteString("." + f)
				continue
			}
			buf.WriteString(".'" + strings.Replace(f, "'", "\\'", -1) + "'")
			continue
		}
		if s.Index != nil {
			fmt.Fprintf(buf, "[%d]", *s.Index)
		}
	}
	return buf.String()
}

// ParsePath parses $-rooted path syntax, such as "$", "$.a.b" or
// "$.spec.containers[0].image".
func ParsePath(p string) (Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrParse, p)
	}
	res := Path{}
	frag := p[1:]
	for len(frag) > 0 {
		switch frag[0] {
		case '.':
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, err
			}
			res = append(res, FieldStep(field))
			frag = rest
		case '[':
			i := strings.IndexByte(frag[1:], ']')
			if i == -1 {
				return nil, fmt.Errorf("%w: expected '[' <index> ']'", ErrParse)
			}
			u64, err := strconv.ParseUint(frag[1:i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			res = append(res, IndexStep(int(u64)))
			frag = frag[i+2:]
		default:
			return nil, fmt.Errorf("%w: expected '.' or '['", ErrParse)
		}
	}
	return res, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: expected field at end of string", ErrParse)
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("%w: end of string scanning for \"'\"", ErrParse)
}

// AtPath returns the node at p under y, or nil if the path does not lead to
// a value (absent field, out-of-range index, or container kind mismatch).
func (y *Node) AtPath(p Path) *Node {
	res := y
	for _, s := range p {
		if res == nil {
			return nil
		}
		if s.Field != nil {
			if res.Type != ObjectType {
				return nil
			}
			res = Get(res, *s.Field)
			continue
		}
		if s.Index != nil {
			if res.Type != ArrayType {
				return nil
			}
			idx := *s.Index
			if idx < 0 || idx >= len(res.Values) {
				return nil
			}
			res = res.Values[idx]
			continue
		}
	}
	return res
}

// SetPath writes v at p under y in place. Missing or wrongly shaped
// intermediate slots are reset to empty compatible containers; array slots
// are padded with nulls up to the written index. The empty path replaces
// y's own content.
func (y *Node) SetPath(p Path, v *Node) {
	if len(p) == 0 {
		parent, pi, pf := y.Parent, y.ParentIndex, y.ParentField
		*y = *v
		y.Parent, y.ParentIndex, y.ParentField = parent, pi, pf
		return
	}
	cur := y
	for _, s := range p[:len(p)-1] {
		cur = cur.stepInto(s)
	}
	last := p[len(p)-1]
	if last.Field != nil {
		if cur.Type != ObjectType {
			cur.Reset(ObjectType)
		}
		cur.SetField(*last.Field, v)
		return
	}
	if cur.Type != ArrayType {
		cur.Reset(ArrayType)
	}
	idx := *last.Index
	for len(cur.Values) <= idx {
		cur.Append(Null())
	}
	v.Parent = cur
	v.ParentIndex = idx
	cur.Values[idx] = v
}

func (y *Node) stepInto(s Step) *Node {
	if s.Field != nil {
		if y.Type != ObjectType {
			y.Reset(ObjectType)
		}
		child := Get(y, *s.Field)
		if child == nil {
			child = Null()
			y.SetField(*s.Field, child)
		}
		return child
	}
	if y.Type != ArrayType {
		y.Reset(ArrayType)
	}
	idx := *s.Index
	for len(y.Values) <= idx {
		y.Append(Null())
	}
	return y.Values[idx]
}
