package objedit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/objedit/objedit/debug"
	"github.com/objedit/objedit/ir"
)

// ErrUnsupportedKey is returned when a selector reads a key that is not a
// plain property name or integer index, such as one colliding with the
// instruction-tag namespace. It is the only error the core raises.
var ErrUnsupportedKey = errors.New("unsupported key kind")

// Cursor tracks the keys a selector reads while walking a tree. Every
// Field or Index call on a container-valued cursor appends that key to the
// recorded path; once the current value is a scalar or absent, further
// reads stop recording.
type Cursor struct {
	node     *ir.Node
	path     ir.Path
	tracking bool
	err      error
}

// Selector designates a location in a tree by reading fields off a Cursor.
// The identity selector (returning its input unchanged) designates the
// root.
type Selector func(*Cursor) *Cursor

// ResolvePath executes sel exactly once against root and returns the
// ordered sequence of keys it read. Selectors that short-circuit yield a
// shorter path reflecting only the accessed branch.
func ResolvePath(root *ir.Node, sel Selector) (ir.Path, error) {
	c := &Cursor{node: root, path: ir.Path{}, tracking: true}
	if sel != nil {
		sel(c)
	}
	if c.err != nil {
		return nil, c.err
	}
	if debug.Resolve() {
		debug.Logf("resolved path %s\n", c.path)
	}
	return c.path, nil
}

// ResolvePathString parses a $-rooted literal path such as
// "$.spec.containers[0]" and returns the value at it, or nil when the path
// does not lead to a value. It is the diagnostic counterpart of selector
// resolution.
func ResolvePathString(root *ir.Node, path string) (*ir.Node, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return root.AtPath(p), nil
}

// Field reads the named property and returns the cursor positioned on its
// value. Names that collide with the instruction-tag namespace (leading
// '!') or are empty fail resolution with ErrUnsupportedKey.
func (c *Cursor) Field(name string) *Cursor {
	if c.err != nil || !c.tracking {
		return c
	}
	if name == "" || strings.HasPrefix(name, "!") {
		c.err = fmt.Errorf("%w: %q", ErrUnsupportedKey, name)
		return c
	}
	c.path = append(c.path, ir.FieldStep(name))
	if c.node != nil && c.node.Type == ir.ObjectType {
		c.node = ir.Get(c.node, name)
	} else {
		c.node = nil
	}
	c.stepped()
	return c
}

// Index reads the i-th element and returns the cursor positioned on it.
func (c *Cursor) Index(i int) *Cursor {
	if c.err != nil || !c.tracking {
		return c
	}
	if i < 0 {
		c.err = fmt.Errorf("%w: index %d", ErrUnsupportedKey, i)
		return c
	}
	c.path = append(c.path, ir.IndexStep(i))
	if c.node != nil && c.node.Type == ir.ArrayType && i < len(c.node.Values) {
		c.node = c.node.Values[i]
	} else {
		c.node = nil
	}
	c.stepped()
	return c
}

// stepped terminates tracking once the cursor has left the container part
// of the tree: reads beyond a scalar or an absent slot are not recorded.
func (c *Cursor) stepped() {
	if c.node == nil || c.node.Type.IsLeaf() {
		c.tracking = false
	}
}

// Value returns the value the cursor is positioned on, or nil when the
// cursor has stepped off the tree. It lets selectors branch on document
// content without affecting the recorded path.
func (c *Cursor) Value() *ir.Node {
	return c.node
}
