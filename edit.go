package objedit

import (
	"fmt"

	"github.com/objedit/objedit/debug"
	"github.com/objedit/objedit/ir"
)

// Direction places a comment relative to the value it annotates.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	s, ok := map[Direction]string{
		Left:  "left",
		Right: "right",
		Up:    "up",
		Down:  "down",
	}[d]
	if ok {
		return s
	}
	return "<unknown direction>"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(data []byte) error {
	dd, ok := map[string]Direction{
		"left":  Left,
		"right": Right,
		"up":    Up,
		"down":  Down,
	}[string(data)]
	if !ok {
		return fmt.Errorf("unrecognized direction %q", data)
	}
	*d = dd
	return nil
}

// CommentDirective is the annotation a change's Comment procedure returns.
type CommentDirective struct {
	Text      string
	Direction Direction
}

// Comment is one recorded annotation, bound to the path of the change that
// produced it.
type Comment struct {
	Path      ir.Path
	Comment   string
	Direction Direction
}

// EditResult is what UpdateObject returns: the edited tree (never aliasing
// the input) and the comment log in change-declaration order.
type EditResult struct {
	Result   *ir.Node
	Comments []Comment
}

// Change declares one edit. FindKey designates the target location; Merge
// receives the current value there (nil when absent) and returns the
// fragment to merge in; Comment, if set, may return a directive to record.
//
// Comment is always invoked with nil: no mechanism supplies a previously
// recorded comment.
type Change struct {
	FindKey Selector
	Merge   func(original *ir.Node) *ir.Node
	Comment func(prev *CommentDirective) *CommentDirective
}

// Ops is the operation set handed to an annotation procedure. Its Change
// method may be invoked any number of times, strictly sequentially, within
// the single annotate call.
type Ops struct {
	result   *ir.Node
	comments []Comment
	err      error
}

// Change applies ch to the working tree. Resolution runs against the
// current, possibly already-modified tree, so later changes observe
// earlier changes' effects. After a failed change, subsequent calls are
// no-ops and UpdateObject returns the error.
func (o *Ops) Change(ch Change) {
	if o.err != nil {
		return
	}
	path, err := ResolvePath(o.result, ch.FindKey)
	if err != nil {
		o.err = err
		return
	}
	if debug.Edit() {
		debug.Logf("change at %s\n", path)
	}
	if ch.Comment != nil {
		if d := ch.Comment(nil); d != nil && d.Text != "" {
			o.comments = append(o.comments, Comment{
				Path:      path,
				Comment:   d.Text,
				Direction: d.Direction,
			})
		}
	}
	if ch.Merge == nil {
		return
	}
	if len(path) == 0 {
		if frag := ch.Merge(o.result); frag != nil {
			Merge(o.result, frag)
		}
		return
	}
	original := o.result.AtPath(path)
	if original == nil {
		// nothing to merge into: install the fragment verbatim
		if v := ch.Merge(nil); v != nil {
			o.result.SetPath(path, v)
		}
		return
	}
	frag := ch.Merge(original)
	if frag != nil {
		Merge(original, frag)
	}
	// explicit write-back: nested in-place mutation is not assumed
	// visible without a set
	o.result.SetPath(path, original)
}

// UpdateObject deep-clones source, runs annotate against the clone, and
// returns the edited tree with the ordered comment log. The source is
// read-only throughout; concurrent UpdateObject calls on independent
// inputs share no state.
func UpdateObject(source *ir.Node, annotate func(*Ops)) (*EditResult, error) {
	ops := &Ops{result: source.Clone()}
	if annotate != nil {
		annotate(ops)
	}
	if ops.err != nil {
		return nil, ops.err
	}
	return &EditResult{
		Result:   ops.result,
		Comments: ops.comments,
	}, nil
}
