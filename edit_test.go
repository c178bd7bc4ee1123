package objedit

import (
	"errors"
	"strings"
	"testing"

	"github.com/objedit/objedit/encode"
	"github.com/objedit/objedit/ir"
)

func TestUpdateObjectSourceUntouched(t *testing.T) {
	source := mustDecode(t, "a:\n  b: 1")
	before := encode.MustString(source)
	res, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			FindKey: func(c *Cursor) *Cursor { return c.Field("a") },
			Merge: func(original *ir.Node) *ir.Node {
				return mustDecode(t, "b: 2\nc: 3")
			},
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(source); got != before {
		t.Errorf("source changed:\n%s", got)
	}
	want := strings.TrimSpace(`
a:
  b: 2
  c: 3`)
	if got := encode.MustString(res.Result); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestUpdateObjectRootChange(t *testing.T) {
	source := mustDecode(t, "a: 1")
	res, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			Merge: func(original *ir.Node) *ir.Node {
				if original.Type != ir.ObjectType {
					t.Errorf("root change got %s", original.Type)
				}
				return mustDecode(t, "b: 2")
			},
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res.Result); got != "a: 1\nb: 2" {
		t.Errorf("got\n%s", got)
	}
}

func TestUpdateObjectAbsentPathInstalls(t *testing.T) {
	source := mustDecode(t, "a: 1")
	res, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			FindKey: func(c *Cursor) *Cursor { return c.Field("b").Field("c") },
			Merge: func(original *ir.Node) *ir.Node {
				if original != nil {
					t.Errorf("expected nil original, got %s", encode.MustString(original))
				}
				return mustDecode(t, "d: 4")
			},
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	// the selector read b then stopped; the fragment lands at $.b
	want := strings.TrimSpace(`
a: 1
b:
  d: 4`)
	if got := encode.MustString(res.Result); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestUpdateObjectSequentialChanges(t *testing.T) {
	source := mustDecode(t, "{}")
	res, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			Merge: func(_ *ir.Node) *ir.Node {
				return mustDecode(t, "a:\n  b: 1")
			},
		})
		ops.Change(Change{
			// resolves against the tree the first change already built
			FindKey: func(c *Cursor) *Cursor { return c.Field("a").Field("b") },
			Merge: func(original *ir.Node) *ir.Node {
				if original == nil || original.Int64 == nil || *original.Int64 != 1 {
					t.Errorf("second change did not observe the first")
				}
				return ir.FromInt(2)
			},
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	// scalar fragments at a property path do not merge; install happens
	// only at absent paths, so b keeps its merged value
	want := strings.TrimSpace(`
a:
  b: 1`)
	if got := encode.MustString(res.Result); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestUpdateObjectComments(t *testing.T) {
	source := mustDecode(t, "a: 1\nb: 2")
	commentCalls := 0
	res, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			FindKey: func(c *Cursor) *Cursor { return c.Field("a") },
			Merge:   func(_ *ir.Node) *ir.Node { return ir.FromInt(10) },
			Comment: func(prev *CommentDirective) *CommentDirective {
				commentCalls++
				if prev != nil {
					t.Errorf("expected nil previous comment, got %+v", prev)
				}
				return &CommentDirective{Text: "bumped a", Direction: Up}
			},
		})
		ops.Change(Change{
			FindKey: func(c *Cursor) *Cursor { return c.Field("b") },
			Comment: func(prev *CommentDirective) *CommentDirective {
				// empty text records nothing
				return &CommentDirective{}
			},
		})
		ops.Change(Change{
			FindKey: func(c *Cursor) *Cursor { return c.Field("b") },
			Comment: func(prev *CommentDirective) *CommentDirective {
				return &CommentDirective{Text: "b noted", Direction: Right}
			},
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if commentCalls != 1 {
		t.Errorf("comment procedure called %d times", commentCalls)
	}
	if len(res.Comments) != 2 {
		t.Fatalf("got %d comments", len(res.Comments))
	}
	c0, c1 := res.Comments[0], res.Comments[1]
	if c0.Path.String() != "$.a" || c0.Comment != "bumped a" || c0.Direction != Up {
		t.Errorf("comment 0: %+v", c0)
	}
	if c1.Path.String() != "$.b" || c1.Comment != "b noted" || c1.Direction != Right {
		t.Errorf("comment 1: %+v", c1)
	}
}

func TestUpdateObjectSelectorError(t *testing.T) {
	source := mustDecode(t, "a: 1")
	ran := false
	_, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			FindKey: func(c *Cursor) *Cursor { return c.Field("!bad") },
			Merge:   func(_ *ir.Node) *ir.Node { return ir.FromInt(1) },
		})
		ops.Change(Change{
			Merge: func(_ *ir.Node) *ir.Node {
				ran = true
				return nil
			},
		})
	})
	if !errors.Is(err, ErrUnsupportedKey) {
		t.Fatalf("got %v", err)
	}
	if ran {
		t.Errorf("change after failure still ran")
	}
}

func TestUpdateObjectNilMerge(t *testing.T) {
	source := mustDecode(t, "a: 1")
	res, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			FindKey: func(c *Cursor) *Cursor { return c.Field("a") },
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res.Result); got != "a: 1" {
		t.Errorf("got %s", got)
	}
}

func TestUpdateObjectNoAnnotate(t *testing.T) {
	source := mustDecode(t, "a: 1")
	res, err := UpdateObject(source, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res.Result); got != "a: 1" {
		t.Errorf("got %s", got)
	}
	if len(res.Comments) != 0 {
		t.Errorf("got %d comments", len(res.Comments))
	}
}

func TestUpdateObjectTolerations(t *testing.T) {
	source := mustDecode(t, `
tolerations:
- effect: NoSchedule
  operator: Exists`)
	res, err := UpdateObject(source, func(ops *Ops) {
		ops.Change(Change{
			Merge: func(_ *ir.Node) *ir.Node {
				frag := mustDecode(t, `
tolerations:
- effect: NoSchedule
  operator: Exists
- effect: NoExecute
  operator: Exists`)
				return NewFragment(frag,
					AddInstructions(Instructions{Prop: "tolerations", MergeByContents: true}))
			},
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	want := strings.TrimSpace(`
tolerations:
- effect: NoSchedule
  operator: Exists
- effect: NoExecute
  operator: Exists`)
	if got := encode.MustString(res.Result); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestUpdateObjectDirectionText(t *testing.T) {
	for d, want := range map[Direction]string{
		Left: "left", Right: "right", Up: "up", Down: "down",
	} {
		if d.String() != want {
			t.Errorf("got %s", d.String())
		}
		var rt Direction
		if err := rt.UnmarshalText([]byte(want)); err != nil || rt != d {
			t.Errorf("round trip %s: %v", want, err)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("sideways")); err == nil {
		t.Errorf("expected error")
	}
}
