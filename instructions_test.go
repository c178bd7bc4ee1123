package objedit

import (
	"testing"

	"github.com/objedit/objedit/ir"
)

func TestInstructionPrecedence(t *testing.T) {
	tests := []struct {
		Ins Instructions
		Tag string
	}{
		{Instructions{Prop: "xs"}, "!append"},
		{Instructions{Prop: "xs", MergeByName: true}, "!key(name)"},
		{Instructions{Prop: "xs", MergeByProp: "id"}, "!key(id)"},
		{Instructions{Prop: "xs", MergeByProp: "id", MergeByName: true}, "!key(id)"},
		{Instructions{Prop: "xs", MergeByContents: true, MergeByProp: "id", MergeByName: true}, "!contents"},
	}
	for i := range tests {
		test := &tests[i]
		e := AddInstructions(test.Ins)
		if e.tag != test.Tag {
			t.Errorf("test case %d: got %q, want %q", i, e.tag, test.Tag)
		}
	}
}

func TestNewFragmentLaterEntryWins(t *testing.T) {
	frag := ir.FromMap(map[string]*ir.Node{
		"xs": ir.FromSlice(nil),
	})
	NewFragment(frag,
		AddInstructions(Instructions{Prop: "xs", MergeByContents: true}),
		AddInstructions(Instructions{Prop: "xs", MergeByProp: "id"}))
	if tag := ir.Get(frag, "xs").Tag; tag != "!key(id)" {
		t.Errorf("got %q", tag)
	}
}

func TestNewFragmentAbsentPropInert(t *testing.T) {
	frag := ir.FromMap(map[string]*ir.Node{
		"a": ir.FromInt(1),
	})
	NewFragment(frag, AddInstructions(Instructions{Prop: "xs", MergeByContents: true}))
	if tag := ir.Get(frag, "a").Tag; tag != "" {
		t.Errorf("entry for absent prop stamped %q on a", tag)
	}
}

func TestSplitInstructions(t *testing.T) {
	frag := ir.FromMap(map[string]*ir.Node{
		"xs": ir.FromSlice(nil),
		"ys": ir.FromSlice(nil),
		"a":  ir.FromInt(1),
	})
	NewFragment(frag,
		AddInstructions(Instructions{Prop: "xs", MergeByContents: true}),
		AddInstructions(Instructions{Prop: "ys", MergeByProp: "id"}))
	pols := splitInstructions(frag)
	if len(pols) != 2 {
		t.Fatalf("got %d policies", len(pols))
	}
	if !pols["xs"].byContents {
		t.Errorf("xs: got %+v", pols["xs"])
	}
	if pols["ys"].byKey != "id" {
		t.Errorf("ys: got %+v", pols["ys"])
	}
	// entries are stripped after extraction
	for i := range frag.Fields {
		if tag := frag.Values[i].Tag; tag != "" {
			t.Errorf("field %s still tagged %q", frag.Fields[i].String, tag)
		}
	}
	// field enumeration never saw the channel
	if len(frag.Fields) != 3 {
		t.Errorf("got %d fields", len(frag.Fields))
	}
}
