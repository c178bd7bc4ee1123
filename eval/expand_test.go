package eval

import (
	"strings"
	"testing"

	"github.com/objedit/objedit/encode"
	"github.com/objedit/objedit/ir"
)

func TestExpandString(t *testing.T) {
	env := Env{
		"name":  "app",
		"count": 3,
		"on":    true,
	}
	tests := []struct {
		In   string
		Want string
		Err  bool
	}{
		{In: "plain", Want: "plain"},
		{In: "$[name]", Want: "app"},
		{In: "prefix-$[name]-suffix", Want: "prefix-app-suffix"},
		{In: "$[count]", Want: "3"},
		{In: "$[on]", Want: "true"},
		{In: "$[count + 1]", Want: "4"},
		{In: `$[name + "\]"]`, Want: "app]"},
		{In: "$[name] and $[count]", Want: "app and 3"},
		// unterminated expressions are literal text
		{In: "$[name", Want: "$[name"},
		{In: "cost: $5", Want: "cost: $5"},
		{In: "$[missing]", Err: true},
		{In: "$[1 +]", Err: true},
	}
	for i := range tests {
		test := &tests[i]
		got, err := ExpandString(test.In, env)
		if test.Err {
			if err == nil {
				t.Errorf("test case %d: expected error on %q", i, test.In)
			}
			continue
		}
		if err != nil {
			t.Errorf("test case %d: %v", i, err)
			continue
		}
		if got != test.Want {
			t.Errorf("test case %d: got %q, want %q", i, got, test.Want)
		}
	}
}

func TestExpand(t *testing.T) {
	env := Env{
		"replicas": 2,
		"name":     "app",
		"labels":   map[string]any{"tier": "web"},
	}
	doc, err := encode.Decode([]byte(`
metadata:
  name: $[name]-main
spec:
  replicas: $[replicas]
  selector: $[labels]
  notes:
  - $[name]
  - constant`))
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(doc, env); err != nil {
		t.Fatal(err)
	}
	want := strings.TrimSpace(`
metadata:
  name: app-main
spec:
  replicas: 2
  selector:
    tier: web
  notes:
  - app
  - constant`)
	if got := encode.MustString(doc); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	// whole-expression results keep tree linkage
	sel := ir.Get(ir.Get(doc, "spec"), "selector")
	if sel.Parent == nil || sel.ParentField != "selector" {
		t.Errorf("linkage lost: %+v", sel)
	}
}

func TestExpandError(t *testing.T) {
	doc, err := encode.Decode([]byte("a: $[nope]"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(doc, Env{}); err == nil {
		t.Errorf("expected error")
	}
}

func TestExpandNil(t *testing.T) {
	if err := Expand(nil, Env{}); err != nil {
		t.Fatal(err)
	}
}
