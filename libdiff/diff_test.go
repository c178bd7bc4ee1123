package libdiff

import (
	"strings"
	"testing"

	"github.com/objedit/objedit/encode"
)

func TestDiffStrings(t *testing.T) {
	from := "a: 1\nb: 2\nc: 3\n"
	to := "a: 1\nb: 22\nc: 3\nd: 4\n"
	got := DiffStrings(from, to)
	want := strings.Join([]string{
		"  a: 1",
		"- b: 2",
		"+ b: 22",
		"  c: 3",
		"+ d: 4",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestDiffStringsEqual(t *testing.T) {
	got := DiffStrings("a: 1\n", "a: 1\n")
	if got != "  a: 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestDiffNodes(t *testing.T) {
	from, err := encode.Decode([]byte("a: 1\nxs:\n- 1"))
	if err != nil {
		t.Fatal(err)
	}
	to, err := encode.Decode([]byte("a: 1\nxs:\n- 1\n- 2"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := DiffNodes(from, to, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "+ - 2") {
		t.Errorf("missing insertion:\n%s", got)
	}
	if strings.Contains(got, "- a: 1") {
		t.Errorf("unchanged line marked deleted:\n%s", got)
	}
}
