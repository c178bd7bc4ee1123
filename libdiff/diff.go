package libdiff

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/objedit/objedit/encode"
	"github.com/objedit/objedit/ir"
)

// Colors configures rendering of inserted and deleted lines. A nil
// *Colors renders plain text.
type Colors struct {
	Insert *color.Color
	Delete *color.Color
}

func NewColors() *Colors {
	return &Colors{
		Insert: color.New(color.FgGreen),
		Delete: color.New(color.FgRed),
	}
}

// DiffNodes diffs the YAML renderings of two trees. A nil colors renders
// plain text. See DiffStrings.
func DiffNodes(from, to *ir.Node, colors *Colors) (string, error) {
	fromBuf, toBuf := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(from, fromBuf); err != nil {
		return "", err
	}
	if err := encode.Encode(to, toBuf); err != nil {
		return "", err
	}
	return Render(lineDiffs(fromBuf.String(), toBuf.String()), colors), nil
}

// DiffStrings computes a line-based diff between from and to, in the
// usual prefix form: unchanged lines prefixed "  ", deletions "- ",
// insertions "+ ".
func DiffStrings(from, to string) string {
	return Render(lineDiffs(from, to), nil)
}

// Render formats line diffs, optionally colorized.
func Render(diffs []diffpatch.Diff, colors *Colors) string {
	sb := &strings.Builder{}
	for _, diff := range diffs {
		prefix, c := "  ", (*color.Color)(nil)
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			if colors != nil {
				c = colors.Delete
			}
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colors != nil {
				c = colors.Insert
			}
		}
		for _, line := range splitLines(diff.Text) {
			if c != nil {
				sb.WriteString(c.Sprint(prefix + line))
			} else {
				sb.WriteString(prefix + line)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// lineDiffs runs the char-mapped line diff so whole lines are the unit
// of change.
func lineDiffs(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
