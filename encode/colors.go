package encode

import (
	"bytes"

	"github.com/fatih/color"
)

// Colors colorizes rendered YAML for terminal output.
type Colors struct {
	Key  *color.Color
	Dash *color.Color
}

func NewColors() *Colors {
	return &Colors{
		Key:  color.New(color.FgCyan),
		Dash: color.New(color.FgYellow),
	}
}

// colorize highlights mapping keys and sequence dashes line by line. The
// rendered YAML always places keys before the first unquoted ':' on a
// line, so no token-level pass is needed.
func (c *Colors) colorize(d []byte) []byte {
	lines := bytes.Split(d, []byte("\n"))
	buf := bytes.NewBuffer(nil)
	for i, line := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		c.colorizeLine(buf, line)
	}
	return buf.Bytes()
}

func (c *Colors) colorizeLine(buf *bytes.Buffer, line []byte) {
	rest := line
	indent := len(rest) - len(bytes.TrimLeft(rest, " "))
	buf.Write(rest[:indent])
	rest = rest[indent:]
	if bytes.HasPrefix(rest, []byte("- ")) || bytes.Equal(rest, []byte("-")) {
		buf.WriteString(c.Dash.Sprint("-"))
		rest = rest[1:]
	}
	if j := bytes.Index(rest, []byte(": ")); j != -1 && !bytes.ContainsAny(rest[:j], "'\"") {
		buf.WriteString(c.Key.Sprint(string(rest[:j])))
		buf.Write(rest[j:])
		return
	}
	if bytes.HasSuffix(rest, []byte(":")) && !bytes.ContainsAny(rest, "'\" ") {
		buf.WriteString(c.Key.Sprint(string(rest[:len(rest)-1])))
		buf.WriteByte(':')
		return
	}
	buf.Write(rest)
}
