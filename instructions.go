package objedit

import (
	"strings"

	"github.com/objedit/objedit/ir"
)

// Instruction tags ride on a fragment property's value node, outside the
// fragment's key space, so they never appear as fields.
const (
	contentsTag  = "!contents"
	appendTag    = "!append"
	keyTagPrefix = "!key("
)

// Instructions declares the merge policy for one property of a fragment.
// When more than one array strategy is set, the effective one is chosen by
// priority: MergeByContents > MergeByProp > MergeByName > default append.
//
// DeepMerge is accepted but not consulted by any code path. The comment
// fields (Comment, RemoveComment, CommentBefore, CommentAfter) are
// reserved; the only wired comment mechanism is Change.Comment.
type Instructions struct {
	Prop string

	MergeByContents bool
	MergeByProp     string
	MergeByName     bool
	DeepMerge       bool

	Comment       string
	RemoveComment bool
	CommentBefore string
	CommentAfter  string
}

// ChannelEntry is one instruction-channel entry, scoping a merge policy to
// exactly one property name within exactly one fragment object.
type ChannelEntry struct {
	prop string
	tag  string
}

// AddInstructions builds the channel entry for ins.Prop.
func AddInstructions(ins Instructions) *ChannelEntry {
	return &ChannelEntry{prop: ins.Prop, tag: ins.tag()}
}

func (ins *Instructions) tag() string {
	switch {
	case ins.MergeByContents:
		return contentsTag
	case ins.MergeByProp != "":
		return keyTagPrefix + ins.MergeByProp + ")"
	case ins.MergeByName:
		return keyTagPrefix + "name)"
	default:
		return appendTag
	}
}

// NewFragment combines a normal field map with zero or more channel
// entries. Entries are applied in order, so a later entry for the same
// property wins. Entries naming properties absent from value are inert.
func NewFragment(value *ir.Node, entries ...*ChannelEntry) *ir.Node {
	if value == nil || value.Type != ir.ObjectType {
		return value
	}
	for _, e := range entries {
		if v := ir.Get(value, e.prop); v != nil {
			v.Tag = e.tag
		}
	}
	return value
}

type policy struct {
	byContents bool
	byKey      string
}

func parsePolicyTag(tag string) (policy, bool) {
	switch {
	case tag == contentsTag:
		return policy{byContents: true}, true
	case tag == appendTag:
		return policy{}, true
	case strings.HasPrefix(tag, keyTagPrefix) && strings.HasSuffix(tag, ")"):
		return policy{byKey: tag[len(keyTagPrefix) : len(tag)-1]}, true
	}
	return policy{}, false
}

// splitInstructions extracts the policy-by-property mapping from one
// fragment object and strips the channel entries, leaving a clean fragment
// for normal field iteration. The merge engine runs this at every
// recursion level, so nested fragments carry their own entries.
func splitInstructions(frag *ir.Node) map[string]policy {
	var res map[string]policy
	for i := range frag.Fields {
		val := frag.Values[i]
		if val.Tag == "" {
			continue
		}
		pol, ok := parsePolicyTag(val.Tag)
		if !ok {
			continue
		}
		if res == nil {
			res = map[string]policy{}
		}
		res[frag.Fields[i].String] = pol
		val.Tag = ""
	}
	return res
}
