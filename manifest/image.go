package manifest

import (
	"fmt"
	"path"

	imageref "github.com/novln/docker-parser"

	"github.com/objedit/objedit"
	"github.com/objedit/objedit/ir"
)

const defaultRegistry = "docker.io"

// ImageRewrite retargets container image references. Empty fields keep
// the corresponding component of the input reference.
type ImageRewrite struct {
	Registry string
	Repo     string
	Suffix   string
	Tag      string
}

// Rewrite parses image and reassembles it with the rewrite's components.
func (rw *ImageRewrite) Rewrite(image string) (string, error) {
	ref, err := imageref.Parse(image)
	if err != nil {
		return "", fmt.Errorf("error parsing image %q: %w", image, err)
	}
	registry := rw.Registry
	inReg := ref.Registry()
	if inReg == defaultRegistry {
		inReg = ""
	}
	if registry == "" {
		registry = inReg
	}
	repo := rw.Repo
	inRepo, inName := path.Split(ref.ShortName())
	if repo == "" {
		repo = inRepo
	}
	name := inName
	if repo != "" {
		name = path.Join(repo, inName)
	}
	tag := rw.Tag
	if tag == "" {
		tag = ref.Tag()
	}
	if registry != "" {
		registry += "/"
	}
	return fmt.Sprintf("%s%s%s:%s", registry, name, rw.Suffix, tag), nil
}

// RewriteAll rewrites every "image" string field in doc in place and
// returns how many were rewritten.
func (rw *ImageRewrite) RewriteAll(doc *ir.Node) (int, error) {
	n := 0
	var walk func(node *ir.Node) error
	walk = func(node *ir.Node) error {
		switch node.Type {
		case ir.ObjectType:
			for i := range node.Fields {
				val := node.Values[i]
				if node.Fields[i].String == "image" && val.Type == ir.StringType {
					out, err := rw.Rewrite(val.String)
					if err != nil {
						return err
					}
					val.String = out
					n++
					continue
				}
				if err := walk(val); err != nil {
					return err
				}
			}
		case ir.ArrayType:
			for _, elt := range node.Values {
				if err := walk(elt); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(doc); err != nil {
		return 0, err
	}
	return n, nil
}

// SetImageChange builds a change setting the image of the named container
// in a workload pod template. The containers list is merged by the "name"
// property, so other containers and the rest of the container entry are
// left alone.
func SetImageChange(container, image string) objedit.Change {
	return objedit.Change{
		FindKey: func(c *objedit.Cursor) *objedit.Cursor {
			return c.Field("spec").Field("template").Field("spec")
		},
		Merge: func(original *ir.Node) *ir.Node {
			frag := ir.FromMap(map[string]*ir.Node{
				"containers": ir.FromSlice([]*ir.Node{
					ir.FromMap(map[string]*ir.Node{
						"name":  ir.FromString(container),
						"image": ir.FromString(image),
					}),
				}),
			})
			return objedit.NewFragment(frag,
				objedit.AddInstructions(objedit.Instructions{
					Prop:        "containers",
					MergeByProp: "name",
				}))
		},
		Comment: func(prev *objedit.CommentDirective) *objedit.CommentDirective {
			return &objedit.CommentDirective{
				Text:      fmt.Sprintf("container %s image set to %s", container, image),
				Direction: objedit.Up,
			}
		},
	}
}
