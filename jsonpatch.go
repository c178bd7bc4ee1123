package objedit

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/objedit/objedit/ir"
)

// ApplyJSONPatch applies an RFC 6902 JSON Patch to a tree and returns the
// patched tree. It complements the policy-driven Merge for callers that
// already speak standard patch documents. The round trip through JSON does
// not preserve field order.
func ApplyJSONPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(ir.ToAny(doc))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(out, &v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}
