package objedit

import (
	"github.com/objedit/objedit/debug"
	"github.com/objedit/objedit/ir"
)

// Merge applies fragment onto target in place. target must be a subtree
// the caller exclusively owns; the pristine source of an edit is never
// passed here. Merge never fails: a container kind mismatch between a
// target slot and the fragment is resolved by resetting the slot to an
// empty compatible container before merging into it.
func Merge(target, fragment *ir.Node) {
	if target == nil || fragment == nil {
		return
	}
	mergeNode(target, fragment.Clone())
}

func mergeNode(target, frag *ir.Node) {
	if debug.Merge() {
		debug.Logf("merge %s fragment at %s\n", frag.Type, target.Path())
	}
	switch frag.Type {
	case ir.ArrayType:
		// reachable only for root-level array replacement; array
		// properties go through the policy paths below
		if target.Type != ir.ArrayType {
			return
		}
		for _, item := range frag.Values {
			target.Append(cleanClone(item))
		}
		return
	case ir.ObjectType:
	default:
		return
	}
	if target.Type != ir.ObjectType {
		target.Reset(ir.ObjectType)
	}
	pols := splitInstructions(frag)
	for i := range frag.Fields {
		name := frag.Fields[i].String
		val := frag.Values[i]
		if pol, declared := pols[name]; declared {
			mergeDeclared(target, name, val, pol)
			continue
		}
		mergeDefault(target, name, val)
	}
}

// mergeDeclared applies a property carrying an explicit instruction.
// Policies define array semantics only: a record-valued property recurses
// with the default rules, a scalar overwrites.
func mergeDeclared(target *ir.Node, name string, val *ir.Node, pol policy) {
	switch val.Type {
	case ir.ArrayType:
		tgt := ensureArrayField(target, name)
		switch {
		case pol.byContents:
			mergeByContents(tgt, val)
		case pol.byKey != "":
			mergeByKey(tgt, val, pol.byKey)
		default:
			for _, item := range val.Values {
				tgt.Append(cleanClone(item))
			}
		}
	case ir.ObjectType:
		mergeNode(ensureObjectField(target, name), val)
	default:
		target.SetField(name, cleanClone(val))
	}
}

// mergeDefault is the default deep-merge rule, applied to every property
// without an explicit policy and recursively inside it.
func mergeDefault(target *ir.Node, name string, val *ir.Node) {
	switch val.Type {
	case ir.ArrayType:
		tgt := ir.Get(target, name)
		if tgt == nil || tgt.Type != ir.ArrayType {
			target.SetField(name, cleanClone(val))
			return
		}
		if len(val.Values) > 0 {
			first := val.Values[0]
			// implicit heuristic: lists of named records merge by name
			if first.Type == ir.ObjectType && ir.Get(first, "name") != nil {
				mergeByKey(tgt, val, "name")
				return
			}
		}
		for _, item := range val.Values {
			tgt.Append(cleanClone(item))
		}
	case ir.ObjectType:
		mergeNode(ensureObjectField(target, name), val)
	default:
		target.SetField(name, cleanClone(val))
	}
}

// mergeByContents appends each fragment item that is not structurally
// equal to an existing target item. Existing items retain position; new
// items are appended in source order. The hash index keeps the duplicate
// scan linear on large arrays.
func mergeByContents(tgt, fragArr *ir.Node) {
	index := make(map[uint64][]*ir.Node, len(tgt.Values))
	for _, v := range tgt.Values {
		h := v.Hash()
		index[h] = append(index[h], v)
	}
	for _, item := range fragArr.Values {
		h := item.Hash()
		dup := false
		for _, ex := range index[h] {
			if ir.Equal(ex, item) {
				dup = true
				break
			}
		}
		if dup {
			if debug.Merge() {
				debug.Logf("contents merge at %s: skip duplicate\n", tgt.Path())
			}
			continue
		}
		cl := cleanClone(item)
		tgt.Append(cl)
		index[h] = append(index[h], cl)
	}
}

// mergeByKey merges each fragment item into the first existing target item
// with an equal key field, appending when the item is not a record, lacks
// the key, or matches nothing. Fragment items sharing a key value apply in
// order, so the later one's fields win.
func mergeByKey(tgt, fragArr *ir.Node, key string) {
	for _, item := range fragArr.Values {
		if item.Type != ir.ObjectType {
			tgt.Append(cleanClone(item))
			continue
		}
		itemKey := ir.Get(item, key)
		if itemKey == nil {
			tgt.Append(cleanClone(item))
			continue
		}
		var found *ir.Node
		for _, ex := range tgt.Values {
			if ex.Type != ir.ObjectType {
				continue
			}
			exKey := ir.Get(ex, key)
			if exKey != nil && ir.Equal(exKey, itemKey) {
				found = ex
				break
			}
		}
		if found == nil {
			tgt.Append(cleanClone(item))
			continue
		}
		if debug.Merge() {
			debug.Logf("keyed merge at %s on %s\n", found.Path(), key)
		}
		mergeKeyedItem(found, item)
	}
}

// mergeKeyedItem merges item's fields into dst in place: sequences replace
// the existing value, records recurse with the default rules, scalars
// overwrite.
func mergeKeyedItem(dst, item *ir.Node) {
	for i := range item.Fields {
		name := item.Fields[i].String
		val := item.Values[i]
		switch val.Type {
		case ir.ObjectType:
			mergeNode(ensureObjectField(dst, name), val)
		default:
			dst.SetField(name, cleanClone(val))
		}
	}
}

func ensureArrayField(target *ir.Node, name string) *ir.Node {
	tgt := ir.Get(target, name)
	if tgt == nil || tgt.Type != ir.ArrayType {
		tgt = &ir.Node{Type: ir.ArrayType}
		target.SetField(name, tgt)
	}
	return tgt
}

func ensureObjectField(target *ir.Node, name string) *ir.Node {
	tgt := ir.Get(target, name)
	if tgt == nil || tgt.Type != ir.ObjectType {
		tgt = &ir.Node{Type: ir.ObjectType}
		target.SetField(name, tgt)
	}
	return tgt
}

// cleanClone clones y and strips instruction tags so channel entries never
// leak into an edited document.
func cleanClone(y *ir.Node) *ir.Node {
	res := y.Clone()
	stripTags(res)
	return res
}

func stripTags(y *ir.Node) {
	y.Tag = ""
	for _, f := range y.Fields {
		f.Tag = ""
	}
	for _, v := range y.Values {
		stripTags(v)
	}
}
