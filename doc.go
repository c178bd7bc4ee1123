// Package objedit is a structural merge engine for nested plain-data trees.
//
// It applies targeted, policy-driven patches to configuration-like
// documents (deployment manifests, for example) while leaving the input
// untouched: UpdateObject deep-clones the source once, applies a sequence
// of caller-declared changes to the clone, and returns the edited tree
// together with an ordered log of human-readable annotations.
//
// Each change names its target with a selector run against a Cursor, which
// records the keys the selector reads; the fragment the change produces is
// merged into the value at that path under per-property merge policies
// (contents-deduplication, merge-by-key, or default deep merge) carried by
// an instruction channel alongside the fragment.
package objedit
