// Package libdiff renders line-based diffs of encoded documents, for
// showing the effect of an edit.
package libdiff
