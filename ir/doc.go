// Package ir provides the in-memory representation of plain-data trees:
// ordered-key objects, arrays and scalars. It supplies the structural
// primitives the editor and merge engine build on: deep clone, structural
// comparison and equality, hashing, path addressing and conversion to and
// from ordinary Go values.
package ir
