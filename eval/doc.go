// Package eval expands $[...] expressions embedded in tree string values.
//
// A string value consisting of a single $[...] expression is replaced by
// the evaluation result, which may be any tree value. Expressions embedded
// in a larger string are substituted textually.
package eval
