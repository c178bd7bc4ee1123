// Package debug provides env-flag gated stderr logging for tracing the
// resolver, merge engine, editor and expression expansion.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Merge   bool
	Edit    bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("OBJEDIT_DEBUG_RESOLVE")
	d.Merge = boolEnv("OBJEDIT_DEBUG_MERGE")
	d.Edit = boolEnv("OBJEDIT_DEBUG_EDIT")
	d.Eval = boolEnv("OBJEDIT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Merge() bool {
	return d.Merge
}
func Edit() bool {
	return d.Edit
}
func Eval() bool {
	return d.Eval
}
