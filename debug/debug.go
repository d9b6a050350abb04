// Package debug gates diagnostic output behind environment variables.
//
// Each flag is read once at startup from PLIST_DEBUG_<NAME> and parsed
// with strconv.ParseBool.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode  bool
	Patch   bool
	Eval    bool
	Convert bool
	Diff    bool
	Match   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("PLIST_DEBUG_DECODE")
	d.Patch = boolEnv("PLIST_DEBUG_PATCH")
	d.Eval = boolEnv("PLIST_DEBUG_EVAL")
	d.Convert = boolEnv("PLIST_DEBUG_CONVERT")
	d.Diff = boolEnv("PLIST_DEBUG_DIFF")
	d.Match = boolEnv("PLIST_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Convert() bool {
	return d.Convert
}
func Diff() bool {
	return d.Diff
}
func Match() bool {
	return d.Match
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
