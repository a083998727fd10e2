// Package debug gates diagnostic output on TPL_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Text  bool
	Tools bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("TPL_DEBUG_SCAN")
	d.Text = boolEnv("TPL_DEBUG_TEXT")
	d.Tools = boolEnv("TPL_DEBUG_TOOLS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Text() bool {
	return d.Text
}
func Tools() bool {
	return d.Tools
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
