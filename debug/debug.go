// Package debug holds environment driven debug switches.
//
// Each switch is enabled at init either by its own ICAL_DEBUG_<NAME>
// variable holding a value accepted by strconv.ParseBool, or by listing its
// name in ICAL_DEBUG, a comma separated list where "all" enables every
// switch:
//
//	ICAL_DEBUG=tree,snap ical-obj view cal.yaml
package debug

import (
	"os"
	"strconv"
	"strings"
)

// Switch names.
const (
	TreeSwitch  = "tree"
	SnapSwitch  = "snap"
	QuerySwitch = "query"
	DiffSwitch  = "diff"
)

// Switches lists every switch name.
var Switches = []string{TreeSwitch, SnapSwitch, QuerySwitch, DiffSwitch}

var on = enabled(os.Getenv)

func enabled(getenv func(string) string) map[string]bool {
	res := make(map[string]bool, len(Switches))
	for _, name := range strings.Split(getenv("ICAL_DEBUG"), ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "all" {
			for _, s := range Switches {
				res[s] = true
			}
			continue
		}
		if name != "" {
			res[name] = true
		}
	}
	for _, s := range Switches {
		b, err := strconv.ParseBool(getenv("ICAL_DEBUG_" + strings.ToUpper(s)))
		if err == nil {
			res[s] = b
		}
	}
	return res
}

// Enabled reports whether the named switch is on.
func Enabled(name string) bool {
	return on[name]
}

// Tree reports whether child collection mutations are traced.
func Tree() bool {
	return on[TreeSwitch]
}
func Snap() bool {
	return on[SnapSwitch]
}
func Query() bool {
	return on[QuerySwitch]
}
func Diff() bool {
	return on[DiffSwitch]
}
