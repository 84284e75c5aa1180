// Package ical names the calendar components of RFC 5545 and builds the
// calendar root on top of package ir.
package ical

import "github.com/signadot/ical-format/go-ical/ir"

// Component names.
const (
	VCALENDAR = "VCALENDAR"
	VEVENT    = "VEVENT"
	VTODO     = "VTODO"
	VJOURNAL  = "VJOURNAL"
	VFREEBUSY = "VFREEBUSY"
	VTIMEZONE = "VTIMEZONE"
	VALARM    = "VALARM"
	STANDARD  = "STANDARD"
	DAYLIGHT  = "DAYLIGHT"
)

var components = map[string]bool{
	VCALENDAR: true,
	VEVENT:    true,
	VTODO:     true,
	VJOURNAL:  true,
	VFREEBUSY: true,
	VTIMEZONE: true,
	VALARM:    true,
	STANDARD:  true,
	DAYLIGHT:  true,
}

// IsComponent reports whether name is a component name known to this
// package. Experimental (X-) and IANA components are not.
func IsComponent(name string) bool {
	return components[name]
}

// NewCalendar returns an empty VCALENDAR node marked as a document root.
func NewCalendar() *ir.Node {
	n := ir.New(VCALENDAR)
	ir.MarkRoot(n)
	return n
}

// NewComponent returns an unattached component node. It is not checked
// against the known component names.
func NewComponent(name string) *ir.Node {
	return ir.New(name)
}

// Calendar returns the calendar n belongs to: the nearest of n and its
// ancestors marked as a root, or nil.
func Calendar(n *ir.Node) *ir.Node {
	return n.Root()
}

// Components returns the direct children of cal named name.
func Components(cal *ir.Node, name string) []*ir.Node {
	var res []*ir.Node
	for c := range cal.Children().ByName(name) {
		res = append(res, c)
	}
	return res
}
