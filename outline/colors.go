package outline

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	ComponentColor ColorAttr = iota
	PropertyColor
	UnnamedColor
	RootColor
	PosColor
	CapColor
)

// Colors maps each attribute to a formatting function.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[ComponentColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[PropertyColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[UnnamedColor] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[RootColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[PosColor] = color.BlueString
	colors.Map[CapColor] = color.RGB(74, 92, 138).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
