package snap

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/ical-format/go-ical/ical"
	"github.com/signadot/ical-format/go-ical/ir"

	"github.com/google/go-cmp/cmp"
)

func sampleCalendar(t *testing.T) *ir.Node {
	t.Helper()
	cal := ical.NewCalendar()
	cal.SetPos(ir.Pos{Line: 1, Column: 1})
	ev := ir.NewNamedAt(ical.VEVENT, 3, 1)
	alarm := ir.NewNamedAt(ical.VALARM, 7, 1)
	for _, e := range []struct{ p, c *ir.Node }{
		{cal, ir.NewNamedAt(ical.VTIMEZONE, 2, 1)},
		{cal, ev},
		{ev, ir.NewAt(4, 1)},
		{ev, alarm},
	} {
		if err := e.p.Children().Add(e.c); err != nil {
			t.Fatal(err)
		}
	}
	return cal
}

func str(s string) *string { return &s }

func TestCapture(t *testing.T) {
	got := Capture(sampleCalendar(t))
	want := &Node{
		Name: str("VCALENDAR"), Line: 1, Column: 1, Root: true,
		Children: []*Node{
			{Name: str("VTIMEZONE"), Line: 2, Column: 1},
			{Name: str("VEVENT"), Line: 3, Column: 1, Children: []*Node{
				{Line: 4, Column: 1},
				{Name: str("VALARM"), Line: 7, Column: 1},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Capture mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{YAMLFormat, JSONFormat} {
		t.Run(f.String(), func(t *testing.T) {
			cal := sampleCalendar(t)
			d, err := Marshal(cal, WithFormat(f), Indent(true))
			if err != nil {
				t.Fatal(err)
			}
			got, err := Unmarshal(d, WithFormat(f))
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", d, err)
			}
			if diff := cmp.Diff(Capture(cal), Capture(got)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			alarm := got.Children().At(1).Children().At(1)
			if alarm.Root() != got {
				t.Errorf("restored root marker not found from %s", alarm.Path())
			}
			if err := got.Visit(checkParents); err != nil {
				t.Error(err)
			}
		})
	}
}

func checkParents(n *ir.Node, isPost bool) (bool, error) {
	if isPost {
		return true, nil
	}
	for c := range n.Children().Nodes() {
		if c.Parent() != n {
			return false, errors.New(c.Path() + ": parent mismatch")
		}
	}
	return true, nil
}

func TestUnmarshalYAML(t *testing.T) {
	doc := `
name: VCALENDAR
root: true
children:
- name: VEVENT
  line: 2
  children:
  - name: SUMMARY
  - {}
`
	n, err := Unmarshal([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	ev := n.Children().At(0)
	if ev.Name() != "VEVENT" || ev.Pos().Line != 2 || ev.Children().Len() != 2 {
		t.Errorf("VEVENT restored as %s with %d children", ev, ev.Children().Len())
	}
	if ev.Children().At(1).HasName() {
		t.Errorf("unnamed child restored with a name")
	}
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal([]byte(`{"children": [null]}`), WithFormat(JSONFormat))
	if !errors.Is(err, ErrBadSnapshot) {
		t.Errorf("null child: error = %v, want ErrBadSnapshot", err)
	}
	_, err = Unmarshal([]byte(`{`), WithFormat(JSONFormat))
	if !errors.Is(err, ErrBadSnapshot) {
		t.Errorf("bad json: error = %v, want ErrBadSnapshot", err)
	}
}

func TestRestoreCallsReconstruct(t *testing.T) {
	n, err := Restore(&Node{Name: str("X")})
	if err != nil {
		t.Fatal(err)
	}
	if n.Children().Owner() != n || n.Caps().Len() != 0 {
		t.Errorf("restored node not reconstructed")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"y", YAMLFormat, false},
		{"yaml", YAMLFormat, false},
		{"j", JSONFormat, false},
		{"json", JSONFormat, false},
		{"tony", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyPatch(t *testing.T) {
	cal := sampleCalendar(t)
	patch := `[
		{"op": "replace", "path": "/children/1/name", "value": "VTODO"},
		{"op": "remove", "path": "/children/0"}
	]`
	got, err := ApplyPatch(cal, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	if got.Children().Len() != 1 || got.Children().At(0).Name() != "VTODO" {
		t.Errorf("patched children = %d, first %s", got.Children().Len(), got.Children().At(0))
	}
	if cal.Children().Len() != 2 || cal.Children().At(1).Name() != "VEVENT" {
		t.Errorf("ApplyPatch modified its input")
	}

	_, err = ApplyPatch(cal, []byte(`[{"op": "remove", "path": "/children/9"}]`))
	if err == nil || !strings.Contains(err.Error(), "error applying patch") {
		t.Errorf("bad path: error = %v", err)
	}
	if _, err := ApplyPatch(cal, []byte(`{`)); err == nil {
		t.Errorf("bad patch: no error")
	}
}

func TestMergePatch(t *testing.T) {
	cal := sampleCalendar(t)
	got, err := MergePatch(cal, []byte(`{"name": "X-CAL", "children": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "X-CAL" || got.Children().Len() != 0 || !ir.IsRoot(got) {
		t.Errorf("merge patched = %s, %d children, root %v", got, got.Children().Len(), ir.IsRoot(got))
	}
}

func TestMergeDiff(t *testing.T) {
	from := sampleCalendar(t)
	to := from.Clone()
	to.SetName("X-CAL")
	d, err := MergeDiff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	got, err := MergePatch(from, d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Capture(to), Capture(got)); diff != "" {
		t.Errorf("merge diff round trip mismatch (-want +got):\n%s", diff)
	}
}
