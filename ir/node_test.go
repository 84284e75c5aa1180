package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqualByName(t *testing.T) {
	a, b := New("VEVENT"), NewNamedAt("VEVENT", 10, 2)
	mustAdd(t, a, New("SUMMARY"))

	tests := []struct {
		name string
		x, y *Node
		want bool
	}{
		{"same name", a, b, true},
		{"different name", a, New("VTODO"), false},
		{"unset vs set", &Node{}, a, false},
		{"unset vs unset", &Node{}, NewAt(1, 1), true},
		{"empty vs unset", New(""), &Node{}, false},
		{"nil vs node", nil, a, false},
		{"nil vs nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.x, tt.y); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal named nodes hash differently")
	}
}

func TestHashUnsetIsIdentity(t *testing.T) {
	a, b := &Node{}, &Node{}
	if a.Hash() != a.Hash() {
		t.Errorf("Hash not stable")
	}
	if a.Hash() == b.Hash() {
		t.Errorf("distinct unnamed nodes share a hash")
	}
}

func TestGroupIsName(t *testing.T) {
	n := New("VEVENT")
	var changes []NameChange
	n.OnGroupChanged(func(x *Node, c NameChange) {
		if x != n {
			t.Errorf("listener got %v, want %v", x, n)
		}
		changes = append(changes, c)
	})

	n.SetGroup("X")
	if n.Name() != "X" {
		t.Errorf("Name() = %q after SetGroup(X)", n.Name())
	}
	n.SetName("Y")
	if n.Group() != "Y" {
		t.Errorf("Group() = %q after SetName(Y)", n.Group())
	}
	n.SetName("Y")
	n.SetGroup("Y")

	want := []NameChange{
		{Old: NameOf("VEVENT"), New: NameOf("X")},
		{Old: NameOf("X"), New: NameOf("Y")},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestClearName(t *testing.T) {
	n := New("VALARM")
	count := 0
	n.OnGroupChanged(func(*Node, NameChange) { count++ })
	n.ClearName()
	n.ClearName()
	if n.HasName() || count != 1 {
		t.Errorf("HasName() = %v, notifications = %d", n.HasName(), count)
	}
	n.SetName("")
	if !n.HasName() || count != 2 {
		t.Errorf("setting empty name: HasName() = %v, notifications = %d", n.HasName(), count)
	}
}

func TestGroupListenersOrder(t *testing.T) {
	n := &Node{}
	var order []int
	n.OnGroupChanged(func(*Node, NameChange) { order = append(order, 1) })
	unsub := n.OnGroupChanged(func(*Node, NameChange) { order = append(order, 2) })
	n.OnGroupChanged(func(*Node, NameChange) { order = append(order, 3) })
	n.SetName("A")
	unsub()
	n.SetName("B")
	if diff := cmp.Diff([]int{1, 2, 3, 1, 3}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyFrom(t *testing.T) {
	root := New("VCALENDAR")
	s := NewNamedAt("VEVENT", 4, 1)
	c1, c2 := New("DTSTART"), New("SUMMARY")
	mustAdd(t, root, s)
	mustAdd(t, s, c1, c2)
	mustAdd(t, c2, New("LANGUAGE"))
	s.Caps().SetNamed("validated", true)

	tgt := New("OLD")
	mustAdd(t, tgt, New("STALE"))
	tgt.CopyFrom(s)

	if tgt.Name() != "VEVENT" || tgt.Pos() != (Pos{Line: 4, Column: 1}) {
		t.Errorf("name/pos not copied: %s", tgt)
	}
	if tgt.Parent() != root {
		t.Errorf("Parent() = %v, want the source's parent", tgt.Parent())
	}
	if root.Children().Contains(tgt) {
		t.Errorf("copy was added to the source parent's children")
	}
	if tgt.Children().Len() != 2 {
		t.Fatalf("copy has %d children, want 2", tgt.Children().Len())
	}
	for i, orig := range []*Node{c1, c2} {
		cp := tgt.Children().At(i)
		if cp == orig {
			t.Errorf("child %d is the source instance", i)
		}
		if !Equal(cp, orig) {
			t.Errorf("child %d = %s, want %s", i, cp, orig)
		}
		if cp.Parent() != tgt {
			t.Errorf("child %d parent = %v, want copy", i, cp.Parent())
		}
	}
	grand := tgt.Children().At(1).Children()
	if grand.Len() != 1 || grand.At(0).Name() != "LANGUAGE" {
		t.Errorf("grandchildren not cloned: %v", names(grand))
	}
	if _, ok := tgt.Caps().Lookup("validated"); ok {
		t.Errorf("capabilities were copied")
	}

	if diff := cmp.Diff([]string{"DTSTART", "SUMMARY"}, names(s.Children())); diff != "" {
		t.Errorf("source children changed (-want +got):\n%s", diff)
	}
	if c1.Parent() != s || c2.Parent() != s || s.Parent() != root {
		t.Errorf("source parents changed")
	}
}

func TestCopyFromNotifiesOnNameChange(t *testing.T) {
	tgt := New("A")
	count := 0
	tgt.OnGroupChanged(func(*Node, NameChange) { count++ })
	tgt.CopyFrom(New("A"))
	tgt.CopyFrom(New("B"))
	if count != 1 {
		t.Errorf("notifications = %d, want 1", count)
	}
}

func TestCopyFromSelf(t *testing.T) {
	n := New("VEVENT")
	mustAdd(t, n, New("A"))
	n.CopyFrom(n)
	if n.Children().Len() != 1 {
		t.Errorf("self copy changed children: %v", names(n.Children()))
	}
}

func TestClone(t *testing.T) {
	p := New("P")
	n := New("VTODO")
	mustAdd(t, p, n)
	mustAdd(t, n, New("DUE"))
	c := n.Clone()
	if c == n || !Equal(c, n) || c.Parent() != p || c.Children().Len() != 1 {
		t.Errorf("Clone() = %s parent %v children %d", c, c.Parent(), c.Children().Len())
	}
	mustAdd(t, p, c)
	if diff := cmp.Diff([]string{"VTODO", "VTODO"}, names(p.Children())); diff != "" {
		t.Errorf("splice mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstruct(t *testing.T) {
	n := New("VEVENT")
	mustAdd(t, n, New("A"))
	n.Caps().SetNamed("k", 1)
	called := false
	n.OnGroupChanged(func(*Node, NameChange) { called = true })

	n.Reconstruct()
	n.Restored()
	if n.Children().Len() != 0 || n.Caps().Len() != 0 {
		t.Errorf("Reconstruct left state: %d children, %d caps", n.Children().Len(), n.Caps().Len())
	}
	if n.Children().Owner() != n {
		t.Errorf("rebuilt children not bound to node")
	}
	n.SetName("X")
	if called {
		t.Errorf("listener survived Reconstruct")
	}
}

func TestZeroValueNode(t *testing.T) {
	var p, c Node
	if err := p.Children().Add(&c); err != nil {
		t.Fatal(err)
	}
	if c.Parent() != &p || p.Children().Owner() != &p {
		t.Errorf("zero value node not usable")
	}
	c.Caps().SetNamed("x", 1)
	if c.Caps().Len() != 1 {
		t.Errorf("zero value caps not usable")
	}
}

func TestVisit(t *testing.T) {
	root := New("R")
	a, b := New("A"), New("B")
	mustAdd(t, root, a, b)
	mustAdd(t, a, New("A1"))

	var got []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			got = append(got, "/"+n.Name())
			return true, nil
		}
		got = append(got, n.Name())
		return n.Name() != "B", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"R", "A", "A1", "/A1", "/A", "B", "/B", "/R"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	err = root.Visit(func(n *Node, _ bool) (bool, error) {
		if n == a {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Visit error = %v, want stop", err)
	}
}

func TestPathAndDepth(t *testing.T) {
	cal := New("VCALENDAR")
	e1, e2 := New("VEVENT"), New("VEVENT")
	alarm := &Node{}
	mustAdd(t, cal, New("VTIMEZONE"), e1, e2)
	mustAdd(t, e2, alarm)

	tests := []struct {
		n     *Node
		path  string
		depth int
	}{
		{cal, "/VCALENDAR", 0},
		{e1, "/VCALENDAR/VEVENT[0]", 1},
		{e2, "/VCALENDAR/VEVENT[1]", 1},
		{alarm, "/VCALENDAR/VEVENT[1]/*", 2},
	}
	for _, tt := range tests {
		if got := tt.n.Path(); got != tt.path {
			t.Errorf("Path() = %q, want %q", got, tt.path)
		}
		if got := tt.n.Depth(); got != tt.depth {
			t.Errorf("%s Depth() = %d, want %d", tt.path, got, tt.depth)
		}
	}
}

func TestSetParentFixUp(t *testing.T) {
	p := New("VCALENDAR")
	src := New("VEVENT")
	mustAdd(t, p, src)

	cp := &Node{}
	cp.CopyFrom(src)
	cp.SetParent(nil)
	if cp.Parent() != nil || src.Parent() != p {
		t.Errorf("SetParent(nil) = %v, source parent %v", cp.Parent(), src.Parent())
	}
	// a parent installed without the collection is replaced by Add
	cp.SetParent(p)
	other := New("X")
	mustAdd(t, other, cp)
	if cp.Parent() != other || p.Children().Len() != 1 {
		t.Errorf("Add after SetParent: parent %v, P children %d", cp.Parent(), p.Children().Len())
	}
}

func TestReconstructStaleUnsubscribe(t *testing.T) {
	n := New("A")
	unsub := n.OnGroupChanged(func(*Node, NameChange) {})
	n.Reconstruct()

	count := 0
	n.OnGroupChanged(func(*Node, NameChange) { count++ })
	unsub()
	n.SetName("B")
	if count != 1 {
		t.Errorf("listener registered after Reconstruct called %d times, want 1", count)
	}
}
