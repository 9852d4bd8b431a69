package scene

import "testing"

type node struct {
	kind Kind
	name string
}

func (n *node) Kind() Kind { return n.kind }

func TestAttachDetachIdempotent(t *testing.T) {
	g := NewGraph()
	a := &node{kind: KindPlayer, name: "a"}
	b := &node{kind: KindEnemy, name: "b"}

	g.Attach(a)
	g.Attach(a)
	g.Attach(b)
	if g.Len() != 2 {
		t.Fatalf("len = %d, want 2", g.Len())
	}

	g.Detach(a)
	g.Detach(a)
	if g.Len() != 1 || g.Contains(a) || !g.Contains(b) {
		t.Fatalf("unexpected graph after detach: len=%d", g.Len())
	}
	g.Attach(nil)
	if g.Len() != 1 {
		t.Fatal("nil handle must not be attached")
	}
}

func TestEachPreservesOrder(t *testing.T) {
	g := NewGraph()
	nodes := []*node{{name: "bg"}, {name: "ship"}, {name: "hud"}}
	for _, n := range nodes {
		g.Attach(n)
	}
	g.Detach(nodes[1])

	var got []string
	g.Each(func(h Handle) { got = append(got, h.(*node).name) })
	if len(got) != 2 || got[0] != "bg" || got[1] != "hud" {
		t.Fatalf("order = %v, want [bg hud]", got)
	}
}

func TestCountByKind(t *testing.T) {
	g := NewGraph()
	g.Attach(&node{kind: KindEnemy})
	g.Attach(&node{kind: KindEnemy})
	g.Attach(&node{kind: KindProjectile})
	if got := g.Count(KindEnemy); got != 2 {
		t.Fatalf("enemies = %d, want 2", got)
	}
	if got := g.Count(KindPlayer); got != 0 {
		t.Fatalf("players = %d, want 0", got)
	}
}
