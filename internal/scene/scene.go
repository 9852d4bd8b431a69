// Package scene is the boundary between the game core and whatever draws it.
//
// The core attaches and detaches handles; frontends walk the Graph each frame
// and decide how each Kind looks. Nothing here knows about pixels.
package scene

// Kind tells a renderer what a handle represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindAnimation
	KindScore
	KindButton
	KindLogo
)

// Handle is an opaque reference to something drawable.
type Handle interface {
	Kind() Kind
}

// Renderer is what the core mutates when entities appear or disappear.
type Renderer interface {
	Attach(h Handle)
	Detach(h Handle)
}

// Graph is a retained, ordered scene. Later attachments draw on top.
type Graph struct {
	nodes []Handle
}

// Compile-time check that Graph implements Renderer.
var _ Renderer = (*Graph)(nil)

// NewGraph creates an empty scene.
func NewGraph() *Graph {
	return &Graph{}
}

// Attach adds h on top of the scene. Attaching an attached handle is a no-op.
func (g *Graph) Attach(h Handle) {
	if h == nil || g.Contains(h) {
		return
	}
	g.nodes = append(g.nodes, h)
}

// Detach removes h. Detaching an absent handle is a no-op.
func (g *Graph) Detach(h Handle) {
	for i, n := range g.nodes {
		if n == h {
			copy(g.nodes[i:], g.nodes[i+1:])
			g.nodes[len(g.nodes)-1] = nil
			g.nodes = g.nodes[:len(g.nodes)-1]
			return
		}
	}
}

// Contains reports whether h is attached.
func (g *Graph) Contains(h Handle) bool {
	for _, n := range g.nodes {
		if n == h {
			return true
		}
	}
	return false
}

// Len returns the number of attached handles.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Count returns how many attached handles are of kind k.
func (g *Graph) Count(k Kind) int {
	n := 0
	for _, h := range g.nodes {
		if h.Kind() == k {
			n++
		}
	}
	return n
}

// Each calls fn for every handle, bottom to top.
func (g *Graph) Each(fn func(h Handle)) {
	for _, h := range g.nodes {
		fn(h)
	}
}
