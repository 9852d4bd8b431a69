package loop

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfighter/internal/anim"
	"github.com/tomz197/starfighter/internal/clock"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/scene"
	"github.com/tomz197/starfighter/internal/score"
)

const tick = 10 * time.Millisecond

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// seqRand returns vals in order, wrapping around.
type seqRand struct {
	vals []float64
	next int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.next%len(r.vals)]
	r.next++
	return v
}

type fixture struct {
	clock *clock.Clock
	graph *scene.Graph
	input *input.State
	anim  *anim.Player
	score *score.Tracker
	deps  Deps
	base  int // Clock registrations present before any screen or round
}

func newFixture(t *testing.T, r Rand) *fixture {
	t.Helper()
	f := &fixture{
		clock: clock.New(),
		graph: scene.NewGraph(),
		input: input.NewState(),
		score: score.NewTracker(),
	}
	f.anim = anim.NewPlayer(f.clock, f.graph)
	f.deps = Deps{
		Clock:  f.clock,
		Scene:  f.graph,
		Input:  f.input,
		Anim:   f.anim,
		Score:  f.score,
		Rand:   r,
		Logger: log.New(io.Discard),
	}
	f.base = f.clock.Pending()
	return f
}

func (f *fixture) ticks(n int) {
	for range n {
		f.clock.Advance(tick)
	}
}
