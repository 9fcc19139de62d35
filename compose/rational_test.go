package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/compose"
	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// epsilonClosure returns every state reachable from states via epsilon arcs
// (including the states themselves).
func epsilonClosure(f fst.Fst, states map[fst.StateId]bool) map[fst.StateId]bool {
	closure := make(map[fst.StateId]bool, len(states))
	var stack []fst.StateId
	for s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			if a.ILabel == fst.Epsilon && !closure[a.NextState] {
				closure[a.NextState] = true
				stack = append(stack, a.NextState)
			}
		}
	}
	return closure
}

// accepts performs subset-construction-style NFA simulation (epsilon
// closures interleaved with real-label steps) and reports whether any
// state in the final frontier is final. Handles the epsilon arcs Union,
// Concat, and Closure introduce, unlike a plain deterministic walk.
func accepts(f fst.Fst, labels []fst.Label) bool {
	if f.Start() == fst.NoStateId {
		return false
	}
	frontier := epsilonClosure(f, map[fst.StateId]bool{f.Start(): true})
	for _, l := range labels {
		next := map[fst.StateId]bool{}
		for s := range frontier {
			for ai := f.Arcs(s); !ai.Done(); ai.Next() {
				a := ai.Value()
				if a.ILabel == l {
					next[a.NextState] = true
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		frontier = epsilonClosure(f, next)
	}
	for s := range frontier {
		w := f.Final(s)
		if !w.ApproxEqual(w.Zero(), 0) {
			return true
		}
	}
	return false
}

func TestUnionAcceptsEitherLanguage(t *testing.T) {
	a := buildChain([]fst.Label{1})
	b := buildChain([]fst.Label{2})
	u := compose.Union(a, b, semiring.TropicalZero)

	assert.True(t, accepts(u, []fst.Label{1}))
	assert.True(t, accepts(u, []fst.Label{2}))
	assert.False(t, accepts(u, []fst.Label{3}))
}

func TestConcatAcceptsOnlyConcatenation(t *testing.T) {
	a := buildChain([]fst.Label{1})
	b := buildChain([]fst.Label{2})
	c := compose.Concat(a, b, semiring.TropicalZero)

	assert.True(t, accepts(c, []fst.Label{1, 2}))
	assert.False(t, accepts(c, []fst.Label{1}))
	assert.False(t, accepts(c, []fst.Label{2}))
	assert.False(t, accepts(c, []fst.Label{2, 1}))
}

func TestClosureStarAcceptsEmptyAndRepeats(t *testing.T) {
	a := buildChain([]fst.Label{1})
	star := compose.Closure(a, semiring.TropicalZero, false)

	assert.True(t, accepts(star, []fst.Label{}))
	assert.True(t, accepts(star, []fst.Label{1}))
	assert.True(t, accepts(star, []fst.Label{1, 1}))
	assert.True(t, accepts(star, []fst.Label{1, 1, 1}))
	assert.False(t, accepts(star, []fst.Label{2}))
}

func TestClosurePlusRequiresAtLeastOneRepeat(t *testing.T) {
	a := buildChain([]fst.Label{1})
	plus := compose.Closure(a, semiring.TropicalZero, true)

	assert.False(t, accepts(plus, []fst.Label{}))
	assert.True(t, accepts(plus, []fst.Label{1}))
	assert.True(t, accepts(plus, []fst.Label{1, 1}))
}
