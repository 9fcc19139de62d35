// ShortestDistance implements the generic queue-based relaxation algorithm
// of §4.6.2: for every state s, the Plus-sum over every path from Start to
// s of that path's Times-weight. The queue discipline is pluggable
// (QueueFIFO, QueueLIFO, QueueStateOrder, QueueShortestFirst) so callers
// can match it to what their semiring and Fst topology guarantee;
// QueueAuto inspects both and picks one itself.
//
// This generalizes the teacher's dijkstra package's lazy-decrease-key
// relaxation loop (push a fresh queue entry whenever a state's distance
// improves, rather than mutating an entry in place) from a single priority
// discipline over int64 distances to any Weight semiring and any of the
// four disciplines above.
package algorithms

import (
	"container/heap"

	"github.com/golang/glog"

	"github.com/wfstgo/wfst/fst"
	"github.com/wfstgo/wfst/semiring"
)

// QueueKind selects ShortestDistance's traversal discipline.
type QueueKind int

const (
	// QueueAuto inspects f's properties and the weight semiring's
	// properties to pick a discipline: QueueStateOrder if f is known
	// top-sorted, else QueueShortestFirst if the weight semiring is a
	// path semiring, else QueueFIFO.
	QueueAuto QueueKind = iota
	QueueFIFO
	QueueLIFO
	QueueStateOrder
	QueueShortestFirst
)

// Options configures ShortestDistance.
type Options struct {
	Queue    QueueKind
	Delta    float64 // ApproxEqual tolerance for convergence, per §4.6.2.
	MaxSteps int     // relaxation-loop budget; 0 means (n+1)*(n+1)*4 for an n-state Fst.
	// VerifyProperties mirrors §6.5's verify_properties knob: when set,
	// QueueAuto forces a fresh single-pass scan of f's sortedness bits
	// (fst.Properties(mask, true)) instead of trusting whatever is already
	// cached on f, at the cost of that scan on every call.
	VerifyProperties bool
}

// Option is a functional option for ShortestDistance.
type Option func(*Options)

// DefaultOptions returns QueueAuto with a tight convergence tolerance, no
// explicit step cap (ShortestDistance derives one from the Fst's size),
// and cached (not re-verified) properties.
func DefaultOptions() Options {
	return Options{Queue: QueueAuto, Delta: 1e-6}
}

// WithQueue overrides the traversal discipline.
func WithQueue(k QueueKind) Option { return func(o *Options) { o.Queue = k } }

// WithDelta overrides the convergence tolerance.
func WithDelta(delta float64) Option { return func(o *Options) { o.Delta = delta } }

// WithVerifyProperties toggles forced property re-verification in QueueAuto.
func WithVerifyProperties(on bool) Option {
	return func(o *Options) { o.VerifyProperties = on }
}

// WithMaxSteps caps the number of relaxation steps; exceeding it returns
// ErrNonTermination rather than looping forever on a cyclic Fst over a
// non-k-closed semiring.
func WithMaxSteps(n int) Option { return func(o *Options) { o.MaxSteps = n } }

// stateQueue is the minimal interface every queue discipline implements.
type stateQueue interface {
	push(s fst.StateId)
	pop() fst.StateId
	empty() bool
}

type fifoQueue struct{ items []fst.StateId }

func (q *fifoQueue) push(s fst.StateId) { q.items = append(q.items, s) }
func (q *fifoQueue) pop() fst.StateId {
	s := q.items[0]
	q.items = q.items[1:]
	return s
}
func (q *fifoQueue) empty() bool { return len(q.items) == 0 }

type lifoQueue struct{ items []fst.StateId }

func (q *lifoQueue) push(s fst.StateId) { q.items = append(q.items, s) }
func (q *lifoQueue) pop() fst.StateId {
	n := len(q.items) - 1
	s := q.items[n]
	q.items = q.items[:n]
	return s
}
func (q *lifoQueue) empty() bool { return len(q.items) == 0 }

// shortestFirstQueue is a min-heap over (state, key) pairs ordered by a
// semiring-supplied "better than" comparator, mirroring dijkstra's nodePQ
// lazy-decrease-key pattern: re-pushing a state with an improved key is
// cheaper than mutating a heap entry in place. A stale entry is not
// skipped: it is popped and processed again, but its residual r[s] is
// already Zero by then, so the relaxation it triggers changes nothing.
type sdItem struct {
	s   fst.StateId
	key semiring.Weight
}
type shortestFirstQueue struct {
	items []sdItem
	less  func(a, b semiring.Weight) bool
}

func (q *shortestFirstQueue) Len() int { return len(q.items) }
func (q *shortestFirstQueue) Less(i, j int) bool {
	return q.less(q.items[i].key, q.items[j].key)
}
func (q *shortestFirstQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *shortestFirstQueue) Push(x any)    { q.items = append(q.items, x.(sdItem)) }
func (q *shortestFirstQueue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

// dominates reports whether a is at least as good as b under Plus (valid
// only when the semiring is idempotent / a path semiring, per §4.6.3).
func dominates(a, b semiring.Weight) bool {
	return a.Plus(b).ApproxEqual(a, 0)
}

// ShortestDistance runs the generic relaxation loop of §4.6.2 and returns
// d(s) for every state s, indexed by StateId (states f never visits keep
// their Zero value).
func ShortestDistance(f fst.Fst, opts ...Option) ([]semiring.Weight, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if f.Start() == fst.NoStateId {
		return nil, nil
	}
	zero := pickZeroFrom(f)
	one := zero.One()

	n := 0
	for it := f.States(); !it.Done(); it.Next() {
		if int(it.Value())+1 > n {
			n = int(it.Value()) + 1
		}
	}
	d := make([]semiring.Weight, n)
	r := make([]semiring.Weight, n)
	for i := range d {
		d[i] = zero
		r[i] = zero
	}
	d[f.Start()] = one
	r[f.Start()] = one

	kind := cfg.Queue
	if kind == QueueAuto {
		if f.Properties(fst.TopSortedYes, cfg.VerifyProperties)&fst.TopSortedYes != 0 {
			kind = QueueStateOrder
		} else if zero.Properties()&semiring.PathProperty != 0 {
			kind = QueueShortestFirst
		} else {
			kind = QueueFIFO
		}
	}

	maxSteps := cfg.MaxSteps
	if maxSteps == 0 {
		maxSteps = (n + 1) * (n + 1) * 4
	}

	enqueued := make(map[fst.StateId]bool)
	var q stateQueue
	var heapQ *shortestFirstQueue
	switch kind {
	case QueueLIFO:
		q = &lifoQueue{}
	case QueueStateOrder:
		q = &stateOrderQueue{}
	case QueueShortestFirst:
		heapQ = &shortestFirstQueue{less: dominates}
		heap.Init(heapQ)
	default:
		q = &fifoQueue{}
	}

	pushState := func(s fst.StateId) {
		if heapQ != nil {
			heap.Push(heapQ, sdItem{s: s, key: d[s]})
			return
		}
		if !enqueued[s] {
			enqueued[s] = true
			q.push(s)
		}
	}
	pushState(f.Start())

	steps := 0
	for {
		var s fst.StateId
		if heapQ != nil {
			if heapQ.Len() == 0 {
				break
			}
			s = heap.Pop(heapQ).(sdItem).s
		} else {
			if q.empty() {
				break
			}
			s = q.pop()
			enqueued[s] = false
		}

		steps++
		if steps > maxSteps {
			if glog.V(1) {
				glog.Infof("shortestdistance: exceeded %d steps over %d states, aborting", maxSteps, n)
			}
			return d, ErrNonTermination
		}

		rs := r[s]
		r[s] = zero
		for ai := f.Arcs(s); !ai.Done(); ai.Next() {
			a := ai.Value()
			t := a.NextState
			cand := d[t].Plus(rs.Times(a.Weight))
			if !cand.ApproxEqual(d[t], cfg.Delta) {
				d[t] = cand
				r[t] = r[t].Plus(rs.Times(a.Weight))
				pushState(t)
			}
		}
	}
	return d, nil
}

// stateOrderQueue processes states in ascending StateId order — correct in
// one pass on a top-sorted acyclic Fst, since every arc then goes from a
// lower to a higher id.
type stateOrderQueue struct{ pending map[fst.StateId]bool }

func (q *stateOrderQueue) push(s fst.StateId) {
	if q.pending == nil {
		q.pending = make(map[fst.StateId]bool)
	}
	q.pending[s] = true
}
func (q *stateOrderQueue) pop() fst.StateId {
	min := fst.StateId(-1)
	for s := range q.pending {
		if min == -1 || s < min {
			min = s
		}
	}
	delete(q.pending, min)
	return min
}
func (q *stateOrderQueue) empty() bool { return len(q.pending) == 0 }
