package element

import (
	"fmt"
	"slices"

	"github.com/go-drift/strata/pkg/errors"
)

// DefaultIterationCap bounds the passes Drain makes before it gives up on
// layout that keeps changing.
const DefaultIterationCap = 300

type queueKind int

const (
	rectQueue queueKind = iota
	minSizeQueue
	canFocusQueue
)

// queue is a deduplicated work list of elements.
type queue struct {
	items []Element
	set   map[Handle]bool
}

func (q *queue) add(e Element) {
	h := e.base().handle
	if q.set == nil {
		q.set = make(map[Handle]bool)
	}
	if q.set[h] {
		return
	}
	q.set[h] = true
	q.items = append(q.items, e)
}

// take empties the queue and returns its live elements ordered by depth.
func (q *queue) take(deepestFirst bool) []Element {
	items := slices.DeleteFunc(q.items, func(e Element) bool { return e.base().released })
	q.items = nil
	q.set = nil
	slices.SortStableFunc(items, func(a, b Element) int {
		if deepestFirst {
			return b.base().depth - a.base().depth
		}
		return a.base().depth - b.base().depth
	})
	return items
}

// Queues holds the pending layout work of one layer.
type Queues struct {
	rect     queue
	minSize  queue
	canFocus queue
}

func (q *Queues) add(k queueKind, e Element) {
	switch k {
	case rectQueue:
		q.rect.add(e)
	case minSizeQueue:
		q.minSize.add(e)
	case canFocusQueue:
		q.canFocus.add(e)
	}
}

// Pending returns the number of queued elements per queue.
func (q *Queues) Pending() (rect, minSize, canFocus int) {
	return len(q.rect.items), len(q.minSize.items), len(q.canFocus.items)
}

// Empty reports whether no layout work is pending.
func (q *Queues) Empty() bool {
	r, m, c := q.Pending()
	return r == 0 && m == 0 && c == 0
}

// drain runs the queues in their fixed order until all are empty: can-focus
// deepest first, then minimum sizes deepest first, then rects shallowest
// first. Each round counts against limit.
func (q *Queues) drain(limit int) (int, error) {
	if limit <= 0 {
		limit = DefaultIterationCap
	}
	for i := 0; ; i++ {
		if q.Empty() {
			return i, nil
		}
		if i >= limit {
			return i, &errors.InternalError{
				Op:     "element.Drain",
				Reason: fmt.Sprintf("layout did not converge after %d iterations", limit),
			}
		}
		for len(q.canFocus.items) > 0 {
			for _, e := range q.canFocus.take(true) {
				e.base().updateCanFocus()
			}
		}
		for len(q.minSize.items) > 0 {
			for _, e := range q.minSize.take(true) {
				if err := e.base().updateMinSize(); err != nil {
					return i, err
				}
			}
		}
		for len(q.rect.items) > 0 {
			for _, e := range q.rect.take(false) {
				if err := e.base().updateRect(); err != nil {
					return i, err
				}
			}
		}
	}
}
