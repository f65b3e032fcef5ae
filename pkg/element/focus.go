package element

import (
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/focus"
	"github.com/go-drift/strata/pkg/graphics"
)

// FocusRequest is one step of focus traversal handed to FocusChain.
type FocusRequest struct {
	Dir focus.Direction
	// Prev is the element the request comes from: the focused element on
	// the first step, the child that bubbled, or the parent descending.
	// Nil when traversal starts at the layer.
	Prev Element
	// From is the rect of the focused element, for geometric choices.
	From graphics.Rect
}

// FocusResult tells the driver what to do next. Target is set for Move
// and Focus.
type FocusResult struct {
	Action focus.Action
	Target Element
}

// FocusOutcome is the overall result of Layer.MoveFocus.
type FocusOutcome int

const (
	// FocusUnchanged means no element accepted the move.
	FocusUnchanged FocusOutcome = iota
	// FocusMoved means another element is now focused.
	FocusMoved
	// FocusExit means focus left the layer through an out move.
	FocusExit
)

func (o FocusOutcome) String() string {
	switch o {
	case FocusMoved:
		return "moved"
	case FocusExit:
		return "exit"
	default:
		return "unchanged"
	}
}

// MoveFocus moves the layer's focus in direction dir. Containers are asked
// one step at a time: Move descends into the target, Bubble climbs to the
// parent, and Focus ends the walk. A sequential move bubbling past the
// layer wraps around once.
func (l *Layer) MoveFocus(dir focus.Direction) FocusOutcome {
	cur := l.Focused()
	req := FocusRequest{Dir: dir}
	var node Element = l
	if cur != nil {
		node = cur
		req.Prev = cur
		req.From = cur.base().rect
	} else if dir == focus.Out {
		return FocusExit
	}

	wrapped := false
	limit := 4*l.tree.Len() + 8
	for range limit {
		res := node.FocusChain(req)
		switch res.Action {
		case focus.Stay:
			return FocusUnchanged
		case focus.Focus:
			if res.Target == nil || res.Target == cur {
				return FocusUnchanged
			}
			l.SetFocus(res.Target)
			return FocusMoved
		case focus.Move:
			req.Prev = node
			node = res.Target
		case focus.Bubble:
			parent := node.base().parent
			if parent != nil {
				req.Prev = node
				node = parent
				continue
			}
			switch {
			case dir == focus.Out:
				return FocusExit
			case dir.IsSequential() && !wrapped:
				wrapped = true
				req.Prev = nil
			default:
				return FocusUnchanged
			}
		}
	}
	errors.Logger().Warn("focus traversal did not settle", "layer", l.name, "dir", dir.String())
	return FocusUnchanged
}
