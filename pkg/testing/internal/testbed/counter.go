package testbed

import (
	"strconv"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/widgets"
)

// Counter is a focusable box showing a count that increments on every
// primary-button press or Enter.
type Counter struct {
	element.ZStack
	count int
	label *widgets.Label
	OnTap func(count int)
}

// NewCounter returns a counter starting at initial.
func NewCounter(tree *element.Tree, initial int) *Counter {
	c := &Counter{count: initial}
	c.InitZStack(c, tree, element.ZStackClass)
	c.SetFocusable(true)
	c.label = widgets.NewLabel(tree, strconv.Itoa(initial))
	_ = c.Append(c.label)
	return c
}

// Count returns the current count.
func (c *Counter) Count() int { return c.count }

func (c *Counter) HandleEvent(ev events.Event) bool {
	switch {
	case ev.Type == events.PointerDown && ev.Button == 0,
		ev.Type == events.KeyDown && ev.Key == events.KeyEnter:
		c.count++
		c.label.SetText(strconv.Itoa(c.count))
		if c.OnTap != nil {
			c.OnTap(c.count)
		}
		return true
	}
	return false
}
