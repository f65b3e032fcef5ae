package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusFIFO(t *testing.T) {
	b := NewBus()
	b.Post(Event{Type: KeyDown, Key: KeyTab})
	b.Post(Event{Type: KeyUp, Key: KeyTab})
	assert.Equal(t, 2, b.Len())

	ev, ok := b.Poll()
	assert.True(t, ok)
	assert.Equal(t, KeyDown, ev.Type)
	ev, _ = b.Poll()
	assert.Equal(t, KeyUp, ev.Type)
	_, ok = b.Poll()
	assert.False(t, ok)
}

func TestBusSubscribe(t *testing.T) {
	b := NewBus()
	var got []string
	cancel := b.Subscribe(ViewExitFinished, func(ev Event) { got = append(got, "typed") })
	b.SubscribeAll(func(ev Event) { got = append(got, ev.Type.String()) })

	b.Dispatch(Event{Type: ViewExitFinished})
	b.Dispatch(Event{Type: ScrollMoved})
	cancel()
	b.Dispatch(Event{Type: ViewExitFinished})

	assert.Equal(t, []string{"typed", "ViewExitFinished", "ScrollMoved", "ViewExitFinished"}, got)
}

func TestPumpDeliversChainedEvents(t *testing.T) {
	b := NewBus()
	b.Subscribe(ViewExitStarted, func(Event) { b.Post(Event{Type: ViewExitFinished}) })
	b.Post(Event{Type: ViewExitStarted})

	out := b.Pump()
	if assert.Len(t, out, 2) {
		assert.Equal(t, ViewExitFinished, out[1].Type)
	}
	assert.Zero(t, b.Len())
}

func TestTypeNames(t *testing.T) {
	for _, ty := range Types() {
		assert.NotEqual(t, "Type(?)", ty.String())
	}
	assert.True(t, PointerWheel.IsPointer())
	assert.False(t, ElementFocused.IsInput())
	assert.True(t, (ModShift | ModCtrl).Has(ModCtrl))
}
