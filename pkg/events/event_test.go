package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/strata/pkg/graphics"
)

func TestArrowKeysAndKeyTypes(t *testing.T) {
	assert.Equal(t, "Up", KeyArrowUp.String())
	assert.Equal(t, "Down", KeyArrowDown.String())
	assert.Equal(t, "KeyDown", KeyDown.String())
	assert.Equal(t, "KeyUp", KeyUp.String())

	assert.Equal(t, "KeyDown(Down)", Event{Type: KeyDown, Key: KeyArrowDown}.String())
	assert.Equal(t, "KeyUp(Up)", Event{Type: KeyUp, Key: KeyArrowUp}.String())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "PointerDown(3,4)", Event{Type: PointerDown, Pos: graphics.Offset{X: 3, Y: 4}}.String())
	assert.Equal(t, "ViewExitFinished", Event{Type: ViewExitFinished}.String())
	assert.Equal(t, "Unknown", Key(999).String())
}

func TestTypeClassification(t *testing.T) {
	assert.True(t, KeyDown.IsInput())
	assert.False(t, KeyDown.IsPointer())
	assert.True(t, PointerWheel.IsPointer())
	assert.False(t, ClickedUp.IsInput())
}
