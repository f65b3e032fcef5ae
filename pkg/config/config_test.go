package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, module, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module "+module+"\n\ngo 1.24\n"), 0o644))
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0o644))
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "example.com/games/tetrix/v2", "")
	res, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "example.com/games/tetrix/v2", res.ModulePath)
	assert.Equal(t, "tetrix", res.Title)
	assert.Equal(t, DefaultWidth, res.Width)
	assert.Equal(t, DefaultHeight, res.Height)
	assert.Equal(t, filepath.Join(dir, "assets"), res.State.AssetRoot)
	assert.Equal(t, DefaultIterationCap, res.State.IterationCap)
	assert.True(t, res.State.SoundOn())
	assert.InDelta(t, 1.0/60, res.State.DeltaTime, 1e-9)
}

func TestResolveFile(t *testing.T) {
	dir := writeProject(t, "example.com/menu", `
window:
  title: Main Menu
  width: 320
  height: 200
display:
  zoom: 2
  fps: 30
audio:
  enabled: false
assets:
  root: /opt/strata/assets
layout:
  iteration_cap: 50
`)
	res, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "Main Menu", res.Title)
	assert.Equal(t, 320, res.Width)
	assert.Equal(t, 200, res.Height)
	assert.Equal(t, 2.0, res.State.Zoom)
	assert.Equal(t, 30, res.State.FPS)
	assert.InDelta(t, 1.0/30, res.State.DeltaTime, 1e-9)
	assert.False(t, res.State.AudioEnabled)
	assert.False(t, res.State.SoundOn())
	assert.Equal(t, "/opt/strata/assets", res.State.AssetRoot)
	assert.Equal(t, 50, res.State.IterationCap)
}

func TestLoadOptionalErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "window: [1, 2"},
		{"negative size", "window:\n  width: -1\n"},
		{"negative fps", "display:\n  fps: -5\n"},
		{"negative cap", "layout:\n  iteration_cap: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, "example.com/x", tt.yaml)
			_, err := LoadOptional(dir)
			assert.Error(t, err)
		})
	}
}

func TestResolveRequiresGoMod(t *testing.T) {
	_, err := Resolve(t.TempDir())
	assert.Error(t, err)
}

func TestFindRoot(t *testing.T) {
	dir := writeProject(t, "example.com/x", "")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := findRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestStateTick(t *testing.T) {
	s := NewState()
	s.FPS = 0
	assert.Equal(t, 1.0, s.Tick(), "fps below one is treated as one")

	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.FPS = 50
	s.Clock = clk
	assert.InDelta(t, 0.02, s.Tick(), 1e-9, "first measured tick uses the fixed delta")
	clk.now = clk.now.Add(35 * time.Millisecond)
	assert.InDelta(t, 0.035, s.Tick(), 1e-9)
	clk.now = clk.now.Add(-time.Second)
	assert.Equal(t, 0.0, s.Tick())
}

func TestJoystickRegistry(t *testing.T) {
	s := NewState()
	s.RegisterJoystick(Joystick{ID: 3, Name: "pad"})
	s.RegisterJoystick(Joystick{ID: 7})
	s.RegisterJoystick(Joystick{ID: 3, Name: "pad2"})

	j, ok := s.Joystick(3)
	require.True(t, ok)
	assert.Equal(t, "pad2", j.Name)
	assert.Len(t, s.Joysticks(), 2)

	assert.True(t, s.RemoveJoystick(7))
	assert.False(t, s.RemoveJoystick(7))

	s.SyncJoysticks([]int{3, 9})
	ids := []int{}
	for _, j := range s.Joysticks() {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []int{3, 9}, ids)
	j, _ = s.Joystick(3)
	assert.Equal(t, "pad2", j.Name)
}
