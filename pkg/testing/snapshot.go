package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/widgets"
)

// UpdateSnapshotsEnv names the environment variable that makes MatchesFile
// rewrite golden files instead of comparing against them.
const UpdateSnapshotsEnv = "STRATA_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the element tree of every layer and, optionally, the
// drawing operations of the last frame.
type Snapshot struct {
	Layers []*Node `json:"layers"`
	Ops    []Op    `json:"ops,omitempty"`
}

// Node is one element in a serialized tree.
type Node struct {
	ID       string         `json:"id"`
	Class    string         `json:"class"`
	Rect     [4]float64     `json:"rect"`
	Focused  bool           `json:"focused,omitempty"`
	Hidden   bool           `json:"hidden,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// CaptureSnapshot serializes the element trees of every layer, bottom to
// top. Drawing operations are left out; see CaptureSnapshotWithOps.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	counter := &typeCounter{}
	for _, l := range t.view.Layers() {
		snap.Layers = append(snap.Layers, captureNode(l.Layer, counter))
	}
	return snap
}

// CaptureSnapshotWithOps is CaptureSnapshot plus the operations the
// recorder saw during the last Pump.
func (t *Tester) CaptureSnapshotWithOps() *Snapshot {
	snap := t.CaptureSnapshot()
	snap.Ops = append([]Op(nil), t.renderer.Ops()...)
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// STRATA_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// typeCounter assigns IDs like "Button#0", "Button#1" in traversal order,
// so snapshots do not depend on arena handles.
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(class string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[class]
	c.counts[class] = n + 1
	return fmt.Sprintf("%s#%d", class, n)
}

// geometry is the part of element.Base a snapshot reads.
type geometry interface {
	Rect() graphics.Rect
	Visible() bool
	HasFocus() bool
}

type stateful interface {
	States() *render.StateController
}

type scrollable interface {
	Offset() float64
}

func captureNode(e element.Element, counter *typeCounter) *Node {
	class := e.TraitClass().Name()
	node := &Node{ID: counter.next(class), Class: class}
	if g, ok := e.(geometry); ok {
		r := g.Rect()
		node.Rect = [4]float64{round2(r.X), round2(r.Y), round2(r.W), round2(r.H)}
		node.Focused = g.HasFocus()
		node.Hidden = !g.Visible()
	}
	if props := captureProps(e); len(props) > 0 {
		node.Props = props
	}
	for _, ch := range children(e) {
		node.Children = append(node.Children, captureNode(ch, counter))
	}
	return node
}

// captureProps records the user-visible state of the widgets.
func captureProps(e element.Element) map[string]any {
	props := make(map[string]any)
	switch w := e.(type) {
	case *widgets.Label:
		props["text"] = w.Text()
	case *widgets.Toggle:
		props["on"] = w.On()
	case *widgets.Slider:
		props["value"] = round2(w.Value())
	case *widgets.TextField:
		props["text"] = w.Text()
		props["cursor"] = w.Cursor()
	}
	if b, ok := e.(stateful); ok && b.States() != nil {
		props["state"] = b.States().State()
	}
	if s, ok := e.(scrollable); ok {
		if off := s.Offset(); off != 0 {
			props["offset"] = round2(off)
		}
	}
	return props
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	n := max(len(expectedLines), len(actualLines))
	for i := 0; i < n; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
