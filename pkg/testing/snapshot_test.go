package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/testing/internal/testbed"
	"github.com/go-drift/strata/pkg/widgets"
)

// fakeT records failures instead of failing the surrounding test.
type fakeT struct {
	fatals []string
	errors []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func snapshotFixture(t *testing.T) (*Tester, *widgets.Toggle) {
	t.Helper()
	tester := NewTesterWithT(t)
	tree := tester.Tree()
	toggle := widgets.NewToggle(tree, "Sound", nil)
	root := testbed.NewRow(tree, toggle, testbed.NewLayoutBox(tree, 20, 10, graphics.ColorRed))
	if err := tester.Mount(root); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return tester, toggle
}

func TestCaptureSnapshot_Structure(t *testing.T) {
	tester, _ := snapshotFixture(t)
	snap := tester.CaptureSnapshot()

	if len(snap.Layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(snap.Layers))
	}
	base := snap.Layers[0]
	if base.Class != "Layer" || len(base.Children) != 1 {
		t.Fatalf("expected a layer with one root, got %+v", base)
	}
	row := base.Children[0]
	if row.ID != "Stack#0" || len(row.Children) != 2 {
		t.Fatalf("expected Stack#0 with 2 children, got %s with %d", row.ID, len(row.Children))
	}
	toggle := row.Children[0]
	if toggle.Class != widgets.ToggleClass.Name() {
		t.Errorf("expected toggle first, got %s", toggle.Class)
	}
	if on, ok := toggle.Props["on"].(bool); !ok || on {
		t.Errorf("expected on=false prop, got %v", toggle.Props["on"])
	}
	if toggle.Props["state"] != widgets.StateNormal {
		t.Errorf("expected normal state, got %v", toggle.Props["state"])
	}
	if snap.Ops != nil {
		t.Error("expected no ops without CaptureSnapshotWithOps")
	}
}

func TestCaptureSnapshot_ScrollOffset(t *testing.T) {
	tester := NewTesterWithT(t)
	tree := tester.Tree()
	sc := element.NewScroll(tree, layout.Vertical)
	list := element.NewVStack(tree)
	for range 10 {
		if err := list.Append(testbed.NewLayoutBox(tree, 20, 50, graphics.ColorBlue)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := sc.SetChild(list); err != nil {
		t.Fatalf("SetChild: %v", err)
	}
	if err := tester.Mount(sc); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	node := tester.CaptureSnapshot().Layers[0].Children[0]
	if _, ok := node.Props["offset"]; ok {
		t.Errorf("expected no offset prop at rest, got %v", node.Props["offset"])
	}

	sc.SetOffset(60)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	node = tester.CaptureSnapshot().Layers[0].Children[0]
	if node.Props["offset"] != 60.0 {
		t.Errorf("expected offset 60, got %v", node.Props["offset"])
	}
}

func TestCaptureSnapshotWithOps(t *testing.T) {
	tester, _ := snapshotFixture(t)
	snap := tester.CaptureSnapshotWithOps()

	if len(snap.Ops) == 0 {
		t.Fatal("expected recorded ops")
	}
	found := false
	for _, op := range snap.Ops {
		if op.Op == "rect" && op.Color == serializeColor(graphics.ColorRed) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the red box among %v", snap.Ops)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester, _ := snapshotFixture(t)

	if diff := tester.CaptureSnapshot().Diff(tester.CaptureSnapshot()); diff != "" {
		t.Errorf("expected no diff, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester, toggle := snapshotFixture(t)
	before := tester.CaptureSnapshot()

	toggle.SetOn(true)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	diff := tester.CaptureSnapshot().Diff(before)
	if !strings.Contains(diff, `"on": true`) {
		t.Errorf("expected the toggle change in the diff, got:\n%s", diff)
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	tester, _ := snapshotFixture(t)
	path := filepath.Join(t.TempDir(), "nested", "row.snapshot.json")
	snap := tester.CaptureSnapshot()

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errors) != 0 {
		t.Errorf("expected match, got fatals=%v errors=%v", ft.fatals, ft.errors)
	}
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	tester, _ := snapshotFixture(t)
	ft := &fakeT{}

	tester.CaptureSnapshot().MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], UpdateSnapshotsEnv) {
		t.Errorf("expected missing-file failure naming %s, got %v", UpdateSnapshotsEnv, ft.fatals)
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	tester, toggle := snapshotFixture(t)
	path := filepath.Join(t.TempDir(), "row.json")
	if err := tester.CaptureSnapshot().UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	toggle.SetOn(true)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.errors) != 1 || !strings.Contains(ft.errors[0], "snapshot mismatch") {
		t.Errorf("expected a mismatch error, got %v", ft.errors)
	}
}

func TestSnapshot_MatchesFile_Invalid(t *testing.T) {
	tester, _ := snapshotFixture(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "invalid snapshot JSON") {
		t.Errorf("expected invalid JSON failure, got %v", ft.fatals)
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	tester, _ := snapshotFixture(t)
	path := filepath.Join(t.TempDir(), "created.json")

	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errors) != 0 {
		t.Fatalf("expected silent update, got fatals=%v errors=%v", ft.fatals, ft.errors)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected snapshot file to be written: %v", err)
	}
}
