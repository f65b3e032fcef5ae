package testing

import (
	"testing"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/testing/internal/testbed"
	"github.com/go-drift/strata/pkg/widgets"
)

// mountFixture mounts a row with a counter, a labelled button and a box.
func mountFixture(t *testing.T) *Tester {
	t.Helper()
	tester := NewTesterWithT(t)
	tree := tester.Tree()
	root := testbed.NewRow(tree,
		testbed.NewCounter(tree, 3),
		widgets.NewButton(tree, "Submit", nil),
		testbed.NewLayoutBox(tree, 10, 10, graphics.ColorGreen),
	)
	if err := tester.Mount(root); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return tester
}

func TestByType(t *testing.T) {
	tester := mountFixture(t)

	if got := tester.Find(ByType[*widgets.Button]()).Count(); got != 1 {
		t.Errorf("expected 1 button, got %d", got)
	}
	if got := tester.Find(ByType[*widgets.Label]()).Count(); got != 2 {
		t.Errorf("expected 2 labels, got %d", got)
	}
	if tester.Find(ByType[*widgets.Slider]()).Exists() {
		t.Error("expected no slider")
	}
}

func TestByText(t *testing.T) {
	tester := mountFixture(t)

	if !tester.Find(ByText("Submit")).Exists() {
		t.Error("expected to find 'Submit'")
	}
	if tester.Find(ByText("Sub")).Exists() {
		t.Error("ByText should match whole text only")
	}
}

func TestByTextContaining(t *testing.T) {
	tester := mountFixture(t)

	if got := tester.Find(ByTextContaining("ubm")).Count(); got != 1 {
		t.Errorf("expected 1 match, got %d", got)
	}
}

func TestByClass(t *testing.T) {
	tester := mountFixture(t)

	// The button's class derives from BoxClass, the counter's does not.
	if got := tester.Find(ByClass(widgets.BoxClass)).Count(); got != 1 {
		t.Errorf("expected 1 box, got %d", got)
	}
	if got := tester.Find(ByClass(element.ZStackClass)).Count(); got != 2 {
		t.Errorf("expected counter and button as zstacks, got %d", got)
	}
}

func TestByName(t *testing.T) {
	tester := mountFixture(t)
	b := tester.Find(ByType[*widgets.Button]()).First()

	if got := tester.Find(ByName(b.String())).FirstOrNil(); got != b {
		t.Errorf("expected %s, got %v", b, got)
	}
}

func TestFinderResult_FirstOrNil(t *testing.T) {
	tester := mountFixture(t)

	if tester.Find(ByText("missing")).FirstOrNil() != nil {
		t.Error("expected nil for no match")
	}
}

func TestFinderResult_First_PanicsOnEmpty(t *testing.T) {
	tester := mountFixture(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	tester.Find(ByText("missing")).First()
}

func TestFinderResult_At(t *testing.T) {
	tester := mountFixture(t)
	labels := tester.Find(ByType[*widgets.Label]())

	if labels.At(1) != labels.All()[1] {
		t.Error("At and All disagree")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out of range index")
		}
	}()
	labels.At(5)
}

func TestByPredicate(t *testing.T) {
	tester := mountFixture(t)
	focusable := tester.Find(ByPredicate(func(e element.Element) bool {
		f, ok := e.(interface{ Focusable() bool })
		return ok && f.Focusable()
	}))

	if got := focusable.Count(); got != 2 {
		t.Errorf("expected counter and button to be focusable, got %d", got)
	}
}

func TestDescendant(t *testing.T) {
	tester := mountFixture(t)
	label := tester.Find(Descendant(ByType[*testbed.Counter](), ByType[*widgets.Label]()))

	if got := label.Count(); got != 1 {
		t.Fatalf("expected the counter's label only, got %d", got)
	}
	if text := label.First().(*widgets.Label).Text(); text != "3" {
		t.Errorf("expected '3', got %q", text)
	}
}

func TestAncestor(t *testing.T) {
	tester := mountFixture(t)
	button := tester.Find(Ancestor(ByText("Submit"), ByType[*widgets.Button]()))

	if !button.Exists() {
		t.Fatal("expected the button above its label")
	}
	if _, ok := button.First().(*widgets.Button); !ok {
		t.Errorf("expected *widgets.Button, got %T", button.First())
	}
}
