// Package testing drives a strata View frame by frame for tests.
//
// # Quick Start
//
// Create a tester, mount a root element and make assertions:
//
//	func TestSubmit(t *testing.T) {
//	    tester := stratatest.NewTesterWithT(t)
//	    button := widgets.NewButton(tester.Tree(), "Submit", nil)
//	    tester.Mount(button)
//
//	    // Find elements
//	    label := tester.Find(stratatest.ByText("Submit")).First()
//
//	    // Simulate input; every gesture pumps a frame
//	    tester.Tap(stratatest.ByText("Submit"))
//	    tester.Press(events.KeyEnter)
//	}
//
// # Snapshot Testing
//
// Capture and compare element tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_view.snapshot.json")
//
// Update snapshots with:
//
//	STRATA_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// The view's clock is a FakeClock and every Pump advances it by one frame,
// so trait animations and layer transitions are deterministic:
//
//	tester.PumpFor(100 * time.Millisecond)
//	tester.PumpAndSettle(time.Second)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import stratatest "github.com/go-drift/strata/pkg/testing"
package testing
