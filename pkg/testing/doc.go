// Package testing provides a widget testing harness for slate.
//
// # Quick Start
//
// Create a tester around a widget and its data, send pointer input, and
// make assertions on the data and the painted output:
//
//	func TestMySlider(t *testing.T) {
//	    tester := slatetest.NewWidgetTesterWithT(t, widgets.NewSlider(), 0.0)
//
//	    tester.TapAt(graphics.Offset{X: 90, Y: 9})
//
//	    if tester.Data() < 0.8 {
//	        t.Errorf("value = %v", tester.Data())
//	    }
//	    if !tester.Find(slatetest.ByKind(graphics.OpCircle)).Exists() {
//	        t.Error("expected a knob")
//	    }
//	}
//
// Every tester installs an errors.Collector for its lifetime, so warnings
// emitted by widgets are available through Warnings.
//
// # Stage Tracing
//
// The tester records the stage of every call the window makes. Use
// AssertStageOrder to check that no stage ran out of order within a pass.
//
// # Snapshot Testing
//
// Capture and compare display list snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/slider.snapshot.json")
//
// Update snapshots with:
//
//	SLATE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import slatetest "github.com/go-drift/slate/pkg/testing"
package testing
