// Package widgets provides the widgets built on the core contract.
//
// Every widget is generic over the application data type T and
// implements core.Widget[T]. Containers keep their children in
// core.WidgetPod values and forward every stage to them.
//
// # Controls
//
// [Slider] edits a float64 within a range, optionally snapped to a step.
// [Button] runs a callback when a press is released over it.
//
// # Display
//
// [Label] draws one line of fixed or data-derived text.
//
// # Layout
//
// [Flex] lays children out in a row or column, splitting free space between
// flex children. [SizedBox] forces a size: [Expanded] fills the offered
// space and [Fixed] asks for an exact one. [Either] switches between two
// children.
//
// # Controllers
//
// A [Controller] sees the event, lifecycle and update calls of the widget
// it is attached to before the widget does. Attach one with
// [NewControllerHost]; [Click] is the stock controller for click handling.
//
// # Builders
//
// Widgets are created with New functions and configured with chained
// methods that return the receiver:
//
//	slider := widgets.NewSlider().WithRange(-1, 1).WithStep(0.25)
//	row := widgets.Row[Model]().
//	    MainAxisAlignment(widgets.MainAxisAlignmentCenter).
//	    WithFlexChild(slider, 1)
package widgets
