// Package core defines the contract between a widget and its host.
//
// # Call Contract
//
// A host drives a widget tree through five stages, always in this order
// within one pass and always from one goroutine:
//
//	Event -> Lifecycle -> Update -> Layout -> Paint
//
// Event is the only stage that receives a mutable pointer to the data.
// Requests made while handling an event (RequestPaint, RequestLayout) are
// honored by the same pass, before the host accepts the next event.
//
// # Host-Owned State
//
// Flags such as active, hot, and disabled belong to the host. Widgets see
// them through the WidgetState capability embedded in every context and
// change only the active flag, via EventCtx.SetActive.
//
// # Composition
//
// Containers hold children in a WidgetPod, which owns the child's flags,
// translates pointer positions into child coordinates, tracks hot state,
// and forwards requests to the parent. Containers must pass every event
// and lifecycle notification to every child pod; the pod decides what the
// child actually receives.
package core
