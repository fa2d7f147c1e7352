// Package stepper holds the configuration state machine behind the stepper
// configurator.
//
// A Config is one consistent set of display options plus the step cursor.
// Every change arrives as an Intent and goes through Reduce, which keeps the
// cross-field rules intact:
//
//   - vertical layout and alternative labels are mutually exclusive
//   - body content requires vertical layout without alternative labels
//   - turning fill on leaves accordion mode; turning accordion on keeps fill
//
// Resolve turns a Config into the View a renderer needs (icon sequence,
// effective fill mode, per-step content) and ResolveControls reports which
// navigation affordances are enabled. Configurator wraps the reducer with a
// setter per field and synchronous change notification.
package stepper
