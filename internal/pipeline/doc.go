// Package pipeline wires the store and the trend fitter into the operations
// a user can trigger: submitting samples, running a fit cycle, and reading
// back the current metrics or the schema.
//
// Every operation is synchronous and runs to completion before returning.
// Errors are returned unchanged from the layer that produced them; use
// Describe to turn any of them into a user-facing Notice.
package pipeline
