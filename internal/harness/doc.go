// Package harness runs YAML scenarios against a pipeline backed by a fresh
// in-memory store and checks the outcome.
//
// A scenario is an ordered list of steps, each naming a user action:
//
//   - submit: parse "values" as comma-separated numbers and store them with "note"
//   - fit: run a fit cycle
//   - metrics: read the current metrics
//
// Every step appends one TraceEvent to the result. A step may carry an
// expect clause (notice code, inserted count, metrics within a tolerance);
// scenario-level assertions check the final store state.
//
// Fit-cycle ids are fixed ("cycle-1", "cycle-2", ...) so traces are
// reproducible and can be compared against golden files with RunWithGolden.
package harness
