// Package trend fits a least-squares line over a sample sequence and scores
// how well the line explains the samples.
//
// The independent variable is the 0-based position of each value in the
// input slice. All functions are pure: they never retain or mutate their
// inputs.
//
//	predicted, err := trend.Fit(values)
//	metrics, err := trend.Score(values, predicted)
package trend
