// Package orchestration runs the selected Fibonacci calculators one after
// another, times them and compares their results. Presentation is reached
// only through the ProgressReporter and ResultPresenter interfaces.
package orchestration
