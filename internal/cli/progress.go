//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate defines the refresh frequency of the batch spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the batch progress reporter to be decoupled from a specific
// spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerProgressReporter reports batch progress through a terminal
// spinner. It implements [orchestration.ProgressReporter]. The zero value
// is not usable; construct it with [NewSpinnerProgressReporter].
type SpinnerProgressReporter struct {
	spinner Spinner
}

// NewSpinnerProgressReporter creates a reporter whose spinner writes to out.
//
// Parameters:
//   - out: The writer the spinner animates on, typically stderr.
//
// Returns:
//   - *SpinnerProgressReporter: A reporter ready for ExecuteBatch.
func NewSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	return &SpinnerProgressReporter{
		spinner: newSpinner(spinner.WithWriter(out)),
	}
}

// Start begins the spinner with the initial job count.
func (r *SpinnerProgressReporter) Start(total int) {
	r.spinner.UpdateSuffix(fmt.Sprintf(" solving 0/%d systems", total))
	r.spinner.Start()
}

// JobDone updates the spinner suffix with the completed count.
func (r *SpinnerProgressReporter) JobDone(done, total int) {
	r.spinner.UpdateSuffix(fmt.Sprintf(" solving %d/%d systems", done, total))
}

// Finish stops the spinner.
func (r *SpinnerProgressReporter) Finish() {
	r.spinner.Stop()
}
