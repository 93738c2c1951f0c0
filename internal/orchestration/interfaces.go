package orchestration

// ProgressReporter receives completion notifications during a batch run.
// Implementations must tolerate concurrent JobDone calls.
type ProgressReporter interface {
	// Start is called once before the first job begins, with the total
	// number of jobs.
	Start(total int)
	// JobDone is called after each job completes, with the number of
	// completed jobs so far.
	JobDone(done, total int)
	// Finish is called once after the last job completes.
	Finish()
}

// NullProgressReporter discards all progress notifications. It is used in
// quiet mode and in tests.
type NullProgressReporter struct{}

// Start implements ProgressReporter.
func (NullProgressReporter) Start(int) {}

// JobDone implements ProgressReporter.
func (NullProgressReporter) JobDone(int, int) {}

// Finish implements ProgressReporter.
func (NullProgressReporter) Finish() {}
