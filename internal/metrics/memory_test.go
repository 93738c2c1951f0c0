package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be non-zero in a running process")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be non-zero in a running process")
	}
	if snap.HeapSys < snap.HeapAlloc {
		t.Errorf("HeapSys (%d) should be at least HeapAlloc (%d)", snap.HeapSys, snap.HeapAlloc)
	}
}

func TestRecordSolve(t *testing.T) {
	// Counters are global; just exercise the paths for each outcome.
	for _, outcome := range []string{OutcomeSolved, OutcomeEmpty, OutcomeInvalid, OutcomeUnbounded} {
		RecordSolve(outcome, 2, 0.001)
	}
}
