package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total          int // scene files discovered
	Current        int
	Scenes         int // scenes resolved
	Skipped        int // scenes with nothing to bake
	Failed         int // load, output, or round trip failures
	Sets           int
	SetsWithIssues int
	Issues         map[string]int // first issue code of each flagged set
	Objects        int
	RoundTrips     int // dry bakes restored and verified
}

// Clean reports whether every scene was resolved without failures.
func (s *RunStats) Clean() bool {
	return s.Failed == 0
}
