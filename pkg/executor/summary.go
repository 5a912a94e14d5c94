package executor

import "github.com/arthur-debert/charon/pkg/actions"

// Summary counts outcomes across a run
type Summary struct {
	DryRun      bool
	Actions     int
	Copied      int
	Overwritten int
	Skipped     int
	Failed      int
	DirsCreated int
	DirsExisted int
	Conflicts   int
	// Claimed lists every destination in execution order
	Claimed []string
	Results []actions.Result
}

// Add folds one result into the summary
func (s *Summary) Add(res actions.Result) {
	s.Actions++
	s.Results = append(s.Results, res)
	for _, e := range res.Entries {
		s.Claimed = append(s.Claimed, e.Dest)
		switch e.Status {
		case actions.StatusCopied:
			s.Copied++
			if e.Overwritten {
				s.Overwritten++
			}
		case actions.StatusSkippedExists:
			s.Skipped++
		case actions.StatusCopyFailed, actions.StatusDirFailed:
			s.Failed++
		case actions.StatusDirCreated:
			s.DirsCreated++
		case actions.StatusDirExists:
			s.DirsExisted++
		case actions.StatusDirConflict:
			s.Conflicts++
		}
	}
}

// HasFailures reports whether any destination failed
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}
