package pipeline

import (
	"github.com/samber/lo"

	"github.com/backmassage/webpix/internal/convert"
)

// RunStats tracks aggregate counters and byte totals across a batch run.
// Byte totals only include items that produced an output.
type RunStats struct {
	Total            int
	Converted        int
	Partial          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceSaved returns the aggregate byte difference between inputs and outputs.
// Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}

// Stats tallies outcomes.
func Stats(outcomes []convert.Outcome) RunStats {
	s := RunStats{
		Total:     len(outcomes),
		Converted: lo.CountBy(outcomes, convert.Outcome.OK),
		Partial:   lo.CountBy(outcomes, convert.Outcome.Partial),
		Failed:    lo.CountBy(outcomes, convert.Outcome.Failed),
	}
	for _, o := range outcomes {
		if o.Output == "" {
			continue
		}
		s.TotalInputBytes += o.InputBytes
		s.TotalOutputBytes += o.OutputBytes
	}
	return s
}
