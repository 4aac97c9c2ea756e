package usecase

// SyncSummary tallies the outcome of one reconciliation run. Every record a
// sync touches lands in exactly one bucket.
type SyncSummary struct {
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

func (s *SyncSummary) Merge(other SyncSummary) {
	s.Inserted += other.Inserted
	s.Updated += other.Updated
	s.Unchanged += other.Unchanged
	s.Skipped += other.Skipped
	s.Failed += other.Failed
}

func (s SyncSummary) Total() int {
	return s.Inserted + s.Updated + s.Unchanged + s.Skipped + s.Failed
}

type syncOutcome int

const (
	outcomeInserted syncOutcome = iota
	outcomeUpdated
	outcomeUnchanged
)

func (s *SyncSummary) count(outcome syncOutcome) {
	switch outcome {
	case outcomeInserted:
		s.Inserted++
	case outcomeUpdated:
		s.Updated++
	case outcomeUnchanged:
		s.Unchanged++
	}
}
