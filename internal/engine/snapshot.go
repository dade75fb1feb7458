package engine

// Snapshot captures the complete session state for rendering and
// determinism tests.
type Snapshot struct {
	Status   Status
	Score    int
	TimeLeft int
	Level    int

	// Current round
	GridSize  int
	DiffIndex int
	Base      Color
	Diff      Color
	Delta     int

	// Last solved round, for the end-of-game display
	HasSummary bool
	Summary    RoundSummary
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:    s.status,
		Score:     s.score,
		TimeLeft:  s.timeLeft,
		Level:     s.level,
		GridSize:  s.round.GridSize,
		DiffIndex: s.round.DiffIndex,
		Base:      s.round.Base,
		Diff:      s.round.Diff,
		Delta:     s.round.Delta,
	}
	if s.lastSummary != nil {
		snap.HasSummary = true
		snap.Summary = *s.lastSummary
	}
	return snap
}
