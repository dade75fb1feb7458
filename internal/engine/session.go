package engine

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle    Status = iota // created, no round yet
	StatusPlaying               // countdown running, selections accepted
	StatusEnded                 // clock ran out; frozen until Start
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// RoundSummary is a snapshot of a solved round's color pair, kept for the
// end-of-game display.
type RoundSummary struct {
	Base  Color
	Diff  Color
	Delta int
}

// Session owns the mutable game state across its idle/playing/ended
// lifecycle. It is the sole mutator of that state: the platform dispatches
// Start, Select and Tick and reads snapshots back.
//
// Session is not internally synchronized. All three commands and the
// listener run on whatever goroutine calls them; the caller must serialize
// (the TUI drives everything from the Bubble Tea update loop).
type Session struct {
	rules Rules
	gen   *Generator

	status      Status
	score       int
	timeLeft    int
	level       int
	round       Round
	lastSummary *RoundSummary

	listener Listener
}

// NewSession creates an idle session. No round exists until Start.
func NewSession(rules Rules, gen *Generator) *Session {
	return &Session{
		rules:  rules,
		gen:    gen,
		status: StatusIdle,
	}
}

// SetListener registers the change-notification callback. Pass nil to
// disable notifications.
func (s *Session) SetListener(l Listener) {
	s.listener = l
}

// Start begins a fresh game from idle or ended state: score, clock and
// level reset, round 1 generated. Starting over an already-playing session
// also performs a full reset.
func (s *Session) Start() {
	s.status = StatusPlaying
	s.score = 0
	s.timeLeft = s.rules.InitialSeconds
	s.level = 1
	s.round = s.gen.Generate(1)
	s.lastSummary = nil
	s.emit(EventStarted)
}

// Select handles the player picking cell index on the current board.
//
// Correct picks advance level and score by exactly one each and generate
// the next round; the solved round's colors are kept as the last summary.
// Wrong picks cost PenaltySeconds in timed mode; if that drains the clock
// the session ends immediately. Selections outside the board, or while not
// playing, are silent no-ops.
func (s *Session) Select(index int) {
	if s.status != StatusPlaying {
		return
	}
	if index < 0 || index >= s.round.Cells() {
		return
	}

	if index == s.round.DiffIndex {
		summary := RoundSummary{
			Base:  s.round.Base,
			Diff:  s.round.Diff,
			Delta: s.round.Delta,
		}
		s.lastSummary = &summary
		s.score++
		s.level++
		s.round = s.gen.Generate(s.level)
		s.emit(EventCorrect)
		return
	}

	if s.rules.Timed {
		s.timeLeft -= s.rules.PenaltySeconds
		if s.timeLeft < 0 {
			s.timeLeft = 0
		}
	}
	s.emit(EventWrong)

	if s.rules.Timed && s.timeLeft == 0 {
		s.end()
	}
}

// Tick advances the countdown by one second. While more than one second
// remains it decrements; the tick at one second left zeroes the clock and
// ends the session. No-op while not playing, and in zen mode.
func (s *Session) Tick() {
	if s.status != StatusPlaying || !s.rules.Timed {
		return
	}
	if s.timeLeft > 1 {
		s.timeLeft--
		s.emit(EventTick)
		return
	}
	s.timeLeft = 0
	s.end()
}

func (s *Session) end() {
	s.status = StatusEnded
	s.emit(EventEnded)
}

func (s *Session) emit(kind EventKind) {
	if s.listener == nil {
		return
	}
	ev := Event{
		Kind:     kind,
		Score:    s.score,
		TimeLeft: s.timeLeft,
		Level:    s.level,
	}
	if kind == EventEnded {
		ev.Celebrate = s.score > s.rules.CelebrationScore
	}
	s.listener(ev)
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Score returns the number of rounds solved this game.
func (s *Session) Score() int {
	return s.score
}

// TimeLeft returns the remaining seconds. Meaningless in zen mode.
func (s *Session) TimeLeft() int {
	return s.timeLeft
}

// Level returns the current 1-indexed difficulty level.
func (s *Session) Level() int {
	return s.level
}

// Round returns the current round. Zero value while idle.
func (s *Session) Round() Round {
	return s.round
}

// LastSummary returns the most recently solved round's color pair, and
// whether one exists. It is set only by correct answers and cleared on
// Start.
func (s *Session) LastSummary() (RoundSummary, bool) {
	if s.lastSummary == nil {
		return RoundSummary{}, false
	}
	return *s.lastSummary, true
}

// Rules returns the tuning this session runs under.
func (s *Session) Rules() Rules {
	return s.rules
}
