package engine

// EventKind identifies a session state change.
type EventKind int

const (
	EventStarted EventKind = iota // session (re)started, round 1 generated
	EventCorrect                  // odd cell found; score/level advanced, new round live
	EventWrong                    // wrong cell picked; penalty applied in timed mode
	EventTick                     // one second elapsed
	EventEnded                    // countdown ran out or penalty drained it
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventCorrect:
		return "correct"
	case EventWrong:
		return "wrong"
	case EventTick:
		return "tick"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is delivered to the session listener after every state change, so
// the presentation layer can re-render and cue effects without polling.
type Event struct {
	Kind     EventKind
	Score    int
	TimeLeft int
	Level    int

	// Celebrate is set on EventEnded when the final score cleared the
	// celebration threshold.
	Celebrate bool
}

// Listener receives session events. It is invoked synchronously from
// Start/Select/Tick, on the same goroutine that mutates the session.
type Listener func(Event)
