package clone

// State is a stage of the clone pipeline. States only move forward.
type State int

const (
	StateIdle State = iota
	StateParsed
	StateCacheEnsured
	StateCloned
	StateRefResolved
	StateDone
)

var stateNames = [...]string{
	StateIdle:         "idle",
	StateParsed:       "parsed",
	StateCacheEnsured: "cache-ensured",
	StateCloned:       "cloned",
	StateRefResolved:  "ref-resolved",
	StateDone:         "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
