package token

// Outcome is the terminal verdict a construct reports once it stops
// asking the runtime to dispatch more bytes to it.
type Outcome int

// Outcome values, matching spec.md section 4.1's three-variant State sum:
// Ok | Nok | Fn(next).
const (
	outcomeFn Outcome = iota
	outcomeOk
	outcomeNok
)

// StateFn is a state function: given a Tokenizer it inspects Current and
// either consumes it (or not) and returns the next StateFn to dispatch
// on the following byte, or returns a terminal State via Ok/Nok.
type StateFn func(t *Tokenizer) State

// State is the result of a StateFn: either a terminal Ok/Nok, or a
// continuation naming the next StateFn to run.
type State struct {
	outcome Outcome
	next    StateFn
}

// Ok reports that the construct matched; control returns to the caller
// that invoked it (directly, or via Attempt/Check/Go).
var Ok = State{outcome: outcomeOk}

// Nok reports that the construct did not match here; the caller must
// try an alternative.
var Nok = State{outcome: outcomeNok}

// Fn builds a continuation state: dispatch the next byte to next.
func Fn(next StateFn) State { return State{outcome: outcomeFn, next: next} }

// IsOk reports whether s is the terminal Ok outcome.
func (s State) IsOk() bool { return s.outcome == outcomeOk }

// IsNok reports whether s is the terminal Nok outcome.
func (s State) IsNok() bool { return s.outcome == outcomeNok }

// IsDone reports whether s is a terminal outcome (Ok or Nok).
func (s State) IsDone() bool { return s.outcome != outcomeFn }
