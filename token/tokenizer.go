package token

// Construct is a named parser for one grammatical structure. Start is
// its entry state function; Construct has no continuation field, and a
// construct with container continuation exposes it as a separate
// function (see construct.ListItemCont).
type Construct struct {
	Name  string
	Start StateFn
}

// Resolver is a post-pass function that rewrites the event log via
// Tokenizer.Map to express structure that cannot be decided during the
// single forward scan (spec.md section 4, list-item grouping being the
// worked example).
type Resolver func(t *Tokenizer)

type namedResolver struct {
	name string
	fn   Resolver
}

// frame is a saved attempt/check checkpoint: event log length, cursor
// position, and container-stack depth, restored wholesale on rollback.
// Spec.md's design notes call this out explicitly: "snapshot only
// sizes... and the cursor triple; rollback is truncation."
type frame struct {
	eventsLen    int
	point        Point
	containerLen int
	interrupt    bool
}

// Tokenizer drives state functions against a byte source, owning the
// cursor, the event log, the container stack, and the resolver
// registry. It is the runtime described in spec.md section 4.1.
//
// Like scandown.BlockStack, a Tokenizer is not safe for concurrent use;
// it is meant to be driven synchronously by one dispatch loop.
type Tokenizer struct {
	ParseState *ParseState

	Events []Event
	Map    Map

	point Point

	containers []Container
	resolvers  []namedResolver

	// Interrupt is true while a new block is being probed against an
	// open paragraph, restricting which constructs may start (spec.md
	// section 4.1).
	Interrupt bool

	current  StateFn
	lastGoOk bool
}

// NewTokenizer constructs a Tokenizer over ps, ready to dispatch from
// byte offset 0, line 1, column 1.
func NewTokenizer(ps *ParseState, start StateFn) *Tokenizer {
	return &Tokenizer{
		ParseState: ps,
		point:      Point{Offset: 0, Line: 1, Column: 1},
		current:    start,
	}
}

// Current returns the byte under the cursor, and ok=false at end of
// input.
func (t *Tokenizer) Current() (b byte, ok bool) {
	if t.point.Offset >= len(t.ParseState.Bytes) {
		return 0, false
	}
	return t.ParseState.Bytes[t.point.Offset], true
}

// AtEOF reports whether the cursor has reached the end of input.
func (t *Tokenizer) AtEOF() bool { return t.point.Offset >= len(t.ParseState.Bytes) }

// Point returns the tokenizer's current position.
func (t *Tokenizer) Point() Point { return t.point }

// Consume advances the cursor by one byte, updating line/column/vs.
// Panics at end of input, the same "never reach an unreachable branch"
// contract spec.md section 4.1 places on well-formed constructs.
func (t *Tokenizer) Consume() {
	b, ok := t.Current()
	if !ok {
		panic("token: Consume at end of input")
	}
	t.point.advance(b)
}

// Enter appends an Enter(typ) event at the current point.
func (t *Tokenizer) Enter(typ Type) {
	t.Events = append(t.Events, Event{Kind: Enter, Type: typ, Point: t.point, previous: -1, next: -1})
}

// EnterWithContent appends an Enter(typ) event tagged with a content
// type, marking the span for a second-pass subtokenizer.
func (t *Tokenizer) EnterWithContent(typ Type, ct ContentType) {
	t.Events = append(t.Events, Event{Kind: Enter, Type: typ, Point: t.point, Content: ct, previous: -1, next: -1})
}

// Exit appends an Exit(typ) event at the current point, closing the
// innermost unclosed Enter(typ).
func (t *Tokenizer) Exit(typ Type) {
	t.Events = append(t.Events, Event{Kind: Exit, Type: typ, Point: t.point, previous: -1, next: -1})
}

// Link threads the Enter event at index onto the back-pointer chain of
// the most recently entered event sharing the same content type,
// implementing the "link" operation from spec.md section 3 and the
// design notes ("implementers should store these indices on the event
// record"). It walks backward from index looking for the nearest prior
// Enter with the same ContentType.
func (t *Tokenizer) Link(index int) {
	ct := t.Events[index].Content
	if ct == NoContent {
		return
	}
	for i := index - 1; i >= 0; i-- {
		e := t.Events[i]
		if e.Kind == Enter && e.Content == ct {
			t.Events[index].previous = i
			t.Events[i].next = index
			return
		}
	}
}

// Container returns a mutable pointer to the scratch state of the
// currently innermost open container, or nil if none is open.
func (t *Tokenizer) Container() *Container {
	if len(t.containers) == 0 {
		return nil
	}
	return &t.containers[len(t.containers)-1]
}

// PushContainer opens a new container scratch frame, owned by the
// tokenizer for the lifetime of the enclosing block.
func (t *Tokenizer) PushContainer(c Container) {
	t.containers = append(t.containers, c)
}

// PopContainer destroys the innermost container's scratch state.
func (t *Tokenizer) PopContainer() {
	t.containers = t.containers[:len(t.containers)-1]
}

// Depth reports how many containers are currently open.
func (t *Tokenizer) Depth() int {
	return len(t.containers)
}

// ContainerAt returns a mutable pointer to the i-th open container,
// counting from the outermost (0) to the innermost (Depth()-1). A
// document driver walking nested list items needs to address a
// specific depth's scratch state directly, not just the top of the
// stack that Container returns.
func (t *Tokenizer) ContainerAt(i int) *Container {
	return &t.containers[i]
}

// Peek runs fn under a snapshot/restore pair and reports whether it
// reached Ok, without leaving any trace in the event log, point, or
// container stack. It is Check's procedural twin, for callers (like the
// document driver) that want a plain bool rather than a continuation.
func (t *Tokenizer) Peek(fn StateFn) bool {
	fr := t.snapshot()
	ok := t.runTo(fn).IsOk()
	t.restore(fr)
	return ok
}

// Go runs partial as a sub-state-machine to completion (Ok or Nok),
// fully handling its own bytes, then dispatches to after with that
// outcome available via the returned StateFn boundary. Unlike Attempt,
// Go performs no rollback: the partial is expected to always want its
// side effects kept, matching its use for mandatory sub-grammars like
// space_or_tab_min_max.
func (t *Tokenizer) Go(partial StateFn, after StateFn) StateFn {
	return func(tok *Tokenizer) State {
		state := tok.runTo(partial)
		tok.lastGoOk = state.IsOk()
		return after(tok)
	}
}

// LastGoOk reports whether the state function most recently driven by
// Go completed with Ok rather than Nok.
func (t *Tokenizer) LastGoOk() bool { return t.lastGoOk }

// Attempt speculatively runs construct; on Nok, it rolls back the event
// log, cursor, and container stack to their pre-attempt values before
// invoking then(false); on Ok it invokes then(true) with the attempt's
// effects kept.
func (t *Tokenizer) Attempt(construct StateFn, then func(ok bool) StateFn) StateFn {
	return func(tok *Tokenizer) State {
		fr := tok.snapshot()
		state := tok.runTo(construct)
		if state.IsOk() {
			return then(true)(tok)
		}
		tok.restore(fr)
		return then(false)(tok)
	}
}

// Check speculatively runs construct purely as look-ahead: it always
// rolls back, on both Ok and Nok, before invoking then(ok).
func (t *Tokenizer) Check(construct StateFn, then func(ok bool) StateFn) StateFn {
	return func(tok *Tokenizer) State {
		fr := tok.snapshot()
		state := tok.runTo(construct)
		ok := state.IsOk()
		tok.restore(fr)
		return then(ok)(tok)
	}
}

// Exec drives construct to a terminal State and keeps its effects
// regardless of outcome (no rollback). It is Go's uncommitted cousin:
// where Go always proceeds to an after state, Exec is for a caller (the
// document content driver) that needs the Ok/Nok verdict itself to
// decide what happens next, while still committing whatever the
// construct already did to the log and cursor on the way there.
func (t *Tokenizer) Exec(construct StateFn) State {
	return t.runTo(construct)
}

// RegisterResolverBefore registers a resolver, idempotent by name.
// Resolvers run in the order their name was first registered,
// regardless of how many times a construct calls this again for the
// same name.
func (t *Tokenizer) RegisterResolverBefore(name string, fn Resolver) {
	for _, r := range t.resolvers {
		if r.name == name {
			return
		}
	}
	t.resolvers = append(t.resolvers, namedResolver{name: name, fn: fn})
}

// snapshot captures the attempt/check frame described in spec.md's
// design notes.
func (t *Tokenizer) snapshot() frame {
	return frame{
		eventsLen:    len(t.Events),
		point:        t.point,
		containerLen: len(t.containers),
		interrupt:    t.Interrupt,
	}
}

// restore truncates the tokenizer back to a previously captured frame.
// No event is ever copied out; this is truncation, per the design
// notes' "speculative attempts without heap cloning".
func (t *Tokenizer) restore(fr frame) {
	t.Events = t.Events[:fr.eventsLen]
	t.point = fr.point
	t.containers = t.containers[:fr.containerLen]
	t.Interrupt = fr.interrupt
}

// runTo drives start to a terminal State, feeding it the tokenizer's
// current byte stream one Fn hop at a time, without touching t.current
// (the outer dispatch loop's own state) — used by Go/Attempt/Check to
// run a nested construct to completion inline.
//
// A state function is free to inspect Current() at end of input (it
// reports ok=false) and decide Ok or Nok from there; runTo does not
// second-guess that decision. A construct that returns Fn(next) forever
// without ever consuming the (exhausted) input is a programming error,
// the same "never reach an unreachable branch" contract spec.md places
// on well-formed constructs.
func (t *Tokenizer) runTo(start StateFn) State {
	state := start(t)
	for !state.IsDone() {
		state = state.next(t)
	}
	return state
}

// Run drives the tokenizer's top-level state function until input is
// exhausted or a terminal outcome escapes the top frame, then applies
// all registered resolvers and the event map, returning the finalized
// event log.
func (t *Tokenizer) Run() []Event {
	state := t.runTo(t.current)
	_ = state // the top-level construct's own Ok/Nok carries no further meaning once it escapes
	for _, r := range t.resolvers {
		r.fn(t)
	}
	return t.Map.Apply(t.Events)
}
