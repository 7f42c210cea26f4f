package token

import "sort"

// edit is a single deferred splice: remove Remove events starting at
// Index in the un-edited main-pass log, then insert Events in their
// place.
type edit struct {
	Index  int
	Remove int
	Events []Event
}

// Map is the deferred edit buffer described in spec.md section 3: a
// sorted list of (index, remove_count, inserted_events) splices applied
// once, at the end of resolution, to produce the final event log.
//
// Resolvers describe rewrites against the un-edited main-pass log by
// index; Map.Apply rebases later splices as earlier ones shift the
// output, the same way scanio.ByteTokens.Truncate tracks a single
// running offset rather than mutating its backing slice in place as it
// goes.
type Map struct {
	edits []edit
}

// Add records a splice: remove `remove` events starting at `index` in
// the original log, replacing them with `events`. Index and remove are
// always relative to the original, un-edited log, regardless of edits
// already added — callers never need to account for earlier splices.
func (m *Map) Add(index, remove int, events []Event) {
	if remove == 0 && len(events) == 0 {
		return
	}
	m.edits = append(m.edits, edit{Index: index, Remove: remove, Events: events})
}

// Len reports how many splices are queued.
func (m *Map) Len() int { return len(m.edits) }

// Apply produces the final event log by applying all queued splices, in
// order of Index (stable for equal indices, so splices registered
// earlier land first), to the given main-pass log. It does not mutate
// events.
func (m *Map) Apply(events []Event) []Event {
	if len(m.edits) == 0 {
		return events
	}

	edits := make([]edit, len(m.edits))
	copy(edits, m.edits)
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].Index < edits[j].Index })

	out := make([]Event, 0, len(events))
	cursor := 0
	for _, e := range edits {
		if e.Index > cursor {
			out = append(out, events[cursor:e.Index]...)
		}
		out = append(out, e.Events...)
		cursor = e.Index + e.Remove
		if cursor > len(events) {
			cursor = len(events)
		}
	}
	if cursor < len(events) {
		out = append(out, events[cursor:]...)
	}
	return out
}

// Reset discards all queued splices, readying the Map for reuse.
func (m *Map) Reset() {
	m.edits = m.edits[:0]
}
