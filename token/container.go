package token

// Container is per-active-container scratch state, one instance per
// nesting level, created at block open and destroyed at block close —
// the analogue of scandown.Block, but owned by the tokenizer rather than
// returned as a scan token.
type Container struct {
	// Size is how many indent columns the container's prefix claims;
	// continuation lines must reproduce this indent (list items), or
	// less of it to remain a lazily-permitted blank continuation.
	Size int

	// BlankInitial records whether the first line after the container
	// opened was itself blank; a container that opened blank cannot
	// accept a further blank continuation line (spec.md section 4.3).
	BlankInitial bool
}
