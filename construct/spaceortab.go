package construct

import (
	"math"

	"github.com/jcorbin/mdcore/token"
)

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

// unbounded is used wherever the original grammar says "as much as
// possible", matching markdown-rs's usize::MAX in e.g. list.rs's start.
const unbounded = math.MaxInt32

// SpaceOrTabMinMax is the space_or_tab_min_max(min, max) partial from
// spec.md section 4.2: consume between min and max space-or-tab bytes,
// emitting a single SpaceOrTab span iff at least one byte was consumed,
// succeeding only if at least min were consumed.
func SpaceOrTabMinMax(min, max int) token.StateFn {
	return spaceOrTabBefore(min, max, 0)
}

// SpaceOrTab consumes any run of space-or-tab bytes, always succeeding
// (min 0); a convenience for callers that only want the indentation
// skipped, not bounded.
func SpaceOrTab() token.StateFn {
	return SpaceOrTabMinMax(0, unbounded)
}

func spaceOrTabBefore(min, max, size int) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		if b, ok := t.Current(); ok && isSpaceOrTab(b) && size < max {
			t.Enter(token.SpaceOrTab)
			t.Consume()
			return token.Fn(spaceOrTabInside(min, max, size+1))
		}
		return spaceOrTabFinish(min, size)(t)
	}
}

func spaceOrTabInside(min, max, size int) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		if b, ok := t.Current(); ok && isSpaceOrTab(b) && size < max {
			t.Consume()
			return token.Fn(spaceOrTabInside(min, max, size+1))
		}
		t.Exit(token.SpaceOrTab)
		return spaceOrTabFinish(min, size)(t)
	}
}

func spaceOrTabFinish(min, size int) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		if size >= min {
			return token.Ok
		}
		return token.Nok
	}
}

// EOLOptions configures SpaceOrTabEOLWithOptions.
type EOLOptions struct {
	// ContentType, when not token.NoContent, is the content type the
	// permitted line ending is tagged with; when Connect is true the
	// line ending is linked onto the most recent span of that type.
	ContentType token.ContentType
	// Connect requests that any emitted span be linked to the previous
	// data span of the same content type (spec.md section 3's "link"
	// operation), for callers reconstructing a logical run split across
	// lines.
	Connect bool
}

// SpaceOrTabEOLWithOptions is space_or_tab_eol_with_options from
// spec.md section 4.2: optional space/tab, then exactly one line
// ending, then optional space/tab — but Nok if that trailing whitespace
// is itself followed by a second line ending (a blank line), since
// titles (its only caller here) forbid blank lines.
func SpaceOrTabEOLWithOptions(opts EOLOptions) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		return t.Go(SpaceOrTabMinMax(0, unbounded), eolAtBreak(opts))(t)
	}
}

func eolAtBreak(opts EOLOptions) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		b, ok := t.Current()
		if !ok || b != '\n' {
			return token.Nok
		}
		if opts.ContentType != token.NoContent {
			t.EnterWithContent(token.LineEnding, opts.ContentType)
			if opts.Connect {
				t.Link(len(t.Events) - 1)
			}
		} else {
			t.Enter(token.LineEnding)
		}
		t.Consume()
		t.Exit(token.LineEnding)
		return token.Fn(t.Go(SpaceOrTabMinMax(0, unbounded), eolAfter(opts)))
	}
}

func eolAfter(opts EOLOptions) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		if b, ok := t.Current(); ok && b == '\n' {
			return token.Nok
		}
		return token.Ok
	}
}
