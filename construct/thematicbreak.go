package construct

import "github.com/jcorbin/mdcore/token"

// ThematicBreak recognizes a line of 3 or more `*`, `-`, or `_` bytes,
// the same marker throughout, optionally interspersed with space/tab
// and nothing else — CommonMark's thematic break / horizontal rule.
// Used both as a real leaf construct by the document driver and as a
// Check target by list's before state (spec.md section 4.3 step 2: a
// candidate `-`/`*`/`+` loses to a thematic break).
func ThematicBreak(t *token.Tokenizer) token.State {
	b, ok := t.Current()
	if !ok || !isByte(b, '*', '-', '_') {
		return token.Nok
	}
	t.Enter(token.ThematicBreak)
	t.Enter(token.ThematicBreakSequence)
	return token.Fn(thematicBreakSequence(b, 0))
}

func thematicBreakSequence(marker byte, size int) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		if b, ok := t.Current(); ok && b == marker {
			t.Consume()
			return token.Fn(thematicBreakSequence(marker, size+1))
		}
		t.Exit(token.ThematicBreakSequence)
		return thematicBreakWhitespace(marker, size)(t)
	}
}

func thematicBreakWhitespace(marker byte, size int) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		b, ok := t.Current()
		switch {
		case ok && isSpaceOrTab(b):
			t.Consume()
			return token.Fn(thematicBreakWhitespace(marker, size))
		case ok && b == marker:
			t.Enter(token.ThematicBreakSequence)
			return token.Fn(thematicBreakSequence(marker, size))
		case !ok || b == '\n':
			if size < 3 {
				return token.Nok
			}
			t.Exit(token.ThematicBreak)
			return token.Ok
		default:
			return token.Nok
		}
	}
}

func isByte(b byte, any ...byte) bool {
	for _, ab := range any {
		if b == ab {
			return true
		}
	}
	return false
}
