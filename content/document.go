package content

import (
	"github.com/jcorbin/mdcore/construct"
	"github.com/jcorbin/mdcore/token"
)

// Start is the document content context's entry point: the StateFn a
// caller hands to token.NewTokenizer to drive a full parse.
//
// It is a reduced stand-in for spec.md section 4.5's content-context
// machinery, written procedurally (line by line) rather than as a deep
// CPS chain, the same way the block constructs are. Tokenizer.Attempt
// and Tokenizer.Peek still do the speculative work; Start just
// sequences them the way a human editor reads a document: one line at
// a time, outermost container to innermost, container prefixes before
// leaf content.
//
// Lazy paragraph continuation is only honored at the top level (no
// open container): a paragraph nested inside a list item that fails
// its container's continuation check is simply closed, rather than
// continuing laxly past the container boundary. Full CommonMark
// laziness across container boundaries is out of scope here.
func Start(t *token.Tokenizer) token.State {
	t.Enter(token.Document)

	openParagraph := false

	for !t.AtEOF() {
		depth := t.Depth()
		matched := 0
		for matched < depth {
			c := t.ContainerAt(matched)
			if !attempt(t, func(t *token.Tokenizer) token.State {
				return construct.ListItemCont(t, c)
			}) {
				break
			}
			matched++
		}

		if matched < depth {
			if openParagraph {
				t.Exit(token.Paragraph)
				openParagraph = false
			}
			for i := depth - 1; i >= matched; i-- {
				t.Exit(token.ListItem)
				t.PopContainer()
			}
		}

		if attempt(t, construct.BlankLine) {
			if openParagraph {
				t.Exit(token.Paragraph)
				openParagraph = false
			}
			consumeLineEndingAs(t, token.BlankLineEnding)
			continue
		}

		t.Interrupt = openParagraph
		for attempt(t, construct.ListItemStart) {
		}
		t.Interrupt = false

		isHeading := t.Peek(construct.HeadingAtx)
		isThematic := !isHeading && t.Peek(construct.ThematicBreak)
		isHTML := !isHeading && !isThematic && t.Peek(construct.HTMLFlow)

		if isHeading || isThematic || isHTML {
			if openParagraph {
				t.Exit(token.Paragraph)
				openParagraph = false
			}
			switch {
			case isHeading:
				construct.HeadingAtx(t)
			case isThematic:
				t.Exec(construct.ThematicBreak)
			default:
				construct.HTMLFlow(t)
			}
			consumeLineEndingAs(t, token.LineEnding)
			continue
		}

		if !openParagraph {
			t.Enter(token.Paragraph)
			openParagraph = true
		}
		construct.ParagraphLine(t)
		consumeLineEndingAs(t, token.LineEnding)
	}

	if openParagraph {
		t.Exit(token.Paragraph)
	}
	for t.Depth() > 0 {
		t.Exit(token.ListItem)
		t.PopContainer()
	}

	t.Exit(token.Document)
	return token.Ok
}

// attempt runs fn as a committed speculative construct: on Ok its
// events and point stay; on Nok the tokenizer rolls back to exactly
// where it started, the same rollback-by-truncation Tokenizer.Attempt
// gives any StateFn-returning caller, wrapped here for a plain bool.
func attempt(t *token.Tokenizer, fn token.StateFn) bool {
	ok := false
	t.Attempt(fn, func(result bool) token.StateFn {
		ok = result
		return func(t *token.Tokenizer) token.State { return token.Ok }
	})(t)
	return ok
}

// consumeLineEndingAs consumes a trailing '\n', if present, wrapped in
// an Enter/Exit pair of typ. At end of input (a last line with no line
// ending) there is nothing for this to do.
func consumeLineEndingAs(t *token.Tokenizer, typ token.Type) {
	if b, ok := t.Current(); ok && b == '\n' {
		t.Enter(typ)
		t.Consume()
		t.Exit(typ)
	}
}
