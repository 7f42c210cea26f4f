package construct

import "github.com/jcorbin/mdcore/token"

// HTMLFlow is a reduced raw-HTML-block construct (SPEC_FULL.md's
// supplemented features): a line starting with `<` opens an opaque
// block that swallows whole lines verbatim until a blank line or end of
// input. Real CommonMark distinguishes seven HTML block sub-kinds with
// different terminating conditions; this repo implements only the
// common "rest of block is raw HTML, a blank line ends it" shape, which
// is enough to round-trip raw HTML blocks through the compiler when
// allow_dangerous_html is set (see html/compile.go).
func HTMLFlow(t *token.Tokenizer) token.State {
	if b, ok := t.Current(); !ok || b != '<' {
		return token.Nok
	}

	t.Enter(token.HTMLFlow)
	t.Enter(token.HTMLFlowData)

	data := t.ParseState.Bytes
	for {
		for {
			b, ok := t.Current()
			if !ok || b == '\n' {
				break
			}
			t.Consume()
		}
		if t.AtEOF() {
			break
		}
		// cursor sits on the line's '\n'; a following blank line ends
		// the block here, leaving the '\n' itself for the document
		// driver to consume as an ordinary line ending rather than
		// folding it into this block's own content.
		if isBlankLineAt(data, t.Point().Offset+1) {
			break
		}
		t.Consume()
	}

	t.Exit(token.HTMLFlowData)
	t.Exit(token.HTMLFlow)
	return token.Ok
}

// isBlankLineAt reports whether the line starting at offset contains
// only space/tab bytes before its line ending or the input's end.
func isBlankLineAt(data []byte, offset int) bool {
	for offset < len(data) && data[offset] != '\n' {
		if data[offset] != ' ' && data[offset] != '\t' {
			return false
		}
		offset++
	}
	return true
}
