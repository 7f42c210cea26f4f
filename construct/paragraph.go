package construct

import "github.com/jcorbin/mdcore/token"

// ParagraphLine scans one line of an open paragraph's content, from the
// current point up to (not including) the line ending or end of input,
// alternating between inline code spans and literal runs of Data. A
// code span whose closing backtick run is on a later line is consumed
// whole, so the scan then ends past that span's line endings. The document driver owns opening and closing the surrounding
// Paragraph span; ParagraphLine only ever produces its interior.
func ParagraphLine(t *token.Tokenizer) token.State {
	for {
		b, ok := t.Current()
		if !ok || b == '\n' {
			return token.Ok
		}

		if b == '`' {
			if state := CodeText(t); state.IsOk() {
				continue
			}
			t.Enter(token.Data)
			for {
				b, ok := t.Current()
				if !ok || b != '`' {
					break
				}
				t.Consume()
			}
			t.Exit(token.Data)
			continue
		}

		t.Enter(token.Data)
		for {
			b, ok := t.Current()
			if !ok || b == '\n' || b == '`' {
				break
			}
			t.Consume()
		}
		t.Exit(token.Data)
	}
}
