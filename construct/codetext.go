package construct

import "github.com/jcorbin/mdcore/token"

// CodeText recognizes CommonMark inline code spans: a run of N backtick
// bytes opens the span, and the first later run of exactly N backticks
// closes it. Content shaping (stripping one matching leading/trailing
// space, collapsing line endings to spaces) is left to the HTML
// compiler, the same way spec.md leaves final rendering to the (out of
// scope) HTML compiler collaborator rather than the tokenizer.
func CodeText(t *token.Tokenizer) token.State {
	if b, ok := t.Current(); !ok || b != '`' {
		return token.Nok
	}

	data := t.ParseState.Bytes
	start := t.Point().Offset
	openLen := 0
	for start+openLen < len(data) && data[start+openLen] == '`' {
		openLen++
	}
	closeAt := findClosingBacktickRun(data, start+openLen, openLen)
	if closeAt < 0 {
		return token.Nok
	}

	t.Enter(token.CodeText)

	t.Enter(token.CodeTextSequence)
	for i := 0; i < openLen; i++ {
		t.Consume()
	}
	t.Exit(token.CodeTextSequence)

	if closeAt > start+openLen {
		t.Enter(token.CodeTextData)
		for t.Point().Offset < closeAt {
			t.Consume()
		}
		t.Exit(token.CodeTextData)
	}

	t.Enter(token.CodeTextSequence)
	for i := 0; i < openLen; i++ {
		t.Consume()
	}
	t.Exit(token.CodeTextSequence)

	t.Exit(token.CodeText)
	return token.Ok
}

// findClosingBacktickRun returns the offset of the first run of exactly
// runLen backticks at or after from, or -1 if the input ends first.
func findClosingBacktickRun(data []byte, from, runLen int) int {
	i := from
	for i < len(data) {
		for i < len(data) && data[i] != '`' {
			i++
		}
		n := 0
		for i+n < len(data) && data[i+n] == '`' {
			n++
		}
		if n == 0 {
			break
		}
		if n == runLen {
			return i
		}
		i += n
	}
	return -1
}
