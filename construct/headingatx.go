package construct

import "github.com/jcorbin/mdcore/token"

// HeadingAtx recognizes an ATX heading: 1-6 `#` bytes followed by a
// space, tab, or line ending, an optional text run, and an optional
// closing sequence of `#` bytes that is trimmed along with surrounding
// whitespace rather than kept as text. The heading's level is not
// stored separately; a compiler recovers it by measuring the
// HeadingAtxSequence span against ps.Bytes.
func HeadingAtx(t *token.Tokenizer) token.State {
	b, ok := t.Current()
	if !ok || b != '#' {
		return token.Nok
	}

	data := t.ParseState.Bytes
	start := t.Point().Offset
	level := 0
	for start+level < len(data) && data[start+level] == '#' {
		level++
	}
	if level > 6 {
		return token.Nok
	}
	if next := start + level; next < len(data) {
		if c := data[next]; c != ' ' && c != '\t' && c != '\n' {
			return token.Nok
		}
	}

	t.Enter(token.HeadingAtx)

	t.Enter(token.HeadingAtxSequence)
	for i := 0; i < level; i++ {
		t.Consume()
	}
	t.Exit(token.HeadingAtxSequence)

	for {
		if b, ok := t.Current(); ok && isSpaceOrTab(b) {
			t.Consume()
			continue
		}
		break
	}

	lineStart := t.Point().Offset
	lineEnd := lineStart
	for lineEnd < len(data) && data[lineEnd] != '\n' {
		lineEnd++
	}

	end := lineEnd
	for end > lineStart && isSpaceOrTab(data[end-1]) {
		end--
	}
	hashEnd := end
	for hashEnd > lineStart && data[hashEnd-1] == '#' {
		hashEnd--
	}
	if hashEnd < end && (hashEnd == lineStart || isSpaceOrTab(data[hashEnd-1])) {
		end = hashEnd
		for end > lineStart && isSpaceOrTab(data[end-1]) {
			end--
		}
	}

	if end > lineStart {
		t.Enter(token.HeadingAtxText)
		for t.Point().Offset < end {
			t.Consume()
		}
		t.Exit(token.HeadingAtxText)
	}
	for t.Point().Offset < lineEnd {
		t.Consume()
	}

	t.Exit(token.HeadingAtx)
	return token.Ok
}
