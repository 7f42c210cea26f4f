package construct

import "github.com/jcorbin/mdcore/token"

// BlankLine recognizes a line containing only space/tab bytes (possibly
// none) up to a line ending or end of input. Its only events are the
// SpaceOrTab span for any whitespace it consumes; it does not consume
// the line ending. List item's marker_after and cont use it through
// Check as look-ahead; the document driver's leaf dispatch uses it
// through Attempt, keeping that whitespace on a match.
func BlankLine(t *token.Tokenizer) token.State {
	return t.Go(SpaceOrTabMinMax(0, unbounded), blankLineAfter)(t)
}

func blankLineAfter(t *token.Tokenizer) token.State {
	if b, ok := t.Current(); !ok || b == '\n' {
		return token.Ok
	}
	return token.Nok
}
