package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdcore/construct"
	"github.com/jcorbin/mdcore/token"
)

var destTitleTokens = construct.TitleTokens{
	Title:  token.Title,
	Marker: token.TitleMarker,
	String: token.String,
}

func runTitle(t *testing.T, src string) (*token.Tokenizer, token.State) {
	t.Helper()
	ps := &token.ParseState{Bytes: []byte(src)}
	tok := token.NewTokenizer(ps, construct.TitleStart(destTitleTokens))
	state := tok.Exec(construct.TitleStart(destTitleTokens))
	return tok, state
}

func TestTitleUnterminatedIsNok(t *testing.T) {
	_, state := runTitle(t, `"unterminated`)
	assert.True(t, state.IsNok())
}

func TestTitleBlankLineInsideIsNok(t *testing.T) {
	_, state := runTitle(t, "\"line one\n\n line two\"")
	assert.True(t, state.IsNok())
}

func TestTitleBackslashEscapesClosingMarker(t *testing.T) {
	tok, state := runTitle(t, `"a \"quoted\" word"`)
	require.True(t, state.IsOk())
	assert.NotEmpty(t, tok.Events)
	assert.Equal(t, 19, tok.Point().Offset)
}

func TestTitleLiteralBackslashOnOtherByte(t *testing.T) {
	_, state := runTitle(t, `"a \backslash"`)
	assert.True(t, state.IsOk())
}

func TestTitleSimpleQuoted(t *testing.T) {
	tok, state := runTitle(t, `"hello"`)
	require.True(t, state.IsOk())
	assert.Equal(t, len(`"hello"`), tok.Point().Offset)
}

func TestTitleParenthesized(t *testing.T) {
	tok, state := runTitle(t, `(a title)`)
	require.True(t, state.IsOk())
	assert.Equal(t, len(`(a title)`), tok.Point().Offset)
}
