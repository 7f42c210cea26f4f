package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdcore/construct"
	"github.com/jcorbin/mdcore/token"
)

func countType(events []token.Event, typ token.Type) int {
	n := 0
	for _, e := range events {
		if e.Type == typ && e.Kind == token.Enter {
			n++
		}
	}
	return n
}

// TestListResolverGroupsAdjacentSameKindSiblings drives two back-to-back
// unordered list items with nothing but a line ending between them,
// exercising both listItemStart (via the public ListItemStart entry
// point) and the resolver it registers.
func TestListResolverGroupsAdjacentSameKindSiblings(t *testing.T) {
	ps := &token.ParseState{Bytes: []byte("* a\n* b")}
	tok := token.NewTokenizer(ps, func(t *token.Tokenizer) token.State { return token.Ok })

	require.True(t, tok.Exec(construct.ListItemStart).IsOk())
	tok.Enter(token.Data)
	tok.Consume() // 'a'
	tok.Exit(token.Data)
	tok.Exit(token.ListItem)
	tok.PopContainer()

	tok.Enter(token.LineEnding)
	tok.Consume() // '\n'
	tok.Exit(token.LineEnding)

	require.True(t, tok.Exec(construct.ListItemStart).IsOk())
	tok.Enter(token.Data)
	tok.Consume() // 'b'
	tok.Exit(token.Data)
	tok.Exit(token.ListItem)
	tok.PopContainer()

	events := tok.Run()
	assert.Equal(t, 1, countType(events, token.ListUnordered),
		"two adjacent same-kind, same-balance items must merge into exactly one group")
	assert.Equal(t, 2, countType(events, token.ListItem))
}

// TestListResolverSplitsOnKindMismatch mirrors the same shape but with
// differing marker kinds, which must prevent grouping.
func TestListResolverSplitsOnKindMismatch(t *testing.T) {
	ps := &token.ParseState{Bytes: []byte("* a\n- b")}
	tok := token.NewTokenizer(ps, func(t *token.Tokenizer) token.State { return token.Ok })

	require.True(t, tok.Exec(construct.ListItemStart).IsOk())
	tok.Enter(token.Data)
	tok.Consume()
	tok.Exit(token.Data)
	tok.Exit(token.ListItem)
	tok.PopContainer()

	tok.Enter(token.LineEnding)
	tok.Consume()
	tok.Exit(token.LineEnding)

	require.True(t, tok.Exec(construct.ListItemStart).IsOk())
	tok.Enter(token.Data)
	tok.Consume()
	tok.Exit(token.Data)
	tok.Exit(token.ListItem)
	tok.PopContainer()

	events := tok.Run()
	assert.Equal(t, 2, countType(events, token.ListUnordered),
		"a marker-kind mismatch must split siblings into two groups")
}
