package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdcore/token"
)

func run(src string, start token.StateFn) *token.Tokenizer {
	ps := &token.ParseState{Bytes: []byte(src)}
	t := token.NewTokenizer(ps, start)
	t.Run()
	return t
}

// consumeAll is a minimal construct used to drive the tokenizer across
// a whole input, exercising Consume/Enter/Exit without depending on the
// construct package.
func consumeAll(t *token.Tokenizer) token.State {
	t.Enter(token.Data)
	for !t.AtEOF() {
		t.Consume()
	}
	t.Exit(token.Data)
	return token.Ok
}

func TestRunProducesWellNestedLog(t *testing.T) {
	tok := run("hello", consumeAll)
	require.Len(t, tok.Events, 2)
	assert.Equal(t, token.Enter, tok.Events[0].Kind)
	assert.Equal(t, token.Exit, tok.Events[1].Kind)
	assert.Equal(t, token.Data, tok.Events[0].Type)
	assert.Equal(t, 0, tok.Events[0].Point.Offset)
	assert.Equal(t, 5, tok.Events[1].Point.Offset)
}

func TestAttemptRollsBackOnNok(t *testing.T) {
	ps := &token.ParseState{Bytes: []byte("abc")}
	tok := token.NewTokenizer(ps, func(t *token.Tokenizer) token.State { return token.Ok })

	failing := func(t *token.Tokenizer) token.State {
		t.Enter(token.Data)
		t.Consume()
		t.Consume()
		return token.Nok
	}

	var ok bool
	state := tok.Attempt(failing, func(result bool) token.StateFn {
		ok = result
		return func(t *token.Tokenizer) token.State { return token.Ok }
	})(tok)

	require.True(t, state.IsOk())
	assert.False(t, ok)
	assert.Empty(t, tok.Events, "a rolled-back attempt must leave no trace in the event log")
	assert.Equal(t, 0, tok.Point().Offset, "a rolled-back attempt must leave the cursor untouched")
}

func TestAttemptCommitsOnOk(t *testing.T) {
	ps := &token.ParseState{Bytes: []byte("abc")}
	tok := token.NewTokenizer(ps, func(t *token.Tokenizer) token.State { return token.Ok })

	succeeding := func(t *token.Tokenizer) token.State {
		t.Enter(token.Data)
		t.Consume()
		t.Exit(token.Data)
		return token.Ok
	}

	var ok bool
	tok.Attempt(succeeding, func(result bool) token.StateFn {
		ok = result
		return func(t *token.Tokenizer) token.State { return token.Ok }
	})(tok)

	assert.True(t, ok)
	assert.Len(t, tok.Events, 2)
	assert.Equal(t, 1, tok.Point().Offset)
}

func TestCheckNeverCommits(t *testing.T) {
	ps := &token.ParseState{Bytes: []byte("abc")}
	tok := token.NewTokenizer(ps, func(t *token.Tokenizer) token.State { return token.Ok })

	succeeding := func(t *token.Tokenizer) token.State {
		t.Enter(token.Data)
		t.Consume()
		t.Exit(token.Data)
		return token.Ok
	}

	var ok bool
	tok.Check(succeeding, func(result bool) token.StateFn {
		ok = result
		return func(t *token.Tokenizer) token.State { return token.Ok }
	})(tok)

	assert.True(t, ok)
	assert.Empty(t, tok.Events, "Check must never leave events behind, win or lose")
	assert.Equal(t, 0, tok.Point().Offset)
}

func TestRegisterResolverBeforeIsIdempotentByName(t *testing.T) {
	ps := &token.ParseState{Bytes: []byte("x")}
	tok := token.NewTokenizer(ps, func(t *token.Tokenizer) token.State { return token.Ok })

	calls := 0
	tok.RegisterResolverBefore("dup", func(t *token.Tokenizer) { calls++ })
	tok.RegisterResolverBefore("dup", func(t *token.Tokenizer) { calls++ })
	tok.Run()

	assert.Equal(t, 1, calls, "registering the same resolver name twice must run it once")
}

func TestEventMapApplyIsOrderPreservingAndStable(t *testing.T) {
	events := []token.Event{
		{Kind: token.Enter, Type: token.ListItem},
		{Kind: token.Exit, Type: token.ListItem},
		{Kind: token.Enter, Type: token.ListItem},
		{Kind: token.Exit, Type: token.ListItem},
	}

	var m token.Map
	m.Add(0, 0, []token.Event{{Kind: token.Enter, Type: token.ListUnordered}})
	m.Add(4, 0, []token.Event{{Kind: token.Exit, Type: token.ListUnordered}})

	out := m.Apply(events)
	require.Len(t, out, 6)
	assert.Equal(t, token.ListUnordered, out[0].Type)
	assert.Equal(t, token.ListItem, out[1].Type)
	assert.Equal(t, token.ListUnordered, out[5].Type)

	m2 := m
	out2 := m2.Apply(events)
	assert.Equal(t, out, out2, "applying the same map twice must be idempotent")
}
