package construct

import "github.com/jcorbin/mdcore/token"

// TitleTokens names the three token types TitleStart emits, letting a
// caller reuse the same partial for differently-named spans (link
// definition titles vs link destination titles), per spec.md section 4.4.
type TitleTokens struct {
	Title  token.Type
	Marker token.Type
	String token.Type
}

type titleInfo struct {
	connect bool
	marker  byte
	tokens  TitleTokens
}

// TitleStart builds the entry state function for the title partial
// (spec.md section 4.4): a quoted or parenthesized title, allowed to
// span lines but never a blank one, with backslash-escaping of its own
// closing marker.
func TitleStart(tokens TitleTokens) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		b, ok := t.Current()
		if !ok || !isByte(b, '"', '\'', '(') {
			return token.Nok
		}
		marker := b
		if marker == '(' {
			marker = ')'
		}
		info := titleInfo{marker: marker, tokens: tokens}

		t.Enter(tokens.Title)
		t.Enter(tokens.Marker)
		t.Consume()
		t.Exit(tokens.Marker)
		return token.Fn(titleBegin(info))
	}
}

func titleBegin(info titleInfo) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		if b, ok := t.Current(); ok && b == info.marker {
			t.Enter(info.tokens.Marker)
			t.Consume()
			t.Exit(info.tokens.Marker)
			t.Exit(info.tokens.Title)
			return token.Ok
		}
		t.Enter(info.tokens.String)
		return titleAtBreak(info)(t)
	}
}

func titleAtBreak(info titleInfo) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		b, ok := t.Current()
		switch {
		case !ok:
			return token.Nok
		case b == '\n':
			return t.Go(
				SpaceOrTabEOLWithOptions(EOLOptions{ContentType: token.String_, Connect: info.connect}),
				func(t *token.Tokenizer) token.State {
					if !t.LastGoOk() {
						return token.Nok
					}
					info.connect = true
					return titleAtBreak(info)(t)
				},
			)(t)
		case b == info.marker:
			t.Exit(info.tokens.String)
			return titleBegin(info)(t)
		default:
			t.EnterWithContent(token.Data, token.String_)
			if info.connect {
				t.Link(len(t.Events) - 1)
			} else {
				info.connect = true
			}
			return titleInside(info)(t)
		}
	}
}

func titleInside(info titleInfo) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		b, ok := t.Current()
		if !ok || b == '\n' || b == info.marker {
			t.Exit(token.Data)
			return titleAtBreak(info)(t)
		}
		if b == '\\' {
			t.Consume()
			return token.Fn(titleEscape(info))
		}
		t.Consume()
		return token.Fn(titleInside(info))
	}
}

func titleEscape(info titleInfo) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		if b, ok := t.Current(); ok && isByte(b, '"', '\'', ')') {
			t.Consume()
			return token.Fn(titleInside(info))
		}
		return titleInside(info)(t)
	}
}
