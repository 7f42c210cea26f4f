package html

import (
	"bytes"

	"github.com/jcorbin/mdcore/token"
	"github.com/russross/blackfriday"
	sanitized_anchor_name "github.com/shurcooL/sanitized_anchor_name"
)

// Options controls how Compile renders a finalized event log.
type Options struct {
	// AllowDangerousHTML lets HTMLFlow spans pass through verbatim.
	// Without it, raw HTML is stripped, the same safe-by-default
	// posture blackfriday.HTMLFlagsNone vs SkipHTML expresses.
	AllowDangerousHTML bool

	// HeadingIDs attaches a sanitized_anchor_name-derived id to every
	// heading node, mirroring blackfriday's own HeadingIDs extension.
	// Off by default so a plain "<h1>...</h1>" stays plain.
	HeadingIDs bool
}

// Compile lowers src/events (as produced by token.Tokenizer.Run, after
// content.Start has driven the document content context over them)
// into an HTML string.
func Compile(src []byte, events []token.Event, opts Options) string {
	root := build(src, events, opts)

	flags := blackfriday.CommonHTMLFlags
	if !opts.AllowDangerousHTML {
		flags |= blackfriday.SkipHTML
	}
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: flags})

	var buf bytes.Buffer
	renderer.RenderHeader(&buf, root)
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return renderer.RenderNode(&buf, node, entering)
	})
	renderer.RenderFooter(&buf, root)
	return buf.String()
}

// build walks the flat event log with an explicit open-node stack,
// turning well-nested Enter/Exit spans into a blackfriday.Node tree.
// Spans with no rendered shape of their own (marker/sequence/prefix
// tokens, whitespace, line endings, including those inside a
// paragraph) are skipped.
func build(src []byte, events []token.Event, opts Options) *blackfriday.Node {
	root := blackfriday.NewNode(blackfriday.Document)
	stack := []*blackfriday.Node{root}
	top := func() *blackfriday.Node { return stack[len(stack)-1] }
	push := func(n *blackfriday.Node) { top().AppendChild(n); stack = append(stack, n) }
	pop := func() *blackfriday.Node { n := top(); stack = stack[:len(stack)-1]; return n }

	var headingSeqStart, textStart int

	for _, e := range events {
		switch e.Type {
		case token.Document:
			// root already stands in for it.

		case token.Paragraph:
			if e.Kind == token.Enter {
				push(blackfriday.NewNode(blackfriday.Paragraph))
			} else {
				pop()
			}

		case token.ListOrdered, token.ListUnordered:
			if e.Kind == token.Enter {
				n := blackfriday.NewNode(blackfriday.List)
				if e.Type == token.ListOrdered {
					n.ListFlags = blackfriday.ListTypeOrdered
				}
				n.Tight = true
				push(n)
			} else {
				pop()
			}

		case token.ListItem:
			if e.Kind == token.Enter {
				push(blackfriday.NewNode(blackfriday.Item))
			} else {
				pop()
			}

		case token.ThematicBreak:
			if e.Kind == token.Enter {
				top().AppendChild(blackfriday.NewNode(blackfriday.HorizontalRule))
			}

		case token.HeadingAtx:
			if e.Kind == token.Enter {
				push(blackfriday.NewNode(blackfriday.Heading))
			} else {
				h := pop()
				if opts.HeadingIDs {
					h.HeadingID = sanitized_anchor_name.Create(string(headingText(h)))
				}
			}

		case token.HeadingAtxSequence:
			if e.Kind == token.Enter {
				headingSeqStart = e.Point.Offset
			} else if h := top(); h.Type == blackfriday.Heading {
				h.Level = e.Point.Offset - headingSeqStart
			}

		case token.HeadingAtxText:
			if e.Kind == token.Enter {
				textStart = e.Point.Offset
			} else {
				txt := blackfriday.NewNode(blackfriday.Text)
				txt.Literal = cloneSlice(src[textStart:e.Point.Offset])
				top().AppendChild(txt)
			}

		case token.CodeText:
			if e.Kind == token.Enter {
				push(blackfriday.NewNode(blackfriday.Code))
			} else {
				pop()
			}

		case token.CodeTextData:
			if e.Kind == token.Enter {
				textStart = e.Point.Offset
			} else if c := top(); c.Type == blackfriday.Code {
				c.Literal = shapeCodeSpan(src[textStart:e.Point.Offset])
			}

		case token.HTMLFlow:
			if e.Kind == token.Enter {
				push(blackfriday.NewNode(blackfriday.HTMLBlock))
			} else {
				pop()
			}

		case token.HTMLFlowData:
			if e.Kind == token.Enter {
				textStart = e.Point.Offset
			} else if h := top(); h.Type == blackfriday.HTMLBlock {
				h.Literal = cloneSlice(src[textStart:e.Point.Offset])
			}

		case token.Data:
			if e.Kind == token.Enter {
				textStart = e.Point.Offset
			} else {
				txt := blackfriday.NewNode(blackfriday.Text)
				txt.Literal = cloneSlice(src[textStart:e.Point.Offset])
				top().AppendChild(txt)
			}

		}
	}

	return root
}

func headingText(n *blackfriday.Node) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.Next {
		buf.Write(c.Literal)
	}
	return buf.Bytes()
}

// shapeCodeSpan applies CommonMark's code span content rule: collapse
// line endings to spaces, then strip one leading and trailing space if
// both are present and the content isn't all spaces.
func shapeCodeSpan(b []byte) []byte {
	out := cloneSlice(b)
	for i, c := range out {
		if c == '\n' {
			out[i] = ' '
		}
	}
	if len(out) >= 2 && out[0] == ' ' && out[len(out)-1] == ' ' && !allSpaces(out) {
		out = out[1 : len(out)-1]
	}
	return out
}

func allSpaces(b []byte) bool {
	for _, c := range b {
		if c != ' ' {
			return false
		}
	}
	return true
}

func cloneSlice(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
