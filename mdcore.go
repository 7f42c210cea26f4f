// Package mdcore translates CommonMark-flavored Markdown source into
// HTML by driving a streaming block/inline tokenizer (package token and
// package construct) over the input, then handing the finalized event
// log to an HTML compiler (package html) built on blackfriday.
package mdcore

import (
	"github.com/jcorbin/mdcore/content"
	"github.com/jcorbin/mdcore/html"
	"github.com/jcorbin/mdcore/token"
)

// Options configures a Translate call.
type Options struct {
	// Constructs switches individual block/inline constructs on or
	// off by name ("list", "code_indented", ...). A construct absent
	// from the map stays enabled.
	Constructs token.Constructs

	// AllowDangerousHTML lets raw HTML blocks pass through to the
	// rendered output verbatim instead of being stripped.
	AllowDangerousHTML bool

	// HeadingIDs attaches a sanitized-anchor-name id to every heading.
	HeadingIDs bool
}

// Option mutates an Options value, the same functional-options shape
// the teacher used for blackfriday.WithExtensions calls.
type Option func(*Options)

// WithConstructs replaces the construct menu.
func WithConstructs(c token.Constructs) Option {
	return func(o *Options) { o.Constructs = c }
}

// WithDangerousHTML toggles raw HTML block passthrough.
func WithDangerousHTML(allow bool) Option {
	return func(o *Options) { o.AllowDangerousHTML = allow }
}

// WithHeadingIDs toggles sanitized-anchor-name heading ids.
func WithHeadingIDs(enable bool) Option {
	return func(o *Options) { o.HeadingIDs = enable }
}

// Translate parses input as Markdown and renders it to HTML.
func Translate(input []byte, opts ...Option) string {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	ps := &token.ParseState{Bytes: input, Constructs: o.Constructs}
	t := token.NewTokenizer(ps, content.Start)
	events := t.Run()

	return html.Compile(input, events, html.Options{
		AllowDangerousHTML: o.AllowDangerousHTML,
		HeadingIDs:         o.HeadingIDs,
	})
}
