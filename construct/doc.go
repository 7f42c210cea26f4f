// Package construct implements the concrete Markdown constructs that
// plug into the token.Tokenizer runtime: reusable partials
// (space-or-tab, title), the list-item block construct and its
// resolver, and the supplemental leaf constructs (blank line, thematic
// break, ATX heading, code text, raw HTML flow, paragraph) SPEC_FULL.md
// adds so the worked examples have somewhere to run end to end.
package construct
