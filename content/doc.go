// Package content holds document content-context drivers: the code
// that walks lines, maintains the open-container stack, and dispatches
// into the leaf and container constructs in package construct.
//
// spec.md section 4.5 describes content contexts as resolver-driven
// collaborators the core hands off to; this package is SPEC_FULL.md's
// minimal stand-in, scoped to the document content context only and
// reduced to the block kinds exercised by the worked end-to-end
// scenarios (list items, ATX headings, thematic breaks, raw HTML
// blocks, paragraphs with inline code spans).
package content
