// Package token implements the streaming block/inline tokenizer runtime
// described for mdcore: a byte cursor, an append-only event log, and the
// check/attempt/go discipline that lets constructs speculatively parse
// with full rollback.
//
// The package owns no Markdown grammar itself. Grammar lives in
// constructs (package construct) that are handed a *Tokenizer and drive
// it through the primitives in this package: Enter, Exit, Consume, Go,
// Attempt, Check, and RegisterResolverBefore.
package token
