package token

// Constructs is the construct-name -> enabled menu threaded through a
// parse, mirroring markdown-rs's `parse_state.constructs` and surfaced
// to callers as mdcore.Options.Constructs. Unknown names default to
// enabled when read with Enabled, the same "default: all enabled"
// stance spec.md section 6 documents.
type Constructs map[string]bool

// Enabled reports whether the named construct is switched on. A
// construct absent from the map is enabled by default.
func (c Constructs) Enabled(name string) bool {
	if c == nil {
		return true
	}
	enabled, ok := c[name]
	return !ok || enabled
}

// ParseState is the per-document configuration and byte source shared by
// every construct invoked during a parse: the immutable input bytes and
// the construct menu. It carries no mutable scan position — that lives
// on the Tokenizer itself.
type ParseState struct {
	Bytes      []byte
	Constructs Constructs
}
