package token

// Point is a position within the scanned byte stream, along the lines of
// scandown.BlockStack's stream Offset, but carrying line/column and a
// virtual-space count for positions that land inside a partially consumed
// tab.
type Point struct {
	Offset int // byte offset from the start of input
	Line   int // 1-based line number
	Column int // 1-based column number, counting virtual tab stops
	VS     int // virtual space inside a tab; advance always leaves it 0, since a tab is consumed whole
}

// TabSize is the column width CommonMark assigns to a tab stop.
const TabSize = 4

// advance moves p across a single byte, updating line/column/vs.
func (p *Point) advance(b byte) {
	p.Offset++
	switch {
	case b == '\n':
		p.Line++
		p.Column = 1
		p.VS = 0
	case b == '\t':
		// a tab moves Column to the next tab stop in one step. Partial-tab
		// positions are not tracked: Tokenizer.Consume always advances
		// past the whole byte, the SpaceOrTab partials count a tab as one
		// byte, and VS ends at 0.
		remainder := TabSize - ((p.Column - 1) % TabSize)
		if remainder > 1 {
			p.VS++
		}
		p.Column += remainder
		p.VS = 0
	default:
		p.Column++
		p.VS = 0
	}
}
