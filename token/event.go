package token

import "fmt"

// Kind discriminates whether an Event opens or closes a span.
type Kind bool

// Kind values. Enter opens a span, Exit closes the most recently opened
// span of the same Type.
const (
	Enter Kind = true
	Exit  Kind = false
)

// Format implements fmt.Formatter, matching the terse/verbose Format
// methods scandown.Block and scandown.BlockType use.
func (k Kind) Format(f fmt.State, _ rune) {
	if k == Enter {
		fmt.Fprint(f, "Enter")
	} else {
		fmt.Fprint(f, "Exit")
	}
}

// Type is a closed enumeration of semantic span names, the union of the
// Token Type catalog referenced in spec.md section 3 plus the
// supplemental leaf/partial tokens SPEC_FULL.md adds so the worked
// examples (list item, title) have something to run inside end to end.
type Type int

// Token type catalog.
const (
	NoToken Type = iota

	Document
	LineEnding
	SpaceOrTab
	Data
	BlankLineEnding
	BlockQuotePrefix

	Paragraph

	ThematicBreak
	ThematicBreakSequence

	HeadingAtx
	HeadingAtxSequence
	HeadingAtxText

	CodeText
	CodeTextSequence
	CodeTextData

	HTMLFlow
	HTMLFlowData

	ListItem
	ListItemMarker
	ListItemPrefix
	ListItemValue
	ListOrdered
	ListUnordered

	Title
	TitleMarker
	String
)

func (t Type) String() string {
	switch t {
	case NoToken:
		return "NoToken"
	case Document:
		return "Document"
	case LineEnding:
		return "LineEnding"
	case SpaceOrTab:
		return "SpaceOrTab"
	case Data:
		return "Data"
	case BlankLineEnding:
		return "BlankLineEnding"
	case BlockQuotePrefix:
		return "BlockQuotePrefix"
	case Paragraph:
		return "Paragraph"
	case ThematicBreak:
		return "ThematicBreak"
	case ThematicBreakSequence:
		return "ThematicBreakSequence"
	case HeadingAtx:
		return "HeadingAtx"
	case HeadingAtxSequence:
		return "HeadingAtxSequence"
	case HeadingAtxText:
		return "HeadingAtxText"
	case CodeText:
		return "CodeText"
	case CodeTextSequence:
		return "CodeTextSequence"
	case CodeTextData:
		return "CodeTextData"
	case HTMLFlow:
		return "HTMLFlow"
	case HTMLFlowData:
		return "HTMLFlowData"
	case ListItem:
		return "ListItem"
	case ListItemMarker:
		return "ListItemMarker"
	case ListItemPrefix:
		return "ListItemPrefix"
	case ListItemValue:
		return "ListItemValue"
	case ListOrdered:
		return "ListOrdered"
	case ListUnordered:
		return "ListUnordered"
	case Title:
		return "Title"
	case TitleMarker:
		return "TitleMarker"
	case String:
		return "String"
	default:
		return fmt.Sprintf("InvalidType%d", int(t))
	}
}

// ContentType tags an Enter event as the start of a span whose bytes
// should be handed to a second-pass subtokenizer. Only String_ is used by
// the constructs in this repo (title's inner text); Flow/Content/Text
// are part of the closed set described in spec.md section 3 and are
// carried so later constructs have somewhere to plug in.
type ContentType int

// ContentType values.
const (
	NoContent ContentType = iota
	Flow
	Content
	String_
	Text
)

// Event is a single point-stamped enter or exit of a named span.
//
// previous/next implement the "link" operation from spec.md section 3:
// Enter events sharing a ContentType chain are threaded together so a
// subtokenizer can reconstruct a logical run that the main pass split
// across lines.
type Event struct {
	Kind  Kind
	Type  Type
	Point Point

	Content ContentType // set only on Enter

	previous int // index into the owning Tokenizer.Events, or -1
	next     int // index into the owning Tokenizer.Events, or -1
}

// Previous returns the index of the prior linked event, or -1.
func (e Event) Previous() int { return e.previous }

// Next returns the index of the next linked event, or -1.
func (e Event) Next() int { return e.next }
