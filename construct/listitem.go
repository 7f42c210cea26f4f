package construct

import (
	"github.com/jcorbin/mdcore/token"
)

// listKind is the marker kind used by the list-item resolver to decide
// which sibling items may group together, mirroring markdown-rs's
// list::Kind enum (original_source/src/construct/list.rs).
type listKind int

const (
	listDot listKind = iota
	listParen
	listAsterisk
	listPlus
	listDash
)

func listKindFromByte(b byte) listKind {
	switch b {
	case '.':
		return listDot
	case ')':
		return listParen
	case '*':
		return listAsterisk
	case '+':
		return listPlus
	case '-':
		return listDash
	default:
		panic("construct: invalid list marker byte")
	}
}

// listItemValueSizeMax mirrors spec.md section 6's LIST_ITEM_VALUE_SIZE_MAX
// constant: an ordered list item's numeric value may be 1-9 digits.
const listItemValueSizeMax = 10

// ListItemStart is the list-item block construct's entry point from
// spec.md section 4.3, paired with ListItemCont below; together they
// form a reentrant Start/Cont pair plus a registered resolver that
// groups adjacent ListItem spans into ListOrdered/ListUnordered
// wrappers.
var ListItemStart token.StateFn = listItemStart

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// listItemStart recognizes the opener (spec.md section 4.3, steps 1-5).
// It owns pushing this item's Container scratch frame; the document
// driver pops it when the item's Cont eventually reports Nok.
func listItemStart(t *token.Tokenizer) token.State {
	if !t.ParseState.Constructs.Enabled("list") {
		return token.Nok
	}

	max := unbounded
	if t.ParseState.Constructs.Enabled("code_indented") {
		max = token.TabSize - 1
	}

	t.PushContainer(token.Container{})
	t.Enter(token.ListItem)
	return token.Fn(t.Go(SpaceOrTabMinMax(0, max), listItemBefore))
}

func listItemBefore(t *token.Tokenizer) token.State {
	b, ok := t.Current()
	if !ok {
		return token.Nok
	}
	switch {
	case isByte(b, '*', '+', '-'):
		return t.Check(ThematicBreak, func(isRule bool) token.StateFn {
			if isRule {
				return listItemNok
			}
			return listItemBeforeUnordered
		})(t)
	case isASCIIDigit(b) && (!t.Interrupt || b == '1'):
		t.Enter(token.ListItemPrefix)
		t.Enter(token.ListItemValue)
		return listItemInside(0)(t)
	default:
		return token.Nok
	}
}

func listItemNok(t *token.Tokenizer) token.State { return token.Nok }

func listItemBeforeUnordered(t *token.Tokenizer) token.State {
	t.Enter(token.ListItemPrefix)
	return listItemMarker(t)
}

func listItemInside(size int) token.StateFn {
	return func(t *token.Tokenizer) token.State {
		b, ok := t.Current()
		if ok && isASCIIDigit(b) && size+1 < listItemValueSizeMax {
			t.Consume()
			return token.Fn(listItemInside(size + 1))
		}
		if ok && (b == '.' || b == ')') && (!t.Interrupt || size < 2) {
			t.Exit(token.ListItemValue)
			return listItemMarker(t)
		}
		return token.Nok
	}
}

func listItemMarker(t *token.Tokenizer) token.State {
	t.Enter(token.ListItemMarker)
	t.Consume()
	t.Exit(token.ListItemMarker)
	return token.Fn(listItemMarkerAfter)
}

func listItemMarkerAfter(t *token.Tokenizer) token.State {
	return t.Check(BlankLine, func(blank bool) token.StateFn {
		if blank {
			return func(t *token.Tokenizer) token.State { return listItemAfter(t, true) }
		}
		return listItemMarkerAfterNotBlank
	})(t)
}

func listItemMarkerAfterNotBlank(t *token.Tokenizer) token.State {
	return t.Attempt(listItemWhitespace, func(ok bool) token.StateFn {
		if ok {
			return func(t *token.Tokenizer) token.State { return listItemAfter(t, false) }
		}
		return listItemPrefixOther
	})(t)
}

func listItemWhitespace(t *token.Tokenizer) token.State {
	return t.Go(SpaceOrTabMinMax(1, token.TabSize), listItemWhitespaceAfter)(t)
}

func listItemWhitespaceAfter(t *token.Tokenizer) token.State {
	if !t.LastGoOk() {
		return token.Nok
	}
	if b, ok := t.Current(); ok && isSpaceOrTab(b) {
		return token.Nok
	}
	return token.Ok
}

func listItemPrefixOther(t *token.Tokenizer) token.State {
	if b, ok := t.Current(); ok && isSpaceOrTab(b) {
		t.Enter(token.SpaceOrTab)
		t.Consume()
		t.Exit(token.SpaceOrTab)
		return token.Fn(func(t *token.Tokenizer) token.State { return listItemAfter(t, false) })
	}
	return token.Nok
}

// listItemAfter finalizes the prefix (spec.md section 4.3 step 5-6).
func listItemAfter(t *token.Tokenizer, blank bool) token.State {
	if blank && t.Interrupt {
		return token.Nok
	}

	enterIndex := findOpenListItemEnter(t.Events)
	prefix := t.Point().Offset - t.Events[enterIndex].Point.Offset
	if blank {
		prefix++
	}

	c := t.Container()
	c.BlankInitial = blank
	c.Size = prefix

	t.Exit(token.ListItemPrefix)
	t.RegisterResolverBefore("list_item", resolveListItem)
	return token.Ok
}

// findOpenListItemEnter walks back from the end of the event log to the
// most recent Enter(ListItem) that has not yet been closed, i.e. the
// item currently being opened.
func findOpenListItemEnter(events []token.Event) int {
	balance := 0
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		if e.Type != token.ListItem {
			continue
		}
		if e.Kind == token.Exit {
			balance++
		} else {
			if balance == 0 {
				return i
			}
			balance--
		}
	}
	panic("construct: no open ListItem on the event log")
}

// ListItemCont is the continuation entry point (spec.md section 4.3):
// called by the document driver at the start of every line while this
// item is open, addressing the item's own Container explicitly since
// the driver walks open containers outermost to innermost and cannot
// rely on c being the tokenizer's topmost (most-recently-opened) one.
func ListItemCont(t *token.Tokenizer, c *token.Container) token.State {
	return t.Check(BlankLine, func(blank bool) token.StateFn {
		if blank {
			return func(t *token.Tokenizer) token.State { return listItemBlankCont(t, c) }
		}
		return func(t *token.Tokenizer) token.State { return listItemNotBlankCont(t, c) }
	})(t)
}

func listItemBlankCont(t *token.Tokenizer, c *token.Container) token.State {
	if c.BlankInitial {
		return token.Nok
	}
	return t.Go(SpaceOrTabMinMax(0, c.Size), listItemOK)(t)
}

func listItemNotBlankCont(t *token.Tokenizer, c *token.Container) token.State {
	size := c.Size
	c.BlankInitial = false
	return t.Go(SpaceOrTabMinMax(size, size), listItemOK)(t)
}

func listItemOK(t *token.Tokenizer) token.State {
	if !t.LastGoOk() {
		return token.Nok
	}
	return token.Ok
}
