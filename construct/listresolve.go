package construct

import "github.com/jcorbin/mdcore/token"

// listGroup tracks one candidate (or finalized) run of adjacent list
// items sharing a marker kind and nesting depth, matching the 4-tuple
// (Kind, balance, start, end) markdown-rs's resolve_list_item keeps in
// lists_wip/lists.
type listGroup struct {
	kind    listKind
	balance int
	start   int
	end     int
}

// whitespaceClassTypes are the event types the resolver treats as inert
// "connective tissue" that never breaks a run of sibling list items
// (spec.md section 4.3: "Tie-breaks and edge cases").
var whitespaceClassTypes = map[token.Type]bool{
	token.SpaceOrTab:       true,
	token.LineEnding:       true,
	token.BlankLineEnding:  true,
	token.BlockQuotePrefix: true,
}

// resolveListItem implements spec.md section 4.3's resolver algorithm:
// scan the event log, grouping adjacent ListItem spans of the same
// marker kind and nesting balance into ListOrdered/ListUnordered
// wrappers, spliced into the log via the tokenizer's event map.
func resolveListItem(t *token.Tokenizer) {
	var (
		balance  int
		listsWIP []listGroup
		lists    []listGroup
	)

	for i := 0; i < len(t.Events); i++ {
		e := t.Events[i]
		if e.Type != token.ListItem {
			continue
		}

		if e.Kind == token.Exit {
			balance--
			continue
		}

		end := matchingListItemExit(t.Events, i)
		marker := firstEventOfType(t.Events, i, end, token.ListItemMarker)
		kind := listKindFromByte(t.ParseState.Bytes[t.Events[marker].Point.Offset])
		current := listGroup{kind: kind, balance: balance, start: i, end: end}

		matched := false
		for li := len(listsWIP) - 1; li >= 0; li-- {
			prev := listsWIP[li]
			before := skipWhitespaceClass(t.Events, prev.end+1)
			if prev.kind == current.kind && prev.balance == current.balance && before == current.start {
				listsWIP[li].end = current.end
				lists = append(lists, listsWIP[li+1:]...)
				listsWIP = listsWIP[:li+1]
				matched = true
				break
			}
		}

		if !matched {
			exit := -1
			for li := len(listsWIP) - 1; li >= 0; li-- {
				if current.start > listsWIP[li].end {
					exit = li
				} else {
					break
				}
			}
			if exit >= 0 {
				lists = append(lists, listsWIP[exit:]...)
				listsWIP = listsWIP[:exit]
			}
			listsWIP = append(listsWIP, current)
		}

		balance++
	}
	lists = append(lists, listsWIP...)

	for _, g := range lists {
		typ := token.ListUnordered
		if g.kind == listDot || g.kind == listParen {
			typ = token.ListOrdered
		}
		enter := t.Events[g.start]
		exit := t.Events[g.end]
		enter.Type, exit.Type = typ, typ
		t.Map.Add(g.start, 0, []token.Event{enter})
		t.Map.Add(g.end+1, 0, []token.Event{exit})
	}
}

// matchingListItemExit finds the index of the Exit(ListItem) event that
// closes the Enter(ListItem) at enterIndex, balancing nested ListItem
// spans (a sub-list's items) along the way.
func matchingListItemExit(events []token.Event, enterIndex int) int {
	balance := 0
	for i := enterIndex; i < len(events); i++ {
		if events[i].Type != token.ListItem {
			continue
		}
		if events[i].Kind == token.Enter {
			balance++
		} else {
			balance--
			if balance == 0 {
				return i
			}
		}
	}
	return len(events) - 1
}

// firstEventOfType scans forward from start (inclusive) up to end
// (inclusive) for the first Enter event of typ.
func firstEventOfType(events []token.Event, start, end int, typ token.Type) int {
	for i := start; i <= end; i++ {
		if events[i].Type == typ && events[i].Kind == token.Enter {
			return i
		}
	}
	panic("construct: list item missing expected marker event")
}

// skipWhitespaceClass returns the first index at or after from whose
// event is not one of whitespaceClassTypes.
func skipWhitespaceClass(events []token.Event, from int) int {
	i := from
	for i < len(events) && whitespaceClassTypes[events[i].Type] {
		i++
	}
	return i
}
