package structedit

import "strconv"

type listPathKind int

const (
	listWhole listPathKind = iota
	listItem
	listItemSub
)

// ListPath addresses a location within a list shape: the list as a whole
// ([WholeList]), one item as a unit ([ListItem], the target for Delete), or a
// sub-path within one item ([ItemSub]). The zero value addresses the whole
// list.
//
// Indices are positional, not identities: deleting item i shifts every later
// item down, so "index i" always means "the current i-th element".
type ListPath[IP any] struct {
	kind  listPathKind
	index int
	sub   IP
}

// WholeList addresses the list as a whole. ApplyEdit ignores it (append and
// other whole-list operations are host-level concerns) and GetString does not
// resolve it.
func WholeList[IP any]() ListPath[IP] {
	return ListPath[IP]{}
}

// ListItem addresses item index as a unit; the valid target for [Delete].
func ListItem[IP any](index int) ListPath[IP] {
	return ListPath[IP]{kind: listItem, index: index}
}

// ItemSub addresses sub-path sub within item index.
func ItemSub[IP any](index int, sub IP) ListPath[IP] {
	return ListPath[IP]{kind: listItemSub, index: index, sub: sub}
}

// Index reports the addressed item index, if the path addresses an item.
func (p ListPath[IP]) Index() (int, bool) {
	return p.index, p.kind != listWhole
}

// Sub reports the sub-path within the addressed item, if any.
func (p ListPath[IP]) Sub() (IP, bool) {
	var zero IP
	if p.kind != listItemSub {
		return zero, false
	}
	return p.sub, true
}

// Key renders the path as a stable string fragment for serialized-path
// keying: "" for the whole list, "[i]" for an item, "[i]."+subKey(sub) for a
// sub-path.
func (p ListPath[IP]) Key(subKey func(IP) string) string {
	switch p.kind {
	case listItem:
		return "[" + strconv.Itoa(p.index) + "]"
	case listItemSub:
		return "[" + strconv.Itoa(p.index) + "]." + subKey(p.sub)
	}
	return ""
}

// ListOf builds the Definition for a list of items, given the Definition of
// one item.
//
// Delete on a [ListItem] path removes that item, preserving the order of the
// rest. Edits on [ItemSub] paths recurse into that item only. Out-of-range
// indices and whole-list actions are no-ops, so messages referencing a
// since-deleted index are safely absorbed.
func ListOf[IP, T any](item Definition[IP, T]) Definition[ListPath[IP], []T] {
	return Definition[ListPath[IP], []T]{
		apply: func(a EditAction[ListPath[IP]], items []T) []T {
			i := a.Path.index
			switch a.Path.kind {
			case listItem:
				if a.Op != OpDelete || i < 0 || i >= len(items) {
					return items
				}
				out := make([]T, 0, len(items)-1)
				out = append(out, items[:i]...)
				out = append(out, items[i+1:]...)
				return out
			case listItemSub:
				if i < 0 || i >= len(items) {
					return items
				}
				out := append([]T(nil), items...)
				out[i] = item.ApplyEdit(EditAction[IP]{Path: a.Path.sub, Op: a.Op, Text: a.Text}, out[i])
				return out
			}
			return items
		},
		str: func(p ListPath[IP], items []T) (string, bool) {
			if p.kind != listItemSub || p.index < 0 || p.index >= len(items) {
				return "", false
			}
			return item.GetString(p.sub, items[p.index])
		},
	}
}
