package structedit

import "strconv"

// Definition bundles the two operations that make a data shape editable:
// applying an edit at a path, and reading the string value at a path.
// Definitions are pure, stateless configuration; they are composed
// structurally (see [Object], [ListOf], [FocusDefinition]) and shared
// read-only.
//
// The zero value is a valid no-op Definition, equivalent to [Empty].
type Definition[P, D any] struct {
	apply func(EditAction[P], D) D
	str   func(P, D) (string, bool)
}

// NewDefinition builds a Definition from raw operations. Most hosts should
// prefer the combinators; this exists for leaves the library does not ship
// (dates, enums, and so on). Either function may be nil, in which case that
// operation is a no-op / never resolves.
//
// Implementations must be total: a path that does not resolve into the shape
// must yield the data unchanged (apply) or ("", false) (getString), never a
// panic.
func NewDefinition[P, D any](apply func(EditAction[P], D) D, getString func(P, D) (string, bool)) Definition[P, D] {
	return Definition[P, D]{apply: apply, str: getString}
}

// ApplyEdit applies the action to data, returning the new data value. Actions
// whose path does not resolve into this shape leave data unchanged.
func (d Definition[P, D]) ApplyEdit(a EditAction[P], data D) D {
	if d.apply == nil {
		return data
	}
	return d.apply(a, data)
}

// GetString reads the text value at path. The second result is false when the
// path does not denote a text field under this Definition (including paths
// that denote containers rather than leaves).
func (d Definition[P, D]) GetString(path P, data D) (string, bool) {
	if d.str == nil {
		return "", false
	}
	return d.str(path, data)
}

// LeafString is the Definition for a bare editable string. Edits replace the
// value wholesale; Delete is a no-op (deletion only has meaning at container
// granularity).
func LeafString() Definition[struct{}, string] {
	return Definition[struct{}, string]{
		apply: func(a EditAction[struct{}], old string) string {
			if a.Op == OpEdit {
				return a.Text
			}
			return old
		},
		str: func(_ struct{}, s string) (string, bool) {
			return s, true
		},
	}
}

// LeafInt is the Definition for an editable integer rendered as text.
// Malformed input is silently ignored, preserving the previous value, so a
// half-typed or stale edit never corrupts the data.
func LeafInt() Definition[struct{}, int] {
	return Definition[struct{}, int]{
		apply: func(a EditAction[struct{}], old int) int {
			if a.Op != OpEdit {
				return old
			}
			n, err := strconv.Atoi(a.Text)
			if err != nil {
				return old
			}
			return n
		},
		str: func(_ struct{}, n int) (string, bool) {
			return strconv.Itoa(n), true
		},
	}
}

// Empty is the identity Definition: edits are no-ops and no path resolves to
// text. It is a placeholder for substructures that are not (yet) editable.
func Empty[P, D any]() Definition[P, D] {
	return Definition[P, D]{}
}

// FocusDefinition lifts a Definition over a child path type to a parent path
// type. dispatch claims the parent paths that denote the child structure and
// unwraps them; unclaimed paths are no-ops / unresolved.
func FocusDefinition[P, CP, D any](dispatch func(P) (CP, bool), child Definition[CP, D]) Definition[P, D] {
	return Definition[P, D]{
		apply: func(a EditAction[P], data D) D {
			cp, ok := dispatch(a.Path)
			if !ok {
				return data
			}
			return child.ApplyEdit(EditAction[CP]{Path: cp, Op: a.Op, Text: a.Text}, data)
		},
		str: func(p P, data D) (string, bool) {
			cp, ok := dispatch(p)
			if !ok {
				return "", false
			}
			return child.GetString(cp, data)
		},
	}
}
