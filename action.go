package structedit

// EditOp enumerates the operations an EditAction can carry.
type EditOp int

const (
	// OpEdit replaces the addressed text field with the action's Text.
	OpEdit EditOp = iota
	// OpDelete removes the addressed element from its container. Delete is
	// container-granularity: applied to a bare scalar leaf it is a no-op.
	OpDelete
)

// EditAction is a path plus an operation, produced by the host's editable
// text widget (or an explicit delete control) and consumed by
// [Definition.ApplyEdit].
type EditAction[P any] struct {
	Path P
	Op   EditOp
	// Text is the full replacement content, not a diff. Meaningful only for
	// OpEdit.
	Text string
}

// Edit builds an action replacing the text at path with text.
func Edit[P any](path P, text string) EditAction[P] {
	return EditAction[P]{Path: path, Op: OpEdit, Text: text}
}

// Delete builds an action removing the element at path from its container.
func Delete[P any](path P) EditAction[P] {
	return EditAction[P]{Path: path, Op: OpDelete}
}

// MapAction lifts an action over a child path type into the parent path
// type by rewriting the embedded path with inject, leaving the payload
// untouched.
func MapAction[CP, P any](inject func(CP) P, a EditAction[CP]) EditAction[P] {
	return EditAction[P]{Path: inject(a.Path), Op: a.Op, Text: a.Text}
}
