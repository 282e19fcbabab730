/*
Package structedit is a toolkit for building what-you-see-is-what-you-get
editors over structured application data.

A host application describes which leaf fields of a nested record/list value
are editable text by composing a [Definition] out of combinators
([LeafString], [LeafInt], [ListOf], the [Object] builder). The resulting
Definition exposes exactly two operations: apply an [EditAction] at a path,
and read the string value at a path. Paths are ordinary host-defined value
types; the library never requires them to be comparable or hashable, only
serializable via a host-supplied function.

Alongside the edited data, a [State] keeps a threaded-comment side channel:
per-location comment threads keyed by serialized path, plus transient draft
text and focus/hover UI state. All mutation flows through the pure reducer
[Update], which accepts the [Msg] sum and returns new data, new state, and at
most one [Effect] the host must execute (asynchronous comment creation) and
resolve by feeding a [CommentCreatedMsg] back in.

The reducer is total over its input domain: unresolvable paths, stale list
indices, and malformed numeric input are absorbed as no-ops rather than
errors, so stale or reordered messages cannot corrupt state or crash the
editor.

Composition over substructures uses focus-by-injection: [FocusState],
[FocusDefinition], [MapMsg], and [MapAction] adapt components operating on a
child path type to a parent path type by applying an injection function, so
child definitions compose without modification.

The library performs no I/O and has no opinion about rendering; see
cmd/structedit-demo for a Bubble Tea host wiring a terminal UI to a
Definition/State/data triple.
*/
package structedit
