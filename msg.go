package structedit

// Msg is the closed set of messages the [Update] reducer accepts. Concrete
// messages are plain structs so hosts can construct, inspect, and route them
// freely; [MapMsg] lifts a message over a child path type to a parent path
// type.
type Msg[P any] interface {
	isMsg(P)
}

// ActionMsg applies a structural edit to the data through the Definition.
type ActionMsg[P any] struct {
	Action EditAction[P]
}

// DraftChangedMsg replaces the unsaved comment draft at Path.
type DraftChangedMsg[P any] struct {
	Path  P
	Draft string
}

// SubmitDraftMsg asks to create a comment from the draft at Path. Blank
// (empty or whitespace-only) drafts are silently ignored; otherwise the
// reducer emits a [CreateComment] effect and keeps the draft pending until
// the matching [CommentCreatedMsg] arrives.
type SubmitDraftMsg[P any] struct {
	Path P
}

// CommentCreatedMsg resolves a [CreateComment] effect. The host must deliver
// exactly one per executed effect: on success Err is nil and Comment is the
// created record; on failure Err is non-nil and the draft is kept for retry.
type CommentCreatedMsg[P any] struct {
	Path    P
	Comment Comment
	Err     error
}

// FocusThreadMsg gives UI focus to the comment thread at Path, replacing any
// previously focused thread.
type FocusThreadMsg[P any] struct {
	Path P
}

// HoverThreadMsg sets or clears the hovered comment thread. Hover true
// hovers the thread at Path; Hover false clears the hover slot (Path is
// ignored).
type HoverThreadMsg[P any] struct {
	Path  P
	Hover bool
}

func (ActionMsg[P]) isMsg(P) {}

func (DraftChangedMsg[P]) isMsg(P) {}

func (SubmitDraftMsg[P]) isMsg(P) {}

func (CommentCreatedMsg[P]) isMsg(P) {}

func (FocusThreadMsg[P]) isMsg(P) {}

func (HoverThreadMsg[P]) isMsg(P) {}

// MapMsg lifts a message over a child path type into the parent path type by
// rewriting the embedded path with inject, leaving the payload untouched.
func MapMsg[CP, P any](inject func(CP) P, msg Msg[CP]) Msg[P] {
	switch m := msg.(type) {
	case ActionMsg[CP]:
		return ActionMsg[P]{Action: MapAction(inject, m.Action)}
	case DraftChangedMsg[CP]:
		return DraftChangedMsg[P]{Path: inject(m.Path), Draft: m.Draft}
	case SubmitDraftMsg[CP]:
		return SubmitDraftMsg[P]{Path: inject(m.Path)}
	case CommentCreatedMsg[CP]:
		return CommentCreatedMsg[P]{Path: inject(m.Path), Comment: m.Comment, Err: m.Err}
	case FocusThreadMsg[CP]:
		return FocusThreadMsg[P]{Path: inject(m.Path)}
	case HoverThreadMsg[CP]:
		return HoverThreadMsg[P]{Path: inject(m.Path), Hover: m.Hover}
	}
	return nil
}

// Effect describes a side effect the reducer cannot perform itself. The
// reducer returns at most one Effect per message; the host executes it and
// feeds the outcome back in as a message. A nil Effect means none.
type Effect[P any] interface {
	isEffect(P)
}

// CreateComment asks the host to create a comment with Content at Path
// (typically a network round trip) and deliver the outcome as a
// [CommentCreatedMsg] for the same path. The reducer keeps the draft stored
// while the effect is outstanding, so the UI continues to show what the user
// typed.
type CreateComment[P any] struct {
	Path    P
	Content string
}

func (CreateComment[P]) isEffect(P) {}

// MapEffect lifts an effect over a child path type into the parent path
// type. Nil maps to nil.
func MapEffect[CP, P any](inject func(CP) P, effect Effect[CP]) Effect[P] {
	switch e := effect.(type) {
	case CreateComment[CP]:
		return CreateComment[P]{Path: inject(e.Path), Content: e.Content}
	}
	return nil
}
