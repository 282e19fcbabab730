package structedit

import "strings"

// Update is the pure reducer threading one message through the
// (Definition, State, data) triple. It returns the new data, the new State,
// and at most one [Effect] the host must execute; it never blocks, performs
// I/O, or panics.
//
// Transitions:
//
//   - [ActionMsg]: data = def.ApplyEdit(action, data).
//   - [DraftChangedMsg]: stores the draft, clearing any stale save error.
//   - [SubmitDraftMsg]: emits [CreateComment] with the current draft, unless
//     the trimmed draft is blank or a creation for the same path is already
//     pending (both silently ignored).
//   - [CommentCreatedMsg] success: clears the draft and appends the comment
//     to its thread.
//   - [CommentCreatedMsg] failure: keeps the draft for retry and records the
//     error, readable via [State.SaveError].
//   - [FocusThreadMsg] / [HoverThreadMsg]: update the single focus/hover
//     slots.
//
// Stale messages (paths that no longer resolve, responses for abandoned
// effects) are applied as written or absorbed as no-ops; they never corrupt
// state.
func Update[P, D any](def Definition[P, D], msg Msg[P], s State[P], data D) (D, State[P], Effect[P]) {
	switch m := msg.(type) {
	case ActionMsg[P]:
		return def.ApplyEdit(m.Action, data), s, nil

	case DraftChangedMsg[P]:
		return data, s.withDraft(s.serialize(m.Path), m.Draft), nil

	case SubmitDraftMsg[P]:
		key := s.serialize(m.Path)
		draft := s.drafts[key]
		if strings.TrimSpace(draft) == "" {
			return data, s, nil
		}
		if _, saving := s.pending[key]; saving {
			return data, s, nil
		}
		return data, s.withPending(key), CreateComment[P]{Path: m.Path, Content: draft}

	case CommentCreatedMsg[P]:
		key := s.serialize(m.Path)
		if m.Err != nil {
			return data, s.withSaveError(key, m.Err.Error()), nil
		}
		return data, s.withComment(key, m.Comment), nil

	case FocusThreadMsg[P]:
		s.focused = s.serialize(m.Path)
		s.hasFocus = true
		return data, s, nil

	case HoverThreadMsg[P]:
		if m.Hover {
			s.hovered = s.serialize(m.Path)
			s.hasHover = true
		} else {
			s.hovered = ""
			s.hasHover = false
		}
		return data, s, nil
	}

	return data, s, nil
}

// ApplyEditAction is shorthand for routing a bare [EditAction] through the
// reducer when no comment state is involved.
func ApplyEditAction[P, D any](def Definition[P, D], a EditAction[P], data D) D {
	return def.ApplyEdit(a, data)
}
