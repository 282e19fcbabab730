package structedit

import "maps"

// State holds the comment side channel for one editing session: per-location
// comment threads keyed by serialized path, at most one in-flight draft per
// location, and the single focused/hovered thread slots the UI renders from.
//
// State is created once via [InitState] and mutated only through [Update],
// which is copy-on-write: a returned State shares unchanged entries with its
// predecessor, and superseded values must be treated as frozen. The zero
// State is not usable.
type State[P any] struct {
	serialize func(P) string
	comments  map[string][]Comment
	drafts    map[string]string
	pending   map[string]struct{}
	saveErrs  map[string]string
	focused   string
	hasFocus  bool
	hovered   string
	hasHover  bool
}

// InitState builds a State for path type P. serialize must map every path a
// host will address to a stable string key; distinct logical locations must
// serialize distinctly. initial seeds the comment threads (typically loaded
// from the host's persistence) and is copied, not retained.
func InitState[P any](serialize func(P) string, initial map[string][]Comment) State[P] {
	comments := make(map[string][]Comment, len(initial))
	for key, thread := range initial {
		comments[key] = append([]Comment(nil), thread...)
	}
	return State[P]{
		serialize: serialize,
		comments:  comments,
		drafts:    map[string]string{},
		pending:   map[string]struct{}{},
		saveErrs:  map[string]string{},
	}
}

// Key serializes a path with this State's serializer. Hosts use it to derive
// stable widget identifiers (for example mouse-zone IDs) that match the keys
// the State indexes by.
func (s State[P]) Key(path P) string {
	return s.serialize(path)
}

// Comments returns the thread at path, oldest first. The returned slice must
// not be mutated.
func (s State[P]) Comments(path P) []Comment {
	return s.comments[s.serialize(path)]
}

// Draft returns the unsaved draft text at path, or "".
func (s State[P]) Draft(path P) string {
	return s.drafts[s.serialize(path)]
}

// Saving reports whether a comment creation for path is pending a response.
func (s State[P]) Saving(path P) bool {
	_, ok := s.pending[s.serialize(path)]
	return ok
}

// SaveError returns the error message from the last failed comment creation
// at path, or "". It is cleared when the draft changes or a creation
// succeeds.
func (s State[P]) SaveError(path P) string {
	return s.saveErrs[s.serialize(path)]
}

// Focused reports whether the thread at path holds UI focus. At most one
// thread is focused at a time.
func (s State[P]) Focused(path P) bool {
	return s.hasFocus && s.focused == s.serialize(path)
}

// Hovered reports whether the thread at path is hovered. At most one thread
// is hovered at a time.
func (s State[P]) Hovered(path P) bool {
	return s.hasHover && s.hovered == s.serialize(path)
}

// FocusedKey returns the serialized key of the focused thread, if any.
func (s State[P]) FocusedKey() (string, bool) {
	return s.focused, s.hasFocus
}

// HoveredKey returns the serialized key of the hovered thread, if any.
func (s State[P]) HoveredKey() (string, bool) {
	return s.hovered, s.hasHover
}

// FocusState derives a read-only view of s over a narrower path type by
// pre-composing the serializer with inject. The view shares the underlying
// maps (it is routing sugar for rendering a substructure, not a copy);
// mutations must go through the outer path type via [MapMsg] / [MapAction].
func FocusState[CP, P any](inject func(CP) P, s State[P]) State[CP] {
	return State[CP]{
		serialize: func(cp CP) string { return s.serialize(inject(cp)) },
		comments:  s.comments,
		drafts:    s.drafts,
		pending:   s.pending,
		saveErrs:  s.saveErrs,
		focused:   s.focused,
		hasFocus:  s.hasFocus,
		hovered:   s.hovered,
		hasHover:  s.hasHover,
	}
}

// Copy-on-write transitions used by the reducer. Each clones only the maps
// it touches.

func (s State[P]) withDraft(key, text string) State[P] {
	s.drafts = maps.Clone(s.drafts)
	s.drafts[key] = text
	if _, ok := s.saveErrs[key]; ok {
		s.saveErrs = maps.Clone(s.saveErrs)
		delete(s.saveErrs, key)
	}
	return s
}

func (s State[P]) withPending(key string) State[P] {
	s.pending = maps.Clone(s.pending)
	s.pending[key] = struct{}{}
	return s
}

func (s State[P]) withSaveError(key, message string) State[P] {
	s.pending = maps.Clone(s.pending)
	delete(s.pending, key)
	s.saveErrs = maps.Clone(s.saveErrs)
	s.saveErrs[key] = message
	return s
}

func (s State[P]) withComment(key string, c Comment) State[P] {
	s.comments = maps.Clone(s.comments)
	thread := s.comments[key]
	s.comments[key] = append(thread[:len(thread):len(thread)], c)
	s.drafts = maps.Clone(s.drafts)
	delete(s.drafts, key)
	s.pending = maps.Clone(s.pending)
	delete(s.pending, key)
	s.saveErrs = maps.Clone(s.saveErrs)
	delete(s.saveErrs, key)
	return s
}
