package structedit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComment(content string) Comment {
	return Comment{
		Content:   content,
		Author:    Author{Name: "ada", AvatarURL: "https://example.com/ada.png"},
		CreatedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func TestInitStateCopiesInitialThreads(t *testing.T) {
	initial := map[string][]Comment{
		"title": {testComment("first"), testComment("second")},
	}
	s := InitState(pageKey, initial)

	// Mutating the caller's map after construction must not leak in.
	initial["title"][0] = testComment("overwritten")
	initial["other"] = []Comment{testComment("x")}

	thread := s.Comments(titlePath())
	require.Len(t, thread, 2)
	assert.Equal(t, "first", thread[0].Content)
	assert.Empty(t, s.Comments(planFieldPath(0, "name")))
}

func TestStateAccessorDefaults(t *testing.T) {
	s := InitState(pageKey, nil)
	p := titlePath()

	assert.Empty(t, s.Comments(p))
	assert.Equal(t, "", s.Draft(p))
	assert.False(t, s.Saving(p))
	assert.Equal(t, "", s.SaveError(p))
	assert.False(t, s.Focused(p))
	assert.False(t, s.Hovered(p))

	_, ok := s.FocusedKey()
	assert.False(t, ok)
	_, ok = s.HoveredKey()
	assert.False(t, ok)
}

func TestStateKey(t *testing.T) {
	s := InitState(pageKey, nil)

	assert.Equal(t, "title", s.Key(titlePath()))
	assert.Equal(t, "plans[1].price", s.Key(planFieldPath(1, "price")))
	assert.Equal(t, "plans[0]", s.Key(plansPath(ListItem[planPath](0))))
}

// FocusState routes child-path reads to the same serialized keys as the
// outer state, sharing the underlying maps.
func TestFocusState(t *testing.T) {
	initial := map[string][]Comment{
		"plans[1].price": {testComment("too expensive")},
	}
	outer := InitState(pageKey, initial)

	inner := FocusState(func(p ListPath[planPath]) pagePath { return plansPath(p) }, outer)

	pricePath := ItemSub(1, planPath{field: "price"})
	assert.Equal(t, "plans[1].price", inner.Key(pricePath))

	thread := inner.Comments(pricePath)
	require.Len(t, thread, 1)
	assert.Equal(t, "too expensive", thread[0].Content)

	// A comment appended through the outer state is visible through a view
	// derived afterwards.
	def := pageDefinition()
	_, outer, _ = Update(def, CommentCreatedMsg[pagePath]{
		Path:    planFieldPath(1, "price"),
		Comment: testComment("agreed"),
	}, outer, pricingPage())

	inner = FocusState(func(p ListPath[planPath]) pagePath { return plansPath(p) }, outer)
	assert.Len(t, inner.Comments(pricePath), 2)
}

func TestFocusStateSeesFocusAndHover(t *testing.T) {
	def := pageDefinition()
	s := InitState(pageKey, nil)
	data := pricingPage()

	_, s, _ = Update(def, FocusThreadMsg[pagePath]{Path: planFieldPath(0, "name")}, s, data)
	_, s, _ = Update(def, HoverThreadMsg[pagePath]{Path: titlePath(), Hover: true}, s, data)

	inner := FocusState(func(p ListPath[planPath]) pagePath { return plansPath(p) }, s)
	assert.True(t, inner.Focused(ItemSub(0, planPath{field: "name"})))
	assert.False(t, inner.Hovered(ItemSub(0, planPath{field: "name"})))

	key, ok := inner.HoveredKey()
	assert.True(t, ok)
	assert.Equal(t, "title", key)
}

// Superseded states are frozen: transitions on a new state must not be
// visible through the old one.
func TestUpdateIsCopyOnWrite(t *testing.T) {
	def := pageDefinition()
	before := InitState(pageKey, nil)
	data := pricingPage()

	_, after, _ := Update(def, DraftChangedMsg[pagePath]{Path: titlePath(), Draft: "hm"}, before, data)
	assert.Equal(t, "", before.Draft(titlePath()))
	assert.Equal(t, "hm", after.Draft(titlePath()))

	_, after2, _ := Update(def, CommentCreatedMsg[pagePath]{
		Path:    titlePath(),
		Comment: testComment("done"),
	}, after, data)
	assert.Empty(t, after.Comments(titlePath()))
	assert.Len(t, after2.Comments(titlePath()), 1)
	assert.Equal(t, "hm", after.Draft(titlePath()), "old state must keep its draft")
	assert.Equal(t, "", after2.Draft(titlePath()))
}
