package structedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectDispatchesToClaimingField(t *testing.T) {
	def := planDefinition()
	data := plan{Name: "Free", Price: 0}

	got := def.ApplyEdit(Edit(planPath{field: "name"}, "Starter"), data)
	assert.Equal(t, plan{Name: "Starter", Price: 0}, got)

	got = def.ApplyEdit(Edit(planPath{field: "price"}, "9"), data)
	assert.Equal(t, plan{Name: "Free", Price: 9}, got)
}

// TestObjectUnclaimedPathIsNoOp: applyEdit at a path no dispatch claims is
// the identity, and getString does not resolve.
func TestObjectUnclaimedPathIsNoOp(t *testing.T) {
	def := planDefinition()
	data := plan{Name: "Free", Price: 0}

	assert.Equal(t, data, def.ApplyEdit(Edit(planPath{field: "bogus"}, "x"), data))
	assert.Equal(t, data, def.ApplyEdit(Delete(planPath{field: "bogus"}), data))

	_, ok := def.GetString(planPath{field: "bogus"}, data)
	assert.False(t, ok)
}

func TestObjectGetString(t *testing.T) {
	def := planDefinition()
	data := plan{Name: "Pro", Price: 15}

	got, ok := def.GetString(planPath{field: "name"}, data)
	assert.True(t, ok)
	assert.Equal(t, "Pro", got)

	got, ok = def.GetString(planPath{field: "price"}, data)
	assert.True(t, ok)
	assert.Equal(t, "15", got)
}

// The first claiming field wins; a later Build is unaffected by fields added
// after it.
func TestObjectBuilderSnapshot(t *testing.T) {
	b := Object[string, plan]()
	AddField(b,
		func(p string) (struct{}, bool) { return struct{}{}, p == "name" },
		func(d plan) string { return d.Name },
		func(v string, d plan) plan { d.Name = v; return d },
		LeafString(),
	)
	two := b.Build()

	AddField(b,
		func(p string) (struct{}, bool) { return struct{}{}, p == "price" },
		func(d plan) int { return d.Price },
		func(v int, d plan) plan { d.Price = v; return d },
		LeafInt(),
	)
	three := b.Build()

	data := plan{Name: "Free", Price: 0}
	assert.Equal(t, data, two.ApplyEdit(Edit("price", "9"), data),
		"earlier Build must not see later fields")
	assert.Equal(t, plan{Name: "Free", Price: 9}, three.ApplyEdit(Edit("price", "9"), data))
}

func TestObjectDeleteRoutesThroughField(t *testing.T) {
	def := pageDefinition()
	data := pricingPage()

	// Delete of a plan routes through the plans field into the list.
	got := def.ApplyEdit(Delete(plansPath(ListItem[planPath](0))), data)
	assert.Equal(t, []plan{{Name: "Pro", Price: 15}}, got.Plans)
	assert.Equal(t, "Pricing", got.Title)
}
