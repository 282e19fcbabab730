package structedit

// Shared test fixture: the pricing page example. A page has an editable
// title, and a list of plans each with an editable name (string) and price
// (int).

type plan struct {
	Name  string
	Price int
}

type page struct {
	Title string
	Plans []plan
}

// planPath addresses one field of a plan.
type planPath struct {
	field string // "name" or "price"
}

// pagePath addresses a location in a page: the title, or somewhere in the
// plans list.
type pagePath struct {
	kind  string // "title" or "plans"
	plans ListPath[planPath]
}

func titlePath() pagePath {
	return pagePath{kind: "title"}
}

func plansPath(p ListPath[planPath]) pagePath {
	return pagePath{kind: "plans", plans: p}
}

func planFieldPath(index int, field string) pagePath {
	return plansPath(ItemSub(index, planPath{field: field}))
}

func pageKey(p pagePath) string {
	switch p.kind {
	case "title":
		return "title"
	case "plans":
		return "plans" + p.plans.Key(func(pp planPath) string { return pp.field })
	}
	return ""
}

func planDefinition() Definition[planPath, plan] {
	b := Object[planPath, plan]()
	AddField(b,
		func(p planPath) (struct{}, bool) { return struct{}{}, p.field == "name" },
		func(d plan) string { return d.Name },
		func(v string, d plan) plan { d.Name = v; return d },
		LeafString(),
	)
	AddField(b,
		func(p planPath) (struct{}, bool) { return struct{}{}, p.field == "price" },
		func(d plan) int { return d.Price },
		func(v int, d plan) plan { d.Price = v; return d },
		LeafInt(),
	)
	return b.Build()
}

func pageDefinition() Definition[pagePath, page] {
	b := Object[pagePath, page]()
	AddField(b,
		func(p pagePath) (struct{}, bool) { return struct{}{}, p.kind == "title" },
		func(d page) string { return d.Title },
		func(v string, d page) page { d.Title = v; return d },
		LeafString(),
	)
	AddField(b,
		func(p pagePath) (ListPath[planPath], bool) { return p.plans, p.kind == "plans" },
		func(d page) []plan { return d.Plans },
		func(v []plan, d page) page { d.Plans = v; return d },
		ListOf(planDefinition()),
	)
	return b.Build()
}

func pricingPage() page {
	return page{
		Title: "Pricing",
		Plans: []plan{
			{Name: "Free", Price: 0},
			{Name: "Pro", Price: 15},
		},
	}
}
