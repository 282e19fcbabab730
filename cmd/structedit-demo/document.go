package main

import (
	"github.com/joeycumines/structedit"
)

// The demo document: a pricing page with an editable title and a list of
// plans, each with an editable name and price.

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

// pagePath addresses a location in the page: the title, or somewhere in the
// plans list.
type pagePath struct {
	kind  string // "title" or "plans"
	plans structedit.ListPath[planPath]
}

func titlePath() pagePath {
	return pagePath{kind: "title"}
}

func plansPath(p structedit.ListPath[planPath]) pagePath {
	return pagePath{kind: "plans", plans: p}
}

func planFieldPath(index int, field string) pagePath {
	return plansPath(structedit.ItemSub(index, planPath{field: field}))
}

// pageKey serializes a pagePath into the stable string key the comment
// store and mouse zones are indexed by, e.g. "title" or "plans[1].price".
func pageKey(p pagePath) string {
	switch p.kind {
	case "title":
		return "title"
	case "plans":
		return "plans" + p.plans.Key(func(pp planPath) string { return pp.field })
	}
	return ""
}

func pageDefinition() structedit.Definition[pagePath, page] {
	pb := structedit.Object[planPath, plan]()
	structedit.AddField(pb,
		func(p planPath) (struct{}, bool) { return struct{}{}, p.field == "name" },
		func(d plan) string { return d.Name },
		func(v string, d plan) plan { d.Name = v; return d },
		structedit.LeafString(),
	)
	structedit.AddField(pb,
		func(p planPath) (struct{}, bool) { return struct{}{}, p.field == "price" },
		func(d plan) int { return d.Price },
		func(v int, d plan) plan { d.Price = v; return d },
		structedit.LeafInt(),
	)

	b := structedit.Object[pagePath, page]()
	structedit.AddField(b,
		func(p pagePath) (struct{}, bool) { return struct{}{}, p.kind == "title" },
		func(d page) string { return d.Title },
		func(v string, d page) page { d.Title = v; return d },
		structedit.LeafString(),
	)
	structedit.AddField(b,
		func(p pagePath) (structedit.ListPath[planPath], bool) { return p.plans, p.kind == "plans" },
		func(d page) []plan { return d.Plans },
		func(v []plan, d page) page { d.Plans = v; return d },
		structedit.ListOf(pb.Build()),
	)
	return b.Build()
}

func initialPage() page {
	return page{
		Title: "Pricing",
		Plans: []plan{
			{Name: "Free", Price: 0},
			{Name: "Pro", Price: 15},
			{Name: "Enterprise", Price: 120},
		},
	}
}

// field is one editable leaf as presented in the UI, in document order.
type field struct {
	label string
	path  pagePath
	// planIndex is the index of the plan this field belongs to, or -1 for
	// fields outside the plans list. Used by the delete-plan key.
	planIndex int
}

// documentFields enumerates the editable leaves of data in render order.
// Recomputed whenever the data changes, since plan indices shift on delete.
func documentFields(data page) []field {
	fields := []field{{label: "Title", path: titlePath(), planIndex: -1}}
	for i := range data.Plans {
		fields = append(fields,
			field{label: "Plan name", path: planFieldPath(i, "name"), planIndex: i},
			field{label: "Plan price", path: planFieldPath(i, "price"), planIndex: i},
		)
	}
	return fields
}
