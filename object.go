package structedit

// ObjectBuilder accumulates the editable fields of a record shape, one
// [AddField] call per field, and closes them into a single Definition via
// [ObjectBuilder.Build]. There is no arity limit.
type ObjectBuilder[P, D any] struct {
	fields []objectField[P, D]
}

type objectField[P, D any] struct {
	claims func(P) bool
	def    Definition[P, D]
}

// Object starts a builder for a record shape with data type D addressed by
// path type P.
func Object[P, D any]() *ObjectBuilder[P, D] {
	return &ObjectBuilder[P, D]{}
}

// AddField registers one editable field of the record.
//
// dispatch claims the paths denoting this field and unwraps them to the
// child's path type. It must be a total, deterministic function of the path
// alone (never of the data), and no two fields of one builder may claim the
// same path value; the first claiming field wins. get and set project the
// field out of and back into the record; set must not mutate its input
// record.
//
// AddField is a free function because Go methods cannot introduce the child
// type parameters. It returns b to allow chaining.
func AddField[P, D, CP, CD any](
	b *ObjectBuilder[P, D],
	dispatch func(P) (CP, bool),
	get func(D) CD,
	set func(CD, D) D,
	child Definition[CP, CD],
) *ObjectBuilder[P, D] {
	b.fields = append(b.fields, objectField[P, D]{
		claims: func(p P) bool {
			_, ok := dispatch(p)
			return ok
		},
		def: Definition[P, D]{
			apply: func(a EditAction[P], data D) D {
				cp, ok := dispatch(a.Path)
				if !ok {
					return data
				}
				child2 := child.ApplyEdit(EditAction[CP]{Path: cp, Op: a.Op, Text: a.Text}, get(data))
				return set(child2, data)
			},
			str: func(p P, data D) (string, bool) {
				cp, ok := dispatch(p)
				if !ok {
					return "", false
				}
				return child.GetString(cp, get(data))
			},
		},
	})
	return b
}

// Build closes the accumulated fields into a Definition. Paths no field
// claims are no-ops / unresolved. The builder may be reused after Build;
// later AddField calls do not affect previously built Definitions.
func (b *ObjectBuilder[P, D]) Build() Definition[P, D] {
	fields := append([]objectField[P, D](nil), b.fields...)
	return Definition[P, D]{
		apply: func(a EditAction[P], data D) D {
			for _, f := range fields {
				if f.claims(a.Path) {
					return f.def.ApplyEdit(a, data)
				}
			}
			return data
		},
		str: func(p P, data D) (string, bool) {
			for _, f := range fields {
				if f.claims(p) {
					return f.def.GetString(p, data)
				}
			}
			return "", false
		},
	}
}
