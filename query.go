package kura

import "iter"

// Query iterates the entities of all archetypes matching a filter. The list
// of matching archetypes is cached and extended when the store creates new
// archetypes.
//
// While a query iterates an archetype, structural changes of entities in that
// archetype fail with ErrStructuralChangeDuringIteration, because swap-remove
// would make the iteration skip or repeat rows. Adding entities to it fails
// too, since growing the archetype reallocates the column slices held by
// chunks. ThrowOnStructuralChange(false) turns both checks off for callers
// that accept that.
type Query struct {
	store        *Store
	filter       QueryFilter
	archetypes   []*Archetype
	seen         int // store archetypes already tested against filter
	withDisabled bool
	throw        bool
}

// Query creates a query over the archetypes matching filter. Entities with
// the Disabled tag are skipped unless the filter requires the tag or the
// query opts in with WithDisabled.
func (s *Store) Query(filter QueryFilter) *Query {
	q := &Query{
		store:  s,
		filter: filter,
		throw:  true,
	}
	if filter.AllTags.Has(DisabledTag) || filter.AnyTags.Has(DisabledTag) {
		q.withDisabled = true
	}
	return q
}

// WithDisabled includes entities tagged Disabled.
func (q *Query) WithDisabled() *Query {
	if !q.withDisabled {
		q.withDisabled = true
		q.invalidate()
	}
	return q
}

// ThrowOnStructuralChange sets whether structural changes to entities of an
// archetype being iterated fail. It is on by default.
func (q *Query) ThrowOnStructuralChange(enabled bool) *Query {
	q.throw = enabled
	return q
}

// Filter returns the filter of the query.
func (q *Query) Filter() QueryFilter { return q.filter }

// Store returns the store the query runs on.
func (q *Query) Store() *Store { return q.store }

func (q *Query) invalidate() {
	q.archetypes = q.archetypes[:0]
	q.seen = 0
}

func (q *Query) matches(a *Archetype) bool {
	if !q.withDisabled && a.key.tags.Has(DisabledTag) {
		return false
	}
	return a.Matches(&q.filter)
}

// update tests the archetypes created since the last call.
func (q *Query) update() {
	all := q.store.archetypes
	if q.seen == len(all) {
		return
	}
	for _, a := range all[q.seen:] {
		if q.matches(a) {
			q.archetypes = append(q.archetypes, a)
		}
	}
	q.seen = len(all)
}

// Archetypes returns the matching archetypes, including empty ones. The
// returned slice must not be modified.
func (q *Query) Archetypes() []*Archetype {
	q.update()
	return q.archetypes
}

// Count returns the number of matching entities.
func (q *Query) Count() int {
	n := 0
	for _, a := range q.Archetypes() {
		n += a.count
	}
	return n
}

// IsEmpty reports whether no entity matches.
func (q *Query) IsEmpty() bool {
	for _, a := range q.Archetypes() {
		if a.count > 0 {
			return false
		}
	}
	return true
}

// visit runs fn while a is marked as iterated. It reports whether iteration
// should continue.
func (q *Query) visit(a *Archetype, fn func(a *Archetype) bool) bool {
	guarded := q.throw
	a.iterating++
	if guarded {
		a.guarded++
	}
	defer func() {
		a.iterating--
		if guarded {
			a.guarded--
		}
	}()
	return fn(a)
}

// Entities iterates the matching entities one by one. Iterating chunks of a
// typed query is faster.
func (q *Query) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		s := q.store
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				for row := 0; row < a.count; row++ {
					if !yield(s.entityAt(a.ids[row])) {
						return false
					}
				}
				return true
			})
			if !more {
				return
			}
		}
	}
}

// ToSlice returns the matching entities.
func (q *Query) ToSlice() []Entity {
	out := make([]Entity, 0, q.Count())
	for e := range q.Entities() {
		out = append(out, e)
	}
	return out
}

// columnValues returns the valid rows of the column of t in a.
func columnValues[T any](a *Archetype, t ComponentType) []T {
	return a.columns[a.slots[t]].(*Column[T]).values[:a.count]
}

// mergeFilters unites every condition set of a and b.
func mergeFilters(a, b QueryFilter) QueryFilter {
	return a.RequireAll(b.AllComponents).
		RequireAny(b.AnyComponents).
		ExcludeAll(b.WithoutAllComponents).
		ExcludeAny(b.WithoutAnyComponents).
		RequireAllTags(b.AllTags).
		RequireAnyTags(b.AnyTags).
		ExcludeAllTags(b.WithoutAllTags).
		ExcludeAnyTags(b.WithoutAnyTags)
}
