package kura

// QueryFilter selects archetypes by their component and tag sets.
//
// An archetype matches if it has all of All, at least one of Any (when Any is
// not empty), not all of WithoutAll (when WithoutAll is not empty) and none
// of WithoutAny. Component and tag conditions must both hold.
type QueryFilter struct {
	AllComponents        ComponentSet
	AnyComponents        ComponentSet
	WithoutAllComponents ComponentSet
	WithoutAnyComponents ComponentSet
	AllTags              TagSet
	AnyTags              TagSet
	WithoutAllTags       TagSet
	WithoutAnyTags       TagSet
}

// NewQueryFilter returns an empty filter matching every archetype.
func NewQueryFilter() QueryFilter { return QueryFilter{} }

// RequireAll requires every type of set.
func (f QueryFilter) RequireAll(set ComponentSet) QueryFilter {
	f.AllComponents = f.AllComponents.Union(set)
	return f
}

// RequireAny requires at least one type of set.
func (f QueryFilter) RequireAny(set ComponentSet) QueryFilter {
	f.AnyComponents = f.AnyComponents.Union(set)
	return f
}

// ExcludeAll rejects archetypes having every type of set.
func (f QueryFilter) ExcludeAll(set ComponentSet) QueryFilter {
	f.WithoutAllComponents = f.WithoutAllComponents.Union(set)
	return f
}

// ExcludeAny rejects archetypes having any type of set.
func (f QueryFilter) ExcludeAny(set ComponentSet) QueryFilter {
	f.WithoutAnyComponents = f.WithoutAnyComponents.Union(set)
	return f
}

// RequireAllTags requires every tag of set.
func (f QueryFilter) RequireAllTags(set TagSet) QueryFilter {
	f.AllTags = f.AllTags.Union(set)
	return f
}

// RequireAnyTags requires at least one tag of set.
func (f QueryFilter) RequireAnyTags(set TagSet) QueryFilter {
	f.AnyTags = f.AnyTags.Union(set)
	return f
}

// ExcludeAllTags rejects archetypes having every tag of set.
func (f QueryFilter) ExcludeAllTags(set TagSet) QueryFilter {
	f.WithoutAllTags = f.WithoutAllTags.Union(set)
	return f
}

// ExcludeAnyTags rejects archetypes having any tag of set.
func (f QueryFilter) ExcludeAnyTags(set TagSet) QueryFilter {
	f.WithoutAnyTags = f.WithoutAnyTags.Union(set)
	return f
}

// Matches evaluates the filter against a component and tag set.
func (f *QueryFilter) Matches(components ComponentSet, tags TagSet) bool {
	c := bitmask256(components)
	if !c.contains(bitmask256(f.AllComponents)) {
		return false
	}
	if c.intersects(bitmask256(f.WithoutAnyComponents)) {
		return false
	}
	if !f.AnyComponents.IsEmpty() && !c.intersects(bitmask256(f.AnyComponents)) {
		return false
	}
	if !f.WithoutAllComponents.IsEmpty() && c.contains(bitmask256(f.WithoutAllComponents)) {
		return false
	}
	t := bitmask256(tags)
	if !t.contains(bitmask256(f.AllTags)) {
		return false
	}
	if t.intersects(bitmask256(f.WithoutAnyTags)) {
		return false
	}
	if !f.AnyTags.IsEmpty() && !t.intersects(bitmask256(f.AnyTags)) {
		return false
	}
	if !f.WithoutAllTags.IsEmpty() && t.contains(bitmask256(f.WithoutAllTags)) {
		return false
	}
	return true
}

// Matches reports whether the archetype satisfies filter.
func (a *Archetype) Matches(filter *QueryFilter) bool {
	return filter.Matches(a.key.components, a.key.tags)
}
