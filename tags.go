package kura

// changeTags moves the entity to the archetype with add applied and remove
// taken away, then fires TagsChanged. It reports whether the tag set changed.
func (s *Store) changeTags(e Entity, n *entityNode, add, remove TagSet) (bool, error) {
	if err := s.schema.checkTags(add.Union(remove)); err != nil {
		return false, err
	}
	old := n.archetype
	tags := old.key.tags.Union(add).Difference(remove)
	if tags == old.key.tags {
		return false, nil
	}
	if err := s.checkIteration(old, e.id); err != nil {
		return false, err
	}
	var target *Archetype
	switch {
	case remove.IsEmpty():
		target = s.archetypeWithAdded(old, ComponentSet{}, add)
	case add.IsEmpty():
		target = s.archetypeWithRemoved(old, ComponentSet{}, remove)
	default:
		target = s.archetypeOf(archetypeKey{components: old.key.components, tags: tags})
	}
	if err := s.checkTarget(target); err != nil {
		return false, err
	}
	s.moveEntity(e.id, old, int(n.row), target)
	if s.listensTags(e.id) {
		s.fireTagsChanged(TagsChanged{Entity: e, Tags: tags, OldTags: old.key.tags})
	}
	return true, nil
}

// AddTag adds tag T to e. It reports false if e already had the tag.
func AddTag[T any](e Entity) (bool, error) {
	s, n, err := e.resolve()
	if err != nil {
		return false, err
	}
	t, err := tagTypeOf[T](s.schema)
	if err != nil {
		return false, err
	}
	return s.changeTags(e, n, NewTagSet(t), TagSet{})
}

// RemoveTag removes tag T from e. It reports false if e did not have the tag.
func RemoveTag[T any](e Entity) (bool, error) {
	s, n, err := e.resolve()
	if err != nil {
		return false, err
	}
	t, err := tagTypeOf[T](s.schema)
	if err != nil {
		return false, err
	}
	return s.changeTags(e, n, TagSet{}, NewTagSet(t))
}

// HasTag reports whether e is alive and has tag T.
func HasTag[T any](e Entity) bool {
	s, n, err := e.resolve()
	if err != nil {
		return false
	}
	t, ok := TagTypeOf[T](s.schema)
	return ok && n.archetype.key.tags.Has(t)
}

// AddTags adds all tags to e with a single archetype move.
func (e Entity) AddTags(tags TagSet) (bool, error) {
	s, n, err := e.resolve()
	if err != nil {
		return false, err
	}
	return s.changeTags(e, n, tags, TagSet{})
}

// RemoveTags removes all tags from e with a single archetype move.
func (e Entity) RemoveTags(tags TagSet) (bool, error) {
	s, n, err := e.resolve()
	if err != nil {
		return false, err
	}
	return s.changeTags(e, n, TagSet{}, tags)
}
