package kura

import "github.com/rotisserie/eris"

// stashRef points at an old component value kept for event dispatch.
type stashRef struct {
	col  column
	slot int
}

// componentOp carries one add or remove of one or more component types from
// the structural move to the event dispatch.
type componentOp struct {
	entity    Entity
	old       *Archetype
	target    *Archetype
	changed   ComponentSet // added or removed types
	updated   ComponentSet // types already present on add
	stashes   []stashRef   // parallel to updated or changed types in ascending order
	row       int
	listening bool
}

// beginAdd moves the entity to the archetype holding types and returns the
// row the caller writes the new values to. Old values of types that are
// already present are stashed when someone listens.
func (s *Store) beginAdd(e Entity, n *entityNode, types ComponentSet) (componentOp, error) {
	old := n.archetype
	op := componentOp{
		entity:    e,
		old:       old,
		changed:   types.Difference(old.key.components),
		updated:   types.Intersect(old.key.components),
		listening: s.listensComponents(e.id),
	}
	if op.listening && !op.updated.IsEmpty() {
		op.stashes = make([]stashRef, 0, op.updated.Count())
		op.updated.Each(func(t ComponentType) {
			col := old.column(t)
			op.stashes = append(op.stashes, stashRef{col: col, slot: col.stash(int(n.row))})
		})
	}
	if op.changed.IsEmpty() {
		op.target = old
		op.row = int(n.row)
		return op, nil
	}
	if err := s.checkIteration(old, e.id); err != nil {
		op.clearStashes()
		return op, err
	}
	op.target = s.archetypeWithAdded(old, op.changed, TagSet{})
	if err := s.checkTarget(op.target); err != nil {
		op.clearStashes()
		return op, err
	}
	op.row = s.moveEntity(e.id, old, int(n.row), op.target)
	return op, nil
}

// endAdd fires the component events of an add: Added for new types, then
// Updated for overwritten ones.
func (s *Store) endAdd(op componentOp) {
	if !op.listening {
		return
	}
	op.changed.Each(func(t ComponentType) {
		s.fireComponentChanged(ComponentChanged{
			Entity:       op.entity,
			OldArchetype: op.old,
			oldSlot:      -1,
			Action:       ComponentAdded,
			Type:         t,
		})
	})
	i := 0
	op.updated.Each(func(t ComponentType) {
		ref := op.stashes[i]
		i++
		s.fireComponentChanged(ComponentChanged{
			Entity:       op.entity,
			OldArchetype: op.old,
			old:          ref.col,
			oldSlot:      ref.slot,
			Action:       ComponentUpdated,
			Type:         t,
		})
	})
	op.clearStashes()
}

// removeComponents moves the entity to the archetype without types and fires
// Removed events. It returns the types that were actually removed.
func (s *Store) removeComponents(e Entity, n *entityNode, types ComponentSet) (ComponentSet, error) {
	old := n.archetype
	removed := types.Intersect(old.key.components)
	if removed.IsEmpty() {
		return removed, nil
	}
	if err := s.checkIteration(old, e.id); err != nil {
		return ComponentSet{}, err
	}
	target := s.archetypeWithRemoved(old, removed, TagSet{})
	if err := s.checkTarget(target); err != nil {
		return ComponentSet{}, err
	}
	op := componentOp{
		entity:    e,
		old:       old,
		target:    target,
		changed:   removed,
		listening: s.listensComponents(e.id),
	}
	if op.listening {
		op.stashes = make([]stashRef, 0, removed.Count())
		removed.Each(func(t ComponentType) {
			col := old.column(t)
			op.stashes = append(op.stashes, stashRef{col: col, slot: col.stash(int(n.row))})
		})
	}
	op.row = s.moveEntity(e.id, old, int(n.row), op.target)
	if op.listening {
		i := 0
		removed.Each(func(t ComponentType) {
			ref := op.stashes[i]
			i++
			s.fireComponentChanged(ComponentChanged{
				Entity:       e,
				OldArchetype: old,
				old:          ref.col,
				oldSlot:      ref.slot,
				Action:       ComponentRemoved,
				Type:         t,
			})
		})
		op.clearStashes()
	}
	return removed, nil
}

func (op *componentOp) clearStashes() {
	for _, ref := range op.stashes {
		ref.col.clearStash(ref.slot)
	}
	op.stashes = nil
}

// setValue writes v into the column of t at row.
func setValue[T any](a *Archetype, t ComponentType, row int, v T) {
	a.columns[a.slots[t]].(*Column[T]).values[row] = v
}

// AddComponent sets component T on e. It returns true if the component was
// added and false if an existing value was updated in place.
func AddComponent[T any](e Entity, value T) (bool, error) {
	s, n, err := e.resolve()
	if err != nil {
		return false, err
	}
	t, err := componentTypeOf[T](s.schema)
	if err != nil {
		return false, err
	}
	op, err := s.beginAdd(e, n, NewComponentSet(t))
	if err != nil {
		return false, err
	}
	setValue(op.target, t, op.row, value)
	s.endAdd(op)
	return !op.changed.IsEmpty(), nil
}

// SetComponent overwrites component T of e, which must already have it.
func SetComponent[T any](e Entity, value T) error {
	s, n, err := e.resolve()
	if err != nil {
		return err
	}
	t, err := componentTypeOf[T](s.schema)
	if err != nil {
		return err
	}
	if !n.archetype.key.components.Has(t) {
		return eris.Wrapf(ErrComponentNotFound, "component %s on entity %d", s.schema.componentName(t), e.id)
	}
	op, err := s.beginAdd(e, n, NewComponentSet(t))
	if err != nil {
		return err
	}
	setValue(op.target, t, op.row, value)
	s.endAdd(op)
	return nil
}

// GetComponent returns a pointer to component T of e. The pointer is valid
// until the next structural change of the store.
func GetComponent[T any](e Entity) (*T, error) {
	s, n, err := e.resolve()
	if err != nil {
		return nil, err
	}
	t, err := componentTypeOf[T](s.schema)
	if err != nil {
		return nil, err
	}
	col := n.archetype.column(t)
	if col == nil {
		return nil, eris.Wrapf(ErrComponentNotFound, "component %s on entity %d", s.schema.componentName(t), e.id)
	}
	return col.(*Column[T]).at(int(n.row)), nil
}

// HasComponent reports whether e is alive and has component T.
func HasComponent[T any](e Entity) bool {
	s, n, err := e.resolve()
	if err != nil {
		return false
	}
	t, ok := ComponentTypeOf[T](s.schema)
	return ok && n.archetype.key.components.Has(t)
}

// RemoveComponent removes component T from e. Removing a component the entity
// does not have reports false and no error.
func RemoveComponent[T any](e Entity) (bool, error) {
	s, n, err := e.resolve()
	if err != nil {
		return false, err
	}
	t, err := componentTypeOf[T](s.schema)
	if err != nil {
		return false, err
	}
	removed, err := s.removeComponents(e, n, NewComponentSet(t))
	return !removed.IsEmpty(), err
}

// AddComponents adds default initialized components to e in one move. Types
// already present keep their value. It returns the types that were added.
func AddComponents(e Entity, types ComponentSet) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	if err := s.schema.checkComponents(types); err != nil {
		return ComponentSet{}, err
	}
	added := types.Difference(n.archetype.key.components)
	if added.IsEmpty() {
		return added, nil
	}
	op, err := s.beginAdd(e, n, added)
	if err != nil {
		return ComponentSet{}, err
	}
	s.endAdd(op)
	return op.changed, nil
}

// RemoveComponents removes types from e in one move and returns the types
// that were actually removed.
func RemoveComponents(e Entity, types ComponentSet) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	if err := s.schema.checkComponents(types); err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, types)
}

// duplicateTypes reports the first component type listed twice in types.
func duplicateTypes(s *Schema, types []ComponentType) error {
	var seen ComponentSet
	for _, t := range types {
		if seen.Has(t) {
			return eris.Errorf("component %s listed more than once", s.componentName(t))
		}
		seen = seen.Add(t)
	}
	return nil
}
