package kura

// Builder creates entities with a single component T directly in their
// archetype.
//
// Creating entities panics with ErrStructuralChangeDuringIteration while a
// query that rejects structural changes iterates the archetype.
type Builder[T any] struct {
	store *Store
	arch  *Archetype
	t     ComponentType
}

// NewBuilder creates a new `Builder` for entities with component T. The
// archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder`, or an error if T is not
//     registered.
func NewBuilder[T any](s *Store) (*Builder[T], error) {
	t, err := componentTypeOf[T](s.schema)
	if err != nil {
		return nil, err
	}
	arch := s.archetypeOf(archetypeKey{components: NewComponentSet(t)})
	return &Builder[T]{store: s, arch: arch, t: t}, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder[T]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with a default initialized T.
func (b *Builder[T]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given value.
func (b *Builder[T]) NewEntityWith(value T) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	setValue(b.arch, b.t, int(b.store.nodes[e.id].row), value)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities, growing the archetype once up front.
func (b *Builder[T]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing value.
func (b *Builder[T]) NewEntitiesWith(count int, value T) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		setValue(b.arch, b.t, int(b.store.nodes[e.id].row), value)
	}
	b.store.fireEntitiesCreated(out)
	return out
}
