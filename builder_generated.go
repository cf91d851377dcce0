package kura

// Builder2 creates entities with the 2 components T1, T2 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder2[T1, T2 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
}

// NewBuilder2 creates a new `Builder` for entities with the 2 components
// T1, T2. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder2`, or an error if a type is not
//     registered.
func NewBuilder2[T1, T2 any](s *Store) (*Builder2[T1, T2], error) {
	types, set, err := signature2[T1, T2](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder2[T1, T2]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2 = types[0], types[1]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder2[T1, T2]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder2[T1, T2]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder2[T1, T2]) NewEntityWith(c1 T1, c2 T2) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder2[T1, T2]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder2[T1, T2]) NewEntitiesWith(count int, c1 T1, c2 T2) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder3 creates entities with the 3 components T1, T2, T3 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder3[T1, T2, T3 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
}

// NewBuilder3 creates a new `Builder` for entities with the 3 components
// T1, T2, T3. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder3`, or an error if a type is not
//     registered.
func NewBuilder3[T1, T2, T3 any](s *Store) (*Builder3[T1, T2, T3], error) {
	types, set, err := signature3[T1, T2, T3](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder3[T1, T2, T3]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3 = types[0], types[1], types[2]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder3[T1, T2, T3]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder3[T1, T2, T3]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder3[T1, T2, T3]) NewEntityWith(c1 T1, c2 T2, c3 T3) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder3[T1, T2, T3]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder3[T1, T2, T3]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder4 creates entities with the 4 components T1, T2, T3, T4 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder4[T1, T2, T3, T4 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
	t4    ComponentType
}

// NewBuilder4 creates a new `Builder` for entities with the 4 components
// T1, T2, T3, T4. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder4`, or an error if a type is not
//     registered.
func NewBuilder4[T1, T2, T3, T4 any](s *Store) (*Builder4[T1, T2, T3, T4], error) {
	types, set, err := signature4[T1, T2, T3, T4](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder4[T1, T2, T3, T4]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3, b.t4 = types[0], types[1], types[2], types[3]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder4[T1, T2, T3, T4]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder4[T1, T2, T3, T4]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder4[T1, T2, T3, T4]) NewEntityWith(c1 T1, c2 T2, c3 T3, c4 T4) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	setValue(b.arch, b.t4, row, c4)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder4[T1, T2, T3, T4]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder4[T1, T2, T3, T4]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3, c4 T4) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
		setValue(b.arch, b.t4, row, c4)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder5 creates entities with the 5 components T1, T2, T3, T4, T5 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder5[T1, T2, T3, T4, T5 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
	t4    ComponentType
	t5    ComponentType
}

// NewBuilder5 creates a new `Builder` for entities with the 5 components
// T1, T2, T3, T4, T5. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder5`, or an error if a type is not
//     registered.
func NewBuilder5[T1, T2, T3, T4, T5 any](s *Store) (*Builder5[T1, T2, T3, T4, T5], error) {
	types, set, err := signature5[T1, T2, T3, T4, T5](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder5[T1, T2, T3, T4, T5]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3, b.t4, b.t5 = types[0], types[1], types[2], types[3], types[4]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder5[T1, T2, T3, T4, T5]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder5[T1, T2, T3, T4, T5]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder5[T1, T2, T3, T4, T5]) NewEntityWith(c1 T1, c2 T2, c3 T3, c4 T4, c5 T5) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	setValue(b.arch, b.t4, row, c4)
	setValue(b.arch, b.t5, row, c5)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder5[T1, T2, T3, T4, T5]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder5[T1, T2, T3, T4, T5]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
		setValue(b.arch, b.t4, row, c4)
		setValue(b.arch, b.t5, row, c5)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder6 creates entities with the 6 components T1, T2, T3, T4, T5, T6 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder6[T1, T2, T3, T4, T5, T6 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
	t4    ComponentType
	t5    ComponentType
	t6    ComponentType
}

// NewBuilder6 creates a new `Builder` for entities with the 6 components
// T1, T2, T3, T4, T5, T6. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder6`, or an error if a type is not
//     registered.
func NewBuilder6[T1, T2, T3, T4, T5, T6 any](s *Store) (*Builder6[T1, T2, T3, T4, T5, T6], error) {
	types, set, err := signature6[T1, T2, T3, T4, T5, T6](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder6[T1, T2, T3, T4, T5, T6]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3, b.t4, b.t5, b.t6 = types[0], types[1], types[2], types[3], types[4], types[5]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder6[T1, T2, T3, T4, T5, T6]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder6[T1, T2, T3, T4, T5, T6]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder6[T1, T2, T3, T4, T5, T6]) NewEntityWith(c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	setValue(b.arch, b.t4, row, c4)
	setValue(b.arch, b.t5, row, c5)
	setValue(b.arch, b.t6, row, c6)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder6[T1, T2, T3, T4, T5, T6]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder6[T1, T2, T3, T4, T5, T6]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
		setValue(b.arch, b.t4, row, c4)
		setValue(b.arch, b.t5, row, c5)
		setValue(b.arch, b.t6, row, c6)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder7 creates entities with the 7 components T1, T2, T3, T4, T5, T6, T7 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
	t4    ComponentType
	t5    ComponentType
	t6    ComponentType
	t7    ComponentType
}

// NewBuilder7 creates a new `Builder` for entities with the 7 components
// T1, T2, T3, T4, T5, T6, T7. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder7`, or an error if a type is not
//     registered.
func NewBuilder7[T1, T2, T3, T4, T5, T6, T7 any](s *Store) (*Builder7[T1, T2, T3, T4, T5, T6, T7], error) {
	types, set, err := signature7[T1, T2, T3, T4, T5, T6, T7](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder7[T1, T2, T3, T4, T5, T6, T7]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3, b.t4, b.t5, b.t6, b.t7 = types[0], types[1], types[2], types[3], types[4], types[5], types[6]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder7[T1, T2, T3, T4, T5, T6, T7]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder7[T1, T2, T3, T4, T5, T6, T7]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder7[T1, T2, T3, T4, T5, T6, T7]) NewEntityWith(c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	setValue(b.arch, b.t4, row, c4)
	setValue(b.arch, b.t5, row, c5)
	setValue(b.arch, b.t6, row, c6)
	setValue(b.arch, b.t7, row, c7)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder7[T1, T2, T3, T4, T5, T6, T7]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder7[T1, T2, T3, T4, T5, T6, T7]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
		setValue(b.arch, b.t4, row, c4)
		setValue(b.arch, b.t5, row, c5)
		setValue(b.arch, b.t6, row, c6)
		setValue(b.arch, b.t7, row, c7)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder8 creates entities with the 8 components T1, T2, T3, T4, T5, T6, T7, T8 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
	t4    ComponentType
	t5    ComponentType
	t6    ComponentType
	t7    ComponentType
	t8    ComponentType
}

// NewBuilder8 creates a new `Builder` for entities with the 8 components
// T1, T2, T3, T4, T5, T6, T7, T8. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder8`, or an error if a type is not
//     registered.
func NewBuilder8[T1, T2, T3, T4, T5, T6, T7, T8 any](s *Store) (*Builder8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
	types, set, err := signature8[T1, T2, T3, T4, T5, T6, T7, T8](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder8[T1, T2, T3, T4, T5, T6, T7, T8]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3, b.t4, b.t5, b.t6, b.t7, b.t8 = types[0], types[1], types[2], types[3], types[4], types[5], types[6], types[7]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder8[T1, T2, T3, T4, T5, T6, T7, T8]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder8[T1, T2, T3, T4, T5, T6, T7, T8]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder8[T1, T2, T3, T4, T5, T6, T7, T8]) NewEntityWith(c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	setValue(b.arch, b.t4, row, c4)
	setValue(b.arch, b.t5, row, c5)
	setValue(b.arch, b.t6, row, c6)
	setValue(b.arch, b.t7, row, c7)
	setValue(b.arch, b.t8, row, c8)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder8[T1, T2, T3, T4, T5, T6, T7, T8]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder8[T1, T2, T3, T4, T5, T6, T7, T8]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
		setValue(b.arch, b.t4, row, c4)
		setValue(b.arch, b.t5, row, c5)
		setValue(b.arch, b.t6, row, c6)
		setValue(b.arch, b.t7, row, c7)
		setValue(b.arch, b.t8, row, c8)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder9 creates entities with the 9 components T1, T2, T3, T4, T5, T6, T7, T8, T9 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
	t4    ComponentType
	t5    ComponentType
	t6    ComponentType
	t7    ComponentType
	t8    ComponentType
	t9    ComponentType
}

// NewBuilder9 creates a new `Builder` for entities with the 9 components
// T1, T2, T3, T4, T5, T6, T7, T8, T9. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder9`, or an error if a type is not
//     registered.
func NewBuilder9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](s *Store) (*Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
	types, set, err := signature9[T1, T2, T3, T4, T5, T6, T7, T8, T9](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3, b.t4, b.t5, b.t6, b.t7, b.t8, b.t9 = types[0], types[1], types[2], types[3], types[4], types[5], types[6], types[7], types[8]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) NewEntityWith(c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8, c9 T9) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	setValue(b.arch, b.t4, row, c4)
	setValue(b.arch, b.t5, row, c5)
	setValue(b.arch, b.t6, row, c6)
	setValue(b.arch, b.t7, row, c7)
	setValue(b.arch, b.t8, row, c8)
	setValue(b.arch, b.t9, row, c9)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8, c9 T9) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
		setValue(b.arch, b.t4, row, c4)
		setValue(b.arch, b.t5, row, c5)
		setValue(b.arch, b.t6, row, c6)
		setValue(b.arch, b.t7, row, c7)
		setValue(b.arch, b.t8, row, c8)
		setValue(b.arch, b.t9, row, c9)
	}
	b.store.fireEntitiesCreated(out)
	return out
}

// Builder10 creates entities with the 10 components T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 directly in their
// archetype, without moving through intermediate archetypes. Creating
// entities panics like Builder does while the archetype is iterated.
type Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	store *Store
	arch  *Archetype
	t1    ComponentType
	t2    ComponentType
	t3    ComponentType
	t4    ComponentType
	t5    ComponentType
	t6    ComponentType
	t7    ComponentType
	t8    ComponentType
	t9    ComponentType
	t10   ComponentType
}

// NewBuilder10 creates a new `Builder` for entities with the 10 components
// T1, T2, T3, T4, T5, T6, T7, T8, T9, T10. The archetype is resolved once and cached.
//
// Parameters:
//   - s: The Store in which to create entities.
//
// Returns:
//   - A pointer to the configured `Builder10`, or an error if a type is not
//     registered.
func NewBuilder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](s *Store) (*Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], error) {
	types, set, err := signature10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10](s.schema)
	if err != nil {
		return nil, err
	}
	b := &Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{store: s, arch: s.archetypeOf(archetypeKey{components: set})}
	b.t1, b.t2, b.t3, b.t4, b.t5, b.t6, b.t7, b.t8, b.t9, b.t10 = types[0], types[1], types[2], types[3], types[4], types[5], types[6], types[7], types[8], types[9]
	return b, nil
}

// Archetype returns the archetype the builder creates entities in.
func (b *Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Archetype() *Archetype { return b.arch }

// NewEntity creates a single entity with default initialized components.
func (b *Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) NewEntity() Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	b.store.fireEntityCreated(e)
	return e
}

// NewEntityWith creates a single entity with the given component values.
func (b *Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) NewEntityWith(c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8, c9 T9, c10 T10) Entity {
	e := b.store.createEntity(b.arch, b.store.newID())
	row := int(b.store.nodes[e.id].row)
	setValue(b.arch, b.t1, row, c1)
	setValue(b.arch, b.t2, row, c2)
	setValue(b.arch, b.t3, row, c3)
	setValue(b.arch, b.t4, row, c4)
	setValue(b.arch, b.t5, row, c5)
	setValue(b.arch, b.t6, row, c6)
	setValue(b.arch, b.t7, row, c7)
	setValue(b.arch, b.t8, row, c8)
	setValue(b.arch, b.t9, row, c9)
	setValue(b.arch, b.t10, row, c10)
	b.store.fireEntityCreated(e)
	return e
}

// NewEntities creates count entities with default initialized components.
// The archetype grows once up front.
//
// Parameters:
//   - count: The number of entities to create.
func (b *Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) NewEntities(count int) []Entity {
	out := b.store.createBatch(b.arch, count)
	b.store.fireEntitiesCreated(out)
	return out
}

// NewEntitiesWith creates count entities sharing the given component values.
func (b *Builder10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) NewEntitiesWith(count int, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8, c9 T9, c10 T10) []Entity {
	out := b.store.createBatch(b.arch, count)
	for _, e := range out {
		row := int(b.store.nodes[e.id].row)
		setValue(b.arch, b.t1, row, c1)
		setValue(b.arch, b.t2, row, c2)
		setValue(b.arch, b.t3, row, c3)
		setValue(b.arch, b.t4, row, c4)
		setValue(b.arch, b.t5, row, c5)
		setValue(b.arch, b.t6, row, c6)
		setValue(b.arch, b.t7, row, c7)
		setValue(b.arch, b.t8, row, c8)
		setValue(b.arch, b.t9, row, c9)
		setValue(b.arch, b.t10, row, c10)
	}
	b.store.fireEntitiesCreated(out)
	return out
}
