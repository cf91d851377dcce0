package kura

import (
	"iter"
	"sync"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// entityNode is the entity index entry of one id.
type entityNode struct {
	archetype *Archetype // nil while the id is dead
	row       int32
	revision  uint16
	parent    uint32 // 0 if the entity has no parent
}

// Store owns all archetypes and the entity index. It is a single-writer
// structure: structural changes must not run concurrently. Use a
// CommandBuffer to record changes from other goroutines.
type Store struct {
	id               uuid.UUID
	schema           *Schema
	logger           zerolog.Logger
	archetypes       []*Archetype
	archetypeMap     map[archetypeKey]*Archetype
	defaultArchetype *Archetype
	nodes            []entityNode // indexed by id, nodes[0] is the null entity
	freeIDs          []uint32     // stack of recycled ids
	entityEvents     *intmap.Map[uint32, *entityHandlers]
	children         *intmap.Map[uint32, []uint32]
	events           storeEvents
	config           Config
	sequenceID       uint32
	count            int
	handlerSeq       HandlerID
	idMu             sync.Mutex // guards freeIDs and sequenceID for command buffers
}

// NewStore creates an empty store for the component and tag types of schema.
// Types may still be registered in the schema after the store was created.
//
// Parameters:
//   - schema: the type registry shared by all stores of an application.
//   - opts: WithConfig and WithLogger.
//
// Returns:
//   - The new store, holding only the default archetype.
func NewStore(schema *Schema, opts ...Option) *Store {
	s := &Store{
		id:           uuid.New(),
		schema:       schema,
		logger:       zerolog.Nop(),
		archetypeMap: make(map[archetypeKey]*Archetype, 16),
		config:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.config.LogLevel != "" {
		// validated by WithConfig
		level, _ := zerolog.ParseLevel(s.config.LogLevel)
		s.logger = s.logger.Level(level)
	}
	s.logger = s.logger.With().Str("store_id", s.id.String()).Logger()
	s.nodes = make([]entityNode, 1, s.config.InitialEntityCapacity+1)
	s.archetypes = make([]*Archetype, 0, 16)
	s.defaultArchetype = s.archetypeOf(archetypeKey{})
	return s
}

// ID returns the unique identity of the store.
func (s *Store) ID() uuid.UUID { return s.id }

// Schema returns the schema the store was created with.
func (s *Store) Schema() *Schema { return s.schema }

// Config returns the store configuration.
func (s *Store) Config() Config { return s.config }

// Count returns the number of alive entities.
func (s *Store) Count() int { return s.count }

// DefaultArchetype returns the archetype without components and tags.
func (s *Store) DefaultArchetype() *Archetype { return s.defaultArchetype }

// Archetypes returns all archetypes in creation order. The returned slice
// must not be modified.
func (s *Store) Archetypes() []*Archetype { return s.archetypes }

// Entities iterates all alive entities in id order.
func (s *Store) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for id := 1; id < len(s.nodes); id++ {
			n := &s.nodes[id]
			if n.archetype == nil {
				continue
			}
			if !yield(Entity{store: s, id: uint32(id), revision: n.revision}) {
				return
			}
		}
	}
}

// node validates e against the entity index.
func (s *Store) node(e Entity) (*entityNode, error) {
	if e.store != s {
		if e.store == nil {
			return nil, eris.Wrapf(ErrEntityNull, "entity %d", e.id)
		}
		return nil, eris.Wrapf(ErrInvalidStore, "entity %d of store %s used with store %s", e.id, e.store.id, s.id)
	}
	if e.id == 0 || int(e.id) >= len(s.nodes) {
		return nil, eris.Wrapf(ErrEntityOutOfRange, "id %d, valid range [1, %d]", e.id, len(s.nodes)-1)
	}
	n := &s.nodes[e.id]
	if n.archetype == nil || n.revision != e.revision {
		return nil, eris.Wrapf(ErrEntityNull, "entity %d revision %d, current revision %d", e.id, e.revision, n.revision)
	}
	return n, nil
}

// entityAt returns the handle of the alive entity with id.
func (s *Store) entityAt(id uint32) Entity {
	return Entity{store: s, id: id, revision: s.nodes[id].revision}
}

// alive reports whether id currently refers to an alive entity.
func (s *Store) alive(id uint32) bool {
	return id != 0 && int(id) < len(s.nodes) && s.nodes[id].archetype != nil
}

// GetEntityByID returns the handle of the alive entity with id.
func (s *Store) GetEntityByID(id uint32) (Entity, error) {
	if id == 0 || int(id) >= len(s.nodes) {
		return Entity{}, eris.Wrapf(ErrEntityOutOfRange, "id %d, valid range [1, %d]", id, len(s.nodes)-1)
	}
	n := &s.nodes[id]
	if n.archetype == nil {
		return Entity{}, eris.Wrapf(ErrEntityNull, "entity %d is not alive", id)
	}
	return Entity{store: s, id: id, revision: n.revision}, nil
}

// newID hands out the next id, preferring recycled ones. It is safe to call
// from several goroutines so command buffers can reserve ids while recording.
func (s *Store) newID() uint32 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	if n := len(s.freeIDs); n > 0 {
		id := s.freeIDs[n-1]
		s.freeIDs = s.freeIDs[:n-1]
		return id
	}
	s.sequenceID++
	return s.sequenceID
}

func (s *Store) releaseID(id uint32) {
	if !s.config.RecycleIDs {
		return
	}
	s.idMu.Lock()
	s.freeIDs = append(s.freeIDs, id)
	s.idMu.Unlock()
}

// ensureNode grows the entity index so that id is addressable.
func (s *Store) ensureNode(id uint32) *entityNode {
	if int(id) >= len(s.nodes) {
		if int(id) < cap(s.nodes) {
			s.nodes = s.nodes[:id+1]
		} else {
			nodes := make([]entityNode, id+1, max(int(id)+1, cap(s.nodes)*2))
			copy(nodes, s.nodes)
			s.nodes = nodes
		}
	}
	return &s.nodes[id]
}

// createEntity places id in arch. The caller fires EntityCreated. It panics
// if arch is being iterated, see checkTarget.
func (s *Store) createEntity(arch *Archetype, id uint32) Entity {
	if err := s.checkTarget(arch); err != nil {
		s.releaseID(id)
		panic(err)
	}
	n := s.ensureNode(id)
	n.archetype = arch
	n.row = int32(arch.appendRow(id))
	n.parent = 0
	s.count++
	return Entity{store: s, id: id, revision: n.revision}
}

// CreateEntity creates an entity without components and tags.
func (s *Store) CreateEntity() Entity {
	e := s.createEntity(s.defaultArchetype, s.newID())
	s.fireEntityCreated(e)
	return e
}

// CreateEntityIn creates an entity in arch with default initialized
// components.
func (s *Store) CreateEntityIn(arch *Archetype) (Entity, error) {
	if arch == nil || arch.store != s {
		return Entity{}, eris.Wrap(ErrInvalidStore, "archetype belongs to a different store")
	}
	if err := s.checkTarget(arch); err != nil {
		return Entity{}, err
	}
	e := s.createEntity(arch, s.newID())
	s.fireEntityCreated(e)
	return e, nil
}

// CreateEntities creates n entities in arch, growing it once up front.
func (s *Store) CreateEntities(arch *Archetype, n int) ([]Entity, error) {
	if arch == nil || arch.store != s {
		return nil, eris.Wrap(ErrInvalidStore, "archetype belongs to a different store")
	}
	if err := s.checkTarget(arch); err != nil {
		return nil, err
	}
	out := s.createBatch(arch, n)
	s.fireEntitiesCreated(out)
	return out, nil
}

// createBatch creates n entities in arch without firing events. It panics
// like createEntity.
func (s *Store) createBatch(arch *Archetype, n int) []Entity {
	if err := s.checkTarget(arch); err != nil {
		panic(err)
	}
	arch.EnsureCapacity(n)
	s.EnsureCapacity(n)
	out := make([]Entity, n)
	for i := range out {
		out[i] = s.createEntity(arch, s.newID())
	}
	return out
}

func (s *Store) fireEntitiesCreated(entities []Entity) {
	if !s.events.entityCreated.has() {
		return
	}
	for _, e := range entities {
		s.events.entityCreated.notify(EntityCreated{Entity: e})
	}
}

func (s *Store) fireEntityCreated(e Entity) {
	if s.events.entityCreated.has() {
		s.events.entityCreated.notify(EntityCreated{Entity: e})
	}
}

// DeleteEntity deletes e. Handlers of EntityDeleted run before the entity is
// removed and may still read its components. Children of e lose their parent.
func (s *Store) DeleteEntity(e Entity) error {
	n, err := s.node(e)
	if err != nil {
		return err
	}
	if err := s.checkIteration(n.archetype, e.id); err != nil {
		return err
	}
	if s.events.entityDeleted.has() {
		s.events.entityDeleted.notify(EntityDeleted{Entity: e})
		// handlers may have changed the entity
		if n, err = s.node(e); err != nil {
			return err
		}
	}
	s.deleteNode(e.id, n)
	return nil
}

// deleteNode removes an alive entity without firing events.
func (s *Store) deleteNode(id uint32, n *entityNode) {
	s.detachHierarchy(id, n)
	s.removeFromArchetype(n.archetype, int(n.row))
	n.archetype = nil
	n.row = 0
	n.revision++
	s.count--
	if s.entityEvents != nil {
		s.entityEvents.Del(id)
	}
	s.releaseID(id)
}

// removeFromArchetype swap-removes row and fixes up the relocated entity.
func (s *Store) removeFromArchetype(a *Archetype, row int) {
	mv := a.removeRow(row)
	if mv.moved {
		s.nodes[mv.id].row = int32(mv.to)
	}
	a.shrinkToFit(s.config.ShrinkRatio, s.config.MinArchetypeCapacity)
}

// moveEntity moves entity id from row oldRow of old to target and returns its
// new row. Components present in both archetypes are transferred, components
// only in target are default initialized.
func (s *Store) moveEntity(id uint32, old *Archetype, oldRow int, target *Archetype) int {
	row := target.appendRow(id)
	for _, src := range old.columns {
		if dst := target.column(src.componentType()); dst != nil {
			src.copyRowTo(oldRow, dst, row)
		}
	}
	s.removeFromArchetype(old, oldRow)
	n := &s.nodes[id]
	n.archetype = target
	n.row = int32(row)
	return row
}

// checkIteration fails if a query that rejects structural changes is
// iterating a.
func (s *Store) checkIteration(a *Archetype, id uint32) error {
	if a.guarded > 0 {
		return eris.Wrapf(ErrStructuralChangeDuringIteration, "entity %d in archetype %s", id, a)
	}
	return nil
}

// checkTarget fails if rows cannot be added to a: a query that rejects
// structural changes is iterating it, and growing a may reallocate the
// column slices the query handed out. Archetypes without components have no
// columns and always accept rows.
func (s *Store) checkTarget(a *Archetype) error {
	if a.guarded > 0 && len(a.columns) > 0 {
		return eris.Wrapf(ErrStructuralChangeDuringIteration, "adding to archetype %s", a)
	}
	return nil
}

// archetypeOf returns the archetype of key, creating it on first use.
func (s *Store) archetypeOf(key archetypeKey) *Archetype {
	if a, ok := s.archetypeMap[key]; ok {
		return a
	}
	a := newArchetype(s, key, len(s.archetypes))
	s.archetypes = append(s.archetypes, a)
	s.archetypeMap[key] = a
	s.logger.Debug().Object("archetype", a).Msg("archetype created")
	if s.events.archetypeCreated.has() {
		s.events.archetypeCreated.notify(ArchetypeCreated{Archetype: a})
	}
	return a
}

// GetArchetype returns the archetype with exactly the given components and
// tags, creating it if needed. Equal sets always return the same instance.
func (s *Store) GetArchetype(components ComponentSet, tags TagSet) (*Archetype, error) {
	if err := s.schema.checkComponents(components); err != nil {
		return nil, err
	}
	if err := s.schema.checkTags(tags); err != nil {
		return nil, err
	}
	return s.archetypeOf(archetypeKey{components: components, tags: tags}), nil
}

func (s *Store) archetypeWithComponent(a *Archetype, t ComponentType) *Archetype {
	if target := a.cachedTransition(addComponentTransition, uint8(t)); target != nil {
		return target
	}
	target := s.archetypeOf(archetypeKey{components: a.key.components.Add(t), tags: a.key.tags})
	a.cacheTransition(addComponentTransition, uint8(t), target)
	return target
}

func (s *Store) archetypeWithoutComponent(a *Archetype, t ComponentType) *Archetype {
	if target := a.cachedTransition(removeComponentTransition, uint8(t)); target != nil {
		return target
	}
	target := s.archetypeOf(archetypeKey{components: a.key.components.Remove(t), tags: a.key.tags})
	a.cacheTransition(removeComponentTransition, uint8(t), target)
	return target
}

func (s *Store) archetypeWithTag(a *Archetype, t TagType) *Archetype {
	if target := a.cachedTransition(addTagTransition, uint8(t)); target != nil {
		return target
	}
	target := s.archetypeOf(archetypeKey{components: a.key.components, tags: a.key.tags.Add(t)})
	a.cacheTransition(addTagTransition, uint8(t), target)
	return target
}

func (s *Store) archetypeWithoutTag(a *Archetype, t TagType) *Archetype {
	if target := a.cachedTransition(removeTagTransition, uint8(t)); target != nil {
		return target
	}
	target := s.archetypeOf(archetypeKey{components: a.key.components, tags: a.key.tags.Remove(t)})
	a.cacheTransition(removeTagTransition, uint8(t), target)
	return target
}

// archetypeWithAdded returns the archetype of a extended by components and
// tags. Single type deltas go through the transition cache.
func (s *Store) archetypeWithAdded(a *Archetype, components ComponentSet, tags TagSet) *Archetype {
	components = components.Difference(a.key.components)
	tags = tags.Difference(a.key.tags)
	switch {
	case components.IsEmpty() && tags.IsEmpty():
		return a
	case tags.IsEmpty() && components.Count() == 1:
		t, _ := bitmask256(components).first()
		return s.archetypeWithComponent(a, ComponentType(t))
	case components.IsEmpty() && tags.Count() == 1:
		t, _ := bitmask256(tags).first()
		return s.archetypeWithTag(a, TagType(t))
	}
	return s.archetypeOf(archetypeKey{
		components: a.key.components.Union(components),
		tags:       a.key.tags.Union(tags),
	})
}

// archetypeWithRemoved is the inverse of archetypeWithAdded.
func (s *Store) archetypeWithRemoved(a *Archetype, components ComponentSet, tags TagSet) *Archetype {
	components = components.Intersect(a.key.components)
	tags = tags.Intersect(a.key.tags)
	switch {
	case components.IsEmpty() && tags.IsEmpty():
		return a
	case tags.IsEmpty() && components.Count() == 1:
		t, _ := bitmask256(components).first()
		return s.archetypeWithoutComponent(a, ComponentType(t))
	case components.IsEmpty() && tags.Count() == 1:
		t, _ := bitmask256(tags).first()
		return s.archetypeWithoutTag(a, TagType(t))
	}
	return s.archetypeOf(archetypeKey{
		components: a.key.components.Difference(components),
		tags:       a.key.tags.Difference(tags),
	})
}

// EnsureCapacity presizes the entity index for additional entities.
func (s *Store) EnsureCapacity(additional int) {
	need := len(s.nodes) + additional
	if need <= cap(s.nodes) {
		return
	}
	nodes := make([]entityNode, len(s.nodes), need)
	copy(nodes, s.nodes)
	s.nodes = nodes
}

// ShrinkArchetypes applies the shrink policy to every archetype that is not
// being iterated and returns the number of archetypes that gave memory back.
func (s *Store) ShrinkArchetypes() int {
	shrunk := 0
	for _, a := range s.archetypes {
		if a.shrinkToFit(s.config.ShrinkRatio, s.config.MinArchetypeCapacity) {
			shrunk++
		}
	}
	return shrunk
}
