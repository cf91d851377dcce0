package kura

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
)

// pendingValues stores the values queued for one component type.
type pendingValues interface {
	write(i int, a *Archetype, t ComponentType, row int)
	reset(release bool)
}

type pendingColumn[T any] struct {
	values []T
}

func (p *pendingColumn[T]) write(i int, a *Archetype, t ComponentType, row int) {
	setValue(a, t, row, p.values[i])
}

func (p *pendingColumn[T]) reset(release bool) {
	if release {
		p.values = nil
		return
	}
	clear(p.values)
	p.values = p.values[:0]
}

type componentCommandKind uint8

const (
	addComponentCommand componentCommandKind = iota + 1
	setComponentCommand
	removeComponentCommand
)

type entityCommand struct {
	id     uint32
	create bool
}

type componentCommand struct {
	id    uint32
	value int32 // index into the pending values of typ, -1 for removals
	typ   ComponentType
	kind  componentCommandKind
}

type tagCommand struct {
	tags TagSet
	id   uint32
	add  bool
}

type childCommand struct {
	parent uint32
	child  uint32
	add    bool
}

// componentWrite is a queued value that survives coalescing.
type componentWrite struct {
	value int32
	typ   ComponentType
}

// entityChange is the coalesced net effect of all commands of one entity.
// The added and removed sets are disjoint and are applied to whatever
// archetype the entity is in when the change is applied.
type entityChange struct {
	entity      Entity
	oldArch     *Archetype // nil if the change was not applied
	writes      []componentWrite
	stashes     []stashRef // removed then updated types in ascending order
	old         archetypeKey
	key         archetypeKey // simulated while validating, final once applied
	added       ComponentSet
	removed     ComponentSet
	addedTags   TagSet
	removedTags TagSet
	updated     ComponentSet
	id          uint32
	listening   bool
}

// target returns the key of the entity after applying ch to from.
func (ch *entityChange) target(from archetypeKey) archetypeKey {
	return archetypeKey{
		components: from.components.Union(ch.added).Difference(ch.removed),
		tags:       from.tags.Union(ch.addedTags).Difference(ch.removedTags),
	}
}

// CommandBuffer records structural changes by entity id and applies them
// later in one pass with Playback. Recording does not touch the store, so a
// buffer can be filled while a query iterates, or on another goroutine as
// long as each goroutine uses its own buffer. Playback must run on the
// goroutine owning the store.
type CommandBuffer struct {
	store      *Store
	values     [MaxComponentTypes]pendingValues
	entities   []entityCommand
	components []componentCommand
	tags       []tagCommand
	children   []childCommand
	changes    *intmap.Map[uint32, int] // entity id to index in pending
	pending    []entityChange
	created    []Entity
	// ReuseBuffer keeps the allocated record arrays after Playback and Clear
	// so the buffer can be filled again without allocating.
	ReuseBuffer bool
}

// NewCommandBuffer creates an empty command buffer for s.
func (s *Store) NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{
		store:       s,
		changes:     intmap.New[uint32, int](64),
		ReuseBuffer: true,
	}
}

// Store returns the store the buffer plays back into.
func (cb *CommandBuffer) Store() *Store { return cb.store }

// EntityCommandsCount returns the number of queued creations and deletions.
func (cb *CommandBuffer) EntityCommandsCount() int { return len(cb.entities) }

// ComponentCommandsCount returns the number of queued component commands.
func (cb *CommandBuffer) ComponentCommandsCount() int { return len(cb.components) }

// TagCommandsCount returns the number of queued tag commands.
func (cb *CommandBuffer) TagCommandsCount() int { return len(cb.tags) }

// ChildCommandsCount returns the number of queued hierarchy commands.
func (cb *CommandBuffer) ChildCommandsCount() int { return len(cb.children) }

// CreateEntity reserves an id and queues the creation of an entity with
// that id. The id can be used by later commands of the same buffer.
func (cb *CommandBuffer) CreateEntity() uint32 {
	id := cb.store.newID()
	cb.entities = append(cb.entities, entityCommand{id: id, create: true})
	return id
}

// DeleteEntity queues the deletion of entity id.
func (cb *CommandBuffer) DeleteEntity(id uint32) {
	cb.entities = append(cb.entities, entityCommand{id: id})
}

// AddTags queues adding tags to entity id.
func (cb *CommandBuffer) AddTags(id uint32, tags TagSet) {
	cb.tags = append(cb.tags, tagCommand{tags: tags, id: id, add: true})
}

// RemoveTags queues removing tags from entity id.
func (cb *CommandBuffer) RemoveTags(id uint32, tags TagSet) {
	cb.tags = append(cb.tags, tagCommand{tags: tags, id: id})
}

// RemoveComponents queues removing component types from entity id.
func (cb *CommandBuffer) RemoveComponents(id uint32, types ComponentSet) {
	types.Each(func(t ComponentType) {
		cb.components = append(cb.components, componentCommand{id: id, value: -1, typ: t, kind: removeComponentCommand})
	})
}

// AddChild queues linking child to parent.
func (cb *CommandBuffer) AddChild(parent, child uint32) {
	cb.children = append(cb.children, childCommand{parent: parent, child: child, add: true})
}

// RemoveChild queues unlinking child from parent.
func (cb *CommandBuffer) RemoveChild(parent, child uint32) {
	cb.children = append(cb.children, childCommand{parent: parent, child: child})
}

func queueValue[T any](cb *CommandBuffer, id uint32, value T, kind componentCommandKind) error {
	t, err := componentTypeOf[T](cb.store.schema)
	if err != nil {
		return err
	}
	pv, _ := cb.values[t].(*pendingColumn[T])
	if pv == nil {
		pv = &pendingColumn[T]{}
		cb.values[t] = pv
	}
	pv.values = append(pv.values, value)
	cb.components = append(cb.components, componentCommand{
		id:    id,
		value: int32(len(pv.values) - 1),
		typ:   t,
		kind:  kind,
	})
	return nil
}

// QueueAddComponent queues adding or updating component T of entity id.
func QueueAddComponent[T any](cb *CommandBuffer, id uint32, value T) error {
	return queueValue(cb, id, value, addComponentCommand)
}

// QueueSetComponent queues updating component T of entity id. Playback
// fails if the entity does not have the component at that point.
func QueueSetComponent[T any](cb *CommandBuffer, id uint32, value T) error {
	return queueValue(cb, id, value, setComponentCommand)
}

// QueueRemoveComponent queues removing component T from entity id.
func QueueRemoveComponent[T any](cb *CommandBuffer, id uint32) error {
	t, err := componentTypeOf[T](cb.store.schema)
	if err != nil {
		return err
	}
	cb.components = append(cb.components, componentCommand{id: id, value: -1, typ: t, kind: removeComponentCommand})
	return nil
}

// QueueAddTag queues adding tag T to entity id.
func QueueAddTag[T any](cb *CommandBuffer, id uint32) error {
	t, err := tagTypeOf[T](cb.store.schema)
	if err != nil {
		return err
	}
	cb.AddTags(id, NewTagSet(t))
	return nil
}

// QueueRemoveTag queues removing tag T from entity id.
func QueueRemoveTag[T any](cb *CommandBuffer, id uint32) error {
	t, err := tagTypeOf[T](cb.store.schema)
	if err != nil {
		return err
	}
	cb.RemoveTags(id, NewTagSet(t))
	return nil
}

// Clear drops all queued commands. Ids reserved by CreateEntity are given
// back to the store.
func (cb *CommandBuffer) Clear() {
	for _, c := range cb.entities {
		if c.create {
			cb.store.releaseID(c.id)
		}
	}
	cb.reset()
}

func (cb *CommandBuffer) reset() {
	release := !cb.ReuseBuffer
	for _, pv := range cb.values {
		if pv != nil {
			pv.reset(release)
		}
	}
	cb.changes.Clear()
	if release {
		cb.entities, cb.components, cb.tags, cb.children, cb.pending, cb.created = nil, nil, nil, nil, nil, nil
		return
	}
	cb.entities = cb.entities[:0]
	cb.components = cb.components[:0]
	cb.tags = cb.tags[:0]
	cb.children = cb.children[:0]
	clear(cb.pending)
	cb.pending = cb.pending[:0]
	clear(cb.created)
	cb.created = cb.created[:0]
}

// Playback applies all queued commands and clears the buffer.
//
// Creations and deletions run first in the order they were recorded. Then
// all tag and component commands of an entity are folded into one net change
// and applied with a single archetype move. The change is applied relative to
// the archetype the entity is in at that point, so changes made by
// EntityDeleted handlers are kept. Hierarchy commands follow. Once the store
// is consistent, EntityCreated events fire for the created entities still
// alive, then tag events of all entities, then their component events.
//
// Commands for entities deleted earlier in the same playback are skipped.
// Commands for ids that are not alive fail the playback with
// ErrInvalidPlayback before anything is applied.
func (cb *CommandBuffer) Playback() error {
	s := cb.store
	defer cb.reset()

	// simulated liveness after the entity commands: true alive, false deleted
	state := intmap.New[uint32, bool](len(cb.entities))
	aliveAfter := func(id uint32) (alive, deleted bool) {
		if v, ok := state.Get(id); ok {
			return v, !v
		}
		return s.alive(id), false
	}
	if err := cb.validate(state, aliveAfter); err != nil {
		for _, c := range cb.entities {
			if c.create {
				s.releaseID(c.id)
			}
		}
		return err
	}

	// a. entities
	for i, c := range cb.entities {
		if c.create {
			cb.created = append(cb.created, s.createEntity(s.defaultArchetype, c.id))
			continue
		}
		if !s.alive(c.id) {
			continue
		}
		if err := s.DeleteEntity(s.entityAt(c.id)); err != nil {
			for _, rest := range cb.entities[i+1:] {
				if rest.create {
					s.releaseID(rest.id)
				}
			}
			cb.fireCreated()
			return err
		}
	}

	// b-d. one move per entity
	moved := 0
	var applyErr error
	for i := range cb.pending {
		ok, err := cb.apply(&cb.pending[i])
		if err != nil && applyErr == nil {
			applyErr = err
		}
		if ok {
			moved++
		}
	}

	// e. hierarchy
	var childErr error
	for _, c := range cb.children {
		if !s.alive(c.parent) || !s.alive(c.child) {
			continue
		}
		parent, child := s.entityAt(c.parent), s.entityAt(c.child)
		if c.add {
			childErr = s.AddChild(parent, child)
		} else {
			_, childErr = s.RemoveChild(parent, child)
		}
		if childErr != nil {
			break
		}
	}

	// f. events
	cb.fireEvents()

	s.logger.Debug().
		Int("entity_commands", len(cb.entities)).
		Int("component_commands", len(cb.components)).
		Int("tag_commands", len(cb.tags)).
		Int("child_commands", len(cb.children)).
		Int("entities_changed", len(cb.pending)).
		Int("moves", moved).
		Msg("command buffer played back")
	if applyErr != nil {
		return applyErr
	}
	return childErr
}

// validate simulates the entity commands and coalesces the tag and
// component commands without touching the store.
func (cb *CommandBuffer) validate(state *intmap.Map[uint32, bool], aliveAfter func(uint32) (bool, bool)) error {
	s := cb.store
	for _, c := range cb.entities {
		alive, _ := aliveAfter(c.id)
		if c.create {
			if alive {
				return eris.Wrapf(ErrInvalidPlayback, "create of entity %d which is alive", c.id)
			}
			state.Put(c.id, true)
			continue
		}
		if !alive {
			return eris.Wrapf(ErrInvalidPlayback, "delete of entity %d which is not alive", c.id)
		}
		if s.alive(c.id) {
			if err := s.checkIteration(s.nodes[c.id].archetype, c.id); err != nil {
				return err
			}
		}
		state.Put(c.id, false)
	}
	if err := cb.coalesce(aliveAfter); err != nil {
		return err
	}
	for _, c := range cb.children {
		for _, id := range [2]uint32{c.parent, c.child} {
			if alive, deleted := aliveAfter(id); !alive && !deleted {
				return eris.Wrapf(ErrInvalidPlayback, "hierarchy command for entity %d which is not alive", id)
			}
		}
	}
	return nil
}

// change returns the pending change of id, starting from its current
// archetype or the default archetype for entities created by this buffer.
func (cb *CommandBuffer) change(id uint32) *entityChange {
	if i, ok := cb.changes.Get(id); ok {
		return &cb.pending[i]
	}
	var key archetypeKey
	if n := cb.store.nodes; int(id) < len(n) && n[id].archetype != nil {
		key = n[id].archetype.key
	}
	cb.changes.Put(id, len(cb.pending))
	cb.pending = append(cb.pending, entityChange{old: key, key: key, id: id})
	return &cb.pending[len(cb.pending)-1]
}

// coalesce folds the tag and component commands into one entityChange per
// entity without touching the store.
func (cb *CommandBuffer) coalesce(aliveAfter func(uint32) (bool, bool)) error {
	s := cb.store
	for _, c := range cb.tags {
		alive, deleted := aliveAfter(c.id)
		if deleted {
			continue
		}
		if !alive {
			return eris.Wrapf(ErrInvalidPlayback, "tag command for entity %d which is not alive", c.id)
		}
		if err := s.schema.checkTags(c.tags); err != nil {
			return err
		}
		ch := cb.change(c.id)
		if c.add {
			ch.key.tags = ch.key.tags.Union(c.tags)
			ch.addedTags = ch.addedTags.Union(c.tags)
			ch.removedTags = ch.removedTags.Difference(c.tags)
		} else {
			ch.key.tags = ch.key.tags.Difference(c.tags)
			ch.removedTags = ch.removedTags.Union(c.tags)
			ch.addedTags = ch.addedTags.Difference(c.tags)
		}
	}
	for _, c := range cb.components {
		alive, deleted := aliveAfter(c.id)
		if deleted {
			continue
		}
		if !alive {
			return eris.Wrapf(ErrInvalidPlayback, "component command for entity %d which is not alive", c.id)
		}
		ch := cb.change(c.id)
		switch c.kind {
		case removeComponentCommand:
			ch.key.components = ch.key.components.Remove(c.typ)
			ch.removed = ch.removed.Add(c.typ)
			ch.added = ch.added.Remove(c.typ)
			ch.writes = slices.DeleteFunc(ch.writes, func(w componentWrite) bool { return w.typ == c.typ })
		case setComponentCommand:
			if !ch.key.components.Has(c.typ) {
				return eris.Wrapf(ErrInvalidPlayback, "set of component %s missing on entity %d", s.schema.componentName(c.typ), c.id)
			}
			fallthrough
		case addComponentCommand:
			ch.key.components = ch.key.components.Add(c.typ)
			ch.added = ch.added.Add(c.typ)
			ch.removed = ch.removed.Remove(c.typ)
			ch.writes = append(ch.writes, componentWrite{value: c.value, typ: c.typ})
		}
	}
	for i := range cb.pending {
		ch := &cb.pending[i]
		if ch.key == ch.old {
			continue
		}
		if s.alive(ch.id) {
			if err := s.checkIteration(s.nodes[ch.id].archetype, ch.id); err != nil {
				return err
			}
		}
		if target, ok := s.archetypeMap[ch.key]; ok {
			if err := s.checkTarget(target); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply moves the entity of ch to its final archetype and writes the queued
// values. It reports whether the entity changed archetype.
func (cb *CommandBuffer) apply(ch *entityChange) (bool, error) {
	s := cb.store
	if !s.alive(ch.id) {
		// deleted by an event handler during playback
		return false, nil
	}
	old := s.nodes[ch.id].archetype
	key := ch.target(old.key)
	var target *Archetype
	if key != old.key {
		if err := s.checkIteration(old, ch.id); err != nil {
			return false, err
		}
		switch {
		case key.components.ContainsAll(old.key.components) && key.tags.ContainsAll(old.key.tags):
			target = s.archetypeWithAdded(old, key.components, key.tags)
		case old.key.components.ContainsAll(key.components) && old.key.tags.ContainsAll(key.tags):
			target = s.archetypeWithRemoved(old, old.key.components.Difference(key.components), old.key.tags.Difference(key.tags))
		default:
			target = s.archetypeOf(key)
		}
		if err := s.checkTarget(target); err != nil {
			return false, err
		}
	}
	ch.key = key
	ch.oldArch = old
	ch.old = old.key
	ch.entity = s.entityAt(ch.id)
	ch.listening = s.listensComponents(ch.id)
	if ch.listening {
		var written ComponentSet
		for _, w := range ch.writes {
			written = written.Add(w.typ)
		}
		ch.updated = written.Intersect(old.key.components).Intersect(key.components)
		row := int(s.nodes[ch.id].row)
		stash := func(t ComponentType) {
			col := old.column(t)
			ch.stashes = append(ch.stashes, stashRef{col: col, slot: col.stash(row)})
		}
		old.key.components.Difference(key.components).Each(stash)
		ch.updated.Each(stash)
	}
	if target != nil {
		n := &s.nodes[ch.id]
		s.moveEntity(ch.id, n.archetype, int(n.row), target)
	}
	n := &s.nodes[ch.id]
	for _, w := range ch.writes {
		cb.values[w.typ].write(int(w.value), n.archetype, w.typ, int(n.row))
	}
	return target != nil, nil
}

// fireCreated dispatches EntityCreated for the created entities still alive.
func (cb *CommandBuffer) fireCreated() {
	s := cb.store
	for _, e := range cb.created {
		if !e.IsNull() {
			s.fireEntityCreated(e)
		}
	}
}

// fireEvents dispatches the creation events, then the tag events of all
// applied changes, then their component events.
func (cb *CommandBuffer) fireEvents() {
	s := cb.store
	cb.fireCreated()
	for i := range cb.pending {
		ch := &cb.pending[i]
		if ch.oldArch == nil || ch.old.tags == ch.key.tags || !s.listensTags(ch.id) {
			continue
		}
		s.fireTagsChanged(TagsChanged{Entity: ch.entity, Tags: ch.key.tags, OldTags: ch.old.tags})
	}
	for i := range cb.pending {
		ch := &cb.pending[i]
		if ch.oldArch == nil || !ch.listening {
			continue
		}
		ev := ComponentChanged{Entity: ch.entity, OldArchetype: ch.oldArch, oldSlot: -1, Action: ComponentAdded}
		ch.key.components.Difference(ch.old.components).Each(func(t ComponentType) {
			ev.Type = t
			s.fireComponentChanged(ev)
		})
		j := 0
		emit := func(action ComponentAction) func(ComponentType) {
			return func(t ComponentType) {
				ref := ch.stashes[j]
				j++
				s.fireComponentChanged(ComponentChanged{
					Entity:       ch.entity,
					OldArchetype: ch.oldArch,
					old:          ref.col,
					oldSlot:      ref.slot,
					Action:       action,
					Type:         t,
				})
			}
		}
		ch.old.components.Difference(ch.key.components).Each(emit(ComponentRemoved))
		ch.updated.Each(emit(ComponentUpdated))
	}
	for i := range cb.pending {
		for _, ref := range cb.pending[i].stashes {
			ref.col.clearStash(ref.slot)
		}
	}
}
