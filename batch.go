package kura

import "github.com/rotisserie/eris"

// EntityBatch is a reusable set of tag and component changes applied to
// entities with one archetype move per entity. Added components are default
// initialized. A type added and removed in the same batch keeps the last
// call.
type EntityBatch struct {
	addComponents    ComponentSet
	removeComponents ComponentSet
	addTags          TagSet
	removeTags       TagSet
}

// NewEntityBatch creates an empty batch.
func NewEntityBatch() *EntityBatch { return &EntityBatch{} }

// AddComponents adds types to the batch.
func (b *EntityBatch) AddComponents(types ComponentSet) *EntityBatch {
	b.addComponents = b.addComponents.Union(types)
	b.removeComponents = b.removeComponents.Difference(types)
	return b
}

// RemoveComponents removes types in the batch.
func (b *EntityBatch) RemoveComponents(types ComponentSet) *EntityBatch {
	b.removeComponents = b.removeComponents.Union(types)
	b.addComponents = b.addComponents.Difference(types)
	return b
}

// AddTags adds tags in the batch.
func (b *EntityBatch) AddTags(tags TagSet) *EntityBatch {
	b.addTags = b.addTags.Union(tags)
	b.removeTags = b.removeTags.Difference(tags)
	return b
}

// RemoveTags removes tags in the batch.
func (b *EntityBatch) RemoveTags(tags TagSet) *EntityBatch {
	b.removeTags = b.removeTags.Union(tags)
	b.addTags = b.addTags.Difference(tags)
	return b
}

// Clear empties the batch.
func (b *EntityBatch) Clear() { *b = EntityBatch{} }

func (b *EntityBatch) target(key archetypeKey) archetypeKey {
	return archetypeKey{
		components: key.components.Union(b.addComponents).Difference(b.removeComponents),
		tags:       key.tags.Union(b.addTags).Difference(b.removeTags),
	}
}

func (b *EntityBatch) check(s *Schema) error {
	if err := s.checkComponents(b.addComponents.Union(b.removeComponents)); err != nil {
		return err
	}
	return s.checkTags(b.addTags.Union(b.removeTags))
}

// Apply applies the batch to e. It reports whether e changed archetype.
func (b *EntityBatch) Apply(e Entity) (bool, error) {
	s, n, err := e.resolve()
	if err != nil {
		return false, err
	}
	if err := b.check(s.schema); err != nil {
		return false, err
	}
	key := b.target(n.archetype.key)
	if key == n.archetype.key {
		return false, nil
	}
	if err := s.changeArchetype(e, n, s.archetypeOf(key)); err != nil {
		return false, err
	}
	return true, nil
}

// ApplyTo applies the batch to every entity. Target archetypes are resolved
// once per source archetype. It stops at the first invalid entity and returns
// the number of entities that changed.
func (b *EntityBatch) ApplyTo(entities []Entity) (int, error) {
	if len(entities) == 0 {
		return 0, nil
	}
	targets := make(map[*Archetype]*Archetype, 4)
	changed := 0
	for i, e := range entities {
		s, n, err := e.resolve()
		if err != nil {
			return changed, eris.Wrapf(err, "batch entity %d", i)
		}
		if i == 0 {
			if err := b.check(s.schema); err != nil {
				return 0, err
			}
		}
		target, ok := targets[n.archetype]
		if !ok {
			if key := b.target(n.archetype.key); key != n.archetype.key {
				target = s.archetypeOf(key)
			}
			targets[n.archetype] = target
		}
		if target == nil {
			continue
		}
		if err := s.changeArchetype(e, n, target); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// changeArchetype moves an entity to target in one step and fires a tag
// event, then Added and Removed component events.
func (s *Store) changeArchetype(e Entity, n *entityNode, target *Archetype) error {
	old := n.archetype
	if err := s.checkIteration(old, e.id); err != nil {
		return err
	}
	if err := s.checkTarget(target); err != nil {
		return err
	}
	removed := old.key.components.Difference(target.key.components)
	listening := s.listensComponents(e.id)
	var stashes []stashRef
	if listening && !removed.IsEmpty() {
		stashes = make([]stashRef, 0, removed.Count())
		removed.Each(func(t ComponentType) {
			col := old.column(t)
			stashes = append(stashes, stashRef{col: col, slot: col.stash(int(n.row))})
		})
	}
	s.moveEntity(e.id, old, int(n.row), target)
	if old.key.tags != target.key.tags && s.listensTags(e.id) {
		s.fireTagsChanged(TagsChanged{Entity: e, Tags: target.key.tags, OldTags: old.key.tags})
	}
	if !listening {
		return nil
	}
	target.key.components.Difference(old.key.components).Each(func(t ComponentType) {
		s.fireComponentChanged(ComponentChanged{Entity: e, OldArchetype: old, oldSlot: -1, Action: ComponentAdded, Type: t})
	})
	i := 0
	removed.Each(func(t ComponentType) {
		ref := stashes[i]
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
	for _, ref := range stashes {
		ref.col.clearStash(ref.slot)
	}
	return nil
}

// AddComponentBatch sets component T to value on all entities. Entities that
// already have T are updated in place.
func AddComponentBatch[T any](entities []Entity, value T) error {
	for _, e := range entities {
		if _, err := AddComponent(e, value); err != nil {
			return err
		}
	}
	return nil
}

// SetComponentBatch overwrites component T on all entities, which must all
// have it.
func SetComponentBatch[T any](entities []Entity, value T) error {
	for _, e := range entities {
		if err := SetComponent(e, value); err != nil {
			return err
		}
	}
	return nil
}

// RemoveComponentBatch removes component T from all entities.
func RemoveComponentBatch[T any](entities []Entity) error {
	for _, e := range entities {
		if _, err := RemoveComponent[T](e); err != nil {
			return err
		}
	}
	return nil
}
