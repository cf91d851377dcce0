package kura

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// ComponentAction is the kind of change a ComponentChanged event reports.
type ComponentAction uint8

const (
	// ComponentAdded means the entity did not have the component before.
	ComponentAdded ComponentAction = iota + 1
	// ComponentUpdated means an existing component value was overwritten.
	ComponentUpdated
	// ComponentRemoved means the component was removed from the entity.
	ComponentRemoved
)

func (a ComponentAction) String() string {
	switch a {
	case ComponentAdded:
		return "add"
	case ComponentUpdated:
		return "update"
	case ComponentRemoved:
		return "remove"
	default:
		return "unknown"
	}
}

// ComponentChanged is emitted after a component was added, updated or
// removed. The previous value of updated and removed components is available
// through OldComponent while the event is dispatched.
type ComponentChanged struct {
	Entity       Entity
	OldArchetype *Archetype
	old          column
	oldSlot      int
	Action       ComponentAction
	Type         ComponentType
}

// OldComponent returns the value the component had before an update or
// removal. It is only valid during event dispatch.
func OldComponent[T any](ev ComponentChanged) (T, bool) {
	col, ok := ev.old.(*Column[T])
	if !ok {
		var zero T
		return zero, false
	}
	return col.readStash(ev.oldSlot)
}

// TagsChanged is emitted after the tags of an entity changed.
type TagsChanged struct {
	Entity  Entity
	Tags    TagSet
	OldTags TagSet
}

// AddedTags returns the tags the change added.
func (ev TagsChanged) AddedTags() TagSet { return ev.Tags.Difference(ev.OldTags) }

// RemovedTags returns the tags the change removed.
func (ev TagsChanged) RemovedTags() TagSet { return ev.OldTags.Difference(ev.Tags) }

// ArchetypeCreated is emitted when the store creates a new archetype.
type ArchetypeCreated struct {
	Archetype *Archetype
}

// EntityCreated is emitted after an entity was created.
type EntityCreated struct {
	Entity Entity
}

// EntityDeleted is emitted right before an entity is deleted, while its
// components are still readable.
type EntityDeleted struct {
	Entity Entity
}

// HandlerID identifies a subscription so it can be removed again.
type HandlerID uint32

type handler[E any] struct {
	fn func(E)
	id HandlerID
}

// eventSource is an ordered subscriber list. Removal copies the list, so a
// handler can unsubscribe itself or others while an event is dispatched.
type eventSource[E any] struct {
	handlers []handler[E]
}

func (es *eventSource[E]) add(id HandlerID, fn func(E)) {
	es.handlers = append(es.handlers, handler[E]{fn: fn, id: id})
}

func (es *eventSource[E]) remove(id HandlerID) bool {
	i := slices.IndexFunc(es.handlers, func(h handler[E]) bool { return h.id == id })
	if i < 0 {
		return false
	}
	handlers := make([]handler[E], 0, len(es.handlers)-1)
	handlers = append(handlers, es.handlers[:i]...)
	es.handlers = append(handlers, es.handlers[i+1:]...)
	return true
}

func (es *eventSource[E]) has() bool { return len(es.handlers) > 0 }

func (es *eventSource[E]) notify(ev E) {
	hs := es.handlers
	for i := range hs {
		hs[i].fn(ev)
	}
}

type storeEvents struct {
	componentChanged eventSource[ComponentChanged]
	tagsChanged      eventSource[TagsChanged]
	archetypeCreated eventSource[ArchetypeCreated]
	entityCreated    eventSource[EntityCreated]
	entityDeleted    eventSource[EntityDeleted]
}

// entityHandlers are the handlers registered on a single entity.
type entityHandlers struct {
	componentChanged eventSource[ComponentChanged]
	tagsChanged      eventSource[TagsChanged]
}

func (s *Store) nextHandler() HandlerID {
	s.handlerSeq++
	return s.handlerSeq
}

// OnComponentChanged subscribes fn to component changes of all entities.
func (s *Store) OnComponentChanged(fn func(ComponentChanged)) HandlerID {
	id := s.nextHandler()
	s.events.componentChanged.add(id, fn)
	return id
}

// OnTagsChanged subscribes fn to tag changes of all entities.
func (s *Store) OnTagsChanged(fn func(TagsChanged)) HandlerID {
	id := s.nextHandler()
	s.events.tagsChanged.add(id, fn)
	return id
}

// OnArchetypeCreated subscribes fn to archetype creation.
func (s *Store) OnArchetypeCreated(fn func(ArchetypeCreated)) HandlerID {
	id := s.nextHandler()
	s.events.archetypeCreated.add(id, fn)
	return id
}

// OnEntityCreated subscribes fn to entity creation.
func (s *Store) OnEntityCreated(fn func(EntityCreated)) HandlerID {
	id := s.nextHandler()
	s.events.entityCreated.add(id, fn)
	return id
}

// OnEntityDeleted subscribes fn to entity deletion.
func (s *Store) OnEntityDeleted(fn func(EntityDeleted)) HandlerID {
	id := s.nextHandler()
	s.events.entityDeleted.add(id, fn)
	return id
}

// RemoveHandler removes a store-wide subscription. It returns false if id is
// not subscribed.
func (s *Store) RemoveHandler(id HandlerID) bool {
	return s.events.componentChanged.remove(id) ||
		s.events.tagsChanged.remove(id) ||
		s.events.archetypeCreated.remove(id) ||
		s.events.entityCreated.remove(id) ||
		s.events.entityDeleted.remove(id)
}

// handlersOf returns the per-entity handlers of id, creating them if create
// is set. The table is allocated on first use.
func (s *Store) handlersOf(id uint32, create bool) *entityHandlers {
	if s.entityEvents == nil {
		if !create {
			return nil
		}
		s.entityEvents = intmap.New[uint32, *entityHandlers](16)
	}
	h, ok := s.entityEvents.Get(id)
	if !ok && create {
		h = &entityHandlers{}
		s.entityEvents.Put(id, h)
	}
	return h
}

// OnComponentChanged subscribes fn to component changes of this entity only.
func (e Entity) OnComponentChanged(fn func(ComponentChanged)) (HandlerID, error) {
	s, _, err := e.resolve()
	if err != nil {
		return 0, err
	}
	id := s.nextHandler()
	s.handlersOf(e.id, true).componentChanged.add(id, fn)
	return id, nil
}

// OnTagsChanged subscribes fn to tag changes of this entity only.
func (e Entity) OnTagsChanged(fn func(TagsChanged)) (HandlerID, error) {
	s, _, err := e.resolve()
	if err != nil {
		return 0, err
	}
	id := s.nextHandler()
	s.handlersOf(e.id, true).tagsChanged.add(id, fn)
	return id, nil
}

// RemoveHandler removes a subscription made on this entity.
func (e Entity) RemoveHandler(id HandlerID) bool {
	if e.store == nil {
		return false
	}
	h := e.store.handlersOf(e.id, false)
	if h == nil {
		return false
	}
	removed := h.componentChanged.remove(id) || h.tagsChanged.remove(id)
	if !h.componentChanged.has() && !h.tagsChanged.has() {
		e.store.entityEvents.Del(e.id)
	}
	return removed
}

// listensComponents reports whether a component change of entity id would be
// observed. Old values are only stashed when it returns true.
func (s *Store) listensComponents(id uint32) bool {
	if s.events.componentChanged.has() {
		return true
	}
	h := s.handlersOf(id, false)
	return h != nil && h.componentChanged.has()
}

func (s *Store) listensTags(id uint32) bool {
	if s.events.tagsChanged.has() {
		return true
	}
	h := s.handlersOf(id, false)
	return h != nil && h.tagsChanged.has()
}

func (s *Store) fireComponentChanged(ev ComponentChanged) {
	s.events.componentChanged.notify(ev)
	if h := s.handlersOf(ev.Entity.id, false); h != nil {
		h.componentChanged.notify(ev)
	}
}

func (s *Store) fireTagsChanged(ev TagsChanged) {
	s.events.tagsChanged.notify(ev)
	if h := s.handlersOf(ev.Entity.id, false); h != nil {
		h.tagsChanged.notify(ev)
	}
}
