package kura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/kura"
)

type recorded struct {
	kind   string
	action kura.ComponentAction
	typ    kura.ComponentType
}

func record(s *kura.Store) *[]recorded {
	var log []recorded
	s.OnTagsChanged(func(kura.TagsChanged) {
		log = append(log, recorded{kind: "tags"})
	})
	s.OnComponentChanged(func(ev kura.ComponentChanged) {
		log = append(log, recorded{kind: "component", action: ev.Action, typ: ev.Type})
	})
	return &log
}

// --- Test Component Events ---

// go test -run ^TestComponentEvents$ . -count 1
func TestComponentEvents(t *testing.T) {
	s, types := setupStore(t)
	e := s.CreateEntity()
	log := record(s)

	_, err := kura.AddComponent(e, Position{X: 1})
	require.NoError(t, err)
	_, err = kura.AddComponent(e, Position{X: 2})
	require.NoError(t, err)
	_, err = kura.RemoveComponent[Position](e)
	require.NoError(t, err)

	assert.Equal(t, []recorded{
		{kind: "component", action: kura.ComponentAdded, typ: types.position},
		{kind: "component", action: kura.ComponentUpdated, typ: types.position},
		{kind: "component", action: kura.ComponentRemoved, typ: types.position},
	}, *log)
}

// go test -run ^TestOldComponent$ . -count 1
func TestOldComponent(t *testing.T) {
	s, _ := setupStore(t)
	e := s.CreateEntity()
	_, err := kura.AddComponent(e, Health{Current: 50, Max: 100})
	require.NoError(t, err)

	var olds []Health
	s.OnComponentChanged(func(ev kura.ComponentChanged) {
		old, ok := kura.OldComponent[Health](ev)
		if ev.Action == kura.ComponentAdded {
			assert.False(t, ok)
			return
		}
		require.True(t, ok)
		olds = append(olds, old)
		_, wrong := kura.OldComponent[Position](ev)
		assert.False(t, wrong)
	})

	require.NoError(t, kura.SetComponent(e, Health{Current: 40, Max: 100}))
	_, err = kura.RemoveComponent[Health](e)
	require.NoError(t, err)

	assert.Equal(t, []Health{{Current: 50, Max: 100}, {Current: 40, Max: 100}}, olds)
}

// go test -run ^TestOldComponentNestedDispatch$ . -count 1
func TestOldComponentNestedDispatch(t *testing.T) {
	s, _ := setupStore(t)
	a := s.CreateEntity()
	b := s.CreateEntity()
	_, err := kura.AddComponent(a, Position{X: 1})
	require.NoError(t, err)
	_, err = kura.AddComponent(b, Position{X: 10})
	require.NoError(t, err)

	var outer, inner []float32
	_, err = a.OnComponentChanged(func(ev kura.ComponentChanged) {
		before, _ := kura.OldComponent[Position](ev)
		// a nested update of another entity in the same column
		require.NoError(t, kura.SetComponent(b, Position{X: 20}))
		after, ok := kura.OldComponent[Position](ev)
		require.True(t, ok)
		outer = append(outer, before.X, after.X)
	})
	require.NoError(t, err)
	_, err = b.OnComponentChanged(func(ev kura.ComponentChanged) {
		old, _ := kura.OldComponent[Position](ev)
		inner = append(inner, old.X)
	})
	require.NoError(t, err)

	require.NoError(t, kura.SetComponent(a, Position{X: 2}))
	assert.Equal(t, []float32{1, 1}, outer)
	assert.Equal(t, []float32{10}, inner)
}

// go test -run ^TestTagEventBeforeComponentEvents$ . -count 1
func TestTagEventBeforeComponentEvents(t *testing.T) {
	s, types := setupStore(t)
	e := s.CreateEntity()
	_, err := kura.AddComponent(e, Velocity{})
	require.NoError(t, err)
	log := record(s)

	batch := kura.NewEntityBatch().
		AddComponents(kura.NewComponentSet(types.position)).
		RemoveComponents(kura.NewComponentSet(types.velocity)).
		AddTags(kura.NewTagSet(types.enemy))
	changed, err := batch.Apply(e)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, []recorded{
		{kind: "tags"},
		{kind: "component", action: kura.ComponentAdded, typ: types.position},
		{kind: "component", action: kura.ComponentRemoved, typ: types.velocity},
	}, *log)
}

// --- Test Tag Events ---

// go test -run ^TestTagsChangedEvent$ . -count 1
func TestTagsChangedEvent(t *testing.T) {
	s, types := setupStore(t)
	e := s.CreateEntity()
	_, err := kura.AddTag[TagA](e)
	require.NoError(t, err)

	var events []kura.TagsChanged
	s.OnTagsChanged(func(ev kura.TagsChanged) { events = append(events, ev) })

	_, err = kura.AddTag[TagA](e)
	require.NoError(t, err)
	assert.Empty(t, events, "no event without a change")

	_, err = e.AddTags(kura.NewTagSet(types.tagB, types.enemy))
	require.NoError(t, err)
	_, err = kura.RemoveTag[TagA](e)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, kura.NewTagSet(types.tagB, types.enemy), events[0].AddedTags())
	assert.True(t, events[0].RemovedTags().IsEmpty())
	assert.Equal(t, kura.NewTagSet(types.tagA), events[1].RemovedTags())
	assert.Equal(t, kura.NewTagSet(types.tagB, types.enemy), events[1].Tags)
}

// --- Test Lifecycle Events ---

// go test -run ^TestLifecycleEvents$ . -count 1
func TestLifecycleEvents(t *testing.T) {
	s, types := setupStore(t)
	var created, deleted []kura.Entity
	var archetypes []*kura.Archetype
	s.OnEntityCreated(func(ev kura.EntityCreated) { created = append(created, ev.Entity) })
	s.OnArchetypeCreated(func(ev kura.ArchetypeCreated) { archetypes = append(archetypes, ev.Archetype) })
	s.OnEntityDeleted(func(ev kura.EntityDeleted) {
		// components are still readable
		p, err := kura.GetComponent[Position](ev.Entity)
		require.NoError(t, err)
		assert.Equal(t, float32(3), p.X)
		deleted = append(deleted, ev.Entity)
	})

	e := s.CreateEntity()
	_, err := kura.AddComponent(e, Position{X: 3})
	require.NoError(t, err)
	_, err = kura.AddComponent(e, Position{X: 3})
	require.NoError(t, err)
	require.NoError(t, e.Delete())

	assert.Equal(t, []kura.Entity{e}, created)
	assert.Equal(t, []kura.Entity{e}, deleted)
	require.Len(t, archetypes, 1)
	assert.Equal(t, kura.NewComponentSet(types.position), archetypes[0].Components())
}

// go test -run ^TestRemoveHandlerDuringDispatch$ . -count 1
func TestRemoveHandlerDuringDispatch(t *testing.T) {
	s, _ := setupStore(t)
	var calls []string
	var second kura.HandlerID
	var first kura.HandlerID
	first = s.OnEntityCreated(func(kura.EntityCreated) {
		calls = append(calls, "first")
		assert.True(t, s.RemoveHandler(first))
		assert.True(t, s.RemoveHandler(second))
	})
	second = s.OnEntityCreated(func(kura.EntityCreated) {
		calls = append(calls, "second")
	})

	s.CreateEntity()
	s.CreateEntity()
	// the running dispatch still sees the handlers it started with
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.False(t, s.RemoveHandler(first))
}

// go test -run ^TestEntityHandlers$ . -count 1
func TestEntityHandlers(t *testing.T) {
	s, _ := setupStore(t)
	a := s.CreateEntity()
	b := s.CreateEntity()

	var seen []kura.Entity
	id, err := a.OnComponentChanged(func(ev kura.ComponentChanged) { seen = append(seen, ev.Entity) })
	require.NoError(t, err)
	tagID, err := a.OnTagsChanged(func(ev kura.TagsChanged) { seen = append(seen, ev.Entity) })
	require.NoError(t, err)

	_, err = kura.AddComponent(b, Position{})
	require.NoError(t, err)
	_, err = kura.AddComponent(a, Position{})
	require.NoError(t, err)
	_, err = kura.AddTag[Enemy](a)
	require.NoError(t, err)
	assert.Equal(t, []kura.Entity{a, a}, seen)

	assert.True(t, a.RemoveHandler(id))
	assert.False(t, a.RemoveHandler(id))
	assert.False(t, b.RemoveHandler(tagID))
	assert.True(t, a.RemoveHandler(tagID))

	_, err = kura.RemoveComponent[Position](a)
	require.NoError(t, err)
	assert.Len(t, seen, 2)
}

// go test -run ^TestEntityHandlersDroppedOnDelete$ . -count 1
func TestEntityHandlersDroppedOnDelete(t *testing.T) {
	s, _ := setupStore(t)
	e := s.CreateEntity()
	calls := 0
	_, err := e.OnComponentChanged(func(kura.ComponentChanged) { calls++ })
	require.NoError(t, err)
	require.NoError(t, e.Delete())

	// the recycled id must not inherit the handler
	reused := s.CreateEntity()
	require.Equal(t, e.ID(), reused.ID())
	_, err = kura.AddComponent(reused, Position{})
	require.NoError(t, err)
	assert.Zero(t, calls)

	_, err = e.OnComponentChanged(func(kura.ComponentChanged) {})
	assert.Error(t, err)
}

// go test -run ^TestComponentActionString$ . -count 1
func TestComponentActionString(t *testing.T) {
	assert.Equal(t, "add", kura.ComponentAdded.String())
	assert.Equal(t, "update", kura.ComponentUpdated.String())
	assert.Equal(t, "remove", kura.ComponentRemoved.String())
	assert.Equal(t, "unknown", kura.ComponentAction(0).String())
}
