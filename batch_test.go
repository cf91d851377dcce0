package kura_test

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/kura"
)

// go test -run ^TestEntityBatchApply$ . -count 1
func TestEntityBatchApply(t *testing.T) {
	s, types := setupStore(t)
	e := s.CreateEntity()
	_, err := kura.Add2(e, Position{X: 1}, Velocity{VX: 1})
	require.NoError(t, err)

	batch := kura.NewEntityBatch().
		AddComponents(kura.NewComponentSet(types.health)).
		RemoveComponents(kura.NewComponentSet(types.velocity)).
		AddTags(kura.NewTagSet(types.enemy, types.tagA)).
		RemoveTags(kura.NewTagSet(types.tagA))

	changed, err := batch.Apply(e)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, kura.NewComponentSet(types.position, types.health), e.Components())
	assert.Equal(t, kura.NewTagSet(types.enemy), e.Tags(), "the last call wins for a type")
	p, _ := kura.GetComponent[Position](e)
	assert.Equal(t, float32(1), p.X)
	h, _ := kura.GetComponent[Health](e)
	assert.Equal(t, 100, h.Current, "added components are default initialized")

	changed, err = batch.Apply(e)
	require.NoError(t, err)
	assert.False(t, changed)

	batch.Clear()
	changed, err = batch.AddComponents(kura.NewComponentSet(200)).Apply(e)
	assert.True(t, eris.Is(err, kura.ErrTypeNotRegistered))
	assert.False(t, changed)
}

// go test -run ^TestEntityBatchApplyDuringIteration$ . -count 1
func TestEntityBatchApplyDuringIteration(t *testing.T) {
	s, types := setupStore(t)
	member := s.CreateEntity()
	_, err := kura.AddComponent(member, Position{})
	require.NoError(t, err)
	outsider := s.CreateEntity()

	q := s.Query(kura.NewQueryFilter().RequireAll(kura.NewComponentSet(types.position)))
	for e := range q.Entities() {
		changed, err := kura.NewEntityBatch().AddTags(kura.NewTagSet(types.enemy)).Apply(e)
		assert.True(t, eris.Is(err, kura.ErrStructuralChangeDuringIteration))
		assert.False(t, changed)

		// moving into the iterated archetype is rejected as well
		changed, err = kura.NewEntityBatch().AddComponents(kura.NewComponentSet(types.position)).Apply(outsider)
		assert.True(t, eris.Is(err, kura.ErrStructuralChangeDuringIteration))
		assert.False(t, changed)
	}
	assert.False(t, kura.HasTag[Enemy](member))
	assert.False(t, kura.HasComponent[Position](outsider))
}

// go test -run ^TestEntityBatchApplyTo$ . -count 1
func TestEntityBatchApplyTo(t *testing.T) {
	s, types := setupStore(t)
	var entities []kura.Entity
	for i := range 20 {
		e := s.CreateEntity()
		if i%2 == 0 {
			_, err := kura.AddComponent(e, Position{})
			require.NoError(t, err)
		}
		entities = append(entities, e)
	}
	_, err := kura.AddTag[Frozen](entities[0])
	require.NoError(t, err)

	created := 0
	s.OnArchetypeCreated(func(kura.ArchetypeCreated) { created++ })
	batch := kura.NewEntityBatch().AddTags(kura.NewTagSet(types.frozen))
	n, err := batch.ApplyTo(entities)
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	assert.Equal(t, 1, created, "one target per source archetype")

	q := s.Query(kura.NewQueryFilter().RequireAllTags(kura.NewTagSet(types.frozen)))
	assert.Equal(t, 20, q.Count())

	require.NoError(t, entities[5].Delete())
	n, err = kura.NewEntityBatch().RemoveTags(kura.NewTagSet(types.frozen)).ApplyTo(entities)
	assert.True(t, eris.Is(err, kura.ErrEntityNull))
	assert.Equal(t, 5, n)

	n, err = batch.ApplyTo(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// go test -run ^TestComponentBatches$ . -count 1
func TestComponentBatches(t *testing.T) {
	s, _ := setupStore(t)
	entities, err := s.CreateEntities(s.DefaultArchetype(), 5)
	require.NoError(t, err)

	require.NoError(t, kura.AddComponentBatch(entities, Scale3{X: 1, Y: 1, Z: 1}))
	for _, e := range entities {
		v, err := kura.GetComponent[Scale3](e)
		require.NoError(t, err)
		assert.Equal(t, Scale3{X: 1, Y: 1, Z: 1}, *v)
	}

	require.NoError(t, kura.SetComponentBatch(entities, Scale3{X: 2}))
	v, _ := kura.GetComponent[Scale3](entities[3])
	assert.Equal(t, float32(2), v.X)

	require.NoError(t, kura.RemoveComponentBatch[Scale3](entities))
	for _, e := range entities {
		assert.False(t, kura.HasComponent[Scale3](e))
	}
	err = kura.SetComponentBatch(entities, Scale3{})
	assert.True(t, eris.Is(err, kura.ErrComponentNotFound))
}
