package kura_test

import (
	"math/rand"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/kura"
)

// go test -run ^TestCreateEntity$ . -count 1
func TestCreateEntity(t *testing.T) {
	s, _ := setupStore(t)
	e1 := s.CreateEntity()
	e2 := s.CreateEntity()

	assert.Equal(t, uint32(1), e1.ID())
	assert.Equal(t, uint32(2), e2.ID())
	assert.Equal(t, uint16(0), e1.Revision())
	assert.False(t, e1.IsNull())
	assert.Equal(t, 2, s.Count())

	arch, err := e1.Archetype()
	require.NoError(t, err)
	assert.Equal(t, 0, arch.Index())
	assert.Same(t, s.DefaultArchetype(), arch)
	assert.Equal(t, 2, arch.Count())
}

// go test -run ^TestNullEntity$ . -count 1
func TestNullEntity(t *testing.T) {
	var e kura.Entity
	assert.True(t, e.IsNull())
	_, err := e.Archetype()
	assert.True(t, eris.Is(err, kura.ErrEntityNull))
	assert.True(t, e.Components().IsEmpty())
}

// go test -run ^TestDeleteAndRecycle$ . -count 1
func TestDeleteAndRecycle(t *testing.T) {
	s, _ := setupStore(t)
	e1 := s.CreateEntity()
	e2 := s.CreateEntity()
	_ = s.CreateEntity()
	_, err := kura.AddComponent(e2, Position{X: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntity(e2))
	assert.True(t, e2.IsNull())
	assert.Equal(t, 2, s.Count())

	e4 := s.CreateEntity()
	assert.Equal(t, e2.ID(), e4.ID())
	assert.Equal(t, e2.Revision()+1, e4.Revision())
	assert.NotEqual(t, e2, e4)

	// the stale handle stays dead after its id was reused
	assert.True(t, e2.IsNull())
	assert.False(t, e4.IsNull())
	_, err = kura.GetComponent[Position](e2)
	assert.True(t, eris.Is(err, kura.ErrEntityNull))
	assert.False(t, kura.HasComponent[Position](e4))

	err = s.DeleteEntity(e2)
	assert.True(t, eris.Is(err, kura.ErrEntityNull))
	assert.False(t, e1.IsNull())
}

// go test -run ^TestRecycleIDsDisabled$ . -count 1
func TestRecycleIDsDisabled(t *testing.T) {
	cfg := kura.DefaultConfig()
	cfg.RecycleIDs = false
	s, _ := setupStore(t, kura.WithConfig(cfg))
	e1 := s.CreateEntity()
	require.NoError(t, e1.Delete())
	e2 := s.CreateEntity()
	assert.Equal(t, uint32(2), e2.ID())
	assert.True(t, e1.IsNull())
}

// go test -run ^TestSwapRemove$ . -count 1
func TestSwapRemove(t *testing.T) {
	s, types := setupStore(t)
	arch, err := s.GetArchetype(kura.NewComponentSet(types.position), kura.TagSet{})
	require.NoError(t, err)

	entities := make([]kura.Entity, 3)
	for i := range entities {
		entities[i], err = s.CreateEntityIn(arch)
		require.NoError(t, err)
		require.NoError(t, kura.SetComponent(entities[i], Position{X: float32(i)}))
	}

	require.NoError(t, s.DeleteEntity(entities[1]))
	assert.Equal(t, 2, arch.Count())

	row0, err := entities[0].Row()
	require.NoError(t, err)
	row2, err := entities[2].Row()
	require.NoError(t, err)
	assert.Equal(t, 0, row0, "entity before the removed row must not move")
	assert.Equal(t, 1, row2, "last entity must take the removed row")

	p, err := kura.GetComponent[Position](entities[2])
	require.NoError(t, err)
	assert.Equal(t, float32(2), p.X)
	assert.Equal(t, []kura.Entity{entities[0], entities[2]}, arch.Entities())
}

// go test -run ^TestArchetypeCanonical$ . -count 1
func TestArchetypeCanonical(t *testing.T) {
	s, types := setupStore(t)
	c := kura.NewComponentSet(types.position, types.velocity)
	tags := kura.NewTagSet(types.enemy)

	a1, err := s.GetArchetype(c, tags)
	require.NoError(t, err)
	a2, err := s.GetArchetype(kura.NewComponentSet(types.velocity, types.position), tags)
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	a3, err := s.GetArchetype(c, kura.TagSet{})
	require.NoError(t, err)
	assert.NotSame(t, a1, a3)

	empty, err := s.GetArchetype(kura.ComponentSet{}, kura.TagSet{})
	require.NoError(t, err)
	assert.Same(t, s.DefaultArchetype(), empty)

	e := s.CreateEntity()
	_, err = kura.Add2(e, Position{}, Velocity{})
	require.NoError(t, err)
	_, err = kura.AddTag[Enemy](e)
	require.NoError(t, err)
	arch, err := e.Archetype()
	require.NoError(t, err)
	assert.Same(t, a1, arch)
}

// go test -run ^TestGetArchetypeUnregistered$ . -count 1
func TestGetArchetypeUnregistered(t *testing.T) {
	s, _ := setupStore(t)
	_, err := s.GetArchetype(kura.NewComponentSet(200), kura.TagSet{})
	assert.True(t, eris.Is(err, kura.ErrTypeNotRegistered))
	_, err = s.GetArchetype(kura.ComponentSet{}, kura.NewTagSet(99))
	assert.True(t, eris.Is(err, kura.ErrTypeNotRegistered))
}

// go test -run ^TestGetEntityByID$ . -count 1
func TestGetEntityByID(t *testing.T) {
	s, _ := setupStore(t)
	e := s.CreateEntity()

	got, err := s.GetEntityByID(e.ID())
	require.NoError(t, err)
	assert.Equal(t, e, got)

	_, err = s.GetEntityByID(0)
	assert.True(t, eris.Is(err, kura.ErrEntityOutOfRange))
	_, err = s.GetEntityByID(42)
	require.True(t, eris.Is(err, kura.ErrEntityOutOfRange))
	assert.Contains(t, err.Error(), "[1, 1]")

	require.NoError(t, e.Delete())
	_, err = s.GetEntityByID(e.ID())
	assert.True(t, eris.Is(err, kura.ErrEntityNull))
}

// go test -run ^TestInvalidStore$ . -count 1
func TestInvalidStore(t *testing.T) {
	schema, _ := newTestSchema()
	s1 := kura.NewStore(schema)
	s2 := kura.NewStore(schema)
	e := s1.CreateEntity()

	err := s2.DeleteEntity(e)
	assert.True(t, eris.Is(err, kura.ErrInvalidStore))
	assert.NotEqual(t, s1.ID(), s2.ID())

	_, err = s2.CreateEntityIn(s1.DefaultArchetype())
	assert.True(t, eris.Is(err, kura.ErrInvalidStore))
	assert.False(t, e.IsNull())
}

// go test -run ^TestCreateEntities$ . -count 1
func TestCreateEntities(t *testing.T) {
	s, types := setupStore(t)
	arch, err := s.GetArchetype(kura.NewComponentSet(types.health), kura.TagSet{})
	require.NoError(t, err)

	entities, err := s.CreateEntities(arch, 100)
	require.NoError(t, err)
	assert.Len(t, entities, 100)
	assert.Equal(t, 100, arch.Count())
	assert.GreaterOrEqual(t, arch.Capacity(), 100)

	h, err := kura.GetComponent[Health](entities[42])
	require.NoError(t, err)
	assert.Equal(t, Health{Current: 100, Max: 100}, *h, "registered default applies to new rows")

	n := 0
	for range s.Entities() {
		n++
	}
	assert.Equal(t, 100, n)
}

// go test -run ^TestShrinkAfterRemoval$ . -count 1
func TestShrinkAfterRemoval(t *testing.T) {
	s, types := setupStore(t)
	arch, err := s.GetArchetype(kura.NewComponentSet(types.position), kura.TagSet{})
	require.NoError(t, err)

	entities := make([]kura.Entity, 100)
	for i := range entities {
		entities[i], err = s.CreateEntityIn(arch)
		require.NoError(t, err)
		require.NoError(t, kura.SetComponent(entities[i], Position{X: float32(i)}))
	}
	assert.Equal(t, 128, arch.Capacity())

	for _, e := range entities[5:] {
		require.NoError(t, e.Delete())
	}
	assert.Equal(t, 5, arch.Count())
	assert.Equal(t, kura.DefaultMinArchetypeCapacity, arch.Capacity())
	for i, e := range entities[:5] {
		p, err := kura.GetComponent[Position](e)
		require.NoError(t, err)
		assert.Equal(t, float32(i), p.X)
	}
}

// go test -run ^TestRowIndexConsistency$ . -count 1
func TestRowIndexConsistency(t *testing.T) {
	s, _ := setupStore(t)
	type model struct {
		pos *Position
		vel *Velocity
	}
	alive := map[kura.Entity]*model{}
	rng := rand.New(rand.NewSource(7))

	pick := func() (kura.Entity, *model, bool) {
		for e, m := range alive {
			return e, m, true
		}
		return kura.Entity{}, nil, false
	}

	for step := range 2000 {
		switch op := rng.Intn(6); op {
		case 0, 1:
			alive[s.CreateEntity()] = &model{}
		case 2:
			if e, m, ok := pick(); ok {
				p := Position{X: float32(step)}
				_, err := kura.AddComponent(e, p)
				require.NoError(t, err)
				m.pos = &p
			}
		case 3:
			if e, m, ok := pick(); ok {
				v := Velocity{VX: float32(step)}
				_, err := kura.AddComponent(e, v)
				require.NoError(t, err)
				m.vel = &v
			}
		case 4:
			if e, m, ok := pick(); ok {
				_, err := kura.RemoveComponent[Position](e)
				require.NoError(t, err)
				m.pos = nil
			}
		case 5:
			if e, _, ok := pick(); ok {
				require.NoError(t, e.Delete())
				delete(alive, e)
			}
		}

		require.Equal(t, len(alive), s.Count())
		for e, m := range alive {
			arch, err := e.Archetype()
			require.NoError(t, err)
			row, err := e.Row()
			require.NoError(t, err)
			require.Less(t, row, arch.Count())
			require.Equal(t, e, arch.Entities()[row])

			p, err := kura.GetComponent[Position](e)
			if m.pos == nil {
				require.True(t, eris.Is(err, kura.ErrComponentNotFound))
			} else {
				require.NoError(t, err)
				require.Equal(t, *m.pos, *p)
			}
			v, err := kura.GetComponent[Velocity](e)
			if m.vel == nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, *m.vel, *v)
			}
		}
	}
}
