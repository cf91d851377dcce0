package kura

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchetype(t *testing.T) (*Store, *Archetype, ComponentType) {
	t.Helper()
	schema := NewSchema()
	pos := RegisterComponent[testPosition](schema)
	s := NewStore(schema)
	a, err := s.GetArchetype(NewComponentSet(pos), TagSet{})
	require.NoError(t, err)
	return s, a, pos
}

// go test -run ^TestArchetypeRemoveRow$ . -count 1
func TestArchetypeRemoveRow(t *testing.T) {
	_, a, pos := newTestArchetype(t)
	for id := uint32(1); id <= 3; id++ {
		row := a.appendRow(id)
		setValue(a, pos, row, testPosition{X: float32(id)})
	}

	mv := a.removeRow(0)
	assert.Equal(t, rowMove{id: 3, from: 2, to: 0, moved: true}, mv)
	assert.Equal(t, 2, a.count)
	assert.Equal(t, []uint32{3, 2}, a.ids[:a.count])
	assert.Equal(t, float32(3), columnValues[testPosition](a, pos)[0].X)
	assert.Equal(t, uint32(0), a.ids[2])

	mv = a.removeRow(1)
	assert.False(t, mv.moved, "removing the last row moves nothing")
	assert.Equal(t, 1, a.count)
}

// go test -run ^TestArchetypeGrowShrink$ . -count 1
func TestArchetypeGrowShrink(t *testing.T) {
	_, a, _ := newTestArchetype(t)
	assert.Equal(t, 0, a.capacity)
	a.appendRow(1)
	assert.Equal(t, DefaultMinArchetypeCapacity, a.capacity)

	a.EnsureCapacity(100)
	assert.Equal(t, 101, a.capacity)
	assert.Equal(t, 101, a.column(0).len())

	assert.True(t, a.shrinkToFit(10, 32))
	assert.Equal(t, 32, a.capacity)
	assert.False(t, a.shrinkToFit(10, 32), "at the floor")

	a.EnsureCapacity(500)
	a.iterating++
	assert.False(t, a.shrinkToFit(10, 32), "skipped while iterated")
	a.iterating--
	assert.True(t, a.shrinkToFit(10, 32))
	assert.Equal(t, 1, a.count)
}

// go test -run ^TestArchetypeReserveCommit$ . -count 1
func TestArchetypeReserveCommit(t *testing.T) {
	_, a, pos := newTestArchetype(t)
	row := a.reserveRow()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, a.count, "reserved rows stay invisible")
	setValue(a, pos, row, testPosition{X: 4})
	assert.Equal(t, row, a.commitRow(9))
	assert.Equal(t, 1, a.count)
	assert.Equal(t, uint32(9), a.ids[0])
	assert.Equal(t, float32(4), columnValues[testPosition](a, pos)[0].X)
}

// go test -run ^TestTransitionCache$ . -count 1
func TestTransitionCache(t *testing.T) {
	schema := NewSchema()
	types := []ComponentType{
		RegisterComponent[testPosition](schema),
		RegisterComponent[testVelocity](schema),
		RegisterComponent[testItems](schema),
		RegisterComponent[int](schema),
		RegisterComponent[string](schema),
	}
	s := NewStore(schema)
	base := s.defaultArchetype

	targets := make([]*Archetype, len(types))
	for i, ct := range types {
		targets[i] = s.archetypeWithComponent(base, ct)
		assert.Same(t, targets[i], s.archetypeWithComponent(base, ct))
	}
	// the oldest entry was evicted, the newest are cached
	assert.Nil(t, base.cachedTransition(addComponentTransition, uint8(types[0])))
	assert.Same(t, targets[4], base.cachedTransition(addComponentTransition, uint8(types[4])))
	assert.Same(t, targets[0], s.archetypeWithComponent(base, types[0]), "misses fall back to the archetype map")

	back := s.archetypeWithoutComponent(targets[1], types[1])
	assert.Same(t, base, back)
	assert.Nil(t, base.cachedTransition(removeComponentTransition, uint8(types[1])))

	tagged := s.archetypeWithTag(base, DisabledTag)
	assert.Same(t, base, s.archetypeWithoutTag(tagged, DisabledTag))
}

// go test -run ^TestMoveEntity$ . -count 1
func TestMoveEntity(t *testing.T) {
	s, a, pos := newTestArchetype(t)
	vel := RegisterComponent[testVelocity](s.schema)
	e, err := s.CreateEntityIn(a)
	require.NoError(t, err)
	setValue(a, pos, 0, testPosition{X: 2})

	target := s.archetypeWithComponent(a, vel)
	row := s.moveEntity(e.id, a, 0, target)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, a.count)
	assert.Equal(t, 1, target.count)
	assert.Equal(t, float32(2), columnValues[testPosition](target, pos)[0].X)
	assert.Same(t, target, s.nodes[e.id].archetype)
}
