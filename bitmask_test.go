package kura

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// go test -run ^TestBitmask256$ . -count 1
func TestBitmask256(t *testing.T) {
	var m bitmask256
	for _, bit := range []uint8{0, 63, 64, 130, 255} {
		m.set(bit)
		assert.True(t, m.containsBit(bit), "bit %d", bit)
	}
	assert.Equal(t, 5, m.count())
	assert.False(t, m.containsBit(1))

	first, ok := m.first()
	assert.True(t, ok)
	assert.Equal(t, uint8(0), first)

	var bits []uint8
	m.forEach(func(bit uint8) { bits = append(bits, bit) })
	assert.Equal(t, []uint8{0, 63, 64, 130, 255}, bits)

	m.unset(0)
	m.unset(63)
	first, _ = m.first()
	assert.Equal(t, uint8(64), first)

	var empty bitmask256
	_, ok = empty.first()
	assert.False(t, ok)
	assert.True(t, empty.isEmpty())
}

// go test -run ^TestBitmaskContains$ . -count 1
func TestBitmaskContains(t *testing.T) {
	a := bitmask256(NewComponentSet(1, 70, 200))
	b := bitmask256(NewComponentSet(70, 200))
	assert.True(t, a.contains(b))
	assert.False(t, b.contains(a))
	assert.True(t, a.contains(bitmask256{}))
	assert.True(t, a.intersects(b))
	assert.False(t, a.intersects(bitmask256(NewComponentSet(2))))
}

// go test -run ^TestComponentSet$ . -count 1
func TestComponentSet(t *testing.T) {
	s := NewComponentSet(3, 1, 2)
	assert.Equal(t, []ComponentType{1, 2, 3}, s.Types())
	assert.Equal(t, NewComponentSet(1, 2, 3, 4), s.Add(4))
	assert.Equal(t, NewComponentSet(1, 3), s.Remove(2))
	assert.Equal(t, NewComponentSet(2), s.Intersect(NewComponentSet(2, 9)))
	assert.Equal(t, NewComponentSet(1, 3), s.Difference(NewComponentSet(2, 9)))
	assert.Equal(t, NewComponentSet(1, 2, 3, 9), s.Union(NewComponentSet(9)))
	assert.True(t, s.ContainsAll(NewComponentSet(1, 3)))
	assert.True(t, s.ContainsAny(NewComponentSet(3, 100)))
	assert.Equal(t, s, NewComponentSet(1, 2, 3), "sets compare by value")
}

// go test -run ^TestTagSet$ . -count 1
func TestTagSet(t *testing.T) {
	s := NewTagSet(DisabledTag, 5)
	assert.True(t, s.Has(DisabledTag))
	assert.Equal(t, []TagType{0, 5}, s.Types())
	assert.Equal(t, 1, s.Remove(DisabledTag).Count())
	assert.True(t, TagSet{}.IsEmpty())
	assert.False(t, s.ContainsAll(NewTagSet(5, 6)))
}

// go test -run ^TestArchetypeKeyString$ . -count 1
func TestArchetypeKeyString(t *testing.T) {
	schema := NewSchema()
	pos := RegisterComponent[testPosition](schema)
	vel := RegisterComponent[testVelocity](schema)
	enemy := RegisterTag[testEnemy](schema)

	key := archetypeKey{components: NewComponentSet(vel, pos), tags: NewTagSet(enemy)}
	assert.Equal(t, "[testPosition, testVelocity, #testEnemy]", key.String(schema))
	assert.Equal(t, "[]", archetypeKey{}.String(schema))
	assert.Equal(t, "[component(77)]", archetypeKey{components: NewComponentSet(77)}.String(schema))
}
