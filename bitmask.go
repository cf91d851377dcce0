package kura

import (
	"math/bits"
	"strings"
)

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered in a Schema. The same limit applies to tag types.
const MaxComponentTypes = 256

// MaxTagTypes defines the maximum number of unique tag types.
const MaxTagTypes = 256

// bitmask256 represents a set of up to 256 type indices. Each bit corresponds
// to a type index; a set bit means the type is present.
type bitmask256 [4]uint64

// set enables the bit corresponding to the given index.
func (m *bitmask256) set(bit uint8) {
	i := bit >> 6 // (bit / 64) to find the uint64 index
	o := bit & 63 // (bit % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// unset disables the bit corresponding to the given index.
func (m *bitmask256) unset(bit uint8) {
	i := bit >> 6
	o := bit & 63
	m[i] &= ^(uint64(1) << uint64(o))
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(bit uint8) bool {
	i := bit >> 6
	o := bit & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}

// contains checks if all the bits set in sub are also set in m.
func (m bitmask256) contains(sub bitmask256) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// intersects checks if m has any bits in common with other.
func (m bitmask256) intersects(other bitmask256) bool {
	return (m[0]&other[0] != 0) ||
		(m[1]&other[1] != 0) ||
		(m[2]&other[2] != 0) ||
		(m[3]&other[3] != 0)
}

func (m bitmask256) or(other bitmask256) bitmask256 {
	return bitmask256{m[0] | other[0], m[1] | other[1], m[2] | other[2], m[3] | other[3]}
}

func (m bitmask256) and(other bitmask256) bitmask256 {
	return bitmask256{m[0] & other[0], m[1] & other[1], m[2] & other[2], m[3] & other[3]}
}

func (m bitmask256) andNot(other bitmask256) bitmask256 {
	return bitmask256{m[0] &^ other[0], m[1] &^ other[1], m[2] &^ other[2], m[3] &^ other[3]}
}

func (m bitmask256) isEmpty() bool {
	return m[0]|m[1]|m[2]|m[3] == 0
}

func (m bitmask256) count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}

// first returns the lowest set bit.
func (m bitmask256) first() (uint8, bool) {
	for w, word := range m {
		if word != 0 {
			return uint8(w<<6 | bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// forEach calls fn for every set bit in ascending order.
func (m bitmask256) forEach(fn func(bit uint8)) {
	for w, word := range m {
		for word != 0 {
			o := bits.TrailingZeros64(word)
			fn(uint8(w<<6 | o))
			word &= word - 1
		}
	}
}

// ComponentType is the dense index a Schema assigns to a component type.
type ComponentType uint8

// TagType is the dense index a Schema assigns to a tag type.
type TagType uint8

// ComponentSet is an immutable-by-value set of component types. Two
// archetypes share a ComponentSet only if they store the same columns.
type ComponentSet bitmask256

// NewComponentSet returns a set containing the given types.
func NewComponentSet(types ...ComponentType) ComponentSet {
	var m bitmask256
	for _, t := range types {
		m.set(uint8(t))
	}
	return ComponentSet(m)
}

// Add returns a copy of s with t included.
func (s ComponentSet) Add(t ComponentType) ComponentSet {
	m := bitmask256(s)
	m.set(uint8(t))
	return ComponentSet(m)
}

// Remove returns a copy of s without t.
func (s ComponentSet) Remove(t ComponentType) ComponentSet {
	m := bitmask256(s)
	m.unset(uint8(t))
	return ComponentSet(m)
}

// Has reports whether t is in the set.
func (s ComponentSet) Has(t ComponentType) bool {
	return bitmask256(s).containsBit(uint8(t))
}

// ContainsAll reports whether every type of other is in s.
func (s ComponentSet) ContainsAll(other ComponentSet) bool {
	return bitmask256(s).contains(bitmask256(other))
}

// ContainsAny reports whether s and other share at least one type.
func (s ComponentSet) ContainsAny(other ComponentSet) bool {
	return bitmask256(s).intersects(bitmask256(other))
}

// Union returns s ∪ other.
func (s ComponentSet) Union(other ComponentSet) ComponentSet {
	return ComponentSet(bitmask256(s).or(bitmask256(other)))
}

// Intersect returns s ∩ other.
func (s ComponentSet) Intersect(other ComponentSet) ComponentSet {
	return ComponentSet(bitmask256(s).and(bitmask256(other)))
}

// Difference returns s \ other.
func (s ComponentSet) Difference(other ComponentSet) ComponentSet {
	return ComponentSet(bitmask256(s).andNot(bitmask256(other)))
}

// IsEmpty reports whether the set has no types.
func (s ComponentSet) IsEmpty() bool { return bitmask256(s).isEmpty() }

// Count returns the number of types in the set.
func (s ComponentSet) Count() int { return bitmask256(s).count() }

// Each calls fn for every type in ascending index order.
func (s ComponentSet) Each(fn func(ComponentType)) {
	bitmask256(s).forEach(func(bit uint8) { fn(ComponentType(bit)) })
}

// Types returns the types of the set in ascending index order.
func (s ComponentSet) Types() []ComponentType {
	out := make([]ComponentType, 0, s.Count())
	s.Each(func(t ComponentType) { out = append(out, t) })
	return out
}

// TagSet is an immutable-by-value set of tag types.
type TagSet bitmask256

// NewTagSet returns a set containing the given tags.
func NewTagSet(tags ...TagType) TagSet {
	var m bitmask256
	for _, t := range tags {
		m.set(uint8(t))
	}
	return TagSet(m)
}

// Add returns a copy of s with t included.
func (s TagSet) Add(t TagType) TagSet {
	m := bitmask256(s)
	m.set(uint8(t))
	return TagSet(m)
}

// Remove returns a copy of s without t.
func (s TagSet) Remove(t TagType) TagSet {
	m := bitmask256(s)
	m.unset(uint8(t))
	return TagSet(m)
}

// Has reports whether t is in the set.
func (s TagSet) Has(t TagType) bool {
	return bitmask256(s).containsBit(uint8(t))
}

// ContainsAll reports whether every tag of other is in s.
func (s TagSet) ContainsAll(other TagSet) bool {
	return bitmask256(s).contains(bitmask256(other))
}

// ContainsAny reports whether s and other share at least one tag.
func (s TagSet) ContainsAny(other TagSet) bool {
	return bitmask256(s).intersects(bitmask256(other))
}

// Union returns s ∪ other.
func (s TagSet) Union(other TagSet) TagSet {
	return TagSet(bitmask256(s).or(bitmask256(other)))
}

// Intersect returns s ∩ other.
func (s TagSet) Intersect(other TagSet) TagSet {
	return TagSet(bitmask256(s).and(bitmask256(other)))
}

// Difference returns s \ other.
func (s TagSet) Difference(other TagSet) TagSet {
	return TagSet(bitmask256(s).andNot(bitmask256(other)))
}

// IsEmpty reports whether the set has no tags.
func (s TagSet) IsEmpty() bool { return bitmask256(s).isEmpty() }

// Count returns the number of tags in the set.
func (s TagSet) Count() int { return bitmask256(s).count() }

// Each calls fn for every tag in ascending index order.
func (s TagSet) Each(fn func(TagType)) {
	bitmask256(s).forEach(func(bit uint8) { fn(TagType(bit)) })
}

// Types returns the tags of the set in ascending index order.
func (s TagSet) Types() []TagType {
	out := make([]TagType, 0, s.Count())
	s.Each(func(t TagType) { out = append(out, t) })
	return out
}

// archetypeKey identifies an archetype by its exact signature.
type archetypeKey struct {
	components ComponentSet
	tags       TagSet
}

func (k archetypeKey) String(schema *Schema) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	k.components.Each(func(t ComponentType) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(schema.componentName(t))
	})
	k.tags.Each(func(t TagType) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteByte('#')
		sb.WriteString(schema.tagName(t))
	})
	sb.WriteByte(']')
	return sb.String()
}
