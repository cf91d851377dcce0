package kura

import "github.com/rs/zerolog"

// transitionCacheSize is the number of single-type transitions an archetype
// remembers before falling back to the store's archetype map.
const transitionCacheSize = 4

type transitionKind uint8

const (
	addComponentTransition transitionKind = iota + 1
	removeComponentTransition
	addTagTransition
	removeTagTransition
)

// transition caches "this archetype plus/minus one type" results.
type transition struct {
	target *Archetype
	kind   transitionKind
	index  uint8
}

// rowMove describes the relocation a swap-remove caused: the entity id that
// used to live at row from now lives at row to.
type rowMove struct {
	id    uint32
	from  int
	to    int
	moved bool
}

// Archetype stores all entities sharing one exact component set and tag set,
// one column per component type.
type Archetype struct {
	store          *Store
	columns        []column
	ids            []uint32 // entity id per row, len == capacity
	key            archetypeKey
	slots          [MaxComponentTypes]int16 // column slot per component type, -1 if absent
	transitions    [transitionCacheSize]transition
	count          int
	capacity       int
	index          int
	iterating      int // active query iterations over this archetype
	guarded        int // active iterations that reject structural changes
	nextTransition int
}

func newArchetype(s *Store, key archetypeKey, index int) *Archetype {
	a := &Archetype{
		store: s,
		key:   key,
		index: index,
	}
	for i := range a.slots {
		a.slots[i] = -1
	}
	a.columns = make([]column, 0, key.components.Count())
	key.components.Each(func(t ComponentType) {
		info, err := s.schema.component(t)
		if err != nil {
			// keys are validated before archetypes are created
			panic(err)
		}
		a.slots[t] = int16(len(a.columns))
		a.columns = append(a.columns, info.newColumn(0))
	})
	return a
}

// Index returns the position of the archetype in its store. The archetype
// without components and tags always has index 0.
func (a *Archetype) Index() int { return a.index }

// Components returns the component set of the archetype.
func (a *Archetype) Components() ComponentSet { return a.key.components }

// Tags returns the tag set of the archetype.
func (a *Archetype) Tags() TagSet { return a.key.tags }

// Count returns the number of entities stored in the archetype.
func (a *Archetype) Count() int { return a.count }

// Capacity returns the number of rows allocated for the archetype.
func (a *Archetype) Capacity() int { return a.capacity }

// Store returns the store owning the archetype.
func (a *Archetype) Store() *Store { return a.store }

// Entities returns a copy of the entity handles stored in the archetype in
// row order.
func (a *Archetype) Entities() []Entity {
	out := make([]Entity, a.count)
	for row, id := range a.ids[:a.count] {
		out[row] = a.store.entityAt(id)
	}
	return out
}

// String returns the archetype signature, e.g. [Position, Velocity, #Enemy].
func (a *Archetype) String() string {
	return a.key.String(a.store.schema)
}

func (a *Archetype) column(t ComponentType) column {
	slot := a.slots[t]
	if slot < 0 {
		return nil
	}
	return a.columns[slot]
}

// appendRow adds a default initialized row for entity id and returns its
// index. Capacity doubles when full.
func (a *Archetype) appendRow(id uint32) int {
	if a.count == a.capacity {
		a.grow(max(a.capacity*2, a.store.config.MinArchetypeCapacity))
	}
	row := a.count
	a.ids[row] = id
	for _, c := range a.columns {
		c.setDefault(row)
	}
	a.count++
	return row
}

// reserveRow makes sure row a.count exists without publishing it. The row
// becomes visible with commitRow.
func (a *Archetype) reserveRow() int {
	if a.count == a.capacity {
		a.grow(max(a.capacity*2, a.store.config.MinArchetypeCapacity))
	}
	row := a.count
	for _, c := range a.columns {
		c.setDefault(row)
	}
	return row
}

func (a *Archetype) commitRow(id uint32) int {
	row := a.count
	a.ids[row] = id
	a.count++
	return row
}

// removeRow swap-removes row. If row was not the last row the entity that
// lived in the last row now lives at row, which the returned rowMove reports.
func (a *Archetype) removeRow(row int) rowMove {
	last := a.count - 1
	var mv rowMove
	if row != last {
		for _, c := range a.columns {
			c.moveRow(last, row)
		}
		a.ids[row] = a.ids[last]
		mv = rowMove{id: a.ids[row], from: last, to: row, moved: true}
	}
	for _, c := range a.columns {
		c.setDefault(last)
	}
	a.ids[last] = 0
	a.count--
	return mv
}

// EnsureCapacity grows the archetype so that additional entities can be added
// without reallocation.
func (a *Archetype) EnsureCapacity(additional int) {
	need := a.count + additional
	if need <= a.capacity {
		return
	}
	a.grow(max(need, a.capacity*2, a.store.config.MinArchetypeCapacity))
}

func (a *Archetype) grow(newCapacity int) {
	a.resize(newCapacity)
	a.store.logger.Trace().
		Int("archetype", a.index).
		Int("capacity", newCapacity).
		Msg("archetype grown")
}

func (a *Archetype) resize(newCapacity int) {
	for _, c := range a.columns {
		c.resize(newCapacity, a.count)
	}
	ids := make([]uint32, newCapacity)
	copy(ids, a.ids[:a.count])
	a.ids = ids
	a.capacity = newCapacity
}

// shrinkToFit reclaims capacity when capacity exceeds ratio times the row
// count. Capacity never drops below floor.
func (a *Archetype) shrinkToFit(ratio, floor int) bool {
	if a.capacity <= floor || a.iterating > 0 {
		return false
	}
	if a.count > 0 && a.capacity/a.count <= ratio {
		return false
	}
	newCapacity := max(floor, a.count*2)
	if newCapacity >= a.capacity {
		return false
	}
	old := a.capacity
	a.resize(newCapacity)
	a.store.logger.Debug().
		Int("archetype", a.index).
		Int("old_capacity", old).
		Int("capacity", newCapacity).
		Int("count", a.count).
		Msg("archetype shrunk")
	return true
}

func (a *Archetype) cachedTransition(kind transitionKind, index uint8) *Archetype {
	for i := range a.transitions {
		tr := &a.transitions[i]
		if tr.kind == kind && tr.index == index {
			return tr.target
		}
	}
	return nil
}

func (a *Archetype) cacheTransition(kind transitionKind, index uint8, target *Archetype) {
	a.transitions[a.nextTransition] = transition{target: target, kind: kind, index: index}
	a.nextTransition = (a.nextTransition + 1) % transitionCacheSize
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (a *Archetype) MarshalZerologObject(e *zerolog.Event) {
	e.Int("index", a.index).
		Str("signature", a.String()).
		Int("count", a.count).
		Int("capacity", a.capacity)
}
