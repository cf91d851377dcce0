package kura

import "iter"

// Chunk1 is the contiguous storage of one archetype matched by a Query1.
// C1 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk1[T1 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
}

// Len returns the number of rows in the chunk.
func (c Chunk1[T1]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk1[T1]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query1 is a Query over entities having component T1.
type Query1[T1 any] struct {
	*Query
	t1 ComponentType
}

// NewQuery1 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query1`, or an error if a type is not registered
//     or repeated.
func NewQuery1[T1 any](s *Store, filters ...QueryFilter) (*Query1[T1], error) {
	types, set, err := signature1[T1](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query1[T1]{Query: s.Query(filter.RequireAll(set))}
	q.t1 = types[0]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query1[T1]) Chunks() iter.Seq[Chunk1[T1]] {
	return func(yield func(Chunk1[T1]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk1[T1]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query1[T1]) Each(fn func(Entity, *T1)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i])
		}
	}
}

// Chunk2 is the contiguous storage of one archetype matched by a Query2.
// C1..C2 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk2[T1, T2 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
}

// Len returns the number of rows in the chunk.
func (c Chunk2[T1, T2]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk2[T1, T2]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query2 is a Query over entities having components T1, T2.
type Query2[T1, T2 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
}

// NewQuery2 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query2`, or an error if a type is not registered
//     or repeated.
func NewQuery2[T1, T2 any](s *Store, filters ...QueryFilter) (*Query2[T1, T2], error) {
	types, set, err := signature2[T1, T2](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query2[T1, T2]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2 = types[0], types[1]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query2[T1, T2]) Chunks() iter.Seq[Chunk2[T1, T2]] {
	return func(yield func(Chunk2[T1, T2]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk2[T1, T2]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query2[T1, T2]) Each(fn func(Entity, *T1, *T2)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i])
		}
	}
}

// Chunk3 is the contiguous storage of one archetype matched by a Query3.
// C1..C3 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk3[T1, T2, T3 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
}

// Len returns the number of rows in the chunk.
func (c Chunk3[T1, T2, T3]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk3[T1, T2, T3]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query3 is a Query over entities having components T1, T2, T3.
type Query3[T1, T2, T3 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
	t3 ComponentType
}

// NewQuery3 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query3`, or an error if a type is not registered
//     or repeated.
func NewQuery3[T1, T2, T3 any](s *Store, filters ...QueryFilter) (*Query3[T1, T2, T3], error) {
	types, set, err := signature3[T1, T2, T3](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query3[T1, T2, T3]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3 = types[0], types[1], types[2]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query3[T1, T2, T3]) Chunks() iter.Seq[Chunk3[T1, T2, T3]] {
	return func(yield func(Chunk3[T1, T2, T3]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk3[T1, T2, T3]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query3[T1, T2, T3]) Each(fn func(Entity, *T1, *T2, *T3)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i])
		}
	}
}

// Chunk4 is the contiguous storage of one archetype matched by a Query4.
// C1..C4 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk4[T1, T2, T3, T4 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
	C4        []T4
}

// Len returns the number of rows in the chunk.
func (c Chunk4[T1, T2, T3, T4]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk4[T1, T2, T3, T4]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query4 is a Query over entities having components T1, T2, T3, T4.
type Query4[T1, T2, T3, T4 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
	t3 ComponentType
	t4 ComponentType
}

// NewQuery4 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query4`, or an error if a type is not registered
//     or repeated.
func NewQuery4[T1, T2, T3, T4 any](s *Store, filters ...QueryFilter) (*Query4[T1, T2, T3, T4], error) {
	types, set, err := signature4[T1, T2, T3, T4](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query4[T1, T2, T3, T4]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3, q.t4 = types[0], types[1], types[2], types[3]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query4[T1, T2, T3, T4]) Chunks() iter.Seq[Chunk4[T1, T2, T3, T4]] {
	return func(yield func(Chunk4[T1, T2, T3, T4]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk4[T1, T2, T3, T4]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
					C4:        columnValues[T4](a, q.t4),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query4[T1, T2, T3, T4]) Each(fn func(Entity, *T1, *T2, *T3, *T4)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i], &c.C4[i])
		}
	}
}

// Chunk5 is the contiguous storage of one archetype matched by a Query5.
// C1..C5 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk5[T1, T2, T3, T4, T5 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
	C4        []T4
	C5        []T5
}

// Len returns the number of rows in the chunk.
func (c Chunk5[T1, T2, T3, T4, T5]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk5[T1, T2, T3, T4, T5]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query5 is a Query over entities having components T1, T2, T3, T4, T5.
type Query5[T1, T2, T3, T4, T5 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
	t3 ComponentType
	t4 ComponentType
	t5 ComponentType
}

// NewQuery5 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query5`, or an error if a type is not registered
//     or repeated.
func NewQuery5[T1, T2, T3, T4, T5 any](s *Store, filters ...QueryFilter) (*Query5[T1, T2, T3, T4, T5], error) {
	types, set, err := signature5[T1, T2, T3, T4, T5](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query5[T1, T2, T3, T4, T5]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3, q.t4, q.t5 = types[0], types[1], types[2], types[3], types[4]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query5[T1, T2, T3, T4, T5]) Chunks() iter.Seq[Chunk5[T1, T2, T3, T4, T5]] {
	return func(yield func(Chunk5[T1, T2, T3, T4, T5]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk5[T1, T2, T3, T4, T5]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
					C4:        columnValues[T4](a, q.t4),
					C5:        columnValues[T5](a, q.t5),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query5[T1, T2, T3, T4, T5]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i], &c.C4[i], &c.C5[i])
		}
	}
}

// Chunk6 is the contiguous storage of one archetype matched by a Query6.
// C1..C6 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk6[T1, T2, T3, T4, T5, T6 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
	C4        []T4
	C5        []T5
	C6        []T6
}

// Len returns the number of rows in the chunk.
func (c Chunk6[T1, T2, T3, T4, T5, T6]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk6[T1, T2, T3, T4, T5, T6]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query6 is a Query over entities having components T1, T2, T3, T4, T5, T6.
type Query6[T1, T2, T3, T4, T5, T6 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
	t3 ComponentType
	t4 ComponentType
	t5 ComponentType
	t6 ComponentType
}

// NewQuery6 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query6`, or an error if a type is not registered
//     or repeated.
func NewQuery6[T1, T2, T3, T4, T5, T6 any](s *Store, filters ...QueryFilter) (*Query6[T1, T2, T3, T4, T5, T6], error) {
	types, set, err := signature6[T1, T2, T3, T4, T5, T6](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query6[T1, T2, T3, T4, T5, T6]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3, q.t4, q.t5, q.t6 = types[0], types[1], types[2], types[3], types[4], types[5]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Chunks() iter.Seq[Chunk6[T1, T2, T3, T4, T5, T6]] {
	return func(yield func(Chunk6[T1, T2, T3, T4, T5, T6]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk6[T1, T2, T3, T4, T5, T6]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
					C4:        columnValues[T4](a, q.t4),
					C5:        columnValues[T5](a, q.t5),
					C6:        columnValues[T6](a, q.t6),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i], &c.C4[i], &c.C5[i], &c.C6[i])
		}
	}
}

// Chunk7 is the contiguous storage of one archetype matched by a Query7.
// C1..C7 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
	C4        []T4
	C5        []T5
	C6        []T6
	C7        []T7
}

// Len returns the number of rows in the chunk.
func (c Chunk7[T1, T2, T3, T4, T5, T6, T7]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk7[T1, T2, T3, T4, T5, T6, T7]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query7 is a Query over entities having components T1, T2, T3, T4, T5, T6, T7.
type Query7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
	t3 ComponentType
	t4 ComponentType
	t5 ComponentType
	t6 ComponentType
	t7 ComponentType
}

// NewQuery7 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query7`, or an error if a type is not registered
//     or repeated.
func NewQuery7[T1, T2, T3, T4, T5, T6, T7 any](s *Store, filters ...QueryFilter) (*Query7[T1, T2, T3, T4, T5, T6, T7], error) {
	types, set, err := signature7[T1, T2, T3, T4, T5, T6, T7](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query7[T1, T2, T3, T4, T5, T6, T7]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3, q.t4, q.t5, q.t6, q.t7 = types[0], types[1], types[2], types[3], types[4], types[5], types[6]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query7[T1, T2, T3, T4, T5, T6, T7]) Chunks() iter.Seq[Chunk7[T1, T2, T3, T4, T5, T6, T7]] {
	return func(yield func(Chunk7[T1, T2, T3, T4, T5, T6, T7]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk7[T1, T2, T3, T4, T5, T6, T7]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
					C4:        columnValues[T4](a, q.t4),
					C5:        columnValues[T5](a, q.t5),
					C6:        columnValues[T6](a, q.t6),
					C7:        columnValues[T7](a, q.t7),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query7[T1, T2, T3, T4, T5, T6, T7]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i], &c.C4[i], &c.C5[i], &c.C6[i], &c.C7[i])
		}
	}
}

// Chunk8 is the contiguous storage of one archetype matched by a Query8.
// C1..C8 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
	C4        []T4
	C5        []T5
	C6        []T6
	C7        []T7
	C8        []T8
}

// Len returns the number of rows in the chunk.
func (c Chunk8[T1, T2, T3, T4, T5, T6, T7, T8]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk8[T1, T2, T3, T4, T5, T6, T7, T8]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query8 is a Query over entities having components T1, T2, T3, T4, T5, T6, T7, T8.
type Query8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
	t3 ComponentType
	t4 ComponentType
	t5 ComponentType
	t6 ComponentType
	t7 ComponentType
	t8 ComponentType
}

// NewQuery8 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query8`, or an error if a type is not registered
//     or repeated.
func NewQuery8[T1, T2, T3, T4, T5, T6, T7, T8 any](s *Store, filters ...QueryFilter) (*Query8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
	types, set, err := signature8[T1, T2, T3, T4, T5, T6, T7, T8](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query8[T1, T2, T3, T4, T5, T6, T7, T8]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3, q.t4, q.t5, q.t6, q.t7, q.t8 = types[0], types[1], types[2], types[3], types[4], types[5], types[6], types[7]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query8[T1, T2, T3, T4, T5, T6, T7, T8]) Chunks() iter.Seq[Chunk8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	return func(yield func(Chunk8[T1, T2, T3, T4, T5, T6, T7, T8]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk8[T1, T2, T3, T4, T5, T6, T7, T8]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
					C4:        columnValues[T4](a, q.t4),
					C5:        columnValues[T5](a, q.t5),
					C6:        columnValues[T6](a, q.t6),
					C7:        columnValues[T7](a, q.t7),
					C8:        columnValues[T8](a, q.t8),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query8[T1, T2, T3, T4, T5, T6, T7, T8]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i], &c.C4[i], &c.C5[i], &c.C6[i], &c.C7[i], &c.C8[i])
		}
	}
}

// Chunk9 is the contiguous storage of one archetype matched by a Query9.
// C1..C9 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
	C4        []T4
	C5        []T5
	C6        []T6
	C7        []T7
	C8        []T8
	C9        []T9
}

// Len returns the number of rows in the chunk.
func (c Chunk9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query9 is a Query over entities having components T1, T2, T3, T4, T5, T6, T7, T8, T9.
type Query9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	*Query
	t1 ComponentType
	t2 ComponentType
	t3 ComponentType
	t4 ComponentType
	t5 ComponentType
	t6 ComponentType
	t7 ComponentType
	t8 ComponentType
	t9 ComponentType
}

// NewQuery9 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query9`, or an error if a type is not registered
//     or repeated.
func NewQuery9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](s *Store, filters ...QueryFilter) (*Query9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
	types, set, err := signature9[T1, T2, T3, T4, T5, T6, T7, T8, T9](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3, q.t4, q.t5, q.t6, q.t7, q.t8, q.t9 = types[0], types[1], types[2], types[3], types[4], types[5], types[6], types[7], types[8]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Chunks() iter.Seq[Chunk9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	return func(yield func(Chunk9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
					C4:        columnValues[T4](a, q.t4),
					C5:        columnValues[T5](a, q.t5),
					C6:        columnValues[T6](a, q.t6),
					C7:        columnValues[T7](a, q.t7),
					C8:        columnValues[T8](a, q.t8),
					C9:        columnValues[T9](a, q.t9),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i], &c.C4[i], &c.C5[i], &c.C6[i], &c.C7[i], &c.C8[i], &c.C9[i])
		}
	}
}

// Chunk10 is the contiguous storage of one archetype matched by a Query10.
// C1..C10 and the entity ids share the row index. The slices are only valid
// until the next structural change of the store.
type Chunk10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	Archetype *Archetype
	ids       []uint32
	C1        []T1
	C2        []T2
	C3        []T3
	C4        []T4
	C5        []T5
	C6        []T6
	C7        []T7
	C8        []T8
	C9        []T9
	C10       []T10
}

// Len returns the number of rows in the chunk.
func (c Chunk10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Len() int { return len(c.ids) }

// Entity returns the entity at row i.
func (c Chunk10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Entity(i int) Entity {
	return c.Archetype.store.entityAt(c.ids[i])
}

// Query10 is a Query over entities having components T1, T2, T3, T4, T5, T6, T7, T8, T9, T10.
type Query10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	*Query
	t1  ComponentType
	t2  ComponentType
	t3  ComponentType
	t4  ComponentType
	t5  ComponentType
	t6  ComponentType
	t7  ComponentType
	t8  ComponentType
	t9  ComponentType
	t10 ComponentType
}

// NewQuery10 creates a typed query. The component types are added to the
// required components of filters.
//
// Parameters:
//   - s: The Store to query.
//   - filters: Optional filters merged into one, condition set by condition
//     set.
//
// Returns:
//   - A pointer to the `Query10`, or an error if a type is not registered
//     or repeated.
func NewQuery10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](s *Store, filters ...QueryFilter) (*Query10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], error) {
	types, set, err := signature10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10](s.schema)
	if err != nil {
		return nil, err
	}
	var filter QueryFilter
	for _, f := range filters {
		filter = mergeFilters(filter, f)
	}
	q := &Query10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{Query: s.Query(filter.RequireAll(set))}
	q.t1, q.t2, q.t3, q.t4, q.t5, q.t6, q.t7, q.t8, q.t9, q.t10 = types[0], types[1], types[2], types[3], types[4], types[5], types[6], types[7], types[8], types[9]
	return q, nil
}

// Chunks iterates the non-empty matching archetypes.
func (q *Query10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Chunks() iter.Seq[Chunk10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]] {
	return func(yield func(Chunk10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) bool) {
		for _, a := range q.Archetypes() {
			if a.count == 0 {
				continue
			}
			more := q.visit(a, func(a *Archetype) bool {
				return yield(Chunk10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{
					Archetype: a,
					ids:       a.ids[:a.count],
					C1:        columnValues[T1](a, q.t1),
					C2:        columnValues[T2](a, q.t2),
					C3:        columnValues[T3](a, q.t3),
					C4:        columnValues[T4](a, q.t4),
					C5:        columnValues[T5](a, q.t5),
					C6:        columnValues[T6](a, q.t6),
					C7:        columnValues[T7](a, q.t7),
					C8:        columnValues[T8](a, q.t8),
					C9:        columnValues[T9](a, q.t9),
					C10:       columnValues[T10](a, q.t10),
				})
			})
			if !more {
				return
			}
		}
	}
}

// Each calls fn for every matching entity with pointers to its components.
func (q *Query10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10)) {
	for c := range q.Chunks() {
		for i := range c.ids {
			fn(c.Entity(i), &c.C1[i], &c.C2[i], &c.C3[i], &c.C4[i], &c.C5[i], &c.C6[i], &c.C7[i], &c.C8[i], &c.C9[i], &c.C10[i])
		}
	}
}
