package kura

// signature1 resolves the component types of T1 in order.
func signature1[T1 any](s *Schema) (types [1]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	return types, set, nil
}

// signature2 resolves the component types of T1, T2 in order.
func signature2[T1, T2 any](s *Schema) (types [2]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature3 resolves the component types of T1, T2, T3 in order.
func signature3[T1, T2, T3 any](s *Schema) (types [3]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature4 resolves the component types of T1, T2, T3, T4 in order.
func signature4[T1, T2, T3, T4 any](s *Schema) (types [4]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	if types[3], err = componentTypeOf[T4](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature5 resolves the component types of T1, T2, T3, T4, T5 in order.
func signature5[T1, T2, T3, T4, T5 any](s *Schema) (types [5]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	if types[3], err = componentTypeOf[T4](s); err != nil {
		return types, set, err
	}
	if types[4], err = componentTypeOf[T5](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature6 resolves the component types of T1, T2, T3, T4, T5, T6 in order.
func signature6[T1, T2, T3, T4, T5, T6 any](s *Schema) (types [6]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	if types[3], err = componentTypeOf[T4](s); err != nil {
		return types, set, err
	}
	if types[4], err = componentTypeOf[T5](s); err != nil {
		return types, set, err
	}
	if types[5], err = componentTypeOf[T6](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature7 resolves the component types of T1, T2, T3, T4, T5, T6, T7 in order.
func signature7[T1, T2, T3, T4, T5, T6, T7 any](s *Schema) (types [7]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	if types[3], err = componentTypeOf[T4](s); err != nil {
		return types, set, err
	}
	if types[4], err = componentTypeOf[T5](s); err != nil {
		return types, set, err
	}
	if types[5], err = componentTypeOf[T6](s); err != nil {
		return types, set, err
	}
	if types[6], err = componentTypeOf[T7](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature8 resolves the component types of T1, T2, T3, T4, T5, T6, T7, T8 in order.
func signature8[T1, T2, T3, T4, T5, T6, T7, T8 any](s *Schema) (types [8]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	if types[3], err = componentTypeOf[T4](s); err != nil {
		return types, set, err
	}
	if types[4], err = componentTypeOf[T5](s); err != nil {
		return types, set, err
	}
	if types[5], err = componentTypeOf[T6](s); err != nil {
		return types, set, err
	}
	if types[6], err = componentTypeOf[T7](s); err != nil {
		return types, set, err
	}
	if types[7], err = componentTypeOf[T8](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature9 resolves the component types of T1, T2, T3, T4, T5, T6, T7, T8, T9 in order.
func signature9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](s *Schema) (types [9]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	if types[3], err = componentTypeOf[T4](s); err != nil {
		return types, set, err
	}
	if types[4], err = componentTypeOf[T5](s); err != nil {
		return types, set, err
	}
	if types[5], err = componentTypeOf[T6](s); err != nil {
		return types, set, err
	}
	if types[6], err = componentTypeOf[T7](s); err != nil {
		return types, set, err
	}
	if types[7], err = componentTypeOf[T8](s); err != nil {
		return types, set, err
	}
	if types[8], err = componentTypeOf[T9](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// signature10 resolves the component types of T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 in order.
func signature10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](s *Schema) (types [10]ComponentType, set ComponentSet, err error) {
	if types[0], err = componentTypeOf[T1](s); err != nil {
		return types, set, err
	}
	if types[1], err = componentTypeOf[T2](s); err != nil {
		return types, set, err
	}
	if types[2], err = componentTypeOf[T3](s); err != nil {
		return types, set, err
	}
	if types[3], err = componentTypeOf[T4](s); err != nil {
		return types, set, err
	}
	if types[4], err = componentTypeOf[T5](s); err != nil {
		return types, set, err
	}
	if types[5], err = componentTypeOf[T6](s); err != nil {
		return types, set, err
	}
	if types[6], err = componentTypeOf[T7](s); err != nil {
		return types, set, err
	}
	if types[7], err = componentTypeOf[T8](s); err != nil {
		return types, set, err
	}
	if types[8], err = componentTypeOf[T9](s); err != nil {
		return types, set, err
	}
	if types[9], err = componentTypeOf[T10](s); err != nil {
		return types, set, err
	}
	set = NewComponentSet(types[:]...)
	if set.Count() != len(types) {
		return types, set, duplicateTypes(s, types[:])
	}
	return types, set, nil
}

// Add2 sets the components T1, T2 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c2: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add2[T1, T2 any](e Entity, c1 T1, c2 T2) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature2[T1, T2](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	s.endAdd(op)
	return op.changed, nil
}

// Remove2 removes the components T1, T2 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove2[T1, T2 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature2[T1, T2](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add3 sets the components T1, T2, T3 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c3: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add3[T1, T2, T3 any](e Entity, c1 T1, c2 T2, c3 T3) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature3[T1, T2, T3](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	s.endAdd(op)
	return op.changed, nil
}

// Remove3 removes the components T1, T2, T3 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove3[T1, T2, T3 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature3[T1, T2, T3](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add4 sets the components T1, T2, T3, T4 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c4: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add4[T1, T2, T3, T4 any](e Entity, c1 T1, c2 T2, c3 T3, c4 T4) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature4[T1, T2, T3, T4](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	setValue(op.target, types[3], op.row, c4)
	s.endAdd(op)
	return op.changed, nil
}

// Remove4 removes the components T1, T2, T3, T4 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove4[T1, T2, T3, T4 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature4[T1, T2, T3, T4](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add5 sets the components T1, T2, T3, T4, T5 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c5: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add5[T1, T2, T3, T4, T5 any](e Entity, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature5[T1, T2, T3, T4, T5](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	setValue(op.target, types[3], op.row, c4)
	setValue(op.target, types[4], op.row, c5)
	s.endAdd(op)
	return op.changed, nil
}

// Remove5 removes the components T1, T2, T3, T4, T5 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove5[T1, T2, T3, T4, T5 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature5[T1, T2, T3, T4, T5](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add6 sets the components T1, T2, T3, T4, T5, T6 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c6: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add6[T1, T2, T3, T4, T5, T6 any](e Entity, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature6[T1, T2, T3, T4, T5, T6](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	setValue(op.target, types[3], op.row, c4)
	setValue(op.target, types[4], op.row, c5)
	setValue(op.target, types[5], op.row, c6)
	s.endAdd(op)
	return op.changed, nil
}

// Remove6 removes the components T1, T2, T3, T4, T5, T6 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove6[T1, T2, T3, T4, T5, T6 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature6[T1, T2, T3, T4, T5, T6](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add7 sets the components T1, T2, T3, T4, T5, T6, T7 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c7: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add7[T1, T2, T3, T4, T5, T6, T7 any](e Entity, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature7[T1, T2, T3, T4, T5, T6, T7](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	setValue(op.target, types[3], op.row, c4)
	setValue(op.target, types[4], op.row, c5)
	setValue(op.target, types[5], op.row, c6)
	setValue(op.target, types[6], op.row, c7)
	s.endAdd(op)
	return op.changed, nil
}

// Remove7 removes the components T1, T2, T3, T4, T5, T6, T7 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove7[T1, T2, T3, T4, T5, T6, T7 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature7[T1, T2, T3, T4, T5, T6, T7](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add8 sets the components T1, T2, T3, T4, T5, T6, T7, T8 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c8: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add8[T1, T2, T3, T4, T5, T6, T7, T8 any](e Entity, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature8[T1, T2, T3, T4, T5, T6, T7, T8](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	setValue(op.target, types[3], op.row, c4)
	setValue(op.target, types[4], op.row, c5)
	setValue(op.target, types[5], op.row, c6)
	setValue(op.target, types[6], op.row, c7)
	setValue(op.target, types[7], op.row, c8)
	s.endAdd(op)
	return op.changed, nil
}

// Remove8 removes the components T1, T2, T3, T4, T5, T6, T7, T8 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove8[T1, T2, T3, T4, T5, T6, T7, T8 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature8[T1, T2, T3, T4, T5, T6, T7, T8](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add9 sets the components T1, T2, T3, T4, T5, T6, T7, T8, T9 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c9: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](e Entity, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8, c9 T9) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature9[T1, T2, T3, T4, T5, T6, T7, T8, T9](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	setValue(op.target, types[3], op.row, c4)
	setValue(op.target, types[4], op.row, c5)
	setValue(op.target, types[5], op.row, c6)
	setValue(op.target, types[6], op.row, c7)
	setValue(op.target, types[7], op.row, c8)
	setValue(op.target, types[8], op.row, c9)
	s.endAdd(op)
	return op.changed, nil
}

// Remove9 removes the components T1, T2, T3, T4, T5, T6, T7, T8, T9 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature9[T1, T2, T3, T4, T5, T6, T7, T8, T9](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}

// Add10 sets the components T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 on e with at most one archetype
// move. Types e already has are updated in place. It returns the types that
// were newly added.
//
// Parameters:
//   - e: The entity to change.
//   - c1..c10: The component values, in type parameter order.
//
// Returns:
//   - The set of newly added types, or an error if e is null, a type is
//     not registered, a type is repeated, or the move is rejected during
//     query iteration.
func Add10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](e Entity, c1 T1, c2 T2, c3 T3, c4 T4, c5 T5, c6 T6, c7 T7, c8 T8, c9 T9, c10 T10) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	types, set, err := signature10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	op, err := s.beginAdd(e, n, set)
	if err != nil {
		return ComponentSet{}, err
	}
	setValue(op.target, types[0], op.row, c1)
	setValue(op.target, types[1], op.row, c2)
	setValue(op.target, types[2], op.row, c3)
	setValue(op.target, types[3], op.row, c4)
	setValue(op.target, types[4], op.row, c5)
	setValue(op.target, types[5], op.row, c6)
	setValue(op.target, types[6], op.row, c7)
	setValue(op.target, types[7], op.row, c8)
	setValue(op.target, types[8], op.row, c9)
	setValue(op.target, types[9], op.row, c10)
	s.endAdd(op)
	return op.changed, nil
}

// Remove10 removes the components T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 from e with at most one
// archetype move. It returns the types that were actually removed.
//
// Parameters:
//   - e: The entity to change.
//
// Returns:
//   - The set of removed types, or an error if e is null, a type is not
//     registered, a type is repeated, or the move is rejected during
//     query iteration.
func Remove10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](e Entity) (ComponentSet, error) {
	s, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}, err
	}
	_, set, err := signature10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10](s.schema)
	if err != nil {
		return ComponentSet{}, err
	}
	return s.removeComponents(e, n, set)
}
