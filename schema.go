package kura

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rotisserie/eris"
)

// Disabled is the built-in tag excluded from queries unless they opt in with
// WithDisabled. It is always registered as tag index 0.
type Disabled struct{}

// DisabledTag is the tag type of Disabled in every Schema.
const DisabledTag TagType = 0

// componentInfo is the per-type metadata stored in the schema's plain array.
type componentInfo struct {
	typ       reflect.Type
	name      string
	newColumn func(capacity int) column
	size      uintptr
	blittable bool
	index     ComponentType
}

type tagInfo struct {
	typ   reflect.Type
	name  string
	index TagType
}

// componentOptions holds the per-type strategies a column is built with.
type componentOptions[T any] struct {
	codec ComponentCodec[T]
	clone func(T) T
	def   T
}

// ComponentOption configures a component type at registration.
type ComponentOption[T any] func(*componentOptions[T])

// WithCodec sets the serialization hook of a component type. It is also the
// deep copy fallback for types with references and no clone function.
func WithCodec[T any](codec ComponentCodec[T]) ComponentOption[T] {
	return func(o *componentOptions[T]) { o.codec = codec }
}

// WithClone sets the deep copy function of a component type.
func WithClone[T any](clone func(T) T) ComponentOption[T] {
	return func(o *componentOptions[T]) { o.clone = clone }
}

// WithDefault sets the value new rows of the component type start with.
func WithDefault[T any](value T) ComponentOption[T] {
	return func(o *componentOptions[T]) { o.def = value }
}

// Schema assigns every component and tag type a stable dense index and keeps
// the per-type metadata. Registration is safe for concurrent use and may
// continue after stores using the schema were created.
type Schema struct {
	componentIndex map[reflect.Type]ComponentType
	tagIndex       map[reflect.Type]TagType
	components     [MaxComponentTypes]*componentInfo
	tags           [MaxTagTypes]*tagInfo
	componentCount int
	tagCount       int
	mu             sync.RWMutex
}

// NewSchema creates a schema with the Disabled tag registered.
func NewSchema() *Schema {
	s := &Schema{
		componentIndex: make(map[reflect.Type]ComponentType, 16),
		tagIndex:       make(map[reflect.Type]TagType, 4),
	}
	RegisterTag[Disabled](s)
	return s
}

// RegisterComponent registers a component type and returns its index. If the
// type is already registered the existing index is returned and the options
// are ignored. It panics once MaxComponentTypes types are registered.
func RegisterComponent[T any](s *Schema, opts ...ComponentOption[T]) ComponentType {
	t := reflect.TypeFor[T]()
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.componentIndex[t]; ok {
		return id
	}
	if s.componentCount >= MaxComponentTypes {
		panic(fmt.Sprintf("kura: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	o := &componentOptions[T]{codec: JSONCodec[T]{}}
	for _, opt := range opts {
		opt(o)
	}
	info := &componentInfo{
		typ:       t,
		name:      t.Name(),
		size:      t.Size(),
		blittable: isBlittable(t),
		index:     ComponentType(s.componentCount),
	}
	info.newColumn = func(capacity int) column {
		return newColumn(info, o, capacity)
	}
	s.components[info.index] = info
	s.componentIndex[t] = info.index
	s.componentCount++
	return info.index
}

// RegisterTag registers a zero-sized tag type and returns its index. It panics
// if T has a size or MaxTagTypes tags are registered.
func RegisterTag[T any](s *Schema) TagType {
	t := reflect.TypeFor[T]()
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.tagIndex[t]; ok {
		return id
	}
	if t.Size() != 0 {
		panic(fmt.Sprintf("kura: tag %s must be zero-sized", t))
	}
	if s.tagCount >= MaxTagTypes {
		panic(fmt.Sprintf("kura: cannot register tag %s: maximum number of tag types (%d) reached", t, MaxTagTypes))
	}
	id := TagType(s.tagCount)
	s.tags[id] = &tagInfo{typ: t, name: t.Name(), index: id}
	s.tagIndex[t] = id
	s.tagCount++
	return id
}

// ComponentTypeOf returns the index of component type T.
func ComponentTypeOf[T any](s *Schema) (ComponentType, bool) {
	s.mu.RLock()
	id, ok := s.componentIndex[reflect.TypeFor[T]()]
	s.mu.RUnlock()
	return id, ok
}

// TagTypeOf returns the index of tag type T.
func TagTypeOf[T any](s *Schema) (TagType, bool) {
	s.mu.RLock()
	id, ok := s.tagIndex[reflect.TypeFor[T]()]
	s.mu.RUnlock()
	return id, ok
}

// componentTypeOf is ComponentTypeOf with the registration error attached.
func componentTypeOf[T any](s *Schema) (ComponentType, error) {
	id, ok := ComponentTypeOf[T](s)
	if !ok {
		return 0, eris.Wrapf(ErrTypeNotRegistered, "component %s", reflect.TypeFor[T]())
	}
	return id, nil
}

func tagTypeOf[T any](s *Schema) (TagType, error) {
	id, ok := TagTypeOf[T](s)
	if !ok {
		return 0, eris.Wrapf(ErrTypeNotRegistered, "tag %s", reflect.TypeFor[T]())
	}
	return id, nil
}

// ComponentCount returns the number of registered component types.
func (s *Schema) ComponentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.componentCount
}

// TagCount returns the number of registered tag types, Disabled included.
func (s *Schema) TagCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tagCount
}

// component returns the metadata of t, rejecting indices that were never
// handed out by this schema.
func (s *Schema) component(t ComponentType) (*componentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(t) >= s.componentCount {
		return nil, eris.Wrapf(ErrTypeNotRegistered, "component index %d, registered [0, %d)", t, s.componentCount)
	}
	return s.components[t], nil
}

// checkComponents rejects sets with indices beyond the registered range.
func (s *Schema) checkComponents(set ComponentSet) error {
	s.mu.RLock()
	count := s.componentCount
	s.mu.RUnlock()
	var err error
	set.Each(func(t ComponentType) {
		if err == nil && int(t) >= count {
			err = eris.Wrapf(ErrTypeNotRegistered, "component index %d, registered [0, %d)", t, count)
		}
	})
	return err
}

func (s *Schema) checkTags(set TagSet) error {
	s.mu.RLock()
	count := s.tagCount
	s.mu.RUnlock()
	var err error
	set.Each(func(t TagType) {
		if err == nil && int(t) >= count {
			err = eris.Wrapf(ErrTypeNotRegistered, "tag index %d, registered [0, %d)", t, count)
		}
	})
	return err
}

func (s *Schema) componentName(t ComponentType) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if info := s.components[t]; info != nil {
		return info.name
	}
	return fmt.Sprintf("component(%d)", t)
}

func (s *Schema) tagName(t TagType) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if info := s.tags[t]; info != nil {
		return info.name
	}
	return fmt.Sprintf("tag(%d)", t)
}

// isBlittable reports whether values of t can be copied by assignment without
// sharing mutable memory.
func isBlittable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return isBlittable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isBlittable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
