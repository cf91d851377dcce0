package kura

import (
	"reflect"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPosition struct{ X, Y float32 }
type testVelocity struct{ X, Y float32 }
type testItems struct{ Names []string }
type testEnemy struct{}

// go test -run ^TestRegisterComponent$ . -count 1
func TestRegisterComponent(t *testing.T) {
	s := NewSchema()
	pos := RegisterComponent[testPosition](s)
	vel := RegisterComponent[testVelocity](s)
	assert.Equal(t, ComponentType(0), pos)
	assert.Equal(t, ComponentType(1), vel)
	assert.Equal(t, pos, RegisterComponent[testPosition](s), "registration is idempotent")
	assert.Equal(t, 2, s.ComponentCount())

	got, ok := ComponentTypeOf[testVelocity](s)
	assert.True(t, ok)
	assert.Equal(t, vel, got)
	_, ok = ComponentTypeOf[testItems](s)
	assert.False(t, ok)
	_, err := componentTypeOf[testItems](s)
	assert.True(t, eris.Is(err, ErrTypeNotRegistered))

	info, err := s.component(pos)
	require.NoError(t, err)
	assert.Equal(t, "testPosition", info.name)
	assert.Equal(t, uintptr(8), info.size)
	assert.True(t, info.blittable)
	_, err = s.component(9)
	assert.True(t, eris.Is(err, ErrTypeNotRegistered))
}

// go test -run ^TestRegisterTag$ . -count 1
func TestRegisterTag(t *testing.T) {
	s := NewSchema()
	assert.Equal(t, 1, s.TagCount(), "Disabled is always registered")
	got, ok := TagTypeOf[Disabled](s)
	assert.True(t, ok)
	assert.Equal(t, DisabledTag, got)

	enemy := RegisterTag[testEnemy](s)
	assert.Equal(t, TagType(1), enemy)
	assert.Panics(t, func() { RegisterTag[testPosition](s) })

	assert.NoError(t, s.checkTags(NewTagSet(DisabledTag, enemy)))
	assert.True(t, eris.Is(s.checkTags(NewTagSet(2)), ErrTypeNotRegistered))
}

// go test -run ^TestRegisterConcurrent$ . -count 1
func TestRegisterConcurrent(t *testing.T) {
	s := NewSchema()
	var wg sync.WaitGroup
	ids := make([]ComponentType, 8)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = RegisterComponent[testPosition](s)
		}()
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.Equal(t, 1, s.ComponentCount())
}

// go test -run ^TestIsBlittable$ . -count 1
func TestIsBlittable(t *testing.T) {
	assert.True(t, isBlittable(reflect.TypeFor[testPosition]()))
	assert.True(t, isBlittable(reflect.TypeFor[[4]int]()))
	assert.True(t, isBlittable(reflect.TypeFor[struct{ S string }]()))
	assert.False(t, isBlittable(reflect.TypeFor[testItems]()))
	assert.False(t, isBlittable(reflect.TypeFor[*int]()))
	assert.False(t, isBlittable(reflect.TypeFor[map[string]int]()))
	assert.False(t, isBlittable(reflect.TypeFor[[2][]int]()))
}
