package kura

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestColumn[T any](t *testing.T, capacity int, opts ...ComponentOption[T]) *Column[T] {
	t.Helper()
	s := NewSchema()
	id := RegisterComponent[T](s, opts...)
	info, err := s.component(id)
	require.NoError(t, err)
	return info.newColumn(capacity).(*Column[T])
}

// go test -run ^TestColumnStash$ . -count 1
func TestColumnStash(t *testing.T) {
	c := newTestColumn[testPosition](t, 4)
	c.values[0] = testPosition{X: 1}
	c.values[1] = testPosition{X: 2}

	outer := c.stash(0)
	c.values[0] = testPosition{X: 10}
	inner := c.stash(1)
	assert.Equal(t, 0, outer)
	assert.Equal(t, 1, inner)

	v, ok := c.readStash(inner)
	assert.True(t, ok)
	assert.Equal(t, float32(2), v.X)

	// clearing the inner slot keeps the outer one
	c.clearStash(inner)
	v, ok = c.readStash(outer)
	assert.True(t, ok)
	assert.Equal(t, float32(1), v.X)
	_, ok = c.readStash(inner)
	assert.False(t, ok)

	c.clearStash(outer)
	_, ok = c.readStash(outer)
	assert.False(t, ok)
	_, ok = c.readStash(-1)
	assert.False(t, ok)
	c.clearStash(5)
}

// go test -run ^TestColumnResize$ . -count 1
func TestColumnResize(t *testing.T) {
	c := newTestColumn[testPosition](t, 2)
	c.values[0] = testPosition{X: 1}
	c.values[1] = testPosition{X: 2}

	c.resize(8, 2)
	assert.Equal(t, 8, c.len())
	assert.Equal(t, float32(2), c.at(1).X)

	c.resize(1, 2)
	assert.Equal(t, 2, c.len(), "never shrinks below the valid rows")
}

// go test -run ^TestColumnDefaults$ . -count 1
func TestColumnDefaults(t *testing.T) {
	c := newTestColumn(t, 4, WithDefault(testPosition{X: 5}))
	c.setDefaultRange(1, 3)
	assert.Equal(t, testPosition{}, c.values[0])
	assert.Equal(t, testPosition{X: 5}, c.values[3])
	c.values[2].X = 1
	c.setDefault(2)
	assert.Equal(t, float32(5), c.values[2].X)
}

// go test -run ^TestColumnCopyVsClone$ . -count 1
func TestColumnCopyVsClone(t *testing.T) {
	src := newTestColumn[testItems](t, 1)
	dst := newTestColumn[testItems](t, 2)
	src.values[0] = testItems{Names: []string{"a"}}

	src.copyRowTo(0, dst, 0)
	require.NoError(t, src.cloneRowTo(0, dst, 1))
	src.values[0].Names[0] = "b"

	assert.Equal(t, "b", dst.values[0].Names[0], "moves share references")
	assert.Equal(t, "a", dst.values[1].Names[0], "clones do not")
}

type brokenCodec struct{}

func (brokenCodec) Encode(*testItems) ([]byte, error) { return nil, eris.New("encode") }
func (brokenCodec) Decode([]byte, *testItems) error  { return eris.New("decode") }

// go test -run ^TestColumnCodecFailure$ . -count 1
func TestColumnCodecFailure(t *testing.T) {
	c := newTestColumn(t, 2, WithCodec[testItems](brokenCodec{}))
	c.values[0] = testItems{Names: []string{"a"}}

	err := c.cloneRowTo(0, c, 1)
	assert.True(t, eris.Is(err, ErrCopyComponent))
	_, err = c.writeRow(0)
	assert.ErrorContains(t, err, "encode component testItems")
	err = c.readRow(0, []byte(`{}`))
	assert.ErrorContains(t, err, "decode component testItems")
	assert.Equal(t, "a", c.values[0].Names[0])
}

// go test -run ^TestColumnCloneFunc$ . -count 1
func TestColumnCloneFunc(t *testing.T) {
	c := newTestColumn(t, 2, WithClone(func(v testItems) testItems {
		return testItems{Names: append([]string{"cloned"}, v.Names...)}
	}))
	c.values[0] = testItems{Names: []string{"a"}}
	require.NoError(t, c.cloneRowTo(0, c, 1))
	assert.Equal(t, []string{"cloned", "a"}, c.values[1].Names)
}
