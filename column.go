package kura

import "github.com/rotisserie/eris"

// column is the type-erased view of a Column the archetype works with. Row
// indices are always validated by the archetype; out-of-range access panics.
type column interface {
	componentType() ComponentType
	len() int
	resize(newCapacity, validCount int)
	moveRow(from, to int)
	copyRowTo(srcRow int, dst column, dstRow int)
	cloneRowTo(srcRow int, dst column, dstRow int) error
	setDefault(row int)
	setDefaultRange(start, count int)
	stash(row int) int
	clearStash(from int)
	writeRow(row int) ([]byte, error)
	readRow(row int, data []byte) error
}

// Column stores the values of one component type for all rows of one
// archetype. len(values) is the archetype capacity; only [0, count) is valid.
type Column[T any] struct {
	values  []T
	stashed []T
	info    *componentInfo
	codec   ComponentCodec[T]
	clone   func(T) T
	def     T
}

func newColumn[T any](info *componentInfo, opts *componentOptions[T], capacity int) *Column[T] {
	return &Column[T]{
		values: make([]T, capacity),
		info:   info,
		codec:  opts.codec,
		clone:  opts.clone,
		def:    opts.def,
	}
}

func (c *Column[T]) componentType() ComponentType { return c.info.index }

func (c *Column[T]) len() int { return len(c.values) }

// resize reallocates the column and copies [0, validCount) into the new
// buffer. It never shrinks below validCount.
func (c *Column[T]) resize(newCapacity, validCount int) {
	if newCapacity < validCount {
		newCapacity = validCount
	}
	values := make([]T, newCapacity)
	copy(values, c.values[:validCount])
	c.values = values
}

// moveRow overwrites row to with the value of row from.
func (c *Column[T]) moveRow(from, to int) {
	c.values[to] = c.values[from]
}

// copyRowTo transfers the value at srcRow into dst. Ownership moves with the
// value, so references are shared rather than duplicated.
func (c *Column[T]) copyRowTo(srcRow int, dst column, dstRow int) {
	d := dst.(*Column[T])
	d.values[dstRow] = c.values[srcRow]
}

// cloneRowTo writes an independent copy of srcRow into dst. Components with
// references go through the registered clone function, or the codec.
func (c *Column[T]) cloneRowTo(srcRow int, dst column, dstRow int) error {
	d := dst.(*Column[T])
	src := &c.values[srcRow]
	if c.info.blittable {
		d.values[dstRow] = *src
		return nil
	}
	if c.clone != nil {
		d.values[dstRow] = c.clone(*src)
		return nil
	}
	v, err := codecClone(c.codec, src)
	if err != nil {
		return eris.Wrapf(ErrCopyComponent, "component %s: %v", c.info.name, err)
	}
	d.values[dstRow] = v
	return nil
}

func (c *Column[T]) setDefault(row int) {
	c.values[row] = c.def
}

func (c *Column[T]) setDefaultRange(start, count int) {
	values := c.values[start : start+count]
	for i := range values {
		values[i] = c.def
	}
}

// stash keeps a copy of the value at row so change events can report it after
// the row was overwritten or moved. It returns the stash slot.
func (c *Column[T]) stash(row int) int {
	c.stashed = append(c.stashed, c.values[row])
	return len(c.stashed) - 1
}

// clearStash drops the stash slots from slot from on. Slots below from belong
// to an outer dispatch still in progress.
func (c *Column[T]) clearStash(from int) {
	if from >= len(c.stashed) {
		return
	}
	clear(c.stashed[from:])
	c.stashed = c.stashed[:from]
}

func (c *Column[T]) readStash(slot int) (T, bool) {
	if slot < 0 || slot >= len(c.stashed) {
		var zero T
		return zero, false
	}
	return c.stashed[slot], true
}

func (c *Column[T]) writeRow(row int) ([]byte, error) {
	bz, err := c.codec.Encode(&c.values[row])
	if err != nil {
		return nil, eris.Wrapf(err, "encode component %s", c.info.name)
	}
	return bz, nil
}

func (c *Column[T]) readRow(row int, data []byte) error {
	var v T
	if err := c.codec.Decode(data, &v); err != nil {
		return eris.Wrapf(err, "decode component %s", c.info.name)
	}
	c.values[row] = v
	return nil
}

// at returns a pointer to the value at row. The pointer is invalidated by any
// call that can grow or shrink the owning archetype.
func (c *Column[T]) at(row int) *T {
	return &c.values[row]
}
