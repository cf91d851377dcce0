package kura

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// ComponentCodec converts a component value to and from bytes. It is the
// hook the serialization layer plugs into a column, and the fallback deep copy
// strategy for components that hold references.
type ComponentCodec[T any] interface {
	Encode(value *T) ([]byte, error)
	Decode(data []byte, value *T) error
}

// JSONCodec is the default ComponentCodec.
type JSONCodec[T any] struct{}

// Encode implements ComponentCodec.
func (JSONCodec[T]) Encode(value *T) ([]byte, error) {
	bz, err := json.Marshal(value)
	if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return bz, nil
}

// Decode implements ComponentCodec.
func (JSONCodec[T]) Decode(data []byte, value *T) error {
	if err := json.Unmarshal(data, value); err != nil {
		return eris.Wrap(err, "")
	}
	return nil
}

// codecClone deep copies src through a codec round trip.
func codecClone[T any](codec ComponentCodec[T], src *T) (T, error) {
	var dst T
	bz, err := codec.Encode(src)
	if err != nil {
		return dst, err
	}
	err = codec.Decode(bz, &dst)
	return dst, err
}
