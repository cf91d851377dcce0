package kura

import "github.com/rotisserie/eris"

var (
	// ErrEntityNull is returned when an operation targets an entity handle
	// whose revision no longer matches the live entity (deleted or recycled).
	ErrEntityNull = eris.New("entity is null")
	// ErrEntityOutOfRange is returned for ids outside the allocated id range.
	ErrEntityOutOfRange = eris.New("entity id out of range")
	// ErrInvalidStore is returned when entities of different stores are mixed.
	ErrInvalidStore = eris.New("entity belongs to a different store")
	// ErrComponentNotFound is returned when a required component is missing.
	ErrComponentNotFound = eris.New("component not found on entity")
	// ErrTypeNotRegistered is returned when a component or tag type has not
	// been registered in the store's schema.
	ErrTypeNotRegistered = eris.New("type not registered")
	// ErrStructuralChangeDuringIteration is returned when an entity is moved
	// while its archetype is being iterated by a query.
	ErrStructuralChangeDuringIteration = eris.New("structural change during query iteration")
	// ErrInvalidPlayback is returned when a command buffer references an
	// entity that does not exist at playback time.
	ErrInvalidPlayback = eris.New("invalid command buffer playback")
	// ErrCycle is returned when adding a child would create a cycle.
	ErrCycle = eris.New("operation would cause a cycle in the entity hierarchy")
	// ErrCopyComponent is returned when a deep copy of a component fails.
	ErrCopyComponent = eris.New("cannot copy component")
)
