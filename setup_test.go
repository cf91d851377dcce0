package kura_test

import (
	"testing"

	"github.com/edwinsyarief/kura"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Rotation struct{ Angle float32 }
type Scale3 struct{ X, Y, Z float32 }
type Health struct{ Current, Max int }
type Inventory struct{ Items []string }
type Unregistered struct{ V int }

// --- Test Tags ---
type Enemy struct{}
type Frozen struct{}
type TagA struct{}
type TagB struct{}

type testTypes struct {
	position  kura.ComponentType
	velocity  kura.ComponentType
	rotation  kura.ComponentType
	scale     kura.ComponentType
	health    kura.ComponentType
	inventory kura.ComponentType
	enemy     kura.TagType
	frozen    kura.TagType
	tagA      kura.TagType
	tagB      kura.TagType
}

// --- Test Suite Setup ---
func newTestSchema() (*kura.Schema, testTypes) {
	schema := kura.NewSchema()
	types := testTypes{
		position:  kura.RegisterComponent[Position](schema),
		velocity:  kura.RegisterComponent[Velocity](schema),
		rotation:  kura.RegisterComponent[Rotation](schema),
		scale:     kura.RegisterComponent[Scale3](schema),
		health:    kura.RegisterComponent[Health](schema, kura.WithDefault(Health{Current: 100, Max: 100})),
		inventory: kura.RegisterComponent[Inventory](schema),
		enemy:     kura.RegisterTag[Enemy](schema),
		frozen:    kura.RegisterTag[Frozen](schema),
		tagA:      kura.RegisterTag[TagA](schema),
		tagB:      kura.RegisterTag[TagB](schema),
	}
	return schema, types
}

func setupStore(_ testing.TB, opts ...kura.Option) (*kura.Store, testTypes) {
	schema, types := newTestSchema()
	return kura.NewStore(schema, opts...), types
}
