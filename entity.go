package kura

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Entity is a lightweight handle to an entity of a Store. It does not own the
// entity: every access validates the handle against the store's entity index,
// so a handle kept after the entity was deleted reports IsNull.
type Entity struct {
	store    *Store
	id       uint32 // 0 for the null entity
	revision uint16 // bumped every time the id is deleted
}

// ID returns the entity id. Ids start at 1.
func (e Entity) ID() uint32 { return e.id }

// Revision returns the revision the handle was issued with. Revisions are
// 16 bits and wrap, so a handle held across 65536 deletions of the same id
// validates again.
func (e Entity) Revision() uint16 { return e.revision }

// Store returns the store the handle was issued by, nil for the zero Entity.
func (e Entity) Store() *Store { return e.store }

// IsNull reports whether the handle no longer refers to an alive entity.
func (e Entity) IsNull() bool {
	if e.store == nil || e.id == 0 || int(e.id) >= len(e.store.nodes) {
		return true
	}
	n := &e.store.nodes[e.id]
	return n.archetype == nil || n.revision != e.revision
}

// String implements fmt.Stringer.
func (e Entity) String() string {
	if e.IsNull() {
		return fmt.Sprintf("Entity(%d:%d null)", e.id, e.revision)
	}
	return fmt.Sprintf("Entity(%d:%d %s)", e.id, e.revision, e.store.nodes[e.id].archetype)
}

// resolve returns the store and index entry of an alive entity.
func (e Entity) resolve() (*Store, *entityNode, error) {
	if e.store == nil {
		return nil, nil, eris.Wrapf(ErrEntityNull, "entity %d has no store", e.id)
	}
	n, err := e.store.node(e)
	if err != nil {
		return nil, nil, err
	}
	return e.store, n, nil
}

// Archetype returns the archetype the entity currently lives in.
func (e Entity) Archetype() (*Archetype, error) {
	_, n, err := e.resolve()
	if err != nil {
		return nil, err
	}
	return n.archetype, nil
}

// Row returns the row of the entity inside its archetype. It changes with
// every structural change of this or another entity of the archetype.
func (e Entity) Row() (int, error) {
	_, n, err := e.resolve()
	if err != nil {
		return 0, err
	}
	return int(n.row), nil
}

// Components returns the component set of the entity, empty if it is null.
func (e Entity) Components() ComponentSet {
	_, n, err := e.resolve()
	if err != nil {
		return ComponentSet{}
	}
	return n.archetype.key.components
}

// Tags returns the tag set of the entity, empty if it is null.
func (e Entity) Tags() TagSet {
	_, n, err := e.resolve()
	if err != nil {
		return TagSet{}
	}
	return n.archetype.key.tags
}

// Delete deletes the entity from its store.
func (e Entity) Delete() error {
	if e.store == nil {
		return eris.Wrapf(ErrEntityNull, "entity %d has no store", e.id)
	}
	return e.store.DeleteEntity(e)
}

// IsEnabled reports whether the entity is alive and lacks the Disabled tag.
func (e Entity) IsEnabled() bool {
	_, n, err := e.resolve()
	return err == nil && !n.archetype.key.tags.Has(DisabledTag)
}

// Enable removes the Disabled tag. It reports whether the entity changed.
func (e Entity) Enable() (bool, error) {
	return e.RemoveTags(NewTagSet(DisabledTag))
}

// Disable adds the Disabled tag so queries skip the entity unless they opt in
// with WithDisabled.
func (e Entity) Disable() (bool, error) {
	return e.AddTags(NewTagSet(DisabledTag))
}

// WriteComponent encodes the value of component t with the codec registered
// for its type.
func (e Entity) WriteComponent(t ComponentType) ([]byte, error) {
	_, n, err := e.resolve()
	if err != nil {
		return nil, err
	}
	col := n.archetype.column(t)
	if col == nil {
		return nil, eris.Wrapf(ErrComponentNotFound, "component %d on entity %d", t, e.id)
	}
	return col.writeRow(int(n.row))
}

// ReadComponent decodes data into component t of the entity. The entity must
// already have the component.
func (e Entity) ReadComponent(t ComponentType, data []byte) error {
	_, n, err := e.resolve()
	if err != nil {
		return err
	}
	col := n.archetype.column(t)
	if col == nil {
		return eris.Wrapf(ErrComponentNotFound, "component %d on entity %d", t, e.id)
	}
	return col.readRow(int(n.row), data)
}

// CloneEntity creates a new entity with the components and tags of e.
// Components holding references are deep copied with the clone function or
// codec of their type. If a copy fails no entity is created.
func CloneEntity(e Entity) (Entity, error) {
	s, n, err := e.resolve()
	if err != nil {
		return Entity{}, err
	}
	src := n.archetype
	if err := s.checkTarget(src); err != nil {
		return Entity{}, err
	}
	srcRow := int(n.row)
	row := src.reserveRow()
	// the reserved row follows srcRow, growing did not move srcRow
	for _, c := range src.columns {
		if err := c.cloneRowTo(srcRow, c, row); err != nil {
			for _, c := range src.columns {
				c.setDefault(row)
			}
			return Entity{}, eris.Wrapf(err, "clone entity %d", e.id)
		}
	}
	id := s.newID()
	node := s.ensureNode(id)
	node.archetype = src
	node.row = int32(src.commitRow(id))
	node.parent = 0
	s.count++
	clone := Entity{store: s, id: id, revision: node.revision}
	s.fireEntityCreated(clone)
	return clone, nil
}
