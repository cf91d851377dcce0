package kura

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
)

// AddChild makes child a child of parent. A child has at most one parent, so
// it is detached from its previous parent first. Both entities must belong to
// s and the link must not close a cycle.
func (s *Store) AddChild(parent, child Entity) error {
	if _, err := s.node(parent); err != nil {
		return eris.Wrap(err, "parent")
	}
	cn, err := s.node(child)
	if err != nil {
		return eris.Wrap(err, "child")
	}
	if cn.parent == parent.id {
		return nil
	}
	for id := parent.id; id != 0; id = s.nodes[id].parent {
		if id == child.id {
			return eris.Wrapf(ErrCycle, "entity %d is an ancestor of %d", child.id, parent.id)
		}
	}
	s.linkChild(parent.id, child.id, cn)
	return nil
}

func (s *Store) linkChild(parentID, childID uint32, cn *entityNode) {
	if cn.parent != 0 {
		s.unlinkChild(cn.parent, childID)
	}
	if s.children == nil {
		s.children = intmap.New[uint32, []uint32](16)
	}
	children, _ := s.children.Get(parentID)
	s.children.Put(parentID, append(children, childID))
	cn.parent = parentID
}

// RemoveChild detaches child from parent. It reports false if child was not a
// child of parent.
func (s *Store) RemoveChild(parent, child Entity) (bool, error) {
	if _, err := s.node(parent); err != nil {
		return false, eris.Wrap(err, "parent")
	}
	cn, err := s.node(child)
	if err != nil {
		return false, eris.Wrap(err, "child")
	}
	if cn.parent != parent.id {
		return false, nil
	}
	s.unlinkChild(parent.id, child.id)
	cn.parent = 0
	return true, nil
}

func (s *Store) unlinkChild(parentID, childID uint32) {
	if s.children == nil {
		return
	}
	children, ok := s.children.Get(parentID)
	if !ok {
		return
	}
	children = slices.DeleteFunc(children, func(id uint32) bool { return id == childID })
	if len(children) == 0 {
		s.children.Del(parentID)
		return
	}
	s.children.Put(parentID, children)
}

// detachHierarchy unlinks a deleted entity from its parent and children.
// The children stay alive without a parent.
func (s *Store) detachHierarchy(id uint32, n *entityNode) {
	if n.parent != 0 {
		s.unlinkChild(n.parent, id)
		n.parent = 0
	}
	if s.children == nil {
		return
	}
	children, ok := s.children.Get(id)
	if !ok {
		return
	}
	for _, child := range children {
		s.nodes[child].parent = 0
	}
	s.children.Del(id)
}

// AddChild makes child a child of e.
func (e Entity) AddChild(child Entity) error {
	s, _, err := e.resolve()
	if err != nil {
		return err
	}
	return s.AddChild(e, child)
}

// RemoveChild detaches child from e.
func (e Entity) RemoveChild(child Entity) (bool, error) {
	s, _, err := e.resolve()
	if err != nil {
		return false, err
	}
	return s.RemoveChild(e, child)
}

// Parent returns the parent of e. It reports false if e has no parent or is
// null.
func (e Entity) Parent() (Entity, bool) {
	s, n, err := e.resolve()
	if err != nil || n.parent == 0 {
		return Entity{}, false
	}
	return s.entityAt(n.parent), true
}

// Children returns a copy of the children of e in the order they were added.
func (e Entity) Children() []Entity {
	s, _, err := e.resolve()
	if err != nil || s.children == nil {
		return nil
	}
	ids, _ := s.children.Get(e.id)
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = s.entityAt(id)
	}
	return out
}
