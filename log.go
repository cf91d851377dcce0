package kura

import "github.com/rs/zerolog"

// Logger writes store diagnostics through zerolog.
type Logger struct {
	*zerolog.Logger
}

// Logger returns a Logger over the store's logger.
func (s *Store) Logger() Logger {
	return Logger{&s.logger}
}

func componentsArray(schema *Schema, set ComponentSet) *zerolog.Array {
	arr := zerolog.Arr()
	set.Each(func(t ComponentType) {
		arr.Dict(zerolog.Dict().
			Int("component_id", int(t)).
			Str("component_name", schema.componentName(t)))
	})
	return arr
}

func tagsArray(schema *Schema, set TagSet) *zerolog.Array {
	arr := zerolog.Arr()
	set.Each(func(t TagType) {
		arr.Str(schema.tagName(t))
	})
	return arr
}

// LogStore logs the entity count and every archetype of s.
func (l Logger) LogStore(s *Store, level zerolog.Level) {
	arr := zerolog.Arr()
	for _, a := range s.archetypes {
		arr.Dict(zerolog.Dict().
			Int("archetype_id", a.index).
			Array("components", componentsArray(s.schema, a.key.components)).
			Array("tags", tagsArray(s.schema, a.key.tags)).
			Int("count", a.count).
			Int("capacity", a.capacity))
	}
	l.WithLevel(level).
		Int("total_entities", s.count).
		Int("total_archetypes", len(s.archetypes)).
		Array("archetypes", arr).
		Send()
}

// LogEntity logs the archetype, row, components and tags of e.
func (l Logger) LogEntity(e Entity, level zerolog.Level) {
	_, n, err := e.resolve()
	if err != nil {
		l.Err(err).Uint32("entity_id", e.id).Msg("cannot log entity")
		return
	}
	schema := n.archetype.store.schema
	l.WithLevel(level).
		Uint32("entity_id", e.id).
		Uint16("revision", e.revision).
		Int("archetype_id", n.archetype.index).
		Int32("row", n.row).
		Array("components", componentsArray(schema, n.archetype.key.components)).
		Array("tags", tagsArray(schema, n.archetype.key.tags)).
		Send()
}
