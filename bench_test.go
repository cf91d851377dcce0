package kura_test

import (
	"fmt"
	"testing"

	"github.com/edwinsyarief/kura"
)

var benchSizes = []int{1000, 10000, 100000}

func sizeName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

// Entity Creation Benchmarks
func BenchmarkCreateEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				s, _ := setupStore(b)
				b.StartTimer()
				for range size {
					s.CreateEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkBuilderNewEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				s, _ := setupStore(b)
				builder, _ := kura.NewBuilder2[Position, Velocity](s)
				b.StartTimer()
				builder.NewEntitiesWith(size, Position{}, Velocity{VX: 1})
			}
			b.ReportAllocs()
		})
	}
}

// Structural Change Benchmarks
func BenchmarkAddRemoveComponent(b *testing.B) {
	s, _ := setupStore(b)
	builder, _ := kura.NewBuilder[Position](s)
	entities := builder.NewEntities(1000)
	for b.Loop() {
		for _, e := range entities {
			_, _ = kura.AddComponent(e, Velocity{VX: 1})
		}
		for _, e := range entities {
			_, _ = kura.RemoveComponent[Velocity](e)
		}
	}
	b.ReportAllocs()
}

func BenchmarkAddRemoveTag(b *testing.B) {
	s, _ := setupStore(b)
	builder, _ := kura.NewBuilder[Position](s)
	entities := builder.NewEntities(1000)
	for b.Loop() {
		for _, e := range entities {
			_, _ = kura.AddTag[Enemy](e)
		}
		for _, e := range entities {
			_, _ = kura.RemoveTag[Enemy](e)
		}
	}
	b.ReportAllocs()
}

func BenchmarkCommandBufferPlayback(b *testing.B) {
	s, _ := setupStore(b)
	builder, _ := kura.NewBuilder[Position](s)
	entities := builder.NewEntities(1000)
	cb := s.NewCommandBuffer()
	for b.Loop() {
		for _, e := range entities {
			_ = kura.QueueAddTag[Enemy](cb, e.ID())
			_ = kura.QueueAddComponent(cb, e.ID(), Health{Current: 1})
		}
		_ = cb.Playback()
		for _, e := range entities {
			_ = kura.QueueRemoveTag[Enemy](cb, e.ID())
			_ = kura.QueueRemoveComponent[Health](cb, e.ID())
		}
		_ = cb.Playback()
	}
	b.ReportAllocs()
}

// Query Benchmarks
func BenchmarkQuery2Chunks(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			s, _ := setupStore(b)
			builder, _ := kura.NewBuilder2[Position, Velocity](s)
			builder.NewEntitiesWith(size, Position{}, Velocity{VX: 1, VY: 1})
			q, _ := kura.NewQuery2[Position, Velocity](s)
			for b.Loop() {
				for c := range q.Chunks() {
					for i := range c.C1 {
						c.C1[i].X += c.C2[i].VX
						c.C1[i].Y += c.C2[i].VY
					}
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkQueryEntities(b *testing.B) {
	s, types := setupStore(b)
	builder, _ := kura.NewBuilder[Position](s)
	builder.NewEntities(10000)
	q := s.Query(kura.NewQueryFilter().RequireAll(kura.NewComponentSet(types.position)))
	for b.Loop() {
		n := 0
		for range q.Entities() {
			n++
		}
	}
	b.ReportAllocs()
}

// Event Benchmarks
func BenchmarkComponentEvents(b *testing.B) {
	s, _ := setupStore(b)
	builder, _ := kura.NewBuilder[Health](s)
	entities := builder.NewEntities(1000)
	total := 0
	s.OnComponentChanged(func(ev kura.ComponentChanged) {
		if old, ok := kura.OldComponent[Health](ev); ok {
			total += old.Current
		}
	})
	for b.Loop() {
		for _, e := range entities {
			_ = kura.SetComponent(e, Health{Current: 1})
		}
	}
	b.ReportAllocs()
}
