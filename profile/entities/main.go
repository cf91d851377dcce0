// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/kura"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type marked struct{}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	schema := kura.NewSchema()
	kura.RegisterComponent[comp1](schema)
	kura.RegisterComponent[comp2](schema)
	kura.RegisterTag[marked](schema)

	for range rounds {
		s := kura.NewStore(schema, kura.WithConfig(kura.Config{
			ShrinkRatio:           kura.DefaultShrinkRatio,
			MinArchetypeCapacity:  kura.DefaultMinArchetypeCapacity,
			InitialEntityCapacity: numEntities,
			RecycleIDs:            true,
		}))
		query, err := kura.NewQuery2[comp1, comp2](s)
		if err != nil {
			panic(err)
		}
		builder, err := kura.NewBuilder2[comp1, comp2](s)
		if err != nil {
			panic(err)
		}
		cb := s.NewCommandBuffer()

		for range iters {
			builder.NewEntities(numEntities)
			for c := range query.Chunks() {
				for i := range c.Len() {
					c.C1[i].V += c.C2[i].V
					c.C1[i].W += c.C2[i].W
					if i%2 == 0 {
						_ = kura.QueueAddTag[marked](cb, c.Entity(i).ID())
					}
					cb.DeleteEntity(c.Entity(i).ID())
				}
			}
			if err := cb.Playback(); err != nil {
				panic(err)
			}
		}
	}
}
