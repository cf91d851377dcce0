// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	schema := kura.NewSchema()
	kura.RegisterComponent[comp1](schema)
	kura.RegisterComponent[comp2](schema)
	kura.RegisterComponent[comp3](schema)
	kura.RegisterComponent[comp4](schema)
	kura.RegisterComponent[comp5](schema)
	kura.RegisterComponent[comp6](schema)

	for range rounds {
		s := kura.NewStore(schema)
		query, err := kura.NewQuery6[comp1, comp2, comp3, comp4, comp5, comp6](s)
		if err != nil {
			panic(err)
		}
		builder, err := kura.NewBuilder6[comp1, comp2, comp3, comp4, comp5, comp6](s)
		if err != nil {
			panic(err)
		}
		builder.NewEntities(numEntities)

		for range iters {
			for c := range query.Chunks() {
				for i := range c.Len() {
					c.C1[i].V += c.C2[i].V
					c.C1[i].W += c.C2[i].W
				}
			}
		}
	}
}
