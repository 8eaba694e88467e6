package pool

import (
	"math/rand"
	"slices"
	"strings"
)

type FilterOptions struct {
	Pools     []string `json:"pools"`
	Parties   []string `json:"parties"`
	FreeWords string   `json:"free_words"`
}

func Filter(people []Person, opt FilterOptions) []Person {
	var out []Person
	for _, p := range people {
		if len(opt.Pools) > 0 && !slices.Contains(opt.Pools, p.Pool) {
			continue
		}
		if len(opt.Parties) > 0 && !slices.Contains(opt.Parties, p.Party) {
			continue
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(p.Name), k) &&
					!strings.Contains(strings.ToLower(p.Party), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Pick draws n people from the pool named kind. The vip pool is small, so it
// contributes all its members and the rest is drawn from everyone else.
func Pick(people []Person, kind string, n int, rng *rand.Rand) []Person {
	if n <= 0 {
		return nil
	}

	if kind == VIP {
		picked := Filter(people, FilterOptions{Pools: []string{VIP}})
		if len(picked) >= n {
			return picked[:n]
		}
		var others []Person
		for _, p := range people {
			if p.Pool != VIP {
				others = append(others, p)
			}
		}
		return append(picked, shuffled(others, rng)[:min(n-len(picked), len(others))]...)
	}

	pool := Filter(people, FilterOptions{Pools: []string{kind}})
	return shuffled(pool, rng)[:min(n, len(pool))]
}

func shuffled(people []Person, rng *rand.Rand) []Person {
	out := slices.Clone(people)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
