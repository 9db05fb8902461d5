package library

import (
	"math/rand/v2"
	"time"
)

// Provider supplies excerpts for discovery.
type Provider interface {
	PickRandom() Template
}

// NewProvider returns a Provider drawing uniformly from the corpus. Draws are
// independent, so repeats are possible. A nil src seeds from the clock.
func NewProvider(src rand.Source) Provider {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>17|1)
	}
	return &randomProvider{r: rand.New(src), templates: Corpus()}
}

type randomProvider struct {
	r         *rand.Rand
	templates []Template
}

func (p *randomProvider) PickRandom() Template {
	return p.templates[p.r.IntN(len(p.templates))]
}
