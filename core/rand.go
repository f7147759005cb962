package core

import (
	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// countingSource records how many raw values were pulled from the
// underlying generator.
type countingSource struct {
	src   erand.Source
	draws uint64
}

func (c *countingSource) Uint64() uint64 {
	c.draws++
	return c.src.Uint64()
}

func (c *countingSource) Seed(seed uint64) {
	c.src.Seed(seed)
}

// Rand is the single seeded generator shared by the environment and the
// agent of one experiment. It is threaded through EpisodeContext.
type Rand struct {
	src  *countingSource
	rand *erand.Rand
}

func NewRand(seed uint64) *Rand {
	src := &countingSource{src: erand.NewSource(seed)}
	return &Rand{
		src:  src,
		rand: erand.New(src),
	}
}

func (r *Rand) Float64() float64 {
	return r.rand.Float64()
}

// Intn returns a uniform integer in [0,n)
func (r *Rand) Intn(n int) int {
	return r.rand.Intn(n)
}

// Bernoulli returns true with probability p
func (r *Rand) Bernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: r.src}.Rand() == 1
}

func (r *Rand) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// Draws returns the number of raw 64-bit values consumed so far.
func (r *Rand) Draws() uint64 {
	return r.src.draws
}
