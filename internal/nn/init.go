package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer fills a freshly allocated parameter buffer.
type Initializer func(data []float64)

// Constant fills every element with value.
func Constant(value float64) Initializer {
	return func(data []float64) {
		for i := range data {
			data[i] = value
		}
	}
}

// Normal draws every element from N(mean, std²) using src.
// A nil src uses the global math/rand/v2 source.
func Normal(mean, std float64, src rand.Source) Initializer {
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: src}
	return func(data []float64) {
		for i := range data {
			data[i] = dist.Rand()
		}
	}
}
