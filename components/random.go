package components

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

// RandomData is the scene's seeded source, so runs with the same seed and
// input replay identically.
type RandomData struct {
	Rand *rand.Rand
}

// Duration returns a uniform duration in [lo, hi].
func (r *RandomData) Duration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.Rand.Int63n(int64(hi-lo)+1))
}

// Spread returns a uniform value in [-limit, limit].
func (r *RandomData) Spread(limit float64) float64 {
	return (r.Rand.Float64()*2 - 1) * limit
}

var Random = donburi.NewComponentType[RandomData]()
