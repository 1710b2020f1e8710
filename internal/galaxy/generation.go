// Package galaxy generates star fields: seeded random placement inside a
// disc with minimum spacing, natural resources from layered simplex noise.
package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/paulmach/orb"

	"github.com/starfront-game/starfront/internal/game"
)

// GenConfig holds star-field generation parameters.
type GenConfig struct {
	StarCount  int     // Total stars in the field
	Seed       int64   // Random seed (0 = random)
	Radius     float64 // Disc radius in distance units
	MinSpacing float64 // Minimum distance between any two stars
}

// DefaultGenConfig returns a field sized for a default four-player game.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		StarCount:  48,
		Seed:       0,
		Radius:     500,
		MinSpacing: 30,
	}
}

// SmallTestConfig returns a tiny field for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		StarCount:  12,
		Seed:       42,
		Radius:     200,
		MinSpacing: 20,
	}
}

var starPrefixes = []string{
	"Altair", "Borealis", "Cygnus", "Deneb", "Electra", "Fomalhaut",
	"Gacrux", "Hadar", "Izar", "Kestrel", "Lyra", "Mira",
	"Naos", "Orion", "Polaris", "Rigel", "Sirius", "Talitha",
	"Umbra", "Vega", "Wezen", "Xamidimura", "Yildun", "Zosma",
}

// Generate creates a star field. Placement is rejection-sampled against
// MinSpacing with a bounded attempt budget, so pathological configs yield
// fewer stars rather than hanging.
func Generate(cfg GenConfig) []*game.Star {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	// Two independent noise layers: resource richness and a fine-grained
	// variation layer, mirroring multi-octave terrain sampling.
	richness := opensimplex.NewNormalized(seed)
	variation := opensimplex.NewNormalized(seed + 1)

	stars := make([]*game.Star, 0, cfg.StarCount)
	maxAttempts := cfg.StarCount * 20

	for attempts := 0; len(stars) < cfg.StarCount && attempts < maxAttempts; attempts++ {
		// Uniform placement in the disc via sqrt-radius sampling.
		angle := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(rng.Float64()) * cfg.Radius
		loc := orb.Point{r * math.Cos(angle), r * math.Sin(angle)}

		tooClose := false
		for _, s := range stars {
			if game.Distance(loc, s.Location) < cfg.MinSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		// Resources in the 10–90 band: coarse richness plus fine variation.
		nx, ny := loc.X()/cfg.Radius, loc.Y()/cfg.Radius
		res := richness.Eval2(nx*1.5, ny*1.5)*0.7 + variation.Eval2(nx*6, ny*6)*0.3
		resources := 10 + res*80

		idx := len(stars)
		stars = append(stars, &game.Star{
			ID:               uuid.New(),
			Name:             starName(idx),
			Location:         loc,
			NaturalResources: resources,
		})
	}

	return stars
}

// starName cycles a prefix list with a numeric suffix past the first lap.
func starName(idx int) string {
	prefix := starPrefixes[idx%len(starPrefixes)]
	lap := idx / len(starPrefixes)
	if lap == 0 {
		return prefix
	}
	return fmt.Sprintf("%s %s", prefix, roman(lap+1))
}

func roman(n int) string {
	numerals := []struct {
		value  int
		symbol string
	}{
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	out := ""
	for _, num := range numerals {
		for n >= num.value {
			out += num.symbol
			n -= num.value
		}
	}
	return out
}
