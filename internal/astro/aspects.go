package astro

import (
	"fmt"
	"math"
	"sort"

	"github.com/astromitra/astro-ai-go/internal/models"
)

// AspectEngine evaluates the directed special-aspect scheme: every planet
// casts the 7th, and Mars, Jupiter and Saturn add their extra harmonics.
// An aspect holds when the forward angular distance from caster to target
// is within the caster's orb of the harmonic's exact angle.
type AspectEngine struct{}

// NewAspectEngine creates an aspect engine.
func NewAspectEngine() *AspectEngine {
	return &AspectEngine{}
}

// Evaluate returns every aspect each planet casts onto the other planets
// and onto the twelve houses. Aspects are directed; A aspecting B says
// nothing about B aspecting A, and both directions are reported when both
// hold. Output order is deterministic.
func (e *AspectEngine) Evaluate(positions map[models.Planet]models.PlanetPosition, houses []models.House) []models.Aspect {
	var aspects []models.Aspect

	for _, from := range models.AllPlanets {
		fromPos, ok := positions[from]
		if !ok {
			continue
		}
		for _, to := range models.AllPlanets {
			if to == from {
				continue
			}
			toPos, ok := positions[to]
			if !ok {
				continue
			}
			if a, hit := e.evaluatePair(from, fromPos.Longitude, string(to), toPos.Longitude); hit {
				aspects = append(aspects, a)
			}
		}
		for _, h := range houses {
			target := fmt.Sprintf("house_%d", h.Number)
			if a, hit := e.evaluatePair(from, fromPos.Longitude, target, HouseLongitude(h)); hit {
				aspects = append(aspects, a)
			}
		}
	}

	sort.SliceStable(aspects, func(i, j int) bool {
		if aspects[i].From != aspects[j].From {
			return planetOrder(aspects[i].From) < planetOrder(aspects[j].From)
		}
		if aspects[i].To != aspects[j].To {
			return aspects[i].To < aspects[j].To
		}
		return aspects[i].Type < aspects[j].Type
	})
	return aspects
}

// evaluatePair checks a single caster-target pair against every harmonic
// the caster owns and returns the tightest hit.
func (e *AspectEngine) evaluatePair(from models.Planet, fromLon float64, to string, toLon float64) (models.Aspect, bool) {
	maxOrb := AspectOrbs[from]
	diff := forwardDistance(fromLon, toLon)

	best := models.Aspect{OrbDegrees: math.MaxFloat64}
	found := false
	for _, harmonic := range AspectHarmonics[from] {
		expected := float64(harmonic-1) * SignSpan
		orb := math.Abs(diff - expected)
		if orb > 180 {
			orb = 360 - orb
		}
		if orb > maxOrb {
			continue
		}
		if orb < best.OrbDegrees {
			strength := 1 - orb/maxOrb
			if strength < 0 {
				strength = 0
			}
			best = models.Aspect{
				From:       from,
				To:         to,
				Type:       aspectName(harmonic),
				OrbDegrees: orb,
				Strength:   strength,
			}
			found = true
		}
	}
	return best, found
}

// aspectName renders a harmonic as its house ordinal ("3rd", "7th").
func aspectName(harmonic int) string {
	switch harmonic {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", harmonic)
}

func planetOrder(p models.Planet) int {
	for i, q := range models.AllPlanets {
		if q == p {
			return i
		}
	}
	return len(models.AllPlanets)
}

// HasAspect reports whether the list contains an aspect from one planet to
// another.
func HasAspect(aspects []models.Aspect, from, to models.Planet) bool {
	target := string(to)
	for _, a := range aspects {
		if a.From == from && a.To == target {
			return true
		}
	}
	return false
}
