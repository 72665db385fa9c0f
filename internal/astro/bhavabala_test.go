package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astromitra/astro-ai-go/internal/models"
)

func TestBhavaBalaBaseScore(t *testing.T) {
	// Aries rising, no planets, neutral lords everywhere: every house
	// keeps its base depending only on lord dignity tier.
	houses := WholeSignHouses(models.Ascendant{Sign: 0})
	dignities := map[models.Planet]models.DignityInfo{}
	for _, p := range models.AllPlanets {
		dignities[p] = models.DignityInfo{Planet: p, Dignity: models.DignityNeutral, Tier: 1}
	}

	scores := BhavaBala(houses, nil, dignities, map[models.Planet]bool{}, nil)
	for i, s := range scores {
		assert.InDelta(t, 0.50, s, 1e-9, "house %d", i+1)
	}
}

func TestBhavaBalaStrongLordBonus(t *testing.T) {
	houses := WholeSignHouses(models.Ascendant{Sign: 0})
	dignities := map[models.Planet]models.DignityInfo{}
	for _, p := range models.AllPlanets {
		dignities[p] = models.DignityInfo{Planet: p, Dignity: models.DignityNeutral, Tier: 1}
	}
	// House 1 carries Aries, ruled by Mars. Exalt Mars.
	dignities[models.Mars] = models.DignityInfo{Planet: models.Mars, Dignity: models.DignityExalted, Tier: 5}

	scores := BhavaBala(houses, nil, dignities, map[models.Planet]bool{}, nil)
	assert.InDelta(t, 0.65, scores[0], 1e-9)
}

func TestBhavaBalaWeakOrCombustLordPenalty(t *testing.T) {
	houses := WholeSignHouses(models.Ascendant{Sign: 0})
	dignities := map[models.Planet]models.DignityInfo{}
	for _, p := range models.AllPlanets {
		dignities[p] = models.DignityInfo{Planet: p, Dignity: models.DignityNeutral, Tier: 1}
	}
	dignities[models.Mars] = models.DignityInfo{Planet: models.Mars, Dignity: models.DignityDebilitated, Tier: -1}

	scores := BhavaBala(houses, nil, dignities, map[models.Planet]bool{}, nil)
	assert.InDelta(t, 0.40, scores[0], 1e-9)

	// A combust lord is penalized even at a neutral tier.
	dignities[models.Mars] = models.DignityInfo{Planet: models.Mars, Dignity: models.DignityNeutral, Tier: 1}
	scores = BhavaBala(houses, nil, dignities, map[models.Planet]bool{models.Mars: true}, nil)
	assert.InDelta(t, 0.40, scores[0], 1e-9)
}

func TestBhavaBalaBeneficAspectBonus(t *testing.T) {
	houses := WholeSignHouses(models.Ascendant{Sign: 0})
	dignities := map[models.Planet]models.DignityInfo{}
	for _, p := range models.AllPlanets {
		dignities[p] = models.DignityInfo{Planet: p, Dignity: models.DignityNeutral, Tier: 1}
	}
	aspects := []models.Aspect{{From: models.Jupiter, To: "Mars", Type: "7th"}}

	scores := BhavaBala(houses, nil, dignities, map[models.Planet]bool{}, aspects)
	assert.InDelta(t, 0.60, scores[0], 1e-9)
}

func TestBhavaBalaMaleficOccupancyPenalty(t *testing.T) {
	houses := WholeSignHouses(models.Ascendant{Sign: 0})
	dignities := map[models.Planet]models.DignityInfo{}
	for _, p := range models.AllPlanets {
		dignities[p] = models.DignityInfo{Planet: p, Dignity: models.DignityNeutral, Tier: 1}
	}
	planetHouses := map[models.Planet]int{
		models.Saturn: 7,
		models.Rahu:   7,
		models.Mars:   7,
		models.Moon:   7, // benefic occupant does not count
	}

	scores := BhavaBala(houses, planetHouses, dignities, map[models.Planet]bool{}, nil)
	assert.InDelta(t, 0.40, scores[6], 1e-9)

	// Two malefics stay below the trigger.
	delete(planetHouses, models.Mars)
	scores = BhavaBala(houses, planetHouses, dignities, map[models.Planet]bool{}, nil)
	assert.InDelta(t, 0.50, scores[6], 1e-9)
}

func TestBhavaBalaClampedToUnitInterval(t *testing.T) {
	houses := WholeSignHouses(models.Ascendant{Sign: 0})
	dignities := map[models.Planet]models.DignityInfo{}
	for _, p := range models.AllPlanets {
		dignities[p] = models.DignityInfo{Planet: p, Dignity: models.DignityExalted, Tier: 5}
	}
	aspects := []models.Aspect{}
	for _, lord := range SignLords {
		aspects = append(aspects, models.Aspect{From: models.Jupiter, To: string(lord), Type: "7th"})
	}
	scores := BhavaBala(houses, nil, dignities, map[models.Planet]bool{}, aspects)
	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0, "house %d", i+1)
		assert.LessOrEqual(t, s, 1.0, "house %d", i+1)
	}
}
