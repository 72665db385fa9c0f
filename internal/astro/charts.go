package astro

import (
	"github.com/astromitra/astro-ai-go/internal/models"
)

// BuildRashiChart merges positions, houses and house assignments into the
// D1 chart. Planet rows follow the conventional planet order.
func BuildRashiChart(asc models.Ascendant, positions map[models.Planet]models.PlanetPosition, houses []models.House, planetHouses map[models.Planet]int) models.RashiChart {
	chart := models.RashiChart{
		Ascendant: asc,
		Houses:    houses,
	}
	for _, planet := range models.AllPlanets {
		pos, ok := positions[planet]
		if !ok {
			continue
		}
		nak, degInNak := nakshatraOf(pos.Longitude)
		chart.Planets = append(chart.Planets, models.PlanetEntry{
			Name:       planet,
			Sign:       pos.Sign,
			SignName:   SignName(pos.Sign),
			Degree:     pos.DegreeInSign,
			Longitude:  pos.Longitude,
			Nakshatra:  NakshatraNames[nak],
			Pada:       padaOf(degInNak),
			Retrograde: pos.Retrograde,
			House:      planetHouses[planet],
		})
	}
	return chart
}

// BuildNavamsaChart maps every placement into its ninth division. Each
// navamsa spans 3°20'; the division sign advances one sign per navamsa
// from Aries. A classical planet is marked better than D1 when its D9
// dignity tier strictly exceeds its D1 tier.
func BuildNavamsaChart(asc models.Ascendant, positions map[models.Planet]models.PlanetPosition, d1Dignities map[models.Planet]models.DignityInfo) models.NavamsaChart {
	chart := models.NavamsaChart{
		AscendantSign: navamsaSign(asc.Longitude),
		PlanetSigns:   make(map[models.Planet]int, len(positions)),
		BetterThanD1:  make(map[models.Planet]bool),
		Dignities:     make(map[models.Planet]models.Dignity, len(positions)),
	}
	for planet, pos := range positions {
		d9Sign := navamsaSign(pos.Longitude)
		chart.PlanetSigns[planet] = d9Sign
		d9Info := DignityFor(planet, d9Sign)
		chart.Dignities[planet] = d9Info.Dignity
	}
	for _, planet := range models.ClassicalPlanets {
		d1Info, ok := d1Dignities[planet]
		if !ok {
			continue
		}
		d9Tier := DignityTiers[chart.Dignities[planet]]
		chart.BetterThanD1[planet] = d9Tier > d1Info.Tier
	}
	return chart
}
