package astro

import (
	"github.com/astromitra/astro-ai-go/internal/models"
)

// Sarvashtakavarga sums each classical planet's bindu contribution across
// the twelve signs. A planet's 12-entry table is indexed by a sign's
// distance from the sign the planet occupies. Signs at or above the
// threshold are supportive, the rest draining.
func Sarvashtakavarga(positions map[models.Planet]models.PlanetPosition) models.SAVTable {
	table := models.SAVTable{Threshold: SAVGoodThreshold}
	for _, planet := range models.ClassicalPlanets {
		pos, ok := positions[planet]
		if !ok {
			continue
		}
		bindus := SAVBindus[planet]
		for sign := 0; sign < 12; sign++ {
			table.Values[sign] += bindus[((sign-pos.Sign)%12+12)%12]
		}
	}
	for sign := 0; sign < 12; sign++ {
		if table.Values[sign] >= table.Threshold {
			table.GoodSigns = append(table.GoodSigns, sign)
		} else {
			table.PoorSigns = append(table.PoorSigns, sign)
		}
	}
	return table
}
