package astro

import (
	"github.com/astromitra/astro-ai-go/internal/models"
)

// WholeSignHouses builds the twelve houses from the ascendant. House N
// carries the Nth sign counted from the rising sign. Cusp degrees are zero
// everywhere except house 1, which carries the ascendant's degree in sign.
func WholeSignHouses(asc models.Ascendant) []models.House {
	houses := make([]models.House, 12)
	for i := 0; i < 12; i++ {
		houses[i] = models.House{
			Number: i + 1,
			Sign:   (asc.Sign + i) % 12,
		}
	}
	houses[0].CuspDegree = asc.DegreeInSign
	return houses
}

// AssignHouses places each planet into the house whose sign matches the
// planet's sign. WholeSign houses partition the zodiac, so exactly one
// house matches.
func AssignHouses(positions map[models.Planet]models.PlanetPosition, houses []models.House) map[models.Planet]int {
	bySign := make(map[int]int, len(houses))
	for _, h := range houses {
		if _, seen := bySign[h.Sign]; !seen {
			bySign[h.Sign] = h.Number
		}
	}
	assigned := make(map[models.Planet]int, len(positions))
	for planet, pos := range positions {
		assigned[planet] = bySign[pos.Sign]
	}
	return assigned
}

// CuspHouses builds houses from ephemeris-supplied sidereal cusps. The
// quadrant and equal systems use this; house N starts at cusp N.
func CuspHouses(cusps [12]float64) []models.House {
	houses := make([]models.House, 12)
	for i, c := range cusps {
		houses[i] = models.House{
			Number:     i + 1,
			Sign:       signOf(c),
			CuspDegree: degreeInSign(c),
		}
	}
	return houses
}

// AssignHousesByCusp places each planet into the house whose cusp interval
// contains its longitude, measuring forward from each cusp to the next.
func AssignHousesByCusp(positions map[models.Planet]models.PlanetPosition, cusps [12]float64) map[models.Planet]int {
	assigned := make(map[models.Planet]int, len(positions))
	for planet, pos := range positions {
		for i := range cusps {
			next := cusps[(i+1)%12]
			if forwardDistance(cusps[i], pos.Longitude) < forwardDistance(cusps[i], next) {
				assigned[planet] = i + 1
				break
			}
		}
	}
	return assigned
}

// HouseLongitude returns reference longitude of a house for aspect
// evaluation: the start of the house's sign plus its cusp degree.
func HouseLongitude(h models.House) float64 {
	return normalizeDegrees(float64(h.Sign)*SignSpan + h.CuspDegree)
}
