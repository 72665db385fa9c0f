package astro

import (
	"fmt"
	"math"

	"github.com/astromitra/astro-ai-go/internal/models"
)

// YogaContext is the chart material the yoga detectors read. Detectors are
// pure and independent: each reads the context and emits one verdict.
type YogaContext struct {
	Positions    map[models.Planet]models.PlanetPosition
	Houses       []models.House
	PlanetHouses map[models.Planet]int
	Dignities    map[models.Planet]models.DignityInfo
	Aspects      []models.Aspect
}

// mahapurushaNames maps each candidate planet to its Pancha Mahapurusha
// yoga name.
var mahapurushaNames = []struct {
	planet models.Planet
	name   string
}{
	{models.Mars, "Ruchaka"},
	{models.Mercury, "Bhadra"},
	{models.Jupiter, "Hamsa"},
	{models.Venus, "Malavya"},
	{models.Saturn, "Shasha"},
}

// DetectYogas runs every detector against the chart and returns verdicts
// in a fixed order.
func DetectYogas(ctx YogaContext) []models.YogaResult {
	results := []models.YogaResult{
		detectGajaKesari(ctx),
	}
	for _, mp := range mahapurushaNames {
		results = append(results, detectMahapurusha(ctx, mp.planet, mp.name))
	}
	results = append(results,
		detectLordPair(ctx, "Raj Yoga", 9, 10),
		detectLordPair(ctx, "Dhana Yoga", 2, 11),
		detectViparitaRaja(ctx),
		detectNeechaBhanga(ctx),
		detectManglikStrict(ctx),
		detectManglikLenient(ctx),
		detectKalSarpaStrict(ctx),
		detectKalSarpaLoose(ctx),
		detectKemadruma(ctx),
	)
	return results
}

// detectGajaKesari checks whether Jupiter stands in a kendra from the
// Moon: the Jupiter-Moon separation sits within 8 degrees of 120, 180 or
// 240.
func detectGajaKesari(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Gaja Kesari"}
	moon, okM := ctx.Positions[models.Moon]
	jup, okJ := ctx.Positions[models.Jupiter]
	if !okM || !okJ {
		res.Reason = "Moon or Jupiter position unavailable"
		return res
	}
	diff := forwardDistance(moon.Longitude, jup.Longitude)
	for _, center := range []float64{120, 180, 240} {
		if math.Abs(diff-center) <= 8 {
			res.Present = true
			res.Reason = fmt.Sprintf("Jupiter %.1f deg from Moon, within 8 deg of %.0f", diff, center)
			return res
		}
	}
	res.Reason = fmt.Sprintf("Jupiter %.1f deg from Moon, outside all kendra bands", diff)
	return res
}

// detectMahapurusha checks one Pancha Mahapurusha candidate: the planet in
// its own or exaltation sign while occupying a kendra from the lagna.
func detectMahapurusha(ctx YogaContext, planet models.Planet, name string) models.YogaResult {
	res := models.YogaResult{Name: name}
	info, ok := ctx.Dignities[planet]
	if !ok {
		res.Reason = fmt.Sprintf("%s dignity unavailable", planet)
		return res
	}
	house := ctx.PlanetHouses[planet]
	strong := info.Dignity == models.DignityOwn || info.Dignity == models.DignityExalted
	if strong && inHouses(house, KendraHouses) {
		res.Present = true
		res.Reason = fmt.Sprintf("%s %s in kendra house %d", planet, info.Dignity, house)
	} else {
		res.Reason = fmt.Sprintf("%s %s in house %d", planet, info.Dignity, house)
	}
	return res
}

// detectLordPair checks whether the lords of two houses combine: the same
// planet rules both, the two lords conjoin within 8 degrees, or either
// lord aspects the other.
func detectLordPair(ctx YogaContext, name string, houseA, houseB int) models.YogaResult {
	res := models.YogaResult{Name: name}
	lordA := houseLord(ctx.Houses, houseA)
	lordB := houseLord(ctx.Houses, houseB)

	if lordA == lordB {
		res.Present = true
		res.Reason = fmt.Sprintf("%s rules both house %d and house %d", lordA, houseA, houseB)
		return res
	}
	posA, okA := ctx.Positions[lordA]
	posB, okB := ctx.Positions[lordB]
	if okA && okB && angularSeparation(posA.Longitude, posB.Longitude) <= 8 {
		res.Present = true
		res.Reason = fmt.Sprintf("lords %s and %s conjunct within 8 deg", lordA, lordB)
		return res
	}
	if HasAspect(ctx.Aspects, lordA, lordB) || HasAspect(ctx.Aspects, lordB, lordA) {
		res.Present = true
		res.Reason = fmt.Sprintf("lords %s and %s in mutual contact by aspect", lordA, lordB)
		return res
	}
	res.Reason = fmt.Sprintf("lords %s and %s unconnected", lordA, lordB)
	return res
}

// detectViparitaRaja checks for any dusthana lord placed in a dusthana.
func detectViparitaRaja(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Viparita Raja Yoga"}
	for _, dusthana := range DusthanaHouses {
		lord := houseLord(ctx.Houses, dusthana)
		house := ctx.PlanetHouses[lord]
		if inHouses(house, DusthanaHouses) {
			res.Present = true
			res.Reason = fmt.Sprintf("%s, lord of house %d, occupies dusthana house %d", lord, dusthana, house)
			return res
		}
	}
	res.Reason = "no dusthana lord occupies a dusthana"
	return res
}

// detectNeechaBhanga checks whether any debilitated planet is aspected by
// the lord of the sign it occupies, cancelling the debilitation.
func detectNeechaBhanga(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Neecha Bhanga"}
	for _, planet := range models.ClassicalPlanets {
		info, ok := ctx.Dignities[planet]
		if !ok || info.Dignity != models.DignityDebilitated {
			continue
		}
		lord := SignLords[info.Sign]
		if HasAspect(ctx.Aspects, lord, planet) {
			res.Present = true
			res.Reason = fmt.Sprintf("debilitated %s aspected by %s, lord of %s", planet, lord, SignName(info.Sign))
			return res
		}
	}
	res.Reason = "no debilitated planet receives its sign lord's aspect"
	return res
}

func detectManglikStrict(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Manglik (strict)"}
	house := ctx.PlanetHouses[models.Mars]
	if inHouses(house, ManglikHouses) {
		res.Present = true
		res.Reason = fmt.Sprintf("Mars in house %d from lagna", house)
	} else {
		res.Reason = fmt.Sprintf("Mars in house %d from lagna", house)
	}
	return res
}

func detectManglikLenient(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Manglik (lenient)"}
	mars, okMars := ctx.Positions[models.Mars]
	moon, okMoon := ctx.Positions[models.Moon]
	if !okMars || !okMoon {
		res.Reason = "Mars or Moon position unavailable"
		return res
	}
	house := houseFromSign(mars.Sign, moon.Sign)
	res.Present = inHouses(house, ManglikHouses)
	res.Reason = fmt.Sprintf("Mars in house %d from the Moon", house)
	return res
}

// detectKalSarpaStrict checks whether all seven classical planets fall on
// one side of the exact Rahu-Ketu axis.
func detectKalSarpaStrict(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Kal Sarpa (strict)"}
	rahu, ok := ctx.Positions[models.Rahu]
	if !ok {
		res.Reason = "Rahu position unavailable"
		return res
	}
	allAhead := true
	allBehind := true
	for _, planet := range models.ClassicalPlanets {
		pos, ok := ctx.Positions[planet]
		if !ok {
			res.Reason = fmt.Sprintf("%s position unavailable", planet)
			return res
		}
		d := forwardDistance(rahu.Longitude, pos.Longitude)
		if d >= 180 {
			allAhead = false
		}
		if d <= 180 {
			allBehind = false
		}
	}
	if allAhead || allBehind {
		res.Present = true
		res.Reason = "all seven planets on one side of the node axis"
	} else {
		res.Reason = "planets straddle the node axis"
	}
	return res
}

// detectKalSarpaLoose checks whether all seven classical planets fit
// within some 180 degree arc, regardless of where the nodes sit.
func detectKalSarpaLoose(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Kal Sarpa (loose)"}
	longitudes := make([]float64, 0, len(models.ClassicalPlanets))
	for _, planet := range models.ClassicalPlanets {
		pos, ok := ctx.Positions[planet]
		if !ok {
			res.Reason = fmt.Sprintf("%s position unavailable", planet)
			return res
		}
		longitudes = append(longitudes, pos.Longitude)
	}
	// The seven fit in a half-circle iff some planet has every other
	// planet within 180 degrees ahead of it.
	for _, anchor := range longitudes {
		fits := true
		for _, l := range longitudes {
			if forwardDistance(anchor, l) > 180 {
				fits = false
				break
			}
		}
		if fits {
			res.Present = true
			res.Reason = "all seven planets within a half-circle"
			return res
		}
	}
	res.Reason = "planets spread beyond a half-circle"
	return res
}

// detectKemadruma checks for an unsupported Moon: no planet other than the
// Sun and the nodes in the 2nd or 12th house from the Moon.
func detectKemadruma(ctx YogaContext) models.YogaResult {
	res := models.YogaResult{Name: "Kemadruma"}
	moonHouse, ok := ctx.PlanetHouses[models.Moon]
	if !ok {
		res.Reason = "Moon house unavailable"
		return res
	}
	second := moonHouse%12 + 1
	twelfth := (moonHouse+10)%12 + 1
	for _, planet := range models.ClassicalPlanets {
		if planet == models.Sun || planet == models.Moon {
			continue
		}
		house := ctx.PlanetHouses[planet]
		if house == second || house == twelfth {
			res.Reason = fmt.Sprintf("%s flanks the Moon in house %d", planet, house)
			return res
		}
	}
	res.Present = true
	res.Reason = "no planet flanks the Moon"
	return res
}

// houseLord returns the ruler of the sign a house carries.
func houseLord(houses []models.House, number int) models.Planet {
	for _, h := range houses {
		if h.Number == number {
			return SignLords[h.Sign]
		}
	}
	return SignLords[(number-1)%12]
}

func inHouses(house int, group []int) bool {
	for _, h := range group {
		if h == house {
			return true
		}
	}
	return false
}
