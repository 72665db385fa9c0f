package astro

import (
	"github.com/astromitra/astro-ai-go/internal/models"
)

// DignityFor evaluates a planet's dignity in a sign. The checks run in
// strict priority order: exaltation, debilitation, mooltrikona, own sign,
// then the natural relationship with the sign's lord. Rahu and Ketu carry
// no dignity tables and are always Neutral.
func DignityFor(planet models.Planet, sign int) models.DignityInfo {
	info := models.DignityInfo{
		Planet:   planet,
		Sign:     sign,
		SignName: SignName(sign),
	}

	if planet == models.Rahu || planet == models.Ketu {
		info.Dignity = models.DignityNeutral
		info.Tier = DignityTiers[models.DignityNeutral]
		return info
	}

	info.Dignity = classify(planet, sign)
	info.Tier = DignityTiers[info.Dignity]
	return info
}

func classify(planet models.Planet, sign int) models.Dignity {
	if ExaltationSigns[planet] == sign {
		return models.DignityExalted
	}
	if DebilitationSigns[planet] == sign {
		return models.DignityDebilitated
	}
	if MooltrikonaSigns[planet] == sign {
		return models.DignityMooltrikona
	}
	for _, s := range OwnSigns[planet] {
		if s == sign {
			return models.DignityOwn
		}
	}
	return relationWith(planet, SignLords[sign])
}

// relationWith resolves the natural relationship between a planet and the
// lord of the sign it occupies.
func relationWith(planet, lord models.Planet) models.Dignity {
	rel, ok := Friendships[planet]
	if !ok {
		return models.DignityNeutral
	}
	for _, f := range rel.Friends {
		if f == lord {
			return models.DignityFriend
		}
	}
	for _, e := range rel.Enemies {
		if e == lord {
			return models.DignityEnemy
		}
	}
	return models.DignityNeutral
}

// Combustion reports which planets sit within their combustion orb of the
// Sun. The Sun itself and the nodes never combust. Separation is the
// shorter arc.
func Combustion(positions map[models.Planet]models.PlanetPosition) map[models.Planet]bool {
	out := make(map[models.Planet]bool, len(positions))
	sun, haveSun := positions[models.Sun]
	for planet := range positions {
		out[planet] = false
	}
	if !haveSun {
		return out
	}
	for planet, pos := range positions {
		orb, combustible := CombustionOrbs[planet]
		if !combustible {
			continue
		}
		if angularSeparation(pos.Longitude, sun.Longitude) <= orb {
			out[planet] = true
		}
	}
	return out
}

// Dignities evaluates every planet in the given position set.
func Dignities(positions map[models.Planet]models.PlanetPosition) map[models.Planet]models.DignityInfo {
	out := make(map[models.Planet]models.DignityInfo, len(positions))
	for planet, pos := range positions {
		out[planet] = DignityFor(planet, pos.Sign)
	}
	return out
}
