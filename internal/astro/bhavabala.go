package astro

import (
	"github.com/astromitra/astro-ai-go/internal/models"
)

// BhavaBala scores each house in [0, 1] from a fixed base adjusted by the
// condition of the house lord and the house's occupants. The adjustments
// are additive and the clamp is applied once at the end.
func BhavaBala(
	houses []models.House,
	planetHouses map[models.Planet]int,
	dignities map[models.Planet]models.DignityInfo,
	combustion map[models.Planet]bool,
	aspects []models.Aspect,
) [12]float64 {
	occupants := make(map[int][]models.Planet)
	for planet, house := range planetHouses {
		occupants[house] = append(occupants[house], planet)
	}

	var scores [12]float64
	for i, h := range houses {
		score := 0.50
		lord := SignLords[h.Sign]
		lordDignity, haveLord := dignities[lord]
		lordCombust := combustion[lord]

		if haveLord {
			if lordDignity.Tier >= DignityTiers[models.DignityFriend] && !lordCombust {
				score += 0.15
			}
			if lordDignity.Tier <= DignityTiers[models.DignityEnemy] || lordCombust {
				score -= 0.10
			}
		}

		if HasAspect(aspects, models.Jupiter, lord) || HasAspect(aspects, models.Venus, lord) {
			score += 0.10
		}

		maleficCount := 0
		for _, occ := range occupants[h.Number] {
			if isMalefic(occ) {
				maleficCount++
			}
		}
		if maleficCount >= 3 {
			score -= 0.10
		}

		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		scores[i] = score
	}
	return scores
}

func isMalefic(p models.Planet) bool {
	for _, m := range Malefics {
		if m == p {
			return true
		}
	}
	return false
}
