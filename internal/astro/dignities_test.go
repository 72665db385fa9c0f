package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astromitra/astro-ai-go/internal/models"
)

func TestDignityPriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		planet  models.Planet
		sign    int
		dignity models.Dignity
	}{
		{"sun exalted in aries", models.Sun, 0, models.DignityExalted},
		{"sun debilitated in libra", models.Sun, 6, models.DignityDebilitated},
		{"sun mooltrikona beats own in leo", models.Sun, 4, models.DignityMooltrikona},
		{"moon exalted in taurus", models.Moon, 1, models.DignityExalted},
		{"moon own in cancer", models.Moon, 3, models.DignityOwn},
		{"mars exalted in capricorn", models.Mars, 9, models.DignityExalted},
		{"mars own in scorpio", models.Mars, 7, models.DignityOwn},
		{"mercury exalted wins over mooltrikona and own in virgo", models.Mercury, 5, models.DignityExalted},
		{"jupiter own in pisces", models.Jupiter, 11, models.DignityOwn},
		{"venus exalted in pisces", models.Venus, 11, models.DignityExalted},
		{"saturn exalted in libra", models.Saturn, 6, models.DignityExalted},
		{"saturn debilitated in aries", models.Saturn, 0, models.DignityDebilitated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DignityFor(tt.planet, tt.sign)
			assert.Equal(t, tt.dignity, info.Dignity)
			assert.Equal(t, DignityTiers[tt.dignity], info.Tier)
		})
	}
}

func TestDignityFriendshipFallback(t *testing.T) {
	tests := []struct {
		name    string
		planet  models.Planet
		sign    int
		dignity models.Dignity
	}{
		// Gemini's lord Mercury is Mars's enemy.
		{"mars in gemini enemy", models.Mars, 2, models.DignityEnemy},
		// Sagittarius's lord Jupiter is the Sun's friend.
		{"sun in sagittarius friend", models.Sun, 8, models.DignityFriend},
		// Capricorn's lord Saturn is neutral toward the Moon.
		{"moon in capricorn neutral", models.Moon, 9, models.DignityNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dignity, DignityFor(tt.planet, tt.sign).Dignity)
		})
	}
}

func TestNodesAlwaysNeutral(t *testing.T) {
	for sign := 0; sign < 12; sign++ {
		assert.Equal(t, models.DignityNeutral, DignityFor(models.Rahu, sign).Dignity)
		assert.Equal(t, models.DignityNeutral, DignityFor(models.Ketu, sign).Dignity)
	}
}

func TestCombustion(t *testing.T) {
	positions := map[models.Planet]models.PlanetPosition{
		models.Sun:     {Planet: models.Sun, Longitude: 100},
		models.Mercury: {Planet: models.Mercury, Longitude: 111.9}, // 11.9 deg, inside 12
		models.Venus:   {Planet: models.Venus, Longitude: 111},     // 11 deg, outside 10
		models.Moon:    {Planet: models.Moon, Longitude: 88},       // 12 deg, at the orb
		models.Rahu:    {Planet: models.Rahu, Longitude: 100},      // nodes never combust
		models.Saturn:  {Planet: models.Saturn, Longitude: 290},
	}

	combust := Combustion(positions)
	assert.True(t, combust[models.Mercury])
	assert.False(t, combust[models.Venus])
	assert.True(t, combust[models.Moon], "separation equal to the orb combusts")
	assert.False(t, combust[models.Rahu])
	assert.False(t, combust[models.Sun])
	assert.False(t, combust[models.Saturn])
}

func TestCombustionAcrossZeroDegrees(t *testing.T) {
	positions := map[models.Planet]models.PlanetPosition{
		models.Sun:     {Planet: models.Sun, Longitude: 2},
		models.Mercury: {Planet: models.Mercury, Longitude: 355},
	}
	combust := Combustion(positions)
	assert.True(t, combust[models.Mercury], "shorter arc must cross 0 deg")
}
