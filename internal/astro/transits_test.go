package astro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astromitra/astro-ai-go/internal/models"
)

func TestTransitHousesFromLagnaAndMoon(t *testing.T) {
	fake := &fakeProvider{
		longitudes: map[string]float64{
			"Saturn":  305, // Aquarius, sign 10
			"Jupiter": 65,  // Gemini, sign 2
			"Rahu":    5,   // Aries, sign 0
		},
	}
	calc := NewTransitCalculator(NewPositionProvider(fake))

	// Natal lagna in Leo (4), natal Moon in Capricorn (9).
	summary, err := calc.Compute(context.Background(), testInstant, models.AyanamsaLahiri, 4, 9)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Saturn.HouseFromLagna)
	assert.Equal(t, 2, summary.Saturn.HouseFromMoon)
	assert.Equal(t, 11, summary.Jupiter.HouseFromLagna)
	assert.Equal(t, 9, summary.Rahu.HouseFromLagna)
	assert.Equal(t, 3, summary.Ketu.HouseFromLagna)
	assert.Equal(t, [2]int{9, 3}, summary.NodeAxisFromLagna)
	assert.Equal(t, "Aquarius", summary.Saturn.SignName)
}

func TestSadeSatiPhases(t *testing.T) {
	tests := []struct {
		house int
		phase models.SadeSatiPhase
	}{
		{12, models.SadeSatiActive},
		{1, models.SadeSatiActive},
		{2, models.SadeSatiActive},
		{11, models.SadeSatiApproaching},
		{3, models.SadeSatiApproaching},
		{9, models.SadeSatiReceding},
		{4, models.SadeSatiReceding},
		{5, models.SadeSatiNone},
		{7, models.SadeSatiNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.phase, sadeSatiPhase(tt.house), "house %d", tt.house)
	}
}

func TestHouseFromSign(t *testing.T) {
	assert.Equal(t, 1, houseFromSign(4, 4))
	assert.Equal(t, 12, houseFromSign(3, 4))
	assert.Equal(t, 2, houseFromSign(0, 11))
}
