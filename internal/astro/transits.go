package astro

import (
	"context"
	"time"

	"github.com/astromitra/astro-ai-go/internal/models"
)

// slowBodies are the transiting planets tracked relative to the natal
// chart.
var slowBodies = []models.Planet{models.Saturn, models.Jupiter, models.Rahu, models.Ketu}

// TransitCalculator locates the slow movers at the query instant relative
// to the natal lagna and Moon, and classifies the Sade Sati phase.
type TransitCalculator struct {
	positions *PositionProvider
}

// NewTransitCalculator creates a transit calculator.
func NewTransitCalculator(positions *PositionProvider) *TransitCalculator {
	return &TransitCalculator{positions: positions}
}

// Compute builds the transit picture for the query instant against the
// natal ascendant sign and Moon sign.
func (c *TransitCalculator) Compute(ctx context.Context, now time.Time, ayanamsa models.Ayanamsa, natalAscSign, natalMoonSign int) (models.TransitSummary, error) {
	current, err := c.positions.Positions(ctx, now, ayanamsa, slowBodies)
	if err != nil {
		return models.TransitSummary{}, err
	}

	transit := func(p models.Planet) models.BodyTransit {
		pos := current[p]
		return models.BodyTransit{
			Planet:         p,
			Sign:           pos.Sign,
			SignName:       SignName(pos.Sign),
			HouseFromLagna: houseFromSign(pos.Sign, natalAscSign),
			HouseFromMoon:  houseFromSign(pos.Sign, natalMoonSign),
		}
	}

	summary := models.TransitSummary{
		Saturn:  transit(models.Saturn),
		Jupiter: transit(models.Jupiter),
		Rahu:    transit(models.Rahu),
		Ketu:    transit(models.Ketu),
	}
	summary.NodeAxisFromLagna = [2]int{summary.Rahu.HouseFromLagna, summary.Ketu.HouseFromLagna}
	summary.SadeSatiPhase = sadeSatiPhase(summary.Saturn.HouseFromMoon)
	return summary, nil
}

// sadeSatiPhase classifies Saturn's house from the natal Moon. The active
// window is the 12th, 1st and 2nd; the 11th and 3rd flank it.
func sadeSatiPhase(saturnHouseFromMoon int) models.SadeSatiPhase {
	switch saturnHouseFromMoon {
	case 12, 1, 2:
		return models.SadeSatiActive
	case 11, 3:
		return models.SadeSatiApproaching
	case 9, 4:
		return models.SadeSatiReceding
	default:
		return models.SadeSatiNone
	}
}
