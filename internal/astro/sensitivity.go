package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/astromitra/astro-ai-go/internal/models"
)

// sensitivity recomputes the chart core at birth minus and plus the stated
// uncertainty and reports which conclusions flip. The nominal chart is
// never altered; variants that cannot be computed surface as an error and
// the caller degrades gracefully.
func (e *Engine) sensitivity(ctx context.Context, input models.BirthInput, now time.Time, nominal chartCore, nominalDasha models.DashaInfo) (*models.SensitivityReport, error) {
	delta := time.Duration(input.UncertaintyMinutes) * time.Minute

	minusCore, err := e.computeCore(ctx, input.Instant.Add(-delta), input)
	if err != nil {
		return nil, fmt.Errorf("minus variant: %w", err)
	}
	plusCore, err := e.computeCore(ctx, input.Instant.Add(delta), input)
	if err != nil {
		return nil, fmt.Errorf("plus variant: %w", err)
	}

	report := &models.SensitivityReport{
		UncertaintyMinutes: input.UncertaintyMinutes,
		AscendantSign:      nominal.ascendant.Sign,
		AscendantIfMinus:   minusCore.ascendant.Sign,
		AscendantIfPlus:    plusCore.ascendant.Sign,
	}
	report.AscendantFlips = report.AscendantIfMinus != report.AscendantSign ||
		report.AscendantIfPlus != report.AscendantSign

	moonSign := nominal.positions[models.Moon].Sign
	report.MoonSignFlips = minusCore.positions[models.Moon].Sign != moonSign ||
		plusCore.positions[models.Moon].Sign != moonSign

	d9Asc := navamsaSign(nominal.ascendant.Longitude)
	report.NavamsaAscFlips = navamsaSign(minusCore.ascendant.Longitude) != d9Asc ||
		navamsaSign(plusCore.ascendant.Longitude) != d9Asc

	// One house-change row per non-node planet, whether or not it moved.
	for _, planet := range models.ClassicalPlanets {
		report.HouseChanges = append(report.HouseChanges, models.PlanetHouseChange{
			Planet:        planet,
			HouseOriginal: nominal.planetHouses[planet],
			HouseIfMinus:  minusCore.planetHouses[planet],
			HouseIfPlus:   plusCore.planetHouses[planet],
		})
	}

	minusDasha, err := e.dasha.Compute(minusCore.positions[models.Moon].Longitude, input.Instant.Add(-delta), now)
	if err != nil {
		return nil, fmt.Errorf("minus variant dasha: %w", err)
	}
	plusDasha, err := e.dasha.Compute(plusCore.positions[models.Moon].Longitude, input.Instant.Add(delta), now)
	if err != nil {
		return nil, fmt.Errorf("plus variant dasha: %w", err)
	}

	switch {
	case minusDasha.Mahadasha.Planet != nominalDasha.Mahadasha.Planet,
		plusDasha.Mahadasha.Planet != nominalDasha.Mahadasha.Planet:
		report.DashaBoundaryRisky = true
		report.DashaBoundaryReason = "active Mahadasha changes within the stated uncertainty"
	case minusDasha.Antardasha.Planet != nominalDasha.Antardasha.Planet,
		plusDasha.Antardasha.Planet != nominalDasha.Antardasha.Planet:
		report.DashaBoundaryRisky = true
		report.DashaBoundaryReason = "active Antardasha changes within the stated uncertainty"
	}

	return report, nil
}
