package astro

import (
	"context"
	"time"

	"github.com/astromitra/astro-ai-go/internal/ephemeris"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// PositionProvider resolves sidereal planetary positions from a raw
// ephemeris source. Tropical longitudes are shifted by the ayanamsa value
// for the requested model and wrapped into [0, 360). Ketu is always derived
// as the point opposite Rahu and never fetched on its own.
type PositionProvider struct {
	eph ephemeris.Provider
}

// NewPositionProvider creates a position provider backed by the given
// ephemeris source.
func NewPositionProvider(eph ephemeris.Provider) *PositionProvider {
	return &PositionProvider{eph: eph}
}

// Positions computes sidereal positions for the requested bodies at the
// given instant. A failure for any body fails the whole call.
func (p *PositionProvider) Positions(ctx context.Context, instant time.Time, ayanamsa models.Ayanamsa, bodies []models.Planet) (map[models.Planet]models.PlanetPosition, error) {
	shift, err := p.eph.Ayanamsa(ctx, instant, string(ayanamsa))
	if err != nil {
		return nil, &EphemerisError{Body: "ayanamsa", Err: err}
	}

	result := make(map[models.Planet]models.PlanetPosition, len(bodies))

	wantKetu := false
	for _, body := range bodies {
		if body == models.Ketu {
			wantKetu = true
			continue
		}
		tropical, speed, err := p.eph.RawPosition(ctx, instant, string(body))
		if err != nil {
			return nil, &EphemerisError{Body: string(body), Err: err}
		}
		result[body] = buildPosition(body, tropical-shift, speed)
	}

	if wantKetu {
		rahu, ok := result[models.Rahu]
		if !ok {
			tropical, speed, err := p.eph.RawPosition(ctx, instant, string(models.Rahu))
			if err != nil {
				return nil, &EphemerisError{Body: string(models.Rahu), Err: err}
			}
			rahu = buildPosition(models.Rahu, tropical-shift, speed)
		}
		result[models.Ketu] = buildPosition(models.Ketu, rahu.Longitude+180, rahu.Speed)
	}

	return result, nil
}

// Ascendant computes the sidereal ascendant and house cusps for the given
// instant and location.
func (p *PositionProvider) Ascendant(ctx context.Context, instant time.Time, lat, lon float64, ayanamsa models.Ayanamsa, system models.HouseSystem) (models.Ascendant, [12]float64, error) {
	shift, err := p.eph.Ayanamsa(ctx, instant, string(ayanamsa))
	if err != nil {
		return models.Ascendant{}, [12]float64{}, &EphemerisError{Body: "ayanamsa", Err: err}
	}
	rawAsc, rawCusps, err := p.eph.RawHouses(ctx, instant, lat, lon, string(system))
	if err != nil {
		return models.Ascendant{}, [12]float64{}, &EphemerisError{Body: "ascendant", Err: err}
	}

	ascLon := normalizeDegrees(rawAsc - shift)
	nak, degInNak := nakshatraOf(ascLon)
	asc := models.Ascendant{
		Longitude:    ascLon,
		Sign:         signOf(ascLon),
		DegreeInSign: degreeInSign(ascLon),
		Nakshatra:    NakshatraNames[nak],
		Pada:         padaOf(degInNak),
	}

	var cusps [12]float64
	for i, c := range rawCusps {
		cusps[i] = normalizeDegrees(c - shift)
	}
	return asc, cusps, nil
}

func buildPosition(planet models.Planet, siderealLongitude, speed float64) models.PlanetPosition {
	lon := normalizeDegrees(siderealLongitude)
	return models.PlanetPosition{
		Planet:       planet,
		Longitude:    lon,
		Sign:         signOf(lon),
		DegreeInSign: degreeInSign(lon),
		Retrograde:   speed < 0,
		Speed:        speed,
	}
}
