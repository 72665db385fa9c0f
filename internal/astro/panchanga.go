package astro

import (
	"context"
	"math"
	"time"

	"github.com/astromitra/astro-ai-go/internal/ephemeris"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// PanchangaCalculator derives the five lunar-calendar limbs from the Sun
// and Moon longitudes, plus sunrise and sunset from the ephemeris source.
type PanchangaCalculator struct {
	eph ephemeris.Provider
}

// NewPanchangaCalculator creates a panchanga calculator.
func NewPanchangaCalculator(eph ephemeris.Provider) *PanchangaCalculator {
	return &PanchangaCalculator{eph: eph}
}

// Compute builds the panchanga for an instant and place. The sun and moon
// arguments are sidereal longitudes; the elongation that drives tithi,
// yoga and karana is ayanamsa-invariant, so sidereal inputs are safe here.
func (c *PanchangaCalculator) Compute(ctx context.Context, instant time.Time, lat, lon float64, sun, moon models.PlanetPosition) (models.Panchanga, error) {
	elongation := forwardDistance(sun.Longitude, moon.Longitude)

	tithiIdx := int(elongation / TithiSpan)
	if tithiIdx > 29 {
		tithiIdx = 29
	}
	waxing := elongation < 180
	paksha := "Krishna"
	if waxing {
		paksha = "Shukla"
	}
	numInPaksha := tithiIdx%15 + 1
	tithiName := tithiNameFor(numInPaksha, waxing)

	nak, degInNak := nakshatraOf(moon.Longitude)

	yogaIdx := int(normalizeDegrees(sun.Longitude+moon.Longitude) / NakshatraSpan)
	if yogaIdx > 26 {
		yogaIdx = 26
	}

	sunrise, sunset, err := c.eph.RiseSet(ctx, instant, lat, lon, string(models.Sun))
	if err != nil {
		return models.Panchanga{}, &EphemerisError{Body: "sunrise", Err: err}
	}

	return models.Panchanga{
		Weekday:   WeekdayNames[instant.UTC().Weekday()],
		Tithi:     tithiName,
		TithiNum:  numInPaksha,
		Paksha:    paksha,
		Nakshatra: NakshatraNames[nak],
		Pada:      padaOf(degInNak),
		Yoga:      NityaYogaNames[yogaIdx],
		Karana:    karanaFor(elongation),
		Sunrise:   sunrise.UTC(),
		Sunset:    sunset.UTC(),
	}, nil
}

func tithiNameFor(numInPaksha int, waxing bool) string {
	if numInPaksha == 15 {
		if waxing {
			return "Purnima"
		}
		return "Amavasya"
	}
	return TithiNames[numInPaksha-1]
}

// karanaFor maps the Sun-Moon elongation to one of the sixty half-tithi
// karanas. The first half-tithi and the last three are fixed; the middle
// fifty-six cycle through the seven movable names.
func karanaFor(elongation float64) string {
	idx := int(math.Floor(elongation / KaranaSpan))
	if idx > 59 {
		idx = 59
	}
	switch {
	case idx == 0:
		return FixedKaranas[0]
	case idx >= 57:
		return FixedKaranas[idx-56]
	default:
		return MovableKaranas[(idx-1)%7]
	}
}
