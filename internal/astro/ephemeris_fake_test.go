package astro

import (
	"context"
	"fmt"
	"time"
)

// fakeProvider is a deterministic ephemeris stub. Longitudes are tropical;
// tests set the ayanamsa to zero unless they exercise the conversion.
type fakeProvider struct {
	longitudes map[string]float64
	speeds     map[string]float64
	ayanamsa   float64
	ascendant  float64
	rise       time.Time
	set        time.Time
	failBody   string

	// drift shifts every longitude per minute offset from baseInstant,
	// letting sensitivity tests see signs flip across time variants.
	baseInstant time.Time
	driftPerMin map[string]float64
	ascDrift    float64
}

func (f *fakeProvider) minutesFrom(instant time.Time) float64 {
	if f.baseInstant.IsZero() {
		return 0
	}
	return instant.Sub(f.baseInstant).Minutes()
}

func (f *fakeProvider) RawPosition(_ context.Context, instant time.Time, body string) (float64, float64, error) {
	if f.failBody != "" && body == f.failBody {
		return 0, 0, fmt.Errorf("no data for %s", body)
	}
	lon, ok := f.longitudes[body]
	if !ok {
		return 0, 0, fmt.Errorf("unknown body %s", body)
	}
	lon += f.driftPerMin[body] * f.minutesFrom(instant)
	return lon, f.speeds[body], nil
}

func (f *fakeProvider) RawHouses(_ context.Context, instant time.Time, _, _ float64, _ string) (float64, [12]float64, error) {
	if f.failBody == "houses" {
		return 0, [12]float64{}, fmt.Errorf("houses unavailable")
	}
	asc := f.ascendant + f.ascDrift*f.minutesFrom(instant)
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = asc + float64(i)*30
	}
	return asc, cusps, nil
}

func (f *fakeProvider) Ayanamsa(_ context.Context, _ time.Time, _ string) (float64, error) {
	if f.failBody == "ayanamsa" {
		return 0, fmt.Errorf("ayanamsa unavailable")
	}
	return f.ayanamsa, nil
}

func (f *fakeProvider) RiseSet(_ context.Context, instant time.Time, _, _ float64, _ string) (time.Time, time.Time, error) {
	if f.failBody == "riseset" {
		return time.Time{}, time.Time{}, fmt.Errorf("rise/set unavailable")
	}
	if f.rise.IsZero() {
		day := instant.UTC().Truncate(24 * time.Hour)
		return day.Add(6 * time.Hour), day.Add(18 * time.Hour), nil
	}
	return f.rise, f.set, nil
}

func (f *fakeProvider) Version() string { return "fake-1" }
