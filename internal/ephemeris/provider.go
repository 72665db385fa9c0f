package ephemeris

import (
	"context"
	"time"
)

// Provider is the black-box astronomy primitive the engine is built on.
// All longitudes returned here are tropical; the sidereal conversion is the
// engine's responsibility.
type Provider interface {
	// RawPosition returns the tropical ecliptic longitude in degrees and
	// the speed in degrees per day for a body at an instant.
	RawPosition(ctx context.Context, instant time.Time, body string) (longitude, speed float64, err error)

	// RawHouses returns the tropical ascendant longitude and the twelve
	// tropical cusp longitudes for an instant, location and house system.
	RawHouses(ctx context.Context, instant time.Time, lat, lon float64, system string) (ascendant float64, cusps [12]float64, err error)

	// Ayanamsa returns the precession offset in degrees for an instant
	// under the named model.
	Ayanamsa(ctx context.Context, instant time.Time, model string) (float64, error)

	// RiseSet returns the rise and set instants for a body on the day of
	// the given instant at the given coordinates.
	RiseSet(ctx context.Context, instant time.Time, lat, lon float64, body string) (rise, set time.Time, err error)

	// Version identifies the ephemeris data files in use, for snapshot
	// metadata.
	Version() string
}
