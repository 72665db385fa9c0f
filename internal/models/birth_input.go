package models

import "time"

// Ayanamsa identifies the precession model used to convert tropical
// longitudes to sidereal ones.
type Ayanamsa string

const (
	AyanamsaLahiri       Ayanamsa = "Lahiri"
	AyanamsaRaman        Ayanamsa = "Raman"
	AyanamsaKP           Ayanamsa = "KP"
	AyanamsaFaganBradley Ayanamsa = "FaganBradley"
	AyanamsaYukteshwar   Ayanamsa = "Yukteshwar"
)

// Valid reports whether the ayanamsa is one of the supported models.
func (a Ayanamsa) Valid() bool {
	switch a {
	case AyanamsaLahiri, AyanamsaRaman, AyanamsaKP, AyanamsaFaganBradley, AyanamsaYukteshwar:
		return true
	}
	return false
}

// HouseSystem identifies the house division scheme.
type HouseSystem string

const (
	HouseSystemWholeSign HouseSystem = "WholeSign"
	HouseSystemPlacidus  HouseSystem = "Placidus"
	HouseSystemKoch      HouseSystem = "Koch"
	HouseSystemEqual     HouseSystem = "Equal"
)

// Valid reports whether the house system is supported.
func (h HouseSystem) Valid() bool {
	switch h {
	case HouseSystemWholeSign, HouseSystemPlacidus, HouseSystemKoch, HouseSystemEqual:
		return true
	}
	return false
}

// BirthInput is the immutable input to one calculation run. It is created
// once per request and never mutated by the engine.
type BirthInput struct {
	Instant            time.Time   `json:"instant"`
	Latitude           float64     `json:"latitude"`
	Longitude          float64     `json:"longitude"`
	AltitudeM          float64     `json:"altitude_m"`
	Ayanamsa           Ayanamsa    `json:"ayanamsa"`
	HouseSystem        HouseSystem `json:"house_system"`
	UncertaintyMinutes int         `json:"uncertainty_minutes"`
}

// Normalized returns a copy with the instant forced to UTC and defaults
// applied, suitable for hashing and for feeding the engine.
func (b BirthInput) Normalized() BirthInput {
	out := b
	out.Instant = b.Instant.UTC()
	if out.Ayanamsa == "" {
		out.Ayanamsa = AyanamsaLahiri
	}
	if out.HouseSystem == "" {
		out.HouseSystem = HouseSystemWholeSign
	}
	return out
}
