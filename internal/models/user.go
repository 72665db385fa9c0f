package models

import "time"

// User is an account row.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is a stored birth profile belonging to a user. Birth data is kept
// verbatim so the input hash is reproducible.
type Profile struct {
	ID                 string      `json:"id" db:"id"`
	UserID             string      `json:"user_id" db:"user_id"`
	Name               string      `json:"name" db:"name"`
	Gender             string      `json:"gender" db:"gender"`
	BirthInstant       time.Time   `json:"birth_instant" db:"birth_instant"`
	Latitude           float64     `json:"latitude" db:"latitude"`
	Longitude          float64     `json:"longitude" db:"longitude"`
	AltitudeM          float64     `json:"altitude_m" db:"altitude_m"`
	Place              string      `json:"place" db:"place"`
	Ayanamsa           Ayanamsa    `json:"ayanamsa" db:"ayanamsa"`
	HouseSystem        HouseSystem `json:"house_system" db:"house_system"`
	UncertaintyMinutes int         `json:"uncertainty_minutes" db:"uncertainty_minutes"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at" db:"updated_at"`
}

// BirthInput builds the engine input from the stored profile fields.
func (p *Profile) BirthInput() BirthInput {
	return BirthInput{
		Instant:            p.BirthInstant,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		AltitudeM:          p.AltitudeM,
		Ayanamsa:           p.Ayanamsa,
		HouseSystem:        p.HouseSystem,
		UncertaintyMinutes: p.UncertaintyMinutes,
	}.Normalized()
}

// StoredSnapshot is a persisted calculation result: the compressed payload
// plus the metadata columns used for cache-validity decisions.
type StoredSnapshot struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"user_id" db:"user_id"`
	ProfileID        string    `json:"profile_id" db:"profile_id"`
	InputHash        string    `json:"input_hash" db:"input_hash"`
	Ayanamsa         string    `json:"ayanamsa" db:"ayanamsa"`
	HouseSystem      string    `json:"house_system" db:"house_system"`
	RulesetVersion   string    `json:"ruleset_version" db:"ruleset_version"`
	EphemerisVersion string    `json:"ephemeris_version" db:"ephemeris_version"`
	Payload          []byte    `json:"-" db:"payload"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Prediction is a stored narrative-layer response.
type Prediction struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ProfileID string    `json:"profile_id" db:"profile_id"`
	InputHash string    `json:"input_hash" db:"input_hash"`
	Topic     string    `json:"topic" db:"topic"`
	Question  string    `json:"question" db:"question"`
	Response  string    `json:"response" db:"response"`
	Model     string    `json:"model" db:"model"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
