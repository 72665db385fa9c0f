package models

import "time"

// Panchanga holds the five lunar-calendar limbs plus sunrise and sunset for
// the birth instant and place.
type Panchanga struct {
	Weekday   string    `json:"weekday"`
	Tithi     string    `json:"tithi"`
	TithiNum  int       `json:"tithi_num"`
	Paksha    string    `json:"paksha"`
	Nakshatra string    `json:"nakshatra"`
	Pada      int       `json:"pada"`
	Yoga      string    `json:"yoga"`
	Karana    string    `json:"karana"`
	Sunrise   time.Time `json:"sunrise"`
	Sunset    time.Time `json:"sunset"`
}
