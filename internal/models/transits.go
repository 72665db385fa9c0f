package models

// SadeSatiPhase classifies Saturn's transit relative to the natal Moon.
type SadeSatiPhase string

const (
	SadeSatiApproaching SadeSatiPhase = "approaching"
	SadeSatiActive      SadeSatiPhase = "active"
	SadeSatiReceding    SadeSatiPhase = "receding"
	SadeSatiNone        SadeSatiPhase = "none"
)

// BodyTransit is one slow body's current placement relative to the natal
// reference points.
type BodyTransit struct {
	Planet         Planet `json:"planet"`
	Sign           int    `json:"sign"`
	SignName       string `json:"sign_name"`
	HouseFromLagna int    `json:"house_from_lagna"`
	HouseFromMoon  int    `json:"house_from_moon"`
}

// TransitSummary is the slow-body transit picture at the query instant.
type TransitSummary struct {
	Saturn             BodyTransit   `json:"saturn"`
	Jupiter            BodyTransit   `json:"jupiter"`
	Rahu               BodyTransit   `json:"rahu"`
	Ketu               BodyTransit   `json:"ketu"`
	NodeAxisFromLagna  [2]int        `json:"node_axis_from_lagna"`
	SadeSatiPhase      SadeSatiPhase `json:"sade_sati_phase"`
}
