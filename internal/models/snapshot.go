package models

import "time"

// SAVTable is the Sarvashtakavarga total array with the supportive-sign
// classification at the fixed threshold.
type SAVTable struct {
	Values    [12]int `json:"values"`
	Threshold int     `json:"threshold"`
	GoodSigns []int   `json:"good_signs"`
	PoorSigns []int   `json:"poor_signs"`
}

// YogaResult is one named pattern's verdict. Detectors are independent: no
// result influences another.
type YogaResult struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Reason  string `json:"reason"`
}

// PlanetHouseChange records a planet's house assignment across the three
// sensitivity variants.
type PlanetHouseChange struct {
	Planet        Planet `json:"planet"`
	HouseOriginal int    `json:"house_original"`
	HouseIfMinus  int    `json:"house_if_minus"`
	HouseIfPlus   int    `json:"house_if_plus"`
}

// SensitivityReport flags conclusions that are fragile under birth-time
// uncertainty. A flip is flagged when either the minus or the plus variant
// disagrees with the nominal chart.
type SensitivityReport struct {
	UncertaintyMinutes  int                 `json:"uncertainty_minutes"`
	AscendantFlips      bool                `json:"ascendant_flips"`
	AscendantSign       int                 `json:"ascendant_sign"`
	AscendantIfMinus    int                 `json:"ascendant_if_minus"`
	AscendantIfPlus     int                 `json:"ascendant_if_plus"`
	MoonSignFlips       bool                `json:"moon_sign_flips"`
	NavamsaAscFlips     bool                `json:"navamsa_asc_flips"`
	DashaBoundaryRisky  bool                `json:"dasha_boundary_risky"`
	DashaBoundaryReason string              `json:"dasha_boundary_reason"`
	HouseChanges        []PlanetHouseChange `json:"house_changes"`
}

// CalcMeta stamps a snapshot with the settings and versions that produced
// it. Callers use these tags to decide cache validity.
type CalcMeta struct {
	Ayanamsa         Ayanamsa    `json:"ayanamsa"`
	HouseSystem      HouseSystem `json:"house_system"`
	RulesetVersion   string      `json:"ruleset_version"`
	EphemerisVersion string      `json:"ephemeris_version"`
	CalcTimestamp    time.Time   `json:"calc_timestamp"`
	InputHash        string      `json:"input_hash"`
}

// CalcSnapshot is the aggregate calculation result. It is created once per
// run and immutable thereafter.
type CalcSnapshot struct {
	Meta         CalcMeta                  `json:"meta"`
	Panchanga    Panchanga                 `json:"panchanga"`
	D1           RashiChart                `json:"d1"`
	D9           NavamsaChart              `json:"d9"`
	Positions    map[Planet]PlanetPosition `json:"positions"`
	PlanetHouses map[Planet]int            `json:"planet_houses"`
	Dignities    map[Planet]DignityInfo    `json:"dignities"`
	Combustion   map[Planet]bool           `json:"combustion"`
	Aspects      []Aspect                  `json:"aspects"`
	Dasha        DashaInfo                 `json:"dasha"`
	Transits     TransitSummary            `json:"transits"`
	SAV          SAVTable                  `json:"sav"`
	BhavaBala    [12]float64               `json:"bhava_bala"`
	Yogas        []YogaResult              `json:"yogas"`
	Sensitivity  *SensitivityReport        `json:"sensitivity,omitempty"`
}

// SummaryPlanet is a flattened planet row for the narrative layer.
type SummaryPlanet struct {
	Name       Planet  `json:"name"`
	Sign       string  `json:"sign"`
	Degree     float64 `json:"degree"`
	Dignity    Dignity `json:"dignity"`
	Retrograde bool    `json:"retrograde"`
	Combust    bool    `json:"combust"`
	House      int     `json:"house"`
}

// SummaryYoga is a yoga verdict without the reason text.
type SummaryYoga struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// SummarySensitivity carries only the flags the narrative layer hedges on.
type SummarySensitivity struct {
	AscendantFlip      bool `json:"ascendant_flip"`
	MoonFlip           bool `json:"moon_flip"`
	DashaBoundaryRisky bool `json:"dasha_boundary_risky"`
}

// CalcSummary is the flattened snapshot view consumed by the prediction
// layer. It is a pure reshaping of already-computed fields.
type CalcSummary struct {
	Ascendant   Ascendant            `json:"ascendant"`
	Planets     []SummaryPlanet      `json:"planets"`
	Houses      []House              `json:"houses"`
	Aspects     []Aspect             `json:"aspects"`
	D9AscSign   string               `json:"d9_asc_sign"`
	D9Signs     map[Planet]string    `json:"d9_signs"`
	D9Better    map[Planet]bool      `json:"d9_better"`
	Yogas       []SummaryYoga        `json:"yogas"`
	BhavaBala   [12]float64          `json:"bhava_bala"`
	CurrentMD   Planet               `json:"current_md"`
	CurrentAD   Planet               `json:"current_ad"`
	UpcomingADs []UpcomingAntardasha `json:"upcoming_ads"`
	Transits    TransitSummary       `json:"transits_now"`
	SAV         [12]int              `json:"sav"`
	Sensitivity *SummarySensitivity  `json:"sensitivity,omitempty"`
}
