package models

// Planet identifies one of the nine grahas used throughout the engine.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// AllPlanets lists the nine grahas in conventional order.
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// ClassicalPlanets lists the seven grahas that participate in dignity and
// Ashtakavarga tables. The lunar nodes are excluded.
var ClassicalPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// PlanetPosition is a planet's sidereal placement at one instant.
// Invariant: Sign*30 + DegreeInSign == Longitude (mod 360).
type PlanetPosition struct {
	Planet       Planet  `json:"planet"`
	Longitude    float64 `json:"longitude"`
	Sign         int     `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Retrograde   bool    `json:"retrograde"`
	Speed        float64 `json:"speed"`
}

// Ascendant is the rising degree with its derived attributes.
type Ascendant struct {
	Longitude    float64 `json:"longitude"`
	Sign         int     `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Nakshatra    string  `json:"nakshatra"`
	Pada         int     `json:"pada"`
}

// House is one of the twelve chart divisions. For WholeSign charts the cusp
// degree is zero except house 1, which carries the ascendant degree.
type House struct {
	Number     int     `json:"number"`
	Sign       int     `json:"sign"`
	CuspDegree float64 `json:"cusp_degree"`
}

// Aspect is a directed angular relationship from a planet to a planet or a
// house. Strength decays linearly from 1 at orb 0 to 0 at the caster's
// maximum orb.
type Aspect struct {
	From       Planet  `json:"from"`
	To         string  `json:"to"`
	Type       string  `json:"type"`
	OrbDegrees float64 `json:"orb_deg"`
	Strength   float64 `json:"strength"`
}

// Dignity is the qualitative strength class of a placement.
type Dignity string

const (
	DignityExalted     Dignity = "Exalted"
	DignityOwn         Dignity = "Own"
	DignityMooltrikona Dignity = "Mooltrikona"
	DignityFriend      Dignity = "Friend"
	DignityNeutral     Dignity = "Neutral"
	DignityEnemy       Dignity = "Enemy"
	DignityDebilitated Dignity = "Debilitated"
)

// DignityInfo is a planet's dignity evaluation in one chart.
type DignityInfo struct {
	Planet   Planet  `json:"planet"`
	Dignity  Dignity `json:"dignity"`
	Tier     int     `json:"tier"`
	Sign     int     `json:"sign"`
	SignName string  `json:"sign_name"`
}

// PlanetEntry is a fully merged planet row for the D1 chart.
type PlanetEntry struct {
	Name       Planet  `json:"name"`
	Sign       int     `json:"sign"`
	SignName   string  `json:"sign_name"`
	Degree     float64 `json:"degree"`
	Longitude  float64 `json:"longitude"`
	Nakshatra  string  `json:"nakshatra"`
	Pada       int     `json:"pada"`
	Retrograde bool    `json:"retrograde"`
	House      int     `json:"house"`
}

// RashiChart is the primary (D1) chart.
type RashiChart struct {
	Ascendant Ascendant     `json:"ascendant"`
	Planets   []PlanetEntry `json:"planets"`
	Houses    []House       `json:"houses"`
}

// NavamsaChart is the ninth-division (D9) chart, signs only.
type NavamsaChart struct {
	AscendantSign int                `json:"asc_sign"`
	PlanetSigns   map[Planet]int     `json:"planet_signs"`
	BetterThanD1  map[Planet]bool    `json:"better_than_d1"`
	Dignities     map[Planet]Dignity `json:"dignities"`
}
