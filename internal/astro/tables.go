package astro

import "github.com/astromitra/astro-ai-go/internal/models"

// This file is the single canonical home of every fixed rule table the
// engine consumes. Components reference these tables; none carries a copy.

const (
	// SignSpan is the width of one zodiac sign in degrees.
	SignSpan = 30.0
	// NakshatraSpan is the width of one lunar mansion: 13°20'.
	NakshatraSpan = 360.0 / 27.0
	// PadaSpan is the width of one nakshatra quarter: 3°20'.
	PadaSpan = NakshatraSpan / 4.0
	// TithiSpan is the Sun-Moon elongation per lunar day.
	TithiSpan = 12.0
	// KaranaSpan is half a tithi.
	KaranaSpan = 6.0
	// YearDays is the fixed Vimshottari year length.
	YearDays = 365.25
)

// SignNames maps sign index 0..11 to its name.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignLords maps sign index to its ruling planet.
var SignLords = [12]models.Planet{
	models.Mars, models.Venus, models.Mercury, models.Moon,
	models.Sun, models.Mercury, models.Venus, models.Mars,
	models.Jupiter, models.Saturn, models.Saturn, models.Jupiter,
}

// NakshatraNames maps mansion index 0..26 to its name.
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishtha",
	"Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NakshatraLords maps mansion index to its Vimshottari ruler. The nine-lord
// sequence repeats three times across the 27 mansions.
var NakshatraLords = [27]models.Planet{
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
}

// DashaOrder is the fixed Vimshottari planet cycle.
var DashaOrder = [9]models.Planet{
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
}

// DashaYears maps each planet to its full Mahadasha span. The spans sum to
// the 120-year cycle.
var DashaYears = map[models.Planet]int{
	models.Ketu:    7,
	models.Venus:   20,
	models.Sun:     6,
	models.Moon:    10,
	models.Mars:    7,
	models.Rahu:    18,
	models.Jupiter: 16,
	models.Saturn:  19,
	models.Mercury: 17,
}

// DashaCycleYears is the full cycle length.
const DashaCycleYears = 120

// ExaltationSigns per published tables.
var ExaltationSigns = map[models.Planet]int{
	models.Sun:     0,  // Aries
	models.Moon:    1,  // Taurus
	models.Mars:    9,  // Capricorn
	models.Mercury: 5,  // Virgo
	models.Jupiter: 3,  // Cancer
	models.Venus:   11, // Pisces
	models.Saturn:  6,  // Libra
}

// DebilitationSigns per published tables. Always opposite the exaltation
// sign, but stated explicitly rather than derived.
var DebilitationSigns = map[models.Planet]int{
	models.Sun:     6,  // Libra
	models.Moon:    7,  // Scorpio
	models.Mars:    3,  // Cancer
	models.Mercury: 11, // Pisces
	models.Jupiter: 9,  // Capricorn
	models.Venus:   5,  // Virgo
	models.Saturn:  0,  // Aries
}

// MooltrikonaSigns per published tables.
var MooltrikonaSigns = map[models.Planet]int{
	models.Sun:     4,  // Leo
	models.Moon:    1,  // Taurus
	models.Mars:    0,  // Aries
	models.Mercury: 5,  // Virgo
	models.Jupiter: 8,  // Sagittarius
	models.Venus:   6,  // Libra
	models.Saturn:  10, // Aquarius
}

// OwnSigns lists each planet's ruled signs.
var OwnSigns = map[models.Planet][]int{
	models.Sun:     {4},
	models.Moon:    {3},
	models.Mars:    {0, 7},
	models.Mercury: {2, 5},
	models.Jupiter: {8, 11},
	models.Venus:   {1, 6},
	models.Saturn:  {9, 10},
}

// Friendships is the natural relationship matrix between the seven
// classical planets. Pairs absent from both lists are neutral.
var Friendships = map[models.Planet]struct {
	Friends []models.Planet
	Enemies []models.Planet
}{
	models.Sun:     {Friends: []models.Planet{models.Moon, models.Mars, models.Jupiter}, Enemies: []models.Planet{models.Venus, models.Saturn}},
	models.Moon:    {Friends: []models.Planet{models.Sun, models.Mercury}, Enemies: nil},
	models.Mars:    {Friends: []models.Planet{models.Sun, models.Moon, models.Jupiter}, Enemies: []models.Planet{models.Mercury}},
	models.Mercury: {Friends: []models.Planet{models.Sun, models.Venus}, Enemies: []models.Planet{models.Moon}},
	models.Jupiter: {Friends: []models.Planet{models.Sun, models.Moon, models.Mars}, Enemies: []models.Planet{models.Mercury, models.Venus}},
	models.Venus:   {Friends: []models.Planet{models.Mercury, models.Saturn}, Enemies: []models.Planet{models.Sun, models.Moon}},
	models.Saturn:  {Friends: []models.Planet{models.Mercury, models.Venus}, Enemies: []models.Planet{models.Sun, models.Moon, models.Mars}},
}

// CombustionOrbs is the per-planet maximum angular separation from the Sun
// for combustion. The Sun itself and the nodes never combust.
var CombustionOrbs = map[models.Planet]float64{
	models.Moon:    12,
	models.Mars:    17,
	models.Mercury: 12,
	models.Jupiter: 11,
	models.Venus:   10,
	models.Saturn:  15,
}

// AspectHarmonics lists the house offsets each planet casts. Every planet
// casts the 7th (opposition); Mars, Jupiter and Saturn add their special
// aspects.
var AspectHarmonics = map[models.Planet][]int{
	models.Sun:     {7},
	models.Moon:    {7},
	models.Mars:    {4, 7, 8},
	models.Mercury: {7},
	models.Jupiter: {5, 7, 9},
	models.Venus:   {7},
	models.Saturn:  {3, 7, 10},
	models.Rahu:    {7},
	models.Ketu:    {7},
}

// AspectOrbs is the per-planet maximum orb in degrees.
var AspectOrbs = map[models.Planet]float64{
	models.Sun:     7,
	models.Moon:    7,
	models.Mars:    8,
	models.Mercury: 7,
	models.Jupiter: 9,
	models.Venus:   7,
	models.Saturn:  9,
	models.Rahu:    7,
	models.Ketu:    7,
}

// SAVBindus maps each classical planet to its 12-entry contribution table,
// indexed by a sign's distance from the planet's own sign.
var SAVBindus = map[models.Planet][12]int{
	models.Sun:     {6, 5, 5, 6, 5, 5, 6, 5, 5, 6, 5, 5},
	models.Moon:    {5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	models.Mars:    {5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	models.Mercury: {5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	models.Jupiter: {5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	models.Venus:   {5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	models.Saturn:  {5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
}

// SAVGoodThreshold is the supportive-sign cutoff for SAV totals.
const SAVGoodThreshold = 30

// Benefics and Malefics partition the planets for strength and yoga rules.
var (
	Benefics = []models.Planet{models.Jupiter, models.Venus}
	Malefics = []models.Planet{models.Mars, models.Saturn, models.Rahu, models.Ketu}
)

// House group classifications used by the yoga rules.
var (
	KendraHouses   = []int{1, 4, 7, 10}
	TrikonaHouses  = []int{1, 5, 9}
	DusthanaHouses = []int{6, 8, 12}
	ManglikHouses  = []int{1, 2, 4, 7, 8, 12}
)

// TithiNames maps the 1..15 number within a paksha to its name. The 15th
// is Purnima in the waxing half and Amavasya in the waning half.
var TithiNames = [14]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
}

// NityaYogaNames maps the 27 Sun+Moon yoga segments to their names.
var NityaYogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarma", "Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva",
	"Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyan",
	"Parigha", "Shiva", "Siddha", "Sadhya", "Shubha", "Shukla",
	"Brahma", "Indra", "Vaidhriti",
}

// MovableKaranas repeat through the middle of the lunar month; the four
// FixedKaranas are pinned to its first and last half-tithis.
var (
	MovableKaranas = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Garija", "Vanija", "Vishti"}
	FixedKaranas   = [4]string{"Kimstughna", "Shakuni", "Chatushpada", "Naga"}
)

// WeekdayNames index by time.Weekday.
var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DignityTiers orders dignities for cross-chart comparison.
var DignityTiers = map[models.Dignity]int{
	models.DignityExalted:     5,
	models.DignityOwn:         4,
	models.DignityMooltrikona: 3,
	models.DignityFriend:      2,
	models.DignityNeutral:     1,
	models.DignityEnemy:       0,
	models.DignityDebilitated: -1,
}

// SignName returns the name for a sign index, normalizing out-of-range
// values first.
func SignName(sign int) string {
	return SignNames[((sign%12)+12)%12]
}
