package astro

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/astromitra/astro-ai-go/internal/models"
)

var (
	yearDaysDec   = decimal.NewFromFloat(YearDays)
	cycleYearsDec = decimal.NewFromInt(DashaCycleYears)
	cycleDaysDec  = cycleYearsDec.Mul(yearDaysDec)
	nsPerDay      = decimal.NewFromInt(24 * 60 * 60 * 1_000_000_000)
)

// DashaCalculator resolves the Vimshottari period hierarchy. All span
// arithmetic runs on decimals so that sibling periods stay contiguous and
// sum exactly to their parent.
type DashaCalculator struct {
	horizonMonths int
}

// NewDashaCalculator creates a dasha calculator. horizonMonths bounds the
// upcoming-Antardasha listing.
func NewDashaCalculator(horizonMonths int) *DashaCalculator {
	if horizonMonths <= 0 {
		horizonMonths = 12
	}
	return &DashaCalculator{horizonMonths: horizonMonths}
}

// dashaSpan is one period segment during hierarchy construction.
type dashaSpan struct {
	planet models.Planet
	start  time.Time
	end    time.Time
	days   decimal.Decimal
}

// Compute resolves the active Mahadasha, Antardasha and Paryantar-dasha at
// the query instant, plus the Antardashas beginning within the horizon.
// The starting ruler is the lord of the Moon's nakshatra at birth, and the
// fraction of the nakshatra already traversed is the fraction of that
// ruler's period already elapsed.
func (c *DashaCalculator) Compute(moonLongitude float64, birth, now time.Time) (models.DashaInfo, error) {
	birth = birth.UTC()
	now = now.UTC()

	nak, degInNak := nakshatraOf(moonLongitude)
	lord := NakshatraLords[nak]
	lordIdx := dashaOrderIndex(lord)

	elapsedFrac := decimal.NewFromFloat(degInNak / NakshatraSpan)
	lordDays := decimal.NewFromInt(int64(DashaYears[lord])).Mul(yearDaysDec)
	cycleStart := addDays(birth, elapsedFrac.Mul(lordDays).Neg())

	if now.Before(birth) {
		return models.DashaInfo{}, calcErrorf("dasha", "query instant %s precedes birth %s", now.Format(time.RFC3339), birth.Format(time.RFC3339))
	}

	// Lives past one full cycle wrap: reduce the elapsed time modulo the
	// 120-year cycle and shift the cycle start forward accordingly.
	elapsedDays := decimal.NewFromInt(now.Sub(cycleStart).Nanoseconds()).Div(nsPerDay)
	wholeCycles := elapsedDays.Div(cycleDaysDec).Floor()
	if wholeCycles.Sign() > 0 {
		cycleStart = addDays(cycleStart, wholeCycles.Mul(cycleDaysDec))
	}

	// Two cycles of Mahadashas so the horizon can cross a cycle boundary.
	cycle1 := dashaSpan{start: cycleStart, end: addDays(cycleStart, cycleDaysDec), days: cycleDaysDec}
	mahadashas := subdivide(cycle1, lordIdx)
	cycle2 := dashaSpan{start: cycle1.end, end: addDays(cycle1.end, cycleDaysDec), days: cycleDaysDec}
	mahadashas = append(mahadashas, subdivide(cycle2, lordIdx)...)

	mdIdx := containingIndex(mahadashas, now)
	if mdIdx < 0 {
		return models.DashaInfo{}, calcErrorf("dasha", "no mahadasha contains %s", now.Format(time.RFC3339))
	}
	md := mahadashas[mdIdx]

	antardashas := subdivide(md, dashaOrderIndex(md.planet))
	adIdx := containingIndex(antardashas, now)
	if adIdx < 0 {
		return models.DashaInfo{}, calcErrorf("dasha", "no antardasha contains %s", now.Format(time.RFC3339))
	}
	ad := antardashas[adIdx]

	paryantars := subdivide(ad, dashaOrderIndex(ad.planet))
	pdIdx := containingIndex(paryantars, now)
	if pdIdx < 0 {
		return models.DashaInfo{}, calcErrorf("dasha", "no paryantar-dasha contains %s", now.Format(time.RFC3339))
	}
	pd := paryantars[pdIdx]

	return models.DashaInfo{
		Mahadasha:   toPeriod(md, now),
		Antardasha:  toPeriod(ad, now),
		Paryantar:   toPeriod(pd, now),
		UpcomingADs: c.upcoming(mahadashas, now),
	}, nil
}

// upcoming lists every Antardasha intersecting (now, now+horizon], with
// end dates clipped at the horizon.
func (c *DashaCalculator) upcoming(mahadashas []dashaSpan, now time.Time) []models.UpcomingAntardasha {
	horizon := now.AddDate(0, c.horizonMonths, 0)
	var out []models.UpcomingAntardasha
	for _, md := range mahadashas {
		if !md.start.Before(horizon) {
			break
		}
		if !md.end.After(now) {
			continue
		}
		for _, ad := range subdivide(md, dashaOrderIndex(md.planet)) {
			if !ad.end.After(now) || !ad.start.Before(horizon) {
				continue
			}
			end := ad.end
			if end.After(horizon) {
				end = horizon
			}
			out = append(out, models.UpcomingAntardasha{
				Mahadasha: md.planet,
				Planet:    ad.planet,
				StartDate: ad.start,
				EndDate:   end,
			})
		}
	}
	return out
}

// subdivide splits a parent period into nine children in cycle order
// starting from the given planet index. Each child's share is its planet's
// years over the 120-year cycle; boundaries accumulate from the parent
// start so children tile the parent with no gaps, and the last child is
// pinned to the parent end.
func subdivide(parent dashaSpan, startIdx int) []dashaSpan {
	out := make([]dashaSpan, 9)
	cursor := parent.start
	acc := decimal.Zero
	for i := 0; i < 9; i++ {
		p := DashaOrder[(startIdx+i)%9]
		days := parent.days.Mul(decimal.NewFromInt(int64(DashaYears[p]))).Div(cycleYearsDec)
		acc = acc.Add(days)
		end := addDays(parent.start, acc)
		if i == 8 {
			end = parent.end
		}
		out[i] = dashaSpan{planet: p, start: cursor, end: end, days: days}
		cursor = end
	}
	return out
}

func containingIndex(spans []dashaSpan, t time.Time) int {
	for i, s := range spans {
		if !t.Before(s.start) && t.Before(s.end) {
			return i
		}
	}
	return -1
}

func toPeriod(s dashaSpan, now time.Time) models.DashaPeriod {
	remaining := decimal.NewFromInt(s.end.Sub(now).Nanoseconds()).Div(nsPerDay).Div(yearDaysDec)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}
	return models.DashaPeriod{
		Planet:         s.planet,
		StartDate:      s.start,
		EndDate:        s.end,
		TotalYears:     s.days.Div(yearDaysDec).InexactFloat64(),
		RemainingYears: remaining.InexactFloat64(),
	}
}

func addDays(t time.Time, days decimal.Decimal) time.Time {
	return t.Add(time.Duration(days.Mul(nsPerDay).IntPart()))
}

func dashaOrderIndex(p models.Planet) int {
	for i, q := range DashaOrder {
		if q == p {
			return i
		}
	}
	return 0
}
