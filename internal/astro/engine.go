package astro

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/astromitra/astro-ai-go/internal/ephemeris"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// RulesetVersion stamps snapshots with the rule-table revision that
// produced them. Bump on any change to the fixed tables or detector logic.
const RulesetVersion = "1.0.0"

// Engine orchestrates one full calculation run. All randomness-free: the
// same input, query instant and ephemeris data always produce the same
// snapshot.
type Engine struct {
	eph       ephemeris.Provider
	positions *PositionProvider
	panchanga *PanchangaCalculator
	aspects   *AspectEngine
	dasha     *DashaCalculator
	transits  *TransitCalculator
	logger    *logrus.Logger
}

// NewEngine wires the calculation stages around one ephemeris source.
func NewEngine(eph ephemeris.Provider, dashaHorizonMonths int, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	positions := NewPositionProvider(eph)
	return &Engine{
		eph:       eph,
		positions: positions,
		panchanga: NewPanchangaCalculator(eph),
		aspects:   NewAspectEngine(),
		dasha:     NewDashaCalculator(dashaHorizonMonths),
		transits:  NewTransitCalculator(positions),
		logger:    logger,
	}
}

// ValidateInput rejects malformed birth data before any ephemeris call.
func ValidateInput(input models.BirthInput) error {
	if input.Instant.IsZero() {
		return &ValidationError{Field: "instant", Reason: "must be set"}
	}
	if input.Latitude < -90 || input.Latitude > 90 {
		return &ValidationError{Field: "latitude", Reason: "must be within [-90, 90]"}
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return &ValidationError{Field: "longitude", Reason: "must be within [-180, 180]"}
	}
	if !input.Ayanamsa.Valid() {
		return &ValidationError{Field: "ayanamsa", Reason: fmt.Sprintf("unsupported model %q", input.Ayanamsa)}
	}
	if !input.HouseSystem.Valid() {
		return &ValidationError{Field: "house_system", Reason: fmt.Sprintf("unsupported system %q", input.HouseSystem)}
	}
	if input.UncertaintyMinutes < 0 || input.UncertaintyMinutes > 10 {
		return &ValidationError{Field: "uncertainty_minutes", Reason: "must be within [0, 10]"}
	}
	return nil
}

// chartCore is the recomputable heart of a chart: everything the
// sensitivity pass needs per time variant.
type chartCore struct {
	positions    map[models.Planet]models.PlanetPosition
	ascendant    models.Ascendant
	houses       []models.House
	planetHouses map[models.Planet]int
}

func (e *Engine) computeCore(ctx context.Context, instant time.Time, input models.BirthInput) (chartCore, error) {
	positions, err := e.positions.Positions(ctx, instant, input.Ayanamsa, models.AllPlanets)
	if err != nil {
		return chartCore{}, err
	}
	asc, cusps, err := e.positions.Ascendant(ctx, instant, input.Latitude, input.Longitude, input.Ayanamsa, input.HouseSystem)
	if err != nil {
		return chartCore{}, err
	}
	var houses []models.House
	var planetHouses map[models.Planet]int
	if input.HouseSystem == models.HouseSystemWholeSign {
		houses = WholeSignHouses(asc)
		planetHouses = AssignHouses(positions, houses)
	} else {
		houses = CuspHouses(cusps)
		planetHouses = AssignHousesByCusp(positions, cusps)
	}
	return chartCore{
		positions:    positions,
		ascendant:    asc,
		houses:       houses,
		planetHouses: planetHouses,
	}, nil
}

// Calculate runs the full pipeline for one birth input. The now argument
// is the query instant for dashas, transits and the snapshot timestamp;
// callers pass it in so cached and recomputed results can agree.
func (e *Engine) Calculate(ctx context.Context, input models.BirthInput, now time.Time) (*models.CalcSnapshot, error) {
	input = input.Normalized()
	if err := ValidateInput(input); err != nil {
		return nil, err
	}
	now = now.UTC()

	core, err := e.computeCore(ctx, input.Instant, input)
	if err != nil {
		return nil, err
	}

	panchanga, err := e.panchanga.Compute(ctx, input.Instant, input.Latitude, input.Longitude,
		core.positions[models.Sun], core.positions[models.Moon])
	if err != nil {
		return nil, err
	}

	dignities := Dignities(core.positions)
	combustion := Combustion(core.positions)
	aspects := e.aspects.Evaluate(core.positions, core.houses)

	d1 := BuildRashiChart(core.ascendant, core.positions, core.houses, core.planetHouses)
	d9 := BuildNavamsaChart(core.ascendant, core.positions, dignities)

	dasha, err := e.dasha.Compute(core.positions[models.Moon].Longitude, input.Instant, now)
	if err != nil {
		return nil, err
	}

	transits, err := e.transits.Compute(ctx, now, input.Ayanamsa, core.ascendant.Sign, core.positions[models.Moon].Sign)
	if err != nil {
		return nil, err
	}

	sav := Sarvashtakavarga(core.positions)
	bhavaBala := BhavaBala(core.houses, core.planetHouses, dignities, combustion, aspects)
	yogas := DetectYogas(YogaContext{
		Positions:    core.positions,
		Houses:       core.houses,
		PlanetHouses: core.planetHouses,
		Dignities:    dignities,
		Aspects:      aspects,
	})

	snapshot := &models.CalcSnapshot{
		Meta: models.CalcMeta{
			Ayanamsa:         input.Ayanamsa,
			HouseSystem:      input.HouseSystem,
			RulesetVersion:   RulesetVersion,
			EphemerisVersion: e.eph.Version(),
			CalcTimestamp:    now,
			InputHash:        InputHash(input),
		},
		Panchanga:    panchanga,
		D1:           d1,
		D9:           d9,
		Positions:    core.positions,
		PlanetHouses: core.planetHouses,
		Dignities:    dignities,
		Combustion:   combustion,
		Aspects:      aspects,
		Dasha:        dasha,
		Transits:     transits,
		SAV:          sav,
		BhavaBala:    bhavaBala,
		Yogas:        yogas,
	}

	if input.UncertaintyMinutes > 0 {
		report, err := e.sensitivity(ctx, input, now, core, dasha)
		if err != nil {
			// Sensitivity is advisory: a variant failure degrades the
			// snapshot rather than aborting it.
			e.logger.WithField("error", err.Error()).Warn("sensitivity analysis skipped")
		} else {
			snapshot.Sensitivity = report
		}
	}

	return snapshot, nil
}

// InputHash fingerprints a normalized birth input. Equal inputs under the
// same settings hash identically regardless of field ordering at the call
// site.
func InputHash(input models.BirthInput) string {
	n := input.Normalized()
	canonical := fmt.Sprintf("%s|%.6f|%.6f|%.1f|%s|%s|%d",
		n.Instant.Format(time.RFC3339Nano), n.Latitude, n.Longitude, n.AltitudeM,
		n.Ayanamsa, n.HouseSystem, n.UncertaintyMinutes)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// Serialize encodes a snapshot as gzip-compressed JSON.
func Serialize(snapshot *models.CalcSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(zw).Encode(snapshot); err != nil {
		zw.Close()
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize is the exact inverse of Serialize.
func Deserialize(data []byte) (*models.CalcSnapshot, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}
	var snapshot models.CalcSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}

// Summarize flattens a snapshot into the view the narrative layer
// consumes. It reshapes computed fields only; nothing is recalculated.
func Summarize(snapshot *models.CalcSnapshot) models.CalcSummary {
	summary := models.CalcSummary{
		Ascendant:   snapshot.D1.Ascendant,
		Houses:      snapshot.D1.Houses,
		Aspects:     snapshot.Aspects,
		D9AscSign:   SignName(snapshot.D9.AscendantSign),
		D9Signs:     make(map[models.Planet]string, len(snapshot.D9.PlanetSigns)),
		D9Better:    snapshot.D9.BetterThanD1,
		BhavaBala:   snapshot.BhavaBala,
		CurrentMD:   snapshot.Dasha.Mahadasha.Planet,
		CurrentAD:   snapshot.Dasha.Antardasha.Planet,
		UpcomingADs: snapshot.Dasha.UpcomingADs,
		Transits:    snapshot.Transits,
		SAV:         snapshot.SAV.Values,
	}
	for planet, sign := range snapshot.D9.PlanetSigns {
		summary.D9Signs[planet] = SignName(sign)
	}
	for _, entry := range snapshot.D1.Planets {
		summary.Planets = append(summary.Planets, models.SummaryPlanet{
			Name:       entry.Name,
			Sign:       entry.SignName,
			Degree:     entry.Degree,
			Dignity:    snapshot.Dignities[entry.Name].Dignity,
			Retrograde: entry.Retrograde,
			Combust:    snapshot.Combustion[entry.Name],
			House:      entry.House,
		})
	}
	for _, y := range snapshot.Yogas {
		summary.Yogas = append(summary.Yogas, models.SummaryYoga{Name: y.Name, Present: y.Present})
	}
	if snapshot.Sensitivity != nil {
		summary.Sensitivity = &models.SummarySensitivity{
			AscendantFlip:      snapshot.Sensitivity.AscendantFlips,
			MoonFlip:           snapshot.Sensitivity.MoonSignFlips,
			DashaBoundaryRisky: snapshot.Sensitivity.DashaBoundaryRisky,
		}
	}
	return summary
}
