package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/crypto/bcrypt"

	"github.com/astromitra/astro-ai-go/internal/api/handlers"
	"github.com/astromitra/astro-ai-go/internal/astro"
	"github.com/astromitra/astro-ai-go/internal/config"
	"github.com/astromitra/astro-ai-go/internal/database"
	"github.com/astromitra/astro-ai-go/internal/models"
	"github.com/astromitra/astro-ai-go/internal/services"
)

const testJWTSecret = "routes-test-secret"

type routeProvider struct {
	fail bool
}

func (p *routeProvider) RawPosition(ctx context.Context, instant time.Time, body string) (float64, float64, error) {
	if p.fail {
		return 0, 0, fmt.Errorf("sidecar unreachable")
	}
	longitudes := map[string]float64{
		"Sun": 54.2, "Moon": 310.8, "Mars": 340.1, "Mercury": 41.0,
		"Jupiter": 95.5, "Venus": 21.7, "Saturn": 279.3, "Rahu": 306.4,
	}
	return longitudes[body], 1.0, nil
}

func (p *routeProvider) RawHouses(ctx context.Context, instant time.Time, lat, lon float64, system string) (float64, [12]float64, error) {
	if p.fail {
		return 0, [12]float64{}, fmt.Errorf("sidecar unreachable")
	}
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = 131.0 + float64(i)*30
	}
	return 131.0, cusps, nil
}

func (p *routeProvider) Ayanamsa(ctx context.Context, instant time.Time, model string) (float64, error) {
	if p.fail {
		return 0, fmt.Errorf("sidecar unreachable")
	}
	return 23.5, nil
}

func (p *routeProvider) RiseSet(ctx context.Context, instant time.Time, lat, lon float64, body string) (time.Time, time.Time, error) {
	day := instant.UTC().Truncate(24 * time.Hour)
	return day.Add(6 * time.Hour), day.Add(18 * time.Hour), nil
}

func (p *routeProvider) Version() string { return "fake-1" }

type memUsers struct {
	byEmail map[string]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*models.User{}}
}

func (m *memUsers) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           fmt.Sprintf("u-%d", len(m.byEmail)+1),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	m.byEmail[email] = user
	return user, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, database.ErrNotFound
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, database.ErrNotFound
}

type memPredictions struct{}

func (memPredictions) Save(ctx context.Context, p *models.Prediction) error { return nil }

func newTestRouter(t *testing.T, provider *routeProvider, mock pgxmock.PgxPoolIface) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	engine := astro.NewEngine(provider, 12, logger)

	profiles := database.NewProfileRepository(mock)
	snapshots := database.NewSnapshotRepository(mock)
	predictions := database.NewPredictionRepository(mock)

	snapshotSvc := services.NewSnapshotService(engine, nil, nil, provider.Version(), logger)
	authSvc := services.NewAuthService(newMemUsers(), testJWTSecret, time.Hour, bcrypt.MinCost)
	predictionSvc := services.NewPredictionService(config.LLMConfig{Model: "gpt-4o-mini"}, memPredictions{}, logger)

	router := gin.New()
	router.Use(otelgin.Middleware("astro-ai-test"))
	SetupRoutes(router, &Handlers{
		Health:      handlers.NewHealthHandler(nil, nil, ephemerisHealth(provider)),
		Auth:        handlers.NewAuthHandler(authSvc, logger),
		Profiles:    handlers.NewProfileHandler(profiles, logger),
		Snapshots:   handlers.NewSnapshotHandler(snapshotSvc, profiles, snapshots, logger),
		Predictions: handlers.NewPredictionHandler(snapshotSvc, predictionSvc, profiles, predictions, logger),
	}, testJWTSecret)
	return router
}

type healthCheckerFunc func(ctx context.Context) error

func (f healthCheckerFunc) HealthCheck(ctx context.Context) error { return f(ctx) }

func ephemerisHealth(p *routeProvider) handlers.HealthChecker {
	return healthCheckerFunc(func(ctx context.Context) error {
		if p.fail {
			return fmt.Errorf("sidecar unreachable")
		}
		return nil
	})
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func calculateBody() map[string]any {
	return map[string]any{
		"birth_instant": "1990-05-15T10:30:00Z",
		"latitude":      28.6139,
		"longitude":     77.2090,
	}
}

func TestHealthEndpoint(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	w := doJSON(router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, astro.RulesetVersion, body["ruleset_version"])
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "not configured", checks["database"])
	assert.Equal(t, "healthy", checks["ephemeris"])
}

func TestRegisterAndLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	creds := map[string]any{"email": "asha@example.com", "password": "s3cretpass"}

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)
	var registered map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered["token"])

	w = doJSON(router, http.MethodPost, "/api/v1/auth/register", "", creds)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "", creds)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", "",
		map[string]any{"email": "asha@example.com", "password": "wrongpass1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidatesPayload(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]any{"email": "not-an-email", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateAnonymous(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	w := doJSON(router, http.MethodPost, "/api/v1/calculate", "", calculateBody())
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot models.CalcSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.NotEmpty(t, snapshot.Meta.InputHash)
	assert.Len(t, snapshot.Positions, 9)
	assert.Len(t, snapshot.Yogas, 15)
}

func TestCalculateSummaryOnly(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	body := calculateBody()
	body["summary_only"] = true
	w := doJSON(router, http.MethodPost, "/api/v1/calculate", "", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "current_md")
	assert.NotContains(t, w.Body.String(), "panchanga")
}

func TestCalculateRejectsBadInstant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	body := calculateBody()
	body["birth_instant"] = "15/05/1990"
	w := doJSON(router, http.MethodPost, "/api/v1/calculate", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateRejectsExcessiveUncertainty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	body := calculateBody()
	body["uncertainty_minutes"] = 10000
	w := doJSON(router, http.MethodPost, "/api/v1/calculate", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateEphemerisDown(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{fail: true}, mock)

	w := doJSON(router, http.MethodPost, "/api/v1/calculate", "", calculateBody())
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	w := doJSON(router, http.MethodGet, "/api/v1/profiles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileLookupScopedToOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	router := newTestRouter(t, &routeProvider{}, mock)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "",
		map[string]any{"email": "asha@example.com", "password": "s3cretpass"})
	require.Equal(t, http.StatusCreated, w.Code)
	var registered map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	token := registered["token"].(string)

	mock.ExpectQuery(`SELECT id, user_id, name`).
		WithArgs("p-1", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	w = doJSON(router, http.MethodGet, "/api/v1/profiles/p-1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
