package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/astromitra/astro-ai-go/internal/astro"
	"github.com/astromitra/astro-ai-go/internal/database"
	"github.com/astromitra/astro-ai-go/internal/middleware"
	"github.com/astromitra/astro-ai-go/internal/models"
	"github.com/astromitra/astro-ai-go/internal/services"
)

// SnapshotHandler exposes chart calculation endpoints.
type SnapshotHandler struct {
	service   *services.SnapshotService
	profiles  *database.ProfileRepository
	snapshots *database.SnapshotRepository
	logger    *logrus.Logger
}

// NewSnapshotHandler creates a snapshot handler.
func NewSnapshotHandler(service *services.SnapshotService, profiles *database.ProfileRepository, snapshots *database.SnapshotRepository, logger *logrus.Logger) *SnapshotHandler {
	return &SnapshotHandler{service: service, profiles: profiles, snapshots: snapshots, logger: logger}
}

type calculateRequest struct {
	BirthInstant       string  `json:"birth_instant" binding:"required"`
	Latitude           float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude          float64 `json:"longitude" binding:"min=-180,max=180"`
	AltitudeM          float64 `json:"altitude_m"`
	Ayanamsa           string  `json:"ayanamsa"`
	HouseSystem        string  `json:"house_system"`
	UncertaintyMinutes int     `json:"uncertainty_minutes" binding:"min=0,max=10"`
	SummaryOnly        bool    `json:"summary_only"`
}

// Calculate computes a snapshot for raw birth data without persisting it.
func (h *SnapshotHandler) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	instant, err := time.Parse(time.RFC3339, req.BirthInstant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_instant must be RFC3339"})
		return
	}

	input := models.BirthInput{
		Instant:            instant,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		AltitudeM:          req.AltitudeM,
		Ayanamsa:           models.Ayanamsa(req.Ayanamsa),
		HouseSystem:        models.HouseSystem(req.HouseSystem),
		UncertaintyMinutes: req.UncertaintyMinutes,
	}

	snapshot, err := h.service.Compute(c.Request.Context(), input, time.Now().UTC())
	if err != nil {
		h.respondCalcError(c, err)
		return
	}

	if req.SummaryOnly {
		c.JSON(http.StatusOK, astro.Summarize(snapshot))
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ComputeForProfile computes and persists a snapshot for a stored profile.
func (h *SnapshotHandler) ComputeForProfile(c *gin.Context) {
	profile, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Profile fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	snapshot, err := h.service.ComputeForProfile(c.Request.Context(), profile, time.Now().UTC())
	if err != nil {
		h.respondCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Get returns a persisted snapshot by input hash.
func (h *SnapshotHandler) Get(c *gin.Context) {
	snapshot, ok := h.loadStored(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetSummary returns the flattened view of a persisted snapshot.
func (h *SnapshotHandler) GetSummary(c *gin.Context) {
	snapshot, ok := h.loadStored(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, astro.Summarize(snapshot))
}

func (h *SnapshotHandler) loadStored(c *gin.Context) (*models.CalcSnapshot, bool) {
	profile, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return nil, false
	}
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Profile fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return nil, false
	}

	snapshot, err := h.service.LoadStored(c.Request.Context(), profile.ID, c.Param("hash"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		return nil, false
	}
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Snapshot load failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return nil, false
	}
	return snapshot, true
}

// List returns stored snapshot metadata for a profile.
func (h *SnapshotHandler) List(c *gin.Context) {
	stored, err := h.snapshots.ListByProfile(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Snapshot listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list snapshots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": stored})
}

func (h *SnapshotHandler) respondCalcError(c *gin.Context, err error) {
	var vErr *astro.ValidationError
	var ephErr *astro.EphemerisError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.As(err, &ephErr):
		h.logger.WithField("error", err.Error()).Error("Ephemeris failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "ephemeris service unavailable"})
	default:
		h.logger.WithField("error", err.Error()).Error("Calculation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "calculation failed"})
	}
}
