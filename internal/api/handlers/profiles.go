package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/astromitra/astro-ai-go/internal/database"
	"github.com/astromitra/astro-ai-go/internal/middleware"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// ProfileHandler exposes birth-profile CRUD.
type ProfileHandler struct {
	profiles *database.ProfileRepository
	logger   *logrus.Logger
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler(profiles *database.ProfileRepository, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

type createProfileRequest struct {
	Name               string  `json:"name" binding:"required"`
	Gender             string  `json:"gender"`
	BirthInstant       string  `json:"birth_instant" binding:"required"`
	Latitude           float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude          float64 `json:"longitude" binding:"min=-180,max=180"`
	AltitudeM          float64 `json:"altitude_m"`
	Place              string  `json:"place"`
	Ayanamsa           string  `json:"ayanamsa"`
	HouseSystem        string  `json:"house_system"`
	UncertaintyMinutes int     `json:"uncertainty_minutes" binding:"min=0,max=10"`
}

// Create stores a new birth profile.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instant, err := time.Parse(time.RFC3339, req.BirthInstant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_instant must be RFC3339"})
		return
	}

	profile := &models.Profile{
		UserID:             middleware.UserID(c),
		Name:               req.Name,
		Gender:             req.Gender,
		BirthInstant:       instant.UTC(),
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		AltitudeM:          req.AltitudeM,
		Place:              req.Place,
		Ayanamsa:           models.Ayanamsa(req.Ayanamsa),
		HouseSystem:        models.HouseSystem(req.HouseSystem),
		UncertaintyMinutes: req.UncertaintyMinutes,
	}
	if profile.Ayanamsa == "" {
		profile.Ayanamsa = models.AyanamsaLahiri
	}
	if profile.HouseSystem == "" {
		profile.HouseSystem = models.HouseSystemWholeSign
	}
	if !profile.Ayanamsa.Valid() || !profile.HouseSystem.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported ayanamsa or house system"})
		return
	}

	if err := h.profiles.Create(c.Request.Context(), profile); err != nil {
		h.logger.WithField("error", err.Error()).Error("Profile creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// List returns the caller's profiles.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profiles.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Profile listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// Get returns one profile owned by the caller.
func (h *ProfileHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, profile)
}

// Delete removes one profile owned by the caller.
func (h *ProfileHandler) Delete(c *gin.Context) {
	err := h.profiles.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Profile deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete profile"})
		return
	}
	c.Status(http.StatusNoContent)
}
