package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/astromitra/astro-ai-go/internal/database"
	"github.com/astromitra/astro-ai-go/internal/middleware"
	"github.com/astromitra/astro-ai-go/internal/services"
)

// PredictionHandler exposes the narrative layer.
type PredictionHandler struct {
	snapshots   *services.SnapshotService
	predictions *services.PredictionService
	profiles    *database.ProfileRepository
	history     *database.PredictionRepository
	logger      *logrus.Logger
}

// NewPredictionHandler creates a prediction handler.
func NewPredictionHandler(snapshots *services.SnapshotService, predictions *services.PredictionService, profiles *database.ProfileRepository, history *database.PredictionRepository, logger *logrus.Logger) *PredictionHandler {
	return &PredictionHandler{
		snapshots:   snapshots,
		predictions: predictions,
		profiles:    profiles,
		history:     history,
		logger:      logger,
	}
}

type predictRequest struct {
	Topic    string `json:"topic" binding:"max=40"`
	Question string `json:"question" binding:"required,max=2000"`
}

// Predict computes (or reuses) the profile's snapshot and asks the
// narrative layer the given question. A missing topic is classified from
// the question by the prediction service.
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.UserID(c)
	profile, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"), userID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Profile fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	snapshot, err := h.snapshots.ComputeForProfile(c.Request.Context(), profile, time.Now().UTC())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Snapshot computation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "chart calculation unavailable"})
		return
	}

	prediction, err := h.predictions.Predict(c.Request.Context(), snapshot, userID, profile.ID, req.Topic, req.Question)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Prediction failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "prediction unavailable"})
		return
	}
	c.JSON(http.StatusOK, prediction)
}

// History lists past predictions for a profile.
func (h *PredictionHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	predictions, err := h.history.ListByProfile(c.Request.Context(), c.Param("id"), middleware.UserID(c), limit)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Prediction history failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list predictions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}
