package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dog-ocean/internal/domain"
	"dog-ocean/internal/service"
)

// SessionHandler expone sesiones, scoring y features de IA.
type SessionHandler struct {
	logger   *zap.Logger
	sessions *service.SessionService
}

func NewSessionHandler(logger *zap.Logger, sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{logger: logger, sessions: sessions}
}

// CreateSession maneja POST /sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		OwnerName   string `json:"owner_name" binding:"required"`
		DogName     string `json:"dog_name" binding:"required"`
		AgeYears    int    `json:"age_years"`
		AgeMonths   int    `json:"age_months"`
		Gender      string `json:"gender" binding:"required"`
		Neutered    bool   `json:"neutered"`
		Breed       string `json:"breed"`
		IntendedUse string `json:"intended_use"`
		BatteryName string `json:"battery_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dog, err := domain.NewDogData(req.OwnerName, req.DogName, req.AgeYears, req.AgeMonths, gender, req.Neutered, req.Breed, req.IntendedUse)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.CreateSession(dog, req.BatteryName)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": toSessionView(session)})
}

// ListSessions maneja GET /sessions.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	ids, err := h.sessions.ListSessions()
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": ids})
}

// GetSession maneja GET /sessions/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": toSessionView(session)})
}

// RecordResult maneja PUT /sessions/:id/results.
func (h *SessionHandler) RecordResult(c *gin.Context) {
	var req struct {
		TestNumber int    `json:"test_number" binding:"required"`
		Score      *int   `json:"score" binding:"required"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid record result request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessions.RecordResult(c.Param("id"), req.TestNumber, *req.Score, req.Notes)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": toSessionView(session)})
}

// SetNotes maneja PUT /sessions/:id/notes.
func (h *SessionHandler) SetNotes(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessions.SetSessionNotes(c.Param("id"), req.Notes)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": toSessionView(session)})
}

// SetOwnerProfile maneja PUT /sessions/:id/owner-profile.
func (h *SessionHandler) SetOwnerProfile(c *gin.Context) {
	var req domain.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.sessions.SetOwnerProfile(c.Param("id"), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": toSessionView(session)})
}

// Score maneja GET /sessions/:id/scores.
func (h *SessionHandler) Score(c *gin.Context) {
	scores, err := h.sessions.Score(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sums":     scores.Sums,
		"counts":   scores.Counts,
		"averages": scores.Averages(),
		"profile":  scores.Profile(),
	})
}

// Compare maneja GET /sessions/:id/comparison.
func (h *SessionHandler) Compare(c *gin.Context) {
	comparison, err := h.sessions.Compare(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

// GenerateIdealProfile maneja POST /sessions/:id/ideal-profile.
// El query param force=true saltea el cache de perfiles generados.
func (h *SessionHandler) GenerateIdealProfile(c *gin.Context) {
	force := c.Query("force") == "true"

	session, warnings, err := h.sessions.GenerateIdealProfile(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		h.logger.Warn("ideal profile generation failed",
			zap.String("session_id", c.Param("id")),
			zap.Error(err),
		)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":  toSessionView(session),
		"warnings": toWarningViews(warnings),
	})
}

// GenerateAssessment maneja POST /sessions/:id/assessment.
func (h *SessionHandler) GenerateAssessment(c *gin.Context) {
	session, err := h.sessions.GenerateAssessment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Warn("assessment generation failed",
			zap.String("session_id", c.Param("id")),
			zap.Error(err),
		)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": toSessionView(session)})
}
