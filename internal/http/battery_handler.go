package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dog-ocean/internal/service"
	"dog-ocean/internal/storage"
)

// BatteryHandler expone el registro de baterias.
type BatteryHandler struct {
	logger    *zap.Logger
	batteries *service.BatteryRegistry
}

func NewBatteryHandler(logger *zap.Logger, batteries *service.BatteryRegistry) *BatteryHandler {
	return &BatteryHandler{logger: logger, batteries: batteries}
}

// ListBatteries maneja GET /batteries.
func (h *BatteryHandler) ListBatteries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"batteries": h.batteries.Names()})
}

// GetBattery maneja GET /batteries/:name.
func (h *BatteryHandler) GetBattery(c *gin.Context) {
	battery, err := h.batteries.Get(c.Param("name"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"battery": battery})
}

// ImportBattery maneja POST /batteries: el body es la planilla CSV cruda y el
// nombre viene en el query param "name".
func (h *BatteryHandler) ImportBattery(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing battery name"})
		return
	}

	battery, err := storage.ImportBattery(c.Request.Body, name)
	if err != nil {
		h.logger.Warn("battery import failed", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.batteries.Register(battery)
	h.logger.Info("battery imported",
		zap.String("name", battery.Name),
		zap.Int("tests", len(battery.Items)),
	)
	c.JSON(http.StatusCreated, gin.H{"battery": battery})
}
