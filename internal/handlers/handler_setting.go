package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
	"github.com/dukaanbook/dukaanbook_backend/internal/middleware"
)

// settingHandler handles HTTP requests for per-shop settings
type settingHandler struct {
	settingService portssvc.SettingSvcFacade
}

func newSettingHandler(ss portssvc.SettingSvcFacade) *settingHandler {
	return &settingHandler{settingService: ss}
}

// registerSettingRoutes registers settings routes
func registerSettingRoutes(rg *gin.RouterGroup, settingService portssvc.SettingSvcFacade) {
	h := newSettingHandler(settingService)

	settingGroup := rg.Group("/settings")
	{
		settingGroup.GET("/:shop_id", h.getSetting)
		settingGroup.PUT("/:shop_id", h.updateSetting)
	}
}

// getSetting godoc
// @Summary Get a shop's settings
// @Tags settings
// @Produce json
// @Param shop_id path string true "Shop ID"
// @Success 200 {object} domain.Setting
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /settings/{shop_id} [get]
func (h *settingHandler) getSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shopID := c.Param("shop_id")

	if !authorizeShop(c, shopID) {
		return
	}

	setting, err := h.settingService.GetSetting(c.Request.Context(), shopID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// updateSetting godoc
// @Summary Update a shop's settings
// @Description Opening balance is write-once; later values are ignored
// @Tags settings
// @Accept json
// @Produce json
// @Param shop_id path string true "Shop ID"
// @Param settings body dto.UpdateSettingRequest true "Fields to change"
// @Success 200 {object} domain.Setting
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /settings/{shop_id} [put]
func (h *settingHandler) updateSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shopID := c.Param("shop_id")

	if !authorizeShop(c, shopID) {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid settings payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.settingService.UpdateSetting(c.Request.Context(), shopID, req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
