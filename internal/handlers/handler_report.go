package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
	"github.com/dukaanbook/dukaanbook_backend/internal/middleware"
)

// reportHandler handles HTTP requests for ledger reports
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers report generation routes
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reportGroup := rg.Group("/reports")
	{
		reportGroup.GET("/summary", h.getSummaryReport)
		reportGroup.GET("/daily-statement", h.getDailyStatement)
	}
}

// resolveScope turns the shopId query parameter into an authorized shop
// scope. "all" is reserved for superadmins; admins are pinned to their own
// shop regardless of what they ask for.
func resolveScope(c *gin.Context) (domain.ShopScope, bool) {
	role, _ := middleware.GetUserRoleFromContext(c)
	userShop, _ := middleware.GetUserShopFromContext(c)
	requested := c.Query("shopId")

	if requested == "all" {
		if role != domain.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cross-shop reports require superadmin role"})
			return domain.ShopScope{}, false
		}
		return domain.AllShops(), true
	}

	if role == domain.RoleSuperAdmin {
		if requested == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shopId query parameter required"})
			return domain.ShopScope{}, false
		}
		return domain.SingleShop(requested), true
	}

	if userShop == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "No shop associated with this account"})
		return domain.ShopScope{}, false
	}
	if requested != "" && requested != userShop {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only report on your own shop"})
		return domain.ShopScope{}, false
	}
	return domain.SingleShop(userShop), true
}

// authorizeShop ensures the caller may touch the given shop's data. Admins
// are restricted to their own shop; superadmins may touch any.
func authorizeShop(c *gin.Context, shopID string) bool {
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == domain.RoleSuperAdmin {
		return true
	}
	userShop, _ := middleware.GetUserShopFromContext(c)
	if userShop != shopID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only access your own shop's data"})
		return false
	}
	return true
}

// getSummaryReport godoc
// @Summary Generate summary report
// @Description Aggregates transactions over a date window and returns JSON or an uploaded PDF/Excel artifact URL
// @Tags reports
// @Produce json
// @Param shopId query string false "Shop ID, or 'all' for superadmins"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Param customerId query string false "Restrict to one customer"
// @Param format query string false "json (default), pdf or excel"
// @Success 200 {object} dto.ReportResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Report generation failed"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportHandler) getSummaryReport(c *gin.Context) {
	h.generate(c, h.reportService.GenerateSummaryReport)
}

// getDailyStatement godoc
// @Summary Generate daily statement
// @Description Statement variant carrying an opening balance row and per-row running balances
// @Tags reports
// @Produce json
// @Param shopId query string false "Shop ID, or 'all' for superadmins"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Param customerId query string false "Restrict to one customer"
// @Param format query string false "json (default), pdf or excel"
// @Success 200 {object} dto.ReportResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Report generation failed"
// @Security BearerAuth
// @Router /reports/daily-statement [get]
func (h *reportHandler) getDailyStatement(c *gin.Context) {
	h.generate(c, h.reportService.GenerateDailyStatement)
}

func (h *reportHandler) generate(c *gin.Context, run func(ctx context.Context, req dto.ReportRequest) (*dto.ReportResult, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := resolveScope(c)
	if !ok {
		return
	}

	req := dto.ReportRequest{
		Scope:      scope,
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		CustomerID: c.Query("customerId"),
		Format:     c.Query("format"),
	}

	logger = logger.With(
		slog.String("scope", scope.String()),
		slog.String("format", req.Format),
	)
	logger.Info("Received report generation request")

	result, err := run(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	if result.Artifact != nil {
		logger.Info("Report artifact uploaded", slog.String("url", result.Artifact.URL))
		c.JSON(http.StatusOK, result.Artifact)
		return
	}
	c.JSON(http.StatusOK, result.Response)
}
