package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baatie/controllerpro/internal/apperrors"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/dto"
	"github.com/baatie/controllerpro/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles aggregate and advisory requests.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers dashboard and advisory routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/advice", h.getAdvice)
		dashboard.POST("/market-search", h.marketSearch)
	}
}

// getSummary godoc
// @Summary Get dashboard aggregates
// @Description Computes total income, pending income, total expenses and net profit for one business.
// @Tags dashboard
// @Produce json
// @Param businessId query string true "Business ID"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	businessID := c.Query("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "businessId query parameter is required"})
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else {
			logger.Error("Failed to compute summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

// getAdvice godoc
// @Summary Get financial advice
// @Description Assembles the business's current aggregates into an advisory context and asks the provider for advice. Advice is empty when the provider is unavailable.
// @Tags dashboard
// @Produce json
// @Param businessId query string true "Business ID"
// @Success 200 {object} dto.AdviceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/advice [get]
func (h *dashboardHandler) getAdvice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	businessID := c.Query("businessId")
	if businessID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "businessId query parameter is required"})
		return
	}

	advice, err := h.dashboardService.Advise(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else {
			logger.Error("Failed to get advice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get advice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}

// marketSearch godoc
// @Summary Run a market research query
// @Description Runs a single-shot market research query through the advisory provider and returns text plus citations.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param query body dto.MarketSearchRequest true "Research query"
// @Success 200 {object} dto.MarketSearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/market-search [post]
func (h *dashboardHandler) marketSearch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MarketSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	result, err := h.dashboardService.MarketTrends(c.Request.Context(), req.Query)
	if err != nil {
		logger.Error("Failed to run market search", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to run market search"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMarketSearchResponse(result))
}
