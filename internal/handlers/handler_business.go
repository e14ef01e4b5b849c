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

// businessHandler handles HTTP requests related to business profiles.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers routes related to business profiles.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:business_id", h.getBusiness)
		businesses.PUT("/:business_id", h.updateBusiness)
		businesses.DELETE("/:business_id", h.deleteBusiness)
	}
}

// createBusiness godoc
// @Summary Create a new business profile
// @Description Creates a new business profile, generating an id when none is supplied.
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	created, err := h.businessService.CreateBusiness(c.Request.Context(), req.ToDomainBusiness())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create business"})
		}
		return
	}

	logger.Info("Business created", slog.String("business_id", created.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(created))
}

// listBusinesses godoc
// @Summary List business profiles
// @Description Retrieves every business profile in the system.
// @Tags businesses
// @Produce json
// @Success 200 {object} dto.ListBusinessesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	businesses, err := h.businessService.ListBusinesses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list businesses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list businesses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessesResponse(businesses))
}

// getBusiness godoc
// @Summary Get a business profile
// @Description Retrieves a specific business profile by ID.
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	business, err := h.businessService.FindBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else {
			logger.Error("Failed to get business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get business"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateBusiness godoc
// @Summary Update a business profile
// @Description Replaces a business profile in place with the supplied entity.
// @Tags businesses
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param business body dto.UpdateBusinessRequest true "Business details"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id} [put]
func (h *businessHandler) updateBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	updated, err := h.businessService.UpdateBusiness(c.Request.Context(), req.ToDomainBusiness(businessID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update business"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(updated))
}

// deleteBusiness godoc
// @Summary Delete a business profile
// @Description Deletes a business profile and cascades over its clients, invoices, expenses and budgets. Refuses to delete the last remaining profile. Returns the next business to select.
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.DeleteBusinessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{business_id} [delete]
func (h *businessHandler) deleteBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	next, err := h.businessService.DeleteBusiness(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
		} else if errors.Is(err, apperrors.ErrLastBusiness) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Cannot delete the last business profile"})
		} else {
			logger.Error("Failed to delete business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete business"})
		}
		return
	}

	logger.Info("Business deleted", slog.String("business_id", businessID), slog.String("next_business_id", next.BusinessID))
	c.JSON(http.StatusOK, dto.DeleteBusinessResponse{
		DeletedID:            businessID,
		NextActiveBusinessID: next.BusinessID,
	})
}
