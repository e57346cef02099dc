package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/stwalsh4118/landregistry/internal/errors"
	"github.com/stwalsh4118/landregistry/internal/middleware"
	"github.com/stwalsh4118/landregistry/internal/models"
	"github.com/stwalsh4118/landregistry/internal/repository"
	"github.com/stwalsh4118/landregistry/internal/services"
)

// ParcelHandler handles parcel-related HTTP requests.
type ParcelHandler struct {
	service services.ParcelService
}

// NewParcelHandler creates a new ParcelHandler instance.
func NewParcelHandler(service services.ParcelService) *ParcelHandler {
	return &ParcelHandler{
		service: service,
	}
}

// ListParcelsRequest represents the query parameters for the parcel search.
// Empty values do not filter.
type ListParcelsRequest struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=verified pending disputed rejected"`
}

// ListParcels handles GET /parcels.
// It searches parcels by address, owner name or id and filters by status.
func (h *ParcelHandler) ListParcels(c *gin.Context) {
	var req ListParcelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Debug("Processing parcel search", map[string]interface{}{
			"search": req.Search,
			"status": req.Status,
		})
	}

	parcels, err := h.service.SearchParcels(c.Request.Context(), repository.ParcelFilter{
		Search: req.Search,
		Status: models.ParcelStatus(req.Status),
	})
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to search parcels")
		return
	}

	response := make([]ParcelSearchResponse, 0, len(parcels))
	for _, p := range parcels {
		response = append(response, mapParcelSummary(p))
	}

	c.JSON(http.StatusOK, response)
}

// GetParcel handles GET /parcel/:id.
// It returns the parcel with its owner, analysis, documents, transactions
// and encumbrances.
func (h *ParcelHandler) GetParcel(c *gin.Context) {
	detail, err := h.service.GetParcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to query parcel data")
		return
	}

	c.JSON(http.StatusOK, mapParcelDetail(detail))
}
