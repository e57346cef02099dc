package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/stwalsh4118/landregistry/internal/errors"
	"github.com/stwalsh4118/landregistry/internal/models"
	"github.com/stwalsh4118/landregistry/internal/repository"
	"github.com/stwalsh4118/landregistry/internal/services"
)

// TransferHandler handles ownership transfer requests.
type TransferHandler struct {
	service services.TransferService
}

// NewTransferHandler creates a new TransferHandler instance.
func NewTransferHandler(service services.TransferService) *TransferHandler {
	return &TransferHandler{
		service: service,
	}
}

// ListTransfersRequest represents the query parameters for the transfer listing.
type ListTransfersRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected completed cancelled"`
}

// ListTransfers handles GET /transfers, newest first.
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	var req ListTransfersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	transfers, err := h.service.ListTransfers(c.Request.Context(), repository.TransferFilter{
		Status: models.TransferStatus(req.Status),
	})
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to list transfers")
		return
	}

	response := make([]TransferDetailResponse, 0, len(transfers))
	for _, t := range transfers {
		response = append(response, mapTransferDetail(t))
	}

	c.JSON(http.StatusOK, response)
}

// GetTransfer handles GET /transfers/:id.
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	detail, err := h.service.GetTransfer(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to query transfer")
		return
	}

	c.JSON(http.StatusOK, mapTransferDetail(*detail))
}
