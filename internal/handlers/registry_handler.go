package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/stwalsh4118/landregistry/internal/errors"
	"github.com/stwalsh4118/landregistry/internal/repository"
	"github.com/stwalsh4118/landregistry/internal/services"
)

// UserHandler serves registry users.
type UserHandler struct {
	service services.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to list users")
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, mapUser(u))
	}

	c.JSON(http.StatusOK, response)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to query user")
		return
	}

	c.JSON(http.StatusOK, mapUser(*user))
}

// FraudAlertHandler serves fraud alerts.
type FraudAlertHandler struct {
	service services.FraudAlertService
}

// NewFraudAlertHandler creates a new FraudAlertHandler instance.
func NewFraudAlertHandler(service services.FraudAlertService) *FraudAlertHandler {
	return &FraudAlertHandler{service: service}
}

// ListFraudAlertsRequest represents the query parameters for the alert listing.
// Resolved is nil when the parameter is absent.
type ListFraudAlertsRequest struct {
	Resolved *bool `form:"resolved"`
}

// ListFraudAlerts handles GET /fraud-alerts, newest first.
func (h *FraudAlertHandler) ListFraudAlerts(c *gin.Context) {
	var req ListFraudAlertsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	alerts, err := h.service.ListFraudAlerts(c.Request.Context(), repository.FraudAlertFilter{
		Resolved: req.Resolved,
	})
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to list fraud alerts")
		return
	}

	response := make([]FraudAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		response = append(response, mapFraudAlert(a))
	}

	c.JSON(http.StatusOK, response)
}

// DashboardHandler serves the admin dashboard summary.
type DashboardHandler struct {
	service services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		apierrors.FromServiceError(c, err, "Failed to load dashboard stats")
		return
	}

	c.JSON(http.StatusOK, mapDashboardStats(stats))
}
