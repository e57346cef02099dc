package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/stwalsh4118/landregistry/internal/logger"
	"github.com/stwalsh4118/landregistry/internal/repository"
	"github.com/stwalsh4118/landregistry/internal/services"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Health      *HealthHandler
	Parcels     *ParcelHandler
	Transfers   *TransferHandler
	Users       *UserHandler
	FraudAlerts *FraudAlertHandler
	Dashboard   *DashboardHandler
}

// NewHandlers builds the service and handler layers over store.
func NewHandlers(store *repository.Store, pinger Pinger, log *logger.Logger, env, driver string) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(pinger, env, driver),
		Parcels:     NewParcelHandler(services.NewParcelService(store.Parcels, log)),
		Transfers:   NewTransferHandler(services.NewTransferService(store.Transfers, log)),
		Users:       NewUserHandler(services.NewUserService(store.Users, log)),
		FraudAlerts: NewFraudAlertHandler(services.NewFraudAlertService(store.FraudAlerts, log)),
		Dashboard:   NewDashboardHandler(services.NewDashboardService(store.Stats, log)),
	}
}

// RegisterRoutes mounts every endpoint on router. All routes are read-only.
func RegisterRoutes(router gin.IRouter, h *Handlers) {
	useFormFieldNames()

	router.GET("/health", h.Health.Health)
	router.GET("/health/ready", h.Health.Ready)
	router.GET("/api/v1/info", h.Health.Info)

	router.GET("/parcels", h.Parcels.ListParcels)
	router.GET("/parcel/:id", h.Parcels.GetParcel)

	router.GET("/transfers", h.Transfers.ListTransfers)
	router.GET("/transfers/:id", h.Transfers.GetTransfer)

	router.GET("/dashboard/stats", h.Dashboard.Stats)
	router.GET("/fraud-alerts", h.FraudAlerts.ListFraudAlerts)

	router.GET("/users", h.Users.ListUsers)
	router.GET("/users/:id", h.Users.GetUser)
}

var registerFieldNames sync.Once

// useFormFieldNames makes validation errors name query parameters by their
// form tag ("status") rather than the Go field ("Status").
func useFormFieldNames() {
	registerFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
}
