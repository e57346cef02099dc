package services

import (
	"context"
	"fmt"

	"github.com/stwalsh4118/landregistry/internal/logger"
	"github.com/stwalsh4118/landregistry/internal/repository"
)

// Stat names projected onto the dashboard.
const (
	StatTotalProperties    = "total_properties"
	StatPendingTransfers   = "pending_transfers"
	StatFraudAlerts        = "fraud_alerts"
	StatActiveUsers        = "active_users"
	StatMonthlyTransfers   = "monthly_transfers"
	StatTotalTransferValue = "total_transfer_value"
)

// DashboardStats is the summary shown on the admin dashboard.
// Counts are truncated from their stored floating point values.
type DashboardStats struct {
	TotalTransferValue float64
	TotalProperties    int
	PendingTransfers   int
	FraudAlerts        int
	ActiveUsers        int
	MonthlyTransfers   int
}

// DashboardService aggregates the system stats table.
type DashboardService interface {
	GetStats(ctx context.Context) (DashboardStats, error)
}

type dashboardService struct {
	repo repository.StatsRepository
	log  *logger.Logger
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(repo repository.StatsRepository, log *logger.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log,
	}
}

// GetStats reads every stat row and projects the dashboard fields,
// taking zero for any name that is absent.
func (s *dashboardService) GetStats(ctx context.Context) (DashboardStats, error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		s.log.Error("Failed to read system stats", err, nil)
		return DashboardStats{}, fmt.Errorf("failed to read system stats: %w", err)
	}

	values := make(map[string]float64, len(rows))
	for _, r := range rows {
		values[r.Name] = r.Value
	}

	s.log.Debug("System stats loaded", map[string]interface{}{
		"rows": len(rows),
	})

	return DashboardStats{
		TotalProperties:    int(values[StatTotalProperties]),
		PendingTransfers:   int(values[StatPendingTransfers]),
		FraudAlerts:        int(values[StatFraudAlerts]),
		ActiveUsers:        int(values[StatActiveUsers]),
		MonthlyTransfers:   int(values[StatMonthlyTransfers]),
		TotalTransferValue: values[StatTotalTransferValue],
	}, nil
}
