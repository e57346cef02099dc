package services

import (
	"context"
	"fmt"

	"github.com/stwalsh4118/landregistry/internal/logger"
	"github.com/stwalsh4118/landregistry/internal/models"
	"github.com/stwalsh4118/landregistry/internal/repository"
)

// FraudAlertService lists flagged parcels.
type FraudAlertService interface {
	// ListFraudAlerts returns alerts newest first. A nil filter.Resolved lists all.
	ListFraudAlerts(ctx context.Context, filter repository.FraudAlertFilter) ([]models.FraudAlert, error)
}

type fraudAlertService struct {
	repo repository.FraudAlertRepository
	log  *logger.Logger
}

// NewFraudAlertService creates a new instance of FraudAlertService.
func NewFraudAlertService(repo repository.FraudAlertRepository, log *logger.Logger) FraudAlertService {
	return &fraudAlertService{
		repo: repo,
		log:  log,
	}
}

func (s *fraudAlertService) ListFraudAlerts(ctx context.Context, filter repository.FraudAlertFilter) ([]models.FraudAlert, error) {
	fields := map[string]interface{}{}
	if filter.Resolved != nil {
		fields["resolved"] = *filter.Resolved
	}

	alerts, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list fraud alerts", err, fields)
		return nil, fmt.Errorf("failed to list fraud alerts: %w", err)
	}

	fields["count"] = len(alerts)
	s.log.Info("Fraud alerts listed", fields)

	return alerts, nil
}
