package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stwalsh4118/landregistry/internal/logger"
	"github.com/stwalsh4118/landregistry/internal/repository"
)

// Service-level errors
var (
	ErrParcelNotFound   = errors.New("parcel not found")
	ErrTransferNotFound = errors.New("transfer not found")
	ErrUserNotFound     = errors.New("user not found")
)

// ParcelService defines the interface for parcel business logic operations.
type ParcelService interface {
	// SearchParcels returns the parcel summaries matching filter in insertion order.
	// Returns empty slice if nothing matches (not an error).
	// Returns error for database failures.
	SearchParcels(ctx context.Context, filter repository.ParcelFilter) ([]repository.ParcelSummary, error)

	// GetParcel returns the parcel with its owner, analysis, documents,
	// transactions and encumbrances.
	// Returns ErrParcelNotFound if no parcel has the id.
	GetParcel(ctx context.Context, id string) (*repository.ParcelDetail, error)
}

// parcelService is the concrete implementation of ParcelService.
type parcelService struct {
	repo repository.ParcelRepository
	log  *logger.Logger
}

// NewParcelService creates a new instance of ParcelService.
func NewParcelService(repo repository.ParcelRepository, log *logger.Logger) ParcelService {
	return &parcelService{
		repo: repo,
		log:  log,
	}
}

func (s *parcelService) SearchParcels(ctx context.Context, filter repository.ParcelFilter) ([]repository.ParcelSummary, error) {
	s.log.Debug("Searching parcels", map[string]interface{}{
		"search": filter.Search,
		"status": string(filter.Status),
	})

	parcels, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to search parcels", err, map[string]interface{}{
			"search": filter.Search,
			"status": string(filter.Status),
		})
		return nil, fmt.Errorf("failed to search parcels: %w", err)
	}

	s.log.Info("Parcel search complete", map[string]interface{}{
		"search": filter.Search,
		"status": string(filter.Status),
		"count":  len(parcels),
	})

	return parcels, nil
}

func (s *parcelService) GetParcel(ctx context.Context, id string) (*repository.ParcelDetail, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query parcel", err, map[string]interface{}{
			"parcel_id": id,
		})
		return nil, fmt.Errorf("failed to query parcel: %w", err)
	}

	// Repository returns nil, nil when no parcel found - transform to domain error
	if detail == nil {
		s.log.Debug("Parcel not found", map[string]interface{}{
			"parcel_id": id,
		})
		return nil, ErrParcelNotFound
	}

	s.log.Info("Parcel loaded", map[string]interface{}{
		"parcel_id":    id,
		"owner_id":     detail.Owner.ID,
		"documents":    len(detail.Documents),
		"transactions": len(detail.Transactions),
		"encumbrances": len(detail.Encumbrances),
		"has_analysis": detail.Analysis != nil,
	})

	return detail, nil
}
