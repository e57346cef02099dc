package services

import (
	"context"
	"fmt"

	"github.com/stwalsh4118/landregistry/internal/logger"
	"github.com/stwalsh4118/landregistry/internal/repository"
)

// TransferService defines read operations over ownership transfers.
type TransferService interface {
	// ListTransfers returns transfers matching filter, newest first.
	ListTransfers(ctx context.Context, filter repository.TransferFilter) ([]repository.TransferDetail, error)

	// GetTransfer returns ErrTransferNotFound if no transfer has the id.
	GetTransfer(ctx context.Context, id string) (*repository.TransferDetail, error)
}

type transferService struct {
	repo repository.TransferRepository
	log  *logger.Logger
}

// NewTransferService creates a new instance of TransferService.
func NewTransferService(repo repository.TransferRepository, log *logger.Logger) TransferService {
	return &transferService{
		repo: repo,
		log:  log,
	}
}

func (s *transferService) ListTransfers(ctx context.Context, filter repository.TransferFilter) ([]repository.TransferDetail, error) {
	transfers, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list transfers", err, map[string]interface{}{
			"status": string(filter.Status),
		})
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	s.log.Info("Transfers listed", map[string]interface{}{
		"status": string(filter.Status),
		"count":  len(transfers),
	})

	return transfers, nil
}

func (s *transferService) GetTransfer(ctx context.Context, id string) (*repository.TransferDetail, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query transfer", err, map[string]interface{}{
			"transfer_id": id,
		})
		return nil, fmt.Errorf("failed to query transfer: %w", err)
	}

	if detail == nil {
		s.log.Debug("Transfer not found", map[string]interface{}{
			"transfer_id": id,
		})
		return nil, ErrTransferNotFound
	}

	return detail, nil
}
