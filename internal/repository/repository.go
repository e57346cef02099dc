package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/stwalsh4118/landregistry/internal/models"
)

// ParcelFilter narrows a parcel listing. Empty fields do not filter.
type ParcelFilter struct {
	// Search is matched case-insensitively as a substring of the parcel
	// address, the owner's name, or the parcel id.
	Search string
	// Status restricts results to one parcel status.
	Status models.ParcelStatus
}

// TransferFilter narrows a transfer listing. Empty fields do not filter.
type TransferFilter struct {
	Status models.TransferStatus
}

// FraudAlertFilter narrows a fraud alert listing.
type FraudAlertFilter struct {
	// Resolved filters on resolution state only when non-nil; nil lists all alerts.
	Resolved *bool
}

// ParcelSummary is a parcel joined to its owner's name and optional analysis.
type ParcelSummary struct {
	Analysis  *models.AIAnalysis
	OwnerName string
	Parcel    models.Parcel
}

// ParcelDetail is a parcel with every association eagerly loaded.
type ParcelDetail struct {
	Analysis     *models.AIAnalysis
	Documents    []models.Document
	Transactions []models.Transaction
	Encumbrances []models.Encumbrance
	Owner        models.User
	Parcel       models.Parcel
}

// TransferDetail is a transfer with its parcel, both parties and documents.
type TransferDetail struct {
	Documents []models.Document
	FromUser  models.User
	ToUser    models.User
	Parcel    models.Parcel
	Transfer  models.Transfer
}

// ParcelRepository defines parcel data access operations.
type ParcelRepository interface {
	// List returns parcel summaries matching filter in insertion order.
	// Returns an empty slice when nothing matches.
	List(ctx context.Context, filter ParcelFilter) ([]ParcelSummary, error)

	// FindByID returns the full parcel detail.
	// Returns nil, nil if the parcel does not exist.
	FindByID(ctx context.Context, id string) (*ParcelDetail, error)
}

// TransferRepository defines transfer data access operations.
type TransferRepository interface {
	// List returns transfers matching filter, most recently created first.
	List(ctx context.Context, filter TransferFilter) ([]TransferDetail, error)

	// FindByID returns nil, nil if the transfer does not exist.
	FindByID(ctx context.Context, id string) (*TransferDetail, error)
}

// UserRepository defines user data access operations.
type UserRepository interface {
	// List returns every user in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// FindByID returns nil, nil if the user does not exist.
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// FraudAlertRepository defines fraud alert data access operations.
type FraudAlertRepository interface {
	// List returns alerts matching filter, most recently created first.
	List(ctx context.Context, filter FraudAlertFilter) ([]models.FraudAlert, error)
}

// StatsRepository reads the system stats table.
type StatsRepository interface {
	// All returns every stat row.
	All(ctx context.Context) ([]models.SystemStat, error)
}

// Store bundles every repository served by one backend.
type Store struct {
	Parcels     ParcelRepository
	Transfers   TransferRepository
	Users       UserRepository
	FraudAlerts FraudAlertRepository
	Stats       StatsRepository
}

// querier is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
