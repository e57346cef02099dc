package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stwalsh4118/landregistry/internal/fixtures"
)

// ErrConstraintViolation is returned when seed data breaks a schema constraint.
var ErrConstraintViolation = fixtures.ErrConstraintViolation

// integrityClass is the SQLSTATE class for integrity constraint violations.
const integrityClass = "23"

// SeedResult reports what SeedIfEmpty did.
type SeedResult struct {
	Seeded  bool
	Parcels int
	Users   int
}

// SeedIfEmpty loads ds when the parcels table holds no rows. The dataset is
// validated first and then inserted in a single transaction, so a violation
// leaves the store untouched.
func (db *Database) SeedIfEmpty(ctx context.Context, ds fixtures.Dataset) (SeedResult, error) {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM parcels`).Scan(&count); err != nil {
		return SeedResult{}, fmt.Errorf("failed to count parcels: %w", err)
	}
	if count > 0 {
		return SeedResult{}, nil
	}

	if err := ds.Validate(); err != nil {
		return SeedResult{}, err
	}

	err := pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
		return insertDataset(ctx, tx, ds)
	})
	if err != nil {
		return SeedResult{}, classifySeedError(err)
	}

	return SeedResult{Seeded: true, Parcels: len(ds.Parcels), Users: len(ds.Users)}, nil
}

func classifySeedError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityClass {
		return fmt.Errorf("%w: %s (%s)", ErrConstraintViolation, pgErr.Message, pgErr.ConstraintName)
	}
	return fmt.Errorf("failed to seed demo data: %w", err)
}

// nullTime maps the zero time to NULL so column defaults apply.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// nullJSON maps empty values to SQL NULL instead of a JSON null literal.
func nullJSON[T any](v []T) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

func nullObject(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}
	return m
}

func insertDataset(ctx context.Context, tx pgx.Tx, ds fixtures.Dataset) error {
	for _, u := range ds.Users {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, email, name, phone, id_number, role, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, now()), COALESCE($9, now()))`,
			u.ID, u.Email, u.Name, u.Phone, u.IDNumber, string(u.Role), u.IsActive,
			nullTime(u.CreatedAt), nullTime(u.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.ID, err)
		}
	}

	for _, p := range ds.Parcels {
		_, err := tx.Exec(ctx, `
			INSERT INTO parcels (id, address, coordinates_lat, coordinates_lng, area_sqft, area_display,
				zoning, status, blockchain_hash, owner_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, now()), COALESCE($12, now()))`,
			p.ID, p.Address, p.Lat, p.Lng, p.AreaSqft, p.AreaDisplay,
			p.Zoning, string(p.Status), p.BlockchainHash, p.OwnerID,
			nullTime(p.CreatedAt), nullTime(p.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert parcel %s: %w", p.ID, err)
		}
	}

	for _, a := range ds.Analyses {
		_, err := tx.Exec(ctx, `
			INSERT INTO ai_analysis (id, parcel_id, fraud_risk, risk_score, market_value, confidence,
				last_valuation, price_history, analysis_metadata, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()), $8, $9, COALESCE($10, now()), COALESCE($11, now()))`,
			a.ID, a.ParcelID, string(a.FraudRisk), a.RiskScore, a.MarketValue, a.Confidence,
			nullTime(a.LastValuation), nullJSON(a.PriceHistory), nullObject(a.Metadata),
			nullTime(a.CreatedAt), nullTime(a.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert analysis %s: %w", a.ID, err)
		}
	}

	for _, t := range ds.Transfers {
		_, err := tx.Exec(ctx, `
			INSERT INTO transfers (id, parcel_id, from_user_id, to_user_id, amount, status,
				transfer_date, notes, blockchain_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()), COALESCE($11, now()))`,
			t.ID, t.ParcelID, t.FromUserID, t.ToUserID, t.Amount, string(t.Status),
			t.TransferDate, t.Notes, t.BlockchainHash,
			nullTime(t.CreatedAt), nullTime(t.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert transfer %s: %w", t.ID, err)
		}
	}

	for _, d := range ds.Documents {
		_, err := tx.Exec(ctx, `
			INSERT INTO documents (id, name, type, file_path, file_size, file_hash, is_verified,
				parcel_id, transfer_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))`,
			d.ID, d.Name, string(d.Type), d.FilePath, d.FileSize, d.FileHash, d.IsVerified,
			d.ParcelID, d.TransferID, nullTime(d.CreatedAt))
		if err != nil {
			return fmt.Errorf("insert document %s: %w", d.ID, err)
		}
	}

	for _, t := range ds.Transactions {
		_, err := tx.Exec(ctx, `
			INSERT INTO transactions (id, parcel_id, type, from_entity, to_entity, blockchain_hash, transaction_date)
			VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()))`,
			t.ID, t.ParcelID, t.Type, t.FromEntity, t.ToEntity, t.BlockchainHash,
			nullTime(t.TransactionDate))
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	for _, e := range ds.Encumbrances {
		_, err := tx.Exec(ctx, `
			INSERT INTO encumbrances (id, parcel_id, type, description, amount, is_active, created_at, resolved_at)
			VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()), $8)`,
			e.ID, e.ParcelID, e.Type, e.Description, e.Amount, e.IsActive,
			nullTime(e.CreatedAt), e.ResolvedAt)
		if err != nil {
			return fmt.Errorf("insert encumbrance %s: %w", e.ID, err)
		}
	}

	for _, a := range ds.FraudAlerts {
		_, err := tx.Exec(ctx, `
			INSERT INTO fraud_alerts (id, parcel_id, reported_by, risk_level, reason, is_resolved,
				resolution_notes, created_at, resolved_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, now()), $9)`,
			a.ID, a.ParcelID, a.ReportedBy, string(a.RiskLevel), a.Reason, a.IsResolved,
			a.ResolutionNotes, nullTime(a.CreatedAt), a.ResolvedAt)
		if err != nil {
			return fmt.Errorf("insert fraud alert %s: %w", a.ID, err)
		}
	}

	for _, s := range ds.Stats {
		_, err := tx.Exec(ctx, `
			INSERT INTO system_stats (id, stat_name, stat_value, stat_metadata, updated_at)
			VALUES ($1, $2, $3, $4, COALESCE($5, now()))`,
			s.ID, s.Name, s.Value, nullObject(s.Metadata), nullTime(s.UpdatedAt))
		if err != nil {
			return fmt.Errorf("insert stat %s: %w", s.ID, err)
		}
	}

	return nil
}
