package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stwalsh4118/landregistry/internal/models"
)

// Column lists are qualified by a table alias via columns().
var (
	userCols = []string{
		"id", "email", "name", "phone", "id_number", "role", "is_active", "created_at", "updated_at",
	}
	parcelCols = []string{
		"id", "address", "coordinates_lat", "coordinates_lng", "area_sqft", "area_display",
		"zoning", "status", "blockchain_hash", "owner_id", "created_at", "updated_at",
	}
	transferCols = []string{
		"id", "amount", "status", "transfer_date", "notes", "blockchain_hash",
		"parcel_id", "from_user_id", "to_user_id", "created_at", "updated_at",
	}
	documentCols = []string{
		"id", "name", "type", "file_path", "file_size", "file_hash", "is_verified",
		"parcel_id", "transfer_id", "created_at",
	}
	transactionCols = []string{
		"id", "type", "from_entity", "to_entity", "blockchain_hash", "transaction_date", "parcel_id",
	}
	analysisCols = []string{
		"id", "parcel_id", "fraud_risk", "risk_score", "market_value", "confidence",
		"last_valuation", "price_history", "analysis_metadata", "created_at", "updated_at",
	}
	encumbranceCols = []string{
		"id", "type", "description", "amount", "is_active", "parcel_id", "created_at", "resolved_at",
	}
	fraudAlertCols = []string{
		"id", "risk_level", "reason", "is_resolved", "resolution_notes", "parcel_id",
		"reported_by", "created_at", "resolved_at",
	}
	statCols = []string{
		"id", "stat_name", "stat_value", "stat_metadata", "updated_at",
	}
)

// columns renders cols qualified with alias, e.g. "p.id, p.address".
func columns(alias string, cols []string) string {
	qualified := make([]string, len(cols))
	for i, c := range cols {
		qualified[i] = alias + "." + c
	}
	return strings.Join(qualified, ", ")
}

type scanner interface {
	Scan(dest ...any) error
}

type userRow struct {
	u    models.User
	role string
}

func (r *userRow) targets() []any {
	return []any{
		&r.u.ID, &r.u.Email, &r.u.Name, &r.u.Phone, &r.u.IDNumber,
		&r.role, &r.u.IsActive, &r.u.CreatedAt, &r.u.UpdatedAt,
	}
}

func (r *userRow) model() models.User {
	r.u.Role = models.UserRole(r.role)
	return r.u
}

type parcelRow struct {
	p      models.Parcel
	status string
}

func (r *parcelRow) targets() []any {
	return []any{
		&r.p.ID, &r.p.Address, &r.p.Lat, &r.p.Lng, &r.p.AreaSqft, &r.p.AreaDisplay,
		&r.p.Zoning, &r.status, &r.p.BlockchainHash, &r.p.OwnerID, &r.p.CreatedAt, &r.p.UpdatedAt,
	}
}

func (r *parcelRow) model() models.Parcel {
	r.p.Status = models.ParcelStatus(r.status)
	return r.p
}

type transferRow struct {
	t      models.Transfer
	status string
}

func (r *transferRow) targets() []any {
	return []any{
		&r.t.ID, &r.t.Amount, &r.status, &r.t.TransferDate, &r.t.Notes, &r.t.BlockchainHash,
		&r.t.ParcelID, &r.t.FromUserID, &r.t.ToUserID, &r.t.CreatedAt, &r.t.UpdatedAt,
	}
}

func (r *transferRow) model() models.Transfer {
	r.t.Status = models.TransferStatus(r.status)
	return r.t
}

func scanDocument(s scanner) (models.Document, error) {
	var d models.Document
	var docType string
	err := s.Scan(
		&d.ID, &d.Name, &docType, &d.FilePath, &d.FileSize, &d.FileHash, &d.IsVerified,
		&d.ParcelID, &d.TransferID, &d.CreatedAt,
	)
	d.Type = models.DocumentType(docType)
	return d, err
}

func scanTransaction(s scanner) (models.Transaction, error) {
	var t models.Transaction
	err := s.Scan(
		&t.ID, &t.Type, &t.FromEntity, &t.ToEntity, &t.BlockchainHash, &t.TransactionDate, &t.ParcelID,
	)
	return t, err
}

func scanEncumbrance(s scanner) (models.Encumbrance, error) {
	var e models.Encumbrance
	err := s.Scan(
		&e.ID, &e.Type, &e.Description, &e.Amount, &e.IsActive, &e.ParcelID, &e.CreatedAt, &e.ResolvedAt,
	)
	return e, err
}

func scanFraudAlert(s scanner) (models.FraudAlert, error) {
	var a models.FraudAlert
	var level string
	err := s.Scan(
		&a.ID, &level, &a.Reason, &a.IsResolved, &a.ResolutionNotes, &a.ParcelID,
		&a.ReportedBy, &a.CreatedAt, &a.ResolvedAt,
	)
	a.RiskLevel = models.FraudRiskLevel(level)
	return a, err
}

func scanStat(s scanner) (models.SystemStat, error) {
	var st models.SystemStat
	var metadata []byte
	if err := s.Scan(&st.ID, &st.Name, &st.Value, &metadata, &st.UpdatedAt); err != nil {
		return st, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &st.Metadata); err != nil {
			return st, fmt.Errorf("failed to decode metadata for stat %s: %w", st.ID, err)
		}
	}
	return st, nil
}

// analysisRow scans an ai_analysis row that may be absent (LEFT JOIN), so
// every target is nullable.
type analysisRow struct {
	id            *string
	parcelID      *string
	fraudRisk     *string
	riskScore     *float64
	marketValue   *float64
	confidence    *float64
	lastValuation *time.Time
	priceHistory  []byte
	metadata      []byte
	createdAt     *time.Time
	updatedAt     *time.Time
}

func (r *analysisRow) targets() []any {
	return []any{
		&r.id, &r.parcelID, &r.fraudRisk, &r.riskScore, &r.marketValue, &r.confidence,
		&r.lastValuation, &r.priceHistory, &r.metadata, &r.createdAt, &r.updatedAt,
	}
}

// model returns nil when the joined row was absent.
func (r *analysisRow) model() (*models.AIAnalysis, error) {
	if r.id == nil {
		return nil, nil
	}

	a := &models.AIAnalysis{
		ID:            *r.id,
		ParcelID:      deref(r.parcelID),
		FraudRisk:     models.FraudRiskLevel(deref(r.fraudRisk)),
		RiskScore:     deref(r.riskScore),
		MarketValue:   deref(r.marketValue),
		Confidence:    deref(r.confidence),
		LastValuation: deref(r.lastValuation),
		CreatedAt:     deref(r.createdAt),
		UpdatedAt:     deref(r.updatedAt),
	}
	if len(r.priceHistory) > 0 {
		if err := json.Unmarshal(r.priceHistory, &a.PriceHistory); err != nil {
			return nil, fmt.Errorf("failed to decode price history for analysis %s: %w", a.ID, err)
		}
	}
	if len(r.metadata) > 0 {
		if err := json.Unmarshal(r.metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for analysis %s: %w", a.ID, err)
		}
	}
	return a, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// escapeLike escapes LIKE metacharacters so s matches literally.
// Backslash is the default LIKE escape character in PostgreSQL.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
