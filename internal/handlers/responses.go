package handlers

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stwalsh4118/landregistry/internal/models"
	"github.com/stwalsh4118/landregistry/internal/repository"
	"github.com/stwalsh4118/landregistry/internal/services"
)

const (
	// DefaultFraudRisk is reported for parcels that have not been analysed.
	DefaultFraudRisk = models.FraudRiskLow
	// UnknownValue is the estimated value of a parcel without a valuation.
	UnknownValue = "$—"

	summaryDateLayout = "2006-01-02"
)

// Values are grouped the US-English way; every response uses the same locale.
var displayLocale = language.AmericanEnglish

// formatCurrency renders v in whole dollars with thousands separators, e.g. "$485,000".
func formatCurrency(v float64) string {
	return message.NewPrinter(displayLocale).Sprintf("$%.0f", v)
}

// formatArea renders an area in whole square feet, e.g. "10,890 sq ft".
func formatArea(sqft float64) string {
	return message.NewPrinter(displayLocale).Sprintf("%.0f sq ft", sqft)
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Phone     *string         `json:"phone"`
	IDNumber  *string         `json:"id_number"`
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
}

// ParcelResponse is the public shape of a parcel without its associations.
type ParcelResponse struct {
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	AreaDisplay    *string             `json:"area_display"`
	Zoning         *string             `json:"zoning"`
	BlockchainHash *string             `json:"blockchain_hash"`
	ID             string              `json:"id"`
	Address        string              `json:"address"`
	OwnerID        string              `json:"owner_id"`
	Status         models.ParcelStatus `json:"status"`
	Lat            float64             `json:"coordinates_lat"`
	Lng            float64             `json:"coordinates_lng"`
	AreaSqft       float64             `json:"area_sqft"`
}

// ParcelSearchResponse is one row of a parcel search.
type ParcelSearchResponse struct {
	BlockchainHash *string `json:"blockchain_hash"`
	ID             string  `json:"id"`
	Address        string  `json:"address"`
	OwnerName      string  `json:"owner_name"`
	AreaDisplay    string  `json:"area_display"`
	Status         string  `json:"status"`
	LastUpdated    string  `json:"last_updated"`
	FraudRisk      string  `json:"fraud_risk"`
	EstimatedValue string  `json:"estimated_value"`
}

// ParcelDetailResponse is a parcel with every association loaded.
type ParcelDetailResponse struct {
	ParcelResponse
	AIAnalysis   *AIAnalysisResponse   `json:"ai_analysis"`
	Owner        UserResponse          `json:"owner"`
	Documents    []DocumentResponse    `json:"documents"`
	Transactions []TransactionResponse `json:"transactions"`
	Encumbrances []EncumbranceResponse `json:"encumbrances"`
}

// TransferResponse is the public shape of a transfer.
type TransferResponse struct {
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	TransferDate   *time.Time            `json:"transfer_date"`
	Notes          *string               `json:"notes"`
	BlockchainHash *string               `json:"blockchain_hash"`
	ID             string                `json:"id"`
	ParcelID       string                `json:"parcel_id"`
	FromUserID     string                `json:"from_user_id"`
	ToUserID       string                `json:"to_user_id"`
	Status         models.TransferStatus `json:"status"`
	Amount         float64               `json:"amount"`
}

// TransferDetailResponse is a transfer with its parcel, parties and documents.
type TransferDetailResponse struct {
	TransferResponse
	Parcel    ParcelResponse     `json:"parcel"`
	FromUser  UserResponse       `json:"from_user"`
	ToUser    UserResponse       `json:"to_user"`
	Documents []DocumentResponse `json:"documents"`
}

// DocumentResponse is the public shape of a document.
type DocumentResponse struct {
	CreatedAt  time.Time           `json:"created_at"`
	FilePath   *string             `json:"file_path"`
	FileSize   *int64              `json:"file_size"`
	FileHash   *string             `json:"file_hash"`
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Type       models.DocumentType `json:"type"`
	IsVerified bool                `json:"is_verified"`
}

// TransactionResponse is the public shape of a ledger entry.
type TransactionResponse struct {
	TransactionDate time.Time `json:"transaction_date"`
	FromEntity      *string   `json:"from_entity"`
	ToEntity        *string   `json:"to_entity"`
	BlockchainHash  *string   `json:"blockchain_hash"`
	ID              string    `json:"id"`
	ParcelID        string    `json:"parcel_id"`
	Type            string    `json:"type"`
}

// AIAnalysisResponse is the public shape of a parcel's analysis.
type AIAnalysisResponse struct {
	LastValuation time.Time             `json:"last_valuation"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Metadata      map[string]any        `json:"analysis_metadata"`
	ID            string                `json:"id"`
	ParcelID      string                `json:"parcel_id"`
	FraudRisk     models.FraudRiskLevel `json:"fraud_risk"`
	PriceHistory  []models.PricePoint   `json:"price_history"`
	RiskScore     float64               `json:"risk_score"`
	MarketValue   float64               `json:"market_value"`
	Confidence    float64               `json:"confidence"`
}

// EncumbranceResponse is the public shape of a legal claim on a parcel.
type EncumbranceResponse struct {
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount"`
	ID          string     `json:"id"`
	ParcelID    string     `json:"parcel_id"`
	Type        string     `json:"type"`
	IsActive    bool       `json:"is_active"`
}

// FraudAlertResponse is the public shape of a fraud alert.
type FraudAlertResponse struct {
	CreatedAt       time.Time             `json:"created_at"`
	ResolvedAt      *time.Time            `json:"resolved_at"`
	ResolutionNotes *string               `json:"resolution_notes"`
	ReportedBy      *string               `json:"reported_by"`
	ID              string                `json:"id"`
	ParcelID        string                `json:"parcel_id"`
	Reason          string                `json:"reason"`
	RiskLevel       models.FraudRiskLevel `json:"risk_level"`
	IsResolved      bool                  `json:"is_resolved"`
}

// DashboardStatsResponse is the admin dashboard summary.
type DashboardStatsResponse struct {
	TotalTransferValue float64 `json:"total_transfer_value"`
	TotalProperties    int     `json:"total_properties"`
	PendingTransfers   int     `json:"pending_transfers"`
	FraudAlerts        int     `json:"fraud_alerts"`
	ActiveUsers        int     `json:"active_users"`
	MonthlyTransfers   int     `json:"monthly_transfers"`
}

func mapUser(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		IDNumber:  u.IDNumber,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func mapParcel(p models.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:             p.ID,
		Address:        p.Address,
		Lat:            p.Lat,
		Lng:            p.Lng,
		AreaSqft:       p.AreaSqft,
		AreaDisplay:    p.AreaDisplay,
		Zoning:         p.Zoning,
		Status:         p.Status,
		OwnerID:        p.OwnerID,
		BlockchainHash: p.BlockchainHash,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// mapParcelSummary derives the search row: the area falls back to the
// square footage, and parcels without an analysis report the default risk
// and an unknown value.
func mapParcelSummary(s repository.ParcelSummary) ParcelSearchResponse {
	dto := ParcelSearchResponse{
		ID:             s.Parcel.ID,
		Address:        s.Parcel.Address,
		OwnerName:      s.OwnerName,
		Status:         s.Parcel.Status.String(),
		BlockchainHash: s.Parcel.BlockchainHash,
		LastUpdated:    s.Parcel.UpdatedAt.Format(summaryDateLayout),
		FraudRisk:      DefaultFraudRisk.String(),
		EstimatedValue: UnknownValue,
	}

	if s.Parcel.AreaDisplay != nil && *s.Parcel.AreaDisplay != "" {
		dto.AreaDisplay = *s.Parcel.AreaDisplay
	} else {
		dto.AreaDisplay = formatArea(s.Parcel.AreaSqft)
	}

	if s.Analysis != nil {
		dto.FraudRisk = s.Analysis.FraudRisk.String()
		dto.EstimatedValue = formatCurrency(s.Analysis.MarketValue)
	}

	return dto
}

func mapParcelDetail(d *repository.ParcelDetail) ParcelDetailResponse {
	dto := ParcelDetailResponse{
		ParcelResponse: mapParcel(d.Parcel),
		Owner:          mapUser(d.Owner),
		Documents:      mapDocuments(d.Documents),
		Transactions:   make([]TransactionResponse, 0, len(d.Transactions)),
		Encumbrances:   make([]EncumbranceResponse, 0, len(d.Encumbrances)),
	}

	if d.Analysis != nil {
		dto.AIAnalysis = &AIAnalysisResponse{
			ID:            d.Analysis.ID,
			ParcelID:      d.Analysis.ParcelID,
			FraudRisk:     d.Analysis.FraudRisk,
			RiskScore:     d.Analysis.RiskScore,
			MarketValue:   d.Analysis.MarketValue,
			Confidence:    d.Analysis.Confidence,
			PriceHistory:  d.Analysis.PriceHistory,
			Metadata:      d.Analysis.Metadata,
			LastValuation: d.Analysis.LastValuation,
			CreatedAt:     d.Analysis.CreatedAt,
			UpdatedAt:     d.Analysis.UpdatedAt,
		}
	}

	for _, t := range d.Transactions {
		dto.Transactions = append(dto.Transactions, TransactionResponse{
			ID:              t.ID,
			Type:            t.Type,
			FromEntity:      t.FromEntity,
			ToEntity:        t.ToEntity,
			ParcelID:        t.ParcelID,
			BlockchainHash:  t.BlockchainHash,
			TransactionDate: t.TransactionDate,
		})
	}

	for _, e := range d.Encumbrances {
		dto.Encumbrances = append(dto.Encumbrances, EncumbranceResponse{
			ID:          e.ID,
			Type:        e.Type,
			Description: e.Description,
			Amount:      e.Amount,
			IsActive:    e.IsActive,
			ParcelID:    e.ParcelID,
			CreatedAt:   e.CreatedAt,
			ResolvedAt:  e.ResolvedAt,
		})
	}

	return dto
}

func mapDocuments(docs []models.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentResponse{
			ID:         d.ID,
			Name:       d.Name,
			Type:       d.Type,
			FilePath:   d.FilePath,
			FileSize:   d.FileSize,
			FileHash:   d.FileHash,
			IsVerified: d.IsVerified,
			CreatedAt:  d.CreatedAt,
		})
	}
	return out
}

func mapTransferDetail(d repository.TransferDetail) TransferDetailResponse {
	return TransferDetailResponse{
		TransferResponse: TransferResponse{
			ID:             d.Transfer.ID,
			Amount:         d.Transfer.Amount,
			Status:         d.Transfer.Status,
			TransferDate:   d.Transfer.TransferDate,
			Notes:          d.Transfer.Notes,
			ParcelID:       d.Transfer.ParcelID,
			FromUserID:     d.Transfer.FromUserID,
			ToUserID:       d.Transfer.ToUserID,
			BlockchainHash: d.Transfer.BlockchainHash,
			CreatedAt:      d.Transfer.CreatedAt,
			UpdatedAt:      d.Transfer.UpdatedAt,
		},
		Parcel:    mapParcel(d.Parcel),
		FromUser:  mapUser(d.FromUser),
		ToUser:    mapUser(d.ToUser),
		Documents: mapDocuments(d.Documents),
	}
}

func mapFraudAlert(a models.FraudAlert) FraudAlertResponse {
	return FraudAlertResponse{
		ID:              a.ID,
		RiskLevel:       a.RiskLevel,
		Reason:          a.Reason,
		IsResolved:      a.IsResolved,
		ResolutionNotes: a.ResolutionNotes,
		ParcelID:        a.ParcelID,
		ReportedBy:      a.ReportedBy,
		CreatedAt:       a.CreatedAt,
		ResolvedAt:      a.ResolvedAt,
	}
}

func mapDashboardStats(s services.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalProperties:    s.TotalProperties,
		PendingTransfers:   s.PendingTransfers,
		FraudAlerts:        s.FraudAlerts,
		ActiveUsers:        s.ActiveUsers,
		MonthlyTransfers:   s.MonthlyTransfers,
		TotalTransferValue: s.TotalTransferValue,
	}
}
