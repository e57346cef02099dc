package models

import (
	"time"
)

// User is a registry account. Users own parcels and take part in transfers.
// Nullable columns use pointers to distinguish NULL from the zero value.
type User struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Phone     *string
	IDNumber  *string
	ID        string
	Email     string
	Name      string
	Role      UserRole
	IsActive  bool
}

// Parcel is a unit of land with exactly one owning user.
type Parcel struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AreaDisplay    *string
	Zoning         *string
	BlockchainHash *string
	ID             string
	Address        string
	OwnerID        string
	Status         ParcelStatus
	Lat            float64
	Lng            float64
	AreaSqft       float64
}

// Transfer is an ownership change of one parcel between two users.
type Transfer struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	TransferDate   *time.Time
	Notes          *string
	BlockchainHash *string
	ID             string
	ParcelID       string
	FromUserID     string
	ToUserID       string
	Status         TransferStatus
	Amount         float64
}

// Document is a file attached to a parcel, a transfer, or both.
type Document struct {
	CreatedAt  time.Time
	FilePath   *string
	FileSize   *int64
	FileHash   *string
	ParcelID   *string
	TransferID *string
	ID         string
	Name       string
	Type       DocumentType
	IsVerified bool
}

// Transaction is a ledger entry recorded against a parcel.
type Transaction struct {
	TransactionDate time.Time
	FromEntity      *string
	ToEntity        *string
	BlockchainHash  *string
	ID              string
	ParcelID        string
	Type            string
}

// PricePoint is one sample of a parcel's valuation history.
// Date is kept verbatim ("2024-01") since samples are month-granular.
type PricePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// AIAnalysis is the risk and valuation assessment of a parcel (at most one per parcel).
type AIAnalysis struct {
	LastValuation time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Metadata      map[string]any
	ID            string
	ParcelID      string
	FraudRisk     FraudRiskLevel
	PriceHistory  []PricePoint
	RiskScore     float64
	MarketValue   float64
	Confidence    float64
}

// Encumbrance is a legal claim (lien, mortgage, easement) on a parcel.
type Encumbrance struct {
	CreatedAt   time.Time
	ResolvedAt  *time.Time
	Description *string
	Amount      *float64
	ID          string
	ParcelID    string
	Type        string
	IsActive    bool
}

// FraudAlert is a flagged concern about a parcel.
type FraudAlert struct {
	CreatedAt       time.Time
	ResolvedAt      *time.Time
	ResolutionNotes *string
	ReportedBy      *string
	ID              string
	ParcelID        string
	Reason          string
	RiskLevel       FraudRiskLevel
	IsResolved      bool
}

// SystemStat is one row of the externally refreshed key-value stats table.
type SystemStat struct {
	UpdatedAt time.Time
	Metadata  map[string]any
	ID        string
	Name      string
	Value     float64
}
