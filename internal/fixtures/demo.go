// Package fixtures holds the demonstration dataset loaded into an empty
// store on first run, and the constraint checks applied before loading it.
package fixtures

import (
	"time"

	"github.com/stwalsh4118/landregistry/internal/models"
)

// Dataset is a complete set of registry records in insertion order.
type Dataset struct {
	Users        []models.User
	Parcels      []models.Parcel
	Analyses     []models.AIAnalysis
	Transfers    []models.Transfer
	Documents    []models.Document
	Transactions []models.Transaction
	Encumbrances []models.Encumbrance
	FraudAlerts  []models.FraudAlert
	Stats        []models.SystemStat
}

// Fixture record ids referenced by tests and callers.
const (
	UserJohnSmith    = "user-001"
	UserSarahJohnson = "user-002"
	UserMikeWilson   = "user-003"
	UserAdmin        = "admin-001"

	ParcelOakStreet   = "PLT-2024-001"
	ParcelPineAvenue  = "PLT-2024-002"
	ParcelMapleDrive  = "PLT-2024-003"
	TransferCompleted = "TXN-2024-001"
	TransferPending   = "TXN-2024-002"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func timePtr(t time.Time) *time.Time { return &t }

// Demo returns the demonstration dataset: 4 users, 3 parcels, 3 AI analyses,
// 2 transfers, 2 documents, 2 transactions and 6 system stats.
// Timestamps are left zero so the store assigns its own.
func Demo() Dataset {
	return Dataset{
		Users: []models.User{
			{
				ID:       UserJohnSmith,
				Email:    "john.smith@email.com",
				Name:     "John Smith",
				Phone:    strPtr("+1-555-0101"),
				IDNumber: strPtr("SSN-XXX-XX-1234"),
				Role:     models.UserRoleUser,
				IsActive: true,
			},
			{
				ID:       UserSarahJohnson,
				Email:    "sarah.johnson@email.com",
				Name:     "Sarah Johnson",
				Phone:    strPtr("+1-555-0102"),
				IDNumber: strPtr("SSN-XXX-XX-5678"),
				Role:     models.UserRoleUser,
				IsActive: true,
			},
			{
				ID:       UserMikeWilson,
				Email:    "mike.wilson@email.com",
				Name:     "Mike Wilson",
				Phone:    strPtr("+1-555-0103"),
				IDNumber: strPtr("SSN-XXX-XX-9012"),
				Role:     models.UserRoleUser,
				IsActive: true,
			},
			{
				ID:       UserAdmin,
				Email:    "admin@cyberverse.com",
				Name:     "System Administrator",
				Role:     models.UserRoleAdmin,
				IsActive: true,
			},
		},
		Parcels: []models.Parcel{
			{
				ID:             ParcelOakStreet,
				Address:        "123 Oak Street, Springfield, County, State 12345",
				Lat:            40.7128,
				Lng:            -74.0060,
				AreaSqft:       10890,
				AreaDisplay:    strPtr("0.25 acres"),
				Zoning:         strPtr("Residential R-1"),
				Status:         models.ParcelStatusVerified,
				BlockchainHash: strPtr("0x1a2b3c4d5e6f7890abcdef123456789012345678"),
				OwnerID:        UserJohnSmith,
			},
			{
				ID:             ParcelPineAvenue,
				Address:        "456 Pine Avenue, Springfield, County, State 12345",
				Lat:            40.7580,
				Lng:            -73.9855,
				AreaSqft:       7840,
				AreaDisplay:    strPtr("0.18 acres"),
				Zoning:         strPtr("Residential R-1"),
				Status:         models.ParcelStatusPending,
				BlockchainHash: strPtr("0x9876543210fedcba0987654321"),
				OwnerID:        UserSarahJohnson,
			},
			{
				ID:             ParcelMapleDrive,
				Address:        "789 Maple Drive, Springfield, County, State 12345",
				Lat:            40.7505,
				Lng:            -73.9934,
				AreaSqft:       14375,
				AreaDisplay:    strPtr("0.33 acres"),
				Zoning:         strPtr("Residential R-1"),
				Status:         models.ParcelStatusDisputed,
				BlockchainHash: strPtr("0xabcdef123456789012345678"),
				OwnerID:        UserMikeWilson,
			},
		},
		Analyses: []models.AIAnalysis{
			{
				ID:          "ai-001",
				ParcelID:    ParcelOakStreet,
				FraudRisk:   models.FraudRiskLow,
				RiskScore:   0.15,
				MarketValue: 485000.0,
				Confidence:  0.92,
				PriceHistory: []models.PricePoint{
					{Date: "2024-01", Value: 485000},
					{Date: "2023-07", Value: 472000},
					{Date: "2023-01", Value: 445000},
				},
			},
			{
				ID:          "ai-002",
				ParcelID:    ParcelPineAvenue,
				FraudRisk:   models.FraudRiskLow,
				RiskScore:   0.20,
				MarketValue: 392000.0,
				Confidence:  0.88,
			},
			{
				ID:          "ai-003",
				ParcelID:    ParcelMapleDrive,
				FraudRisk:   models.FraudRiskMedium,
				RiskScore:   0.45,
				MarketValue: 527000.0,
				Confidence:  0.75,
			},
		},
		Transfers: []models.Transfer{
			{
				ID:             TransferCompleted,
				ParcelID:       ParcelOakStreet,
				FromUserID:     UserJohnSmith,
				ToUserID:       UserSarahJohnson,
				Amount:         485000.0,
				Status:         models.TransferStatusCompleted,
				TransferDate:   timePtr(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
				BlockchainHash: strPtr("0x1a2b3c4d5e6f7890abcdef"),
			},
			{
				ID:           TransferPending,
				ParcelID:     ParcelPineAvenue,
				FromUserID:   UserSarahJohnson,
				ToUserID:     UserMikeWilson,
				Amount:       392000.0,
				Status:       models.TransferStatusPending,
				TransferDate: timePtr(time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)),
			},
		},
		Documents: []models.Document{
			{
				ID:         "doc-001",
				Name:       "Title Deed",
				Type:       models.DocumentTypeTitleDeed,
				FileSize:   int64Ptr(2200000),
				FileHash:   strPtr("0xabc123..."),
				ParcelID:   strPtr(ParcelOakStreet),
				IsVerified: true,
			},
			{
				ID:         "doc-002",
				Name:       "Survey Report",
				Type:       models.DocumentTypeSurveyReport,
				FileSize:   int64Ptr(5300000),
				FileHash:   strPtr("0xdef456..."),
				ParcelID:   strPtr(ParcelOakStreet),
				IsVerified: true,
			},
		},
		Transactions: []models.Transaction{
			{
				ID:             "txn-001",
				ParcelID:       ParcelOakStreet,
				Type:           "Verification Update",
				FromEntity:     strPtr("System"),
				ToEntity:       strPtr("Verified Status"),
				BlockchainHash: strPtr("0x1a2b3c4d..."),
			},
			{
				ID:             "txn-002",
				ParcelID:       ParcelOakStreet,
				Type:           "Ownership Transfer",
				FromEntity:     strPtr("Jane Doe"),
				ToEntity:       strPtr("John Smith"),
				BlockchainHash: strPtr("0x9876543a..."),
			},
		},
		Stats: []models.SystemStat{
			{ID: "stat-001", Name: "total_properties", Value: 1247.0},
			{ID: "stat-002", Name: "pending_transfers", Value: 23.0},
			{ID: "stat-003", Name: "fraud_alerts", Value: 4.0},
			{ID: "stat-004", Name: "active_users", Value: 89.0},
			{ID: "stat-005", Name: "monthly_transfers", Value: 156.0},
			{ID: "stat-006", Name: "total_transfer_value", Value: 127400000.0},
		},
	}
}
