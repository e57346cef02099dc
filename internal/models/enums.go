package models

import (
	"fmt"
)

// UserRole is the access role of a registry user.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleUser     UserRole = "user"
	UserRoleVerifier UserRole = "verifier"
)

// UserRoles lists every UserRole in declaration order.
var UserRoles = []UserRole{UserRoleAdmin, UserRoleUser, UserRoleVerifier}

// ParcelStatus is the verification state of a parcel record.
type ParcelStatus string

const (
	ParcelStatusVerified ParcelStatus = "verified"
	ParcelStatusPending  ParcelStatus = "pending"
	ParcelStatusDisputed ParcelStatus = "disputed"
	ParcelStatusRejected ParcelStatus = "rejected"
)

// ParcelStatuses lists every ParcelStatus in declaration order.
var ParcelStatuses = []ParcelStatus{
	ParcelStatusVerified,
	ParcelStatusPending,
	ParcelStatusDisputed,
	ParcelStatusRejected,
}

// TransferStatus is the lifecycle state of an ownership transfer.
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusApproved  TransferStatus = "approved"
	TransferStatusRejected  TransferStatus = "rejected"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// TransferStatuses lists every TransferStatus in declaration order.
var TransferStatuses = []TransferStatus{
	TransferStatusPending,
	TransferStatusApproved,
	TransferStatusRejected,
	TransferStatusCompleted,
	TransferStatusCancelled,
}

// DocumentType classifies an attached document.
type DocumentType string

const (
	DocumentTypeTitleDeed        DocumentType = "title_deed"
	DocumentTypeSurveyReport     DocumentType = "survey_report"
	DocumentTypeTaxAssessment    DocumentType = "tax_assessment"
	DocumentTypeTransferDeed     DocumentType = "transfer_deed"
	DocumentTypeIdentityDocument DocumentType = "identity_document"
	DocumentTypeOther            DocumentType = "other"
)

// DocumentTypes lists every DocumentType in declaration order.
var DocumentTypes = []DocumentType{
	DocumentTypeTitleDeed,
	DocumentTypeSurveyReport,
	DocumentTypeTaxAssessment,
	DocumentTypeTransferDeed,
	DocumentTypeIdentityDocument,
	DocumentTypeOther,
}

// FraudRiskLevel grades fraud risk for analyses and alerts.
type FraudRiskLevel string

const (
	FraudRiskLow      FraudRiskLevel = "low"
	FraudRiskMedium   FraudRiskLevel = "medium"
	FraudRiskHigh     FraudRiskLevel = "high"
	FraudRiskCritical FraudRiskLevel = "critical"
)

// FraudRiskLevels lists every FraudRiskLevel in declaration order.
var FraudRiskLevels = []FraudRiskLevel{
	FraudRiskLow,
	FraudRiskMedium,
	FraudRiskHigh,
	FraudRiskCritical,
}

func (r UserRole) String() string       { return string(r) }
func (s ParcelStatus) String() string   { return string(s) }
func (s TransferStatus) String() string { return string(s) }
func (t DocumentType) String() string   { return string(t) }
func (l FraudRiskLevel) String() string { return string(l) }

// Valid reports whether r is a declared UserRole.
func (r UserRole) Valid() bool { return contains(UserRoles, r) }

// Valid reports whether s is a declared ParcelStatus.
func (s ParcelStatus) Valid() bool { return contains(ParcelStatuses, s) }

// Valid reports whether s is a declared TransferStatus.
func (s TransferStatus) Valid() bool { return contains(TransferStatuses, s) }

// Valid reports whether t is a declared DocumentType.
func (t DocumentType) Valid() bool { return contains(DocumentTypes, t) }

// Valid reports whether l is a declared FraudRiskLevel.
func (l FraudRiskLevel) Valid() bool { return contains(FraudRiskLevels, l) }

func (r UserRole) MarshalText() ([]byte, error)       { return marshalEnum(r) }
func (s ParcelStatus) MarshalText() ([]byte, error)   { return marshalEnum(s) }
func (s TransferStatus) MarshalText() ([]byte, error) { return marshalEnum(s) }
func (t DocumentType) MarshalText() ([]byte, error)   { return marshalEnum(t) }
func (l FraudRiskLevel) MarshalText() ([]byte, error) { return marshalEnum(l) }

func (r *UserRole) UnmarshalText(b []byte) error       { return unmarshalEnum(r, UserRoles, b) }
func (s *ParcelStatus) UnmarshalText(b []byte) error   { return unmarshalEnum(s, ParcelStatuses, b) }
func (s *TransferStatus) UnmarshalText(b []byte) error { return unmarshalEnum(s, TransferStatuses, b) }
func (t *DocumentType) UnmarshalText(b []byte) error   { return unmarshalEnum(t, DocumentTypes, b) }
func (l *FraudRiskLevel) UnmarshalText(b []byte) error { return unmarshalEnum(l, FraudRiskLevels, b) }

type enum interface {
	~string
	Valid() bool
}

func contains[E ~string](members []E, v E) bool {
	for _, m := range members {
		if m == v {
			return true
		}
	}
	return false
}

func marshalEnum[E enum](v E) ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid %T value %q", v, string(v))
	}
	return []byte(v), nil
}

func unmarshalEnum[E ~string](dst *E, members []E, b []byte) error {
	v := E(b)
	if !contains(members, v) {
		return fmt.Errorf("invalid %T value %q", v, string(b))
	}
	*dst = v
	return nil
}
