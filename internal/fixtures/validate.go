package fixtures

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConstraintViolation marks a record that breaks a schema constraint
// (uniqueness, required field, dangling reference, enum membership or range).
var ErrConstraintViolation = errors.New("constraint violation")

// uniqueSet tracks values of one unique column.
type uniqueSet struct {
	column string
	seen   map[string]struct{}
}

func newUniqueSet(column string) *uniqueSet {
	return &uniqueSet{column: column, seen: make(map[string]struct{})}
}

// add records v; nil values are ignored (NULLs never collide).
func (u *uniqueSet) add(v *string) error {
	if v == nil {
		return nil
	}
	if _, dup := u.seen[*v]; dup {
		return violation("duplicate %s %q", u.column, *v)
	}
	u.seen[*v] = struct{}{}
	return nil
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstraintViolation, fmt.Sprintf(format, args...))
}

func required(column, v string) error {
	if strings.TrimSpace(v) == "" {
		return violation("%s is required", column)
	}
	return nil
}

func unitInterval(column string, v float64) error {
	if v < 0 || v > 1 {
		return violation("%s %v outside [0,1]", column, v)
	}
	return nil
}

// Validate checks every constraint the storage schema enforces and returns the
// first violation, wrapped with ErrConstraintViolation.
func (d Dataset) Validate() error {
	userIDs := newUniqueSet("users.id")
	emails := newUniqueSet("users.email")
	idNumbers := newUniqueSet("users.id_number")
	for _, u := range d.Users {
		if err := required("users.id", u.ID); err != nil {
			return err
		}
		if err := required("users.email", u.Email); err != nil {
			return err
		}
		if err := required("users.name", u.Name); err != nil {
			return err
		}
		if !u.Role.Valid() {
			return violation("users.role %q for %s", u.Role, u.ID)
		}
		for _, err := range []error{userIDs.add(&u.ID), emails.add(&u.Email), idNumbers.add(u.IDNumber)} {
			if err != nil {
				return err
			}
		}
	}

	parcelIDs := newUniqueSet("parcels.id")
	parcelHashes := newUniqueSet("parcels.blockchain_hash")
	for _, p := range d.Parcels {
		if err := required("parcels.id", p.ID); err != nil {
			return err
		}
		if err := required("parcels.address", p.Address); err != nil {
			return err
		}
		if !p.Status.Valid() {
			return violation("parcels.status %q for %s", p.Status, p.ID)
		}
		if !userIDs.has(p.OwnerID) {
			return violation("parcel %s references unknown owner %q", p.ID, p.OwnerID)
		}
		if err := parcelIDs.add(&p.ID); err != nil {
			return err
		}
		if err := parcelHashes.add(p.BlockchainHash); err != nil {
			return err
		}
	}

	analysisIDs := newUniqueSet("ai_analysis.id")
	analysisParcels := newUniqueSet("ai_analysis.parcel_id")
	for _, a := range d.Analyses {
		if !parcelIDs.has(a.ParcelID) {
			return violation("analysis %s references unknown parcel %q", a.ID, a.ParcelID)
		}
		if !a.FraudRisk.Valid() {
			return violation("ai_analysis.fraud_risk %q for %s", a.FraudRisk, a.ID)
		}
		if err := unitInterval("ai_analysis.risk_score", a.RiskScore); err != nil {
			return err
		}
		if err := unitInterval("ai_analysis.confidence", a.Confidence); err != nil {
			return err
		}
		if err := analysisIDs.add(&a.ID); err != nil {
			return err
		}
		if err := analysisParcels.add(&a.ParcelID); err != nil {
			return err
		}
	}

	transferIDs := newUniqueSet("transfers.id")
	transferHashes := newUniqueSet("transfers.blockchain_hash")
	for _, t := range d.Transfers {
		if !parcelIDs.has(t.ParcelID) {
			return violation("transfer %s references unknown parcel %q", t.ID, t.ParcelID)
		}
		if !userIDs.has(t.FromUserID) || !userIDs.has(t.ToUserID) {
			return violation("transfer %s references unknown user", t.ID)
		}
		if !t.Status.Valid() {
			return violation("transfers.status %q for %s", t.Status, t.ID)
		}
		if err := transferIDs.add(&t.ID); err != nil {
			return err
		}
		if err := transferHashes.add(t.BlockchainHash); err != nil {
			return err
		}
	}

	documentIDs := newUniqueSet("documents.id")
	fileHashes := newUniqueSet("documents.file_hash")
	for _, doc := range d.Documents {
		if err := required("documents.name", doc.Name); err != nil {
			return err
		}
		if !doc.Type.Valid() {
			return violation("documents.type %q for %s", doc.Type, doc.ID)
		}
		if doc.ParcelID != nil && !parcelIDs.has(*doc.ParcelID) {
			return violation("document %s references unknown parcel %q", doc.ID, *doc.ParcelID)
		}
		if doc.TransferID != nil && !transferIDs.has(*doc.TransferID) {
			return violation("document %s references unknown transfer %q", doc.ID, *doc.TransferID)
		}
		if err := documentIDs.add(&doc.ID); err != nil {
			return err
		}
		if err := fileHashes.add(doc.FileHash); err != nil {
			return err
		}
	}

	transactionIDs := newUniqueSet("transactions.id")
	transactionHashes := newUniqueSet("transactions.blockchain_hash")
	for _, tx := range d.Transactions {
		if err := required("transactions.type", tx.Type); err != nil {
			return err
		}
		if !parcelIDs.has(tx.ParcelID) {
			return violation("transaction %s references unknown parcel %q", tx.ID, tx.ParcelID)
		}
		if err := transactionIDs.add(&tx.ID); err != nil {
			return err
		}
		if err := transactionHashes.add(tx.BlockchainHash); err != nil {
			return err
		}
	}

	encumbranceIDs := newUniqueSet("encumbrances.id")
	for _, e := range d.Encumbrances {
		if err := required("encumbrances.type", e.Type); err != nil {
			return err
		}
		if !parcelIDs.has(e.ParcelID) {
			return violation("encumbrance %s references unknown parcel %q", e.ID, e.ParcelID)
		}
		if err := encumbranceIDs.add(&e.ID); err != nil {
			return err
		}
	}

	alertIDs := newUniqueSet("fraud_alerts.id")
	for _, a := range d.FraudAlerts {
		if err := required("fraud_alerts.reason", a.Reason); err != nil {
			return err
		}
		if !a.RiskLevel.Valid() {
			return violation("fraud_alerts.risk_level %q for %s", a.RiskLevel, a.ID)
		}
		if !parcelIDs.has(a.ParcelID) {
			return violation("fraud alert %s references unknown parcel %q", a.ID, a.ParcelID)
		}
		if a.ReportedBy != nil && !userIDs.has(*a.ReportedBy) {
			return violation("fraud alert %s references unknown reporter %q", a.ID, *a.ReportedBy)
		}
		if err := alertIDs.add(&a.ID); err != nil {
			return err
		}
	}

	statIDs := newUniqueSet("system_stats.id")
	statNames := newUniqueSet("system_stats.stat_name")
	for _, s := range d.Stats {
		if err := required("system_stats.stat_name", s.Name); err != nil {
			return err
		}
		if err := statIDs.add(&s.ID); err != nil {
			return err
		}
		if err := statNames.add(&s.Name); err != nil {
			return err
		}
	}

	return nil
}

func (u *uniqueSet) has(v string) bool {
	_, ok := u.seen[v]
	return ok
}
