package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stwalsh4118/landregistry/internal/fixtures"
	"github.com/stwalsh4118/landregistry/internal/models"
)

// memoryData backs the in-memory repositories when no database is configured.
// Slices keep insertion order, which stands in for the seq column.
type memoryData struct {
	mu sync.RWMutex
	ds fixtures.Dataset

	users    map[string]int
	parcels  map[string]int
	analyses map[string]int // parcel id -> index into ds.Analyses
}

// NewMemoryStore validates ds and serves it read-only from memory.
// Zero timestamps are stamped with the load time.
func NewMemoryStore(ds fixtures.Dataset) (*Store, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load in-memory dataset: %w", err)
	}

	m := &memoryData{
		ds:       stampTimes(ds, time.Now().UTC()),
		users:    make(map[string]int, len(ds.Users)),
		parcels:  make(map[string]int, len(ds.Parcels)),
		analyses: make(map[string]int, len(ds.Analyses)),
	}
	for i, u := range m.ds.Users {
		m.users[u.ID] = i
	}
	for i, p := range m.ds.Parcels {
		m.parcels[p.ID] = i
	}
	for i, a := range m.ds.Analyses {
		m.analyses[a.ParcelID] = i
	}

	return &Store{
		Parcels:     &memoryParcels{m},
		Transfers:   &memoryTransfers{m},
		Users:       &memoryUsers{m},
		FraudAlerts: &memoryFraudAlerts{m},
		Stats:       &memoryStats{m},
	}, nil
}

// stampTimes copies ds, filling zero timestamps with now the way the
// database column defaults would.
func stampTimes(ds fixtures.Dataset, now time.Time) fixtures.Dataset {
	stamp := func(t *time.Time) {
		if t.IsZero() {
			*t = now
		}
	}

	out := fixtures.Dataset{
		Users:        append([]models.User(nil), ds.Users...),
		Parcels:      append([]models.Parcel(nil), ds.Parcels...),
		Analyses:     append([]models.AIAnalysis(nil), ds.Analyses...),
		Transfers:    append([]models.Transfer(nil), ds.Transfers...),
		Documents:    append([]models.Document(nil), ds.Documents...),
		Transactions: append([]models.Transaction(nil), ds.Transactions...),
		Encumbrances: append([]models.Encumbrance(nil), ds.Encumbrances...),
		FraudAlerts:  append([]models.FraudAlert(nil), ds.FraudAlerts...),
		Stats:        append([]models.SystemStat(nil), ds.Stats...),
	}
	for i := range out.Users {
		stamp(&out.Users[i].CreatedAt)
		stamp(&out.Users[i].UpdatedAt)
	}
	for i := range out.Parcels {
		stamp(&out.Parcels[i].CreatedAt)
		stamp(&out.Parcels[i].UpdatedAt)
	}
	for i := range out.Analyses {
		stamp(&out.Analyses[i].LastValuation)
		stamp(&out.Analyses[i].CreatedAt)
		stamp(&out.Analyses[i].UpdatedAt)
	}
	for i := range out.Transfers {
		stamp(&out.Transfers[i].CreatedAt)
		stamp(&out.Transfers[i].UpdatedAt)
	}
	for i := range out.Documents {
		stamp(&out.Documents[i].CreatedAt)
	}
	for i := range out.Transactions {
		stamp(&out.Transactions[i].TransactionDate)
	}
	for i := range out.Encumbrances {
		stamp(&out.Encumbrances[i].CreatedAt)
	}
	for i := range out.FraudAlerts {
		stamp(&out.FraudAlerts[i].CreatedAt)
	}
	for i := range out.Stats {
		stamp(&out.Stats[i].UpdatedAt)
	}
	return out
}

// analysis returns a copy of the parcel's analysis, or nil. Caller holds mu.
func (m *memoryData) analysis(parcelID string) *models.AIAnalysis {
	i, ok := m.analyses[parcelID]
	if !ok {
		return nil
	}
	a := m.ds.Analyses[i]
	return &a
}

func (m *memoryData) user(id string) models.User {
	return m.ds.Users[m.users[id]]
}

func (m *memoryData) parcel(id string) models.Parcel {
	return m.ds.Parcels[m.parcels[id]]
}

// documents returns the documents matching keep in insertion order. Caller holds mu.
func (m *memoryData) documents(keep func(models.Document) bool) []models.Document {
	docs := []models.Document{}
	for _, d := range m.ds.Documents {
		if keep(d) {
			docs = append(docs, d)
		}
	}
	return docs
}

// containsFold matches the way ILIKE does under a UTF-8 collation: both sides
// are lowercased rune by rune, so "É" matches "é" but "ß" does not match "ss".
// Locale-specific mappings such as Turkish dotted I are not applied.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

type memoryParcels struct{ m *memoryData }

func (r *memoryParcels) List(_ context.Context, filter ParcelFilter) ([]ParcelSummary, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	results := []ParcelSummary{}
	for _, p := range r.m.ds.Parcels {
		owner := r.m.user(p.OwnerID)
		if filter.Search != "" &&
			!containsFold(p.Address, filter.Search) &&
			!containsFold(owner.Name, filter.Search) &&
			!containsFold(p.ID, filter.Search) {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		results = append(results, ParcelSummary{
			Parcel:    p,
			OwnerName: owner.Name,
			Analysis:  r.m.analysis(p.ID),
		})
	}
	return results, nil
}

func (r *memoryParcels) FindByID(_ context.Context, id string) (*ParcelDetail, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	if _, ok := r.m.parcels[id]; !ok {
		return nil, nil
	}
	p := r.m.parcel(id)

	d := &ParcelDetail{
		Parcel:       p,
		Owner:        r.m.user(p.OwnerID),
		Analysis:     r.m.analysis(id),
		Transactions: []models.Transaction{},
		Encumbrances: []models.Encumbrance{},
	}
	d.Documents = r.m.documents(func(doc models.Document) bool {
		return doc.ParcelID != nil && *doc.ParcelID == id
	})
	for _, t := range r.m.ds.Transactions {
		if t.ParcelID == id {
			d.Transactions = append(d.Transactions, t)
		}
	}
	for _, e := range r.m.ds.Encumbrances {
		if e.ParcelID == id {
			d.Encumbrances = append(d.Encumbrances, e)
		}
	}
	return d, nil
}

type memoryTransfers struct{ m *memoryData }

func (r *memoryTransfers) detail(t models.Transfer) TransferDetail {
	docs := r.m.documents(func(doc models.Document) bool {
		return doc.TransferID != nil && *doc.TransferID == t.ID
	})
	return TransferDetail{
		Transfer:  t,
		Parcel:    r.m.parcel(t.ParcelID),
		FromUser:  r.m.user(t.FromUserID),
		ToUser:    r.m.user(t.ToUserID),
		Documents: docs,
	}
}

func (r *memoryTransfers) List(_ context.Context, filter TransferFilter) ([]TransferDetail, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	// Walk newest-inserted first so the stable sort breaks created_at ties
	// the same way seq DESC does.
	results := []TransferDetail{}
	for i := len(r.m.ds.Transfers) - 1; i >= 0; i-- {
		t := r.m.ds.Transfers[i]
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		results = append(results, r.detail(t))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Transfer.CreatedAt.After(results[j].Transfer.CreatedAt)
	})
	return results, nil
}

func (r *memoryTransfers) FindByID(_ context.Context, id string) (*TransferDetail, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, t := range r.m.ds.Transfers {
		if t.ID == id {
			d := r.detail(t)
			return &d, nil
		}
	}
	return nil, nil
}

type memoryUsers struct{ m *memoryData }

func (r *memoryUsers) List(_ context.Context) ([]models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return append([]models.User{}, r.m.ds.Users...), nil
}

func (r *memoryUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	if _, ok := r.m.users[id]; !ok {
		return nil, nil
	}
	u := r.m.user(id)
	return &u, nil
}

type memoryFraudAlerts struct{ m *memoryData }

func (r *memoryFraudAlerts) List(_ context.Context, filter FraudAlertFilter) ([]models.FraudAlert, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	alerts := []models.FraudAlert{}
	for i := len(r.m.ds.FraudAlerts) - 1; i >= 0; i-- {
		a := r.m.ds.FraudAlerts[i]
		if filter.Resolved != nil && a.IsResolved != *filter.Resolved {
			continue
		}
		alerts = append(alerts, a)
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
	return alerts, nil
}

type memoryStats struct{ m *memoryData }

func (r *memoryStats) All(_ context.Context) ([]models.SystemStat, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return append([]models.SystemStat{}, r.m.ds.Stats...), nil
}
