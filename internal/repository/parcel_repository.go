package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stwalsh4118/landregistry/internal/database"
	"github.com/stwalsh4118/landregistry/internal/models"
)

// parcelRepository is the PostgreSQL implementation of ParcelRepository.
type parcelRepository struct {
	db *database.Database
}

// NewParcelRepository creates a new instance of ParcelRepository.
func NewParcelRepository(db *database.Database) ParcelRepository {
	return &parcelRepository{
		db: db,
	}
}

// buildParcelListQuery renders the summary query for filter. The owner join
// is always present so the search can match the owner's name; the analysis
// join is LEFT since a parcel may have none.
func buildParcelListQuery(filter ParcelFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columns("p", parcelCols))
	sb.WriteString(", u.name, ")
	sb.WriteString(columns("a", analysisCols))
	sb.WriteString(`
		FROM parcels p
		JOIN users u ON u.id = p.owner_id
		LEFT JOIN ai_analysis a ON a.parcel_id = p.id`)

	var conditions []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(p.address ILIKE $%d OR u.name ILIKE $%d OR p.id ILIKE $%d)", n, n, n))
	}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	sb.WriteString("\n\t\tORDER BY p.seq")

	return sb.String(), args
}

// List returns parcel summaries matching filter in insertion order.
func (r *parcelRepository) List(ctx context.Context, filter ParcelFilter) ([]ParcelSummary, error) {
	query, args := buildParcelListQuery(filter)

	results := []ParcelSummary{}
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query parcels (search=%q, status=%q): %w",
				filter.Search, filter.Status, err)
		}
		defer rows.Close()

		for rows.Next() {
			var p parcelRow
			var a analysisRow
			var ownerName string

			targets := append(p.targets(), &ownerName)
			targets = append(targets, a.targets()...)
			if err := rows.Scan(targets...); err != nil {
				return fmt.Errorf("failed to scan parcel row: %w", err)
			}

			analysis, err := a.model()
			if err != nil {
				return err
			}

			results = append(results, ParcelSummary{
				Parcel:    p.model(),
				OwnerName: ownerName,
				Analysis:  analysis,
			})
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating parcel rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// FindByID loads a parcel and all of its associations from one snapshot.
func (r *parcelRepository) FindByID(ctx context.Context, id string) (*ParcelDetail, error) {
	var detail *ParcelDetail

	err := r.db.ReadOnly(ctx, func(tx pgx.Tx) error {
		query := "SELECT " + columns("p", parcelCols) + ", " + columns("u", userCols) + `
			FROM parcels p
			JOIN users u ON u.id = p.owner_id
			WHERE p.id = $1`

		var p parcelRow
		var u userRow
		err := tx.QueryRow(ctx, query, id).Scan(append(p.targets(), u.targets()...)...)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to query parcel %s: %w", id, err)
		}

		d := &ParcelDetail{
			Parcel: p.model(),
			Owner:  u.model(),
		}

		if d.Analysis, err = findAnalysis(ctx, tx, id); err != nil {
			return err
		}
		if d.Documents, err = listDocuments(ctx, tx, "parcel_id = $1", id); err != nil {
			return err
		}
		if d.Transactions, err = listTransactions(ctx, tx, id); err != nil {
			return err
		}
		if d.Encumbrances, err = listEncumbrances(ctx, tx, id); err != nil {
			return err
		}

		detail = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func findAnalysis(ctx context.Context, q querier, parcelID string) (*models.AIAnalysis, error) {
	query := "SELECT " + columns("a", analysisCols) + " FROM ai_analysis a WHERE a.parcel_id = $1"

	var a analysisRow
	if err := q.QueryRow(ctx, query, parcelID).Scan(a.targets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query analysis for parcel %s: %w", parcelID, err)
	}
	return a.model()
}

// listDocuments returns documents matching where (written against alias d).
func listDocuments(ctx context.Context, q querier, where string, args ...any) ([]models.Document, error) {
	query := "SELECT " + columns("d", documentCols) + " FROM documents d WHERE d." + where + " ORDER BY d.seq"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return docs, nil
}

func listTransactions(ctx context.Context, q querier, parcelID string) ([]models.Transaction, error) {
	query := "SELECT " + columns("t", transactionCols) + " FROM transactions t WHERE t.parcel_id = $1 ORDER BY t.seq"

	rows, err := q.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for parcel %s: %w", parcelID, err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func listEncumbrances(ctx context.Context, q querier, parcelID string) ([]models.Encumbrance, error) {
	query := "SELECT " + columns("e", encumbranceCols) + " FROM encumbrances e WHERE e.parcel_id = $1 ORDER BY e.seq"

	rows, err := q.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query encumbrances for parcel %s: %w", parcelID, err)
	}
	defer rows.Close()

	encs := []models.Encumbrance{}
	for rows.Next() {
		e, err := scanEncumbrance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan encumbrance row: %w", err)
		}
		encs = append(encs, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating encumbrance rows: %w", err)
	}
	return encs, nil
}
