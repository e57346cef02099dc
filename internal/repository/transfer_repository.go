package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stwalsh4118/landregistry/internal/database"
	"github.com/stwalsh4118/landregistry/internal/models"
)

// transferRepository is the PostgreSQL implementation of TransferRepository.
type transferRepository struct {
	db *database.Database
}

// NewTransferRepository creates a new instance of TransferRepository.
func NewTransferRepository(db *database.Database) TransferRepository {
	return &transferRepository{
		db: db,
	}
}

var transferDetailSelect = "SELECT " +
	columns("t", transferCols) + ", " +
	columns("p", parcelCols) + ", " +
	columns("fu", userCols) + ", " +
	columns("tu", userCols) + `
	FROM transfers t
	JOIN parcels p ON p.id = t.parcel_id
	JOIN users fu ON fu.id = t.from_user_id
	JOIN users tu ON tu.id = t.to_user_id`

// buildTransferListQuery renders the listing query, newest first. seq breaks
// ties between rows created in the same transaction.
func buildTransferListQuery(filter TransferFilter) (string, []any) {
	query := transferDetailSelect
	var args []any
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += "\n\tWHERE t.status = $1"
	}
	query += "\n\tORDER BY t.created_at DESC, t.seq DESC"
	return query, args
}

func scanTransferDetail(s scanner) (TransferDetail, error) {
	var t transferRow
	var p parcelRow
	var from, to userRow

	targets := append(t.targets(), p.targets()...)
	targets = append(targets, from.targets()...)
	targets = append(targets, to.targets()...)
	if err := s.Scan(targets...); err != nil {
		return TransferDetail{}, err
	}

	return TransferDetail{
		Transfer: t.model(),
		Parcel:   p.model(),
		FromUser: from.model(),
		ToUser:   to.model(),
	}, nil
}

// List returns transfers matching filter with their documents attached.
func (r *transferRepository) List(ctx context.Context, filter TransferFilter) ([]TransferDetail, error) {
	query, args := buildTransferListQuery(filter)

	results := []TransferDetail{}
	err := r.db.ReadOnly(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query transfers (status=%q): %w", filter.Status, err)
		}

		ids := []string{}
		for rows.Next() {
			detail, err := scanTransferDetail(rows)
			if err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan transfer row: %w", err)
			}
			results = append(results, detail)
			ids = append(ids, detail.Transfer.ID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating transfer rows: %w", err)
		}

		if len(ids) == 0 {
			return nil
		}

		docs, err := listDocuments(ctx, tx, "transfer_id = ANY($1)", ids)
		if err != nil {
			return err
		}

		byTransfer := make(map[string]int, len(results))
		for i := range results {
			results[i].Documents = []models.Document{}
			byTransfer[results[i].Transfer.ID] = i
		}
		for _, doc := range docs {
			if doc.TransferID == nil {
				continue
			}
			if i, ok := byTransfer[*doc.TransferID]; ok {
				results[i].Documents = append(results[i].Documents, doc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// FindByID loads one transfer detail from a single snapshot.
func (r *transferRepository) FindByID(ctx context.Context, id string) (*TransferDetail, error) {
	var detail *TransferDetail

	err := r.db.ReadOnly(ctx, func(tx pgx.Tx) error {
		d, err := scanTransferDetail(tx.QueryRow(ctx, transferDetailSelect+"\n\tWHERE t.id = $1", id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to query transfer %s: %w", id, err)
		}

		if d.Documents, err = listDocuments(ctx, tx, "transfer_id = $1", id); err != nil {
			return err
		}

		detail = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}
