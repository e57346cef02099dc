package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stwalsh4118/landregistry/internal/database"
	"github.com/stwalsh4118/landregistry/internal/models"
)

type fraudAlertRepository struct {
	db *database.Database
}

// NewFraudAlertRepository creates a new instance of FraudAlertRepository.
func NewFraudAlertRepository(db *database.Database) FraudAlertRepository {
	return &fraudAlertRepository{db: db}
}

// buildFraudAlertListQuery applies the resolved filter only when it is set.
func buildFraudAlertListQuery(filter FraudAlertFilter) (string, []any) {
	query := "SELECT " + columns("f", fraudAlertCols) + " FROM fraud_alerts f"
	var args []any
	if filter.Resolved != nil {
		args = append(args, *filter.Resolved)
		query += " WHERE f.is_resolved = $1"
	}
	query += " ORDER BY f.created_at DESC, f.seq DESC"
	return query, args
}

func (r *fraudAlertRepository) List(ctx context.Context, filter FraudAlertFilter) ([]models.FraudAlert, error) {
	query, args := buildFraudAlertListQuery(filter)

	alerts := []models.FraudAlert{}
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query fraud alerts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanFraudAlert(rows)
			if err != nil {
				return fmt.Errorf("failed to scan fraud alert row: %w", err)
			}
			alerts = append(alerts, a)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating fraud alert rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return alerts, nil
}
