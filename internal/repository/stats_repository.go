package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stwalsh4118/landregistry/internal/database"
	"github.com/stwalsh4118/landregistry/internal/models"
)

type statsRepository struct {
	db *database.Database
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *database.Database) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) All(ctx context.Context) ([]models.SystemStat, error) {
	query := "SELECT " + columns("s", statCols) + " FROM system_stats s ORDER BY s.id"

	stats := []models.SystemStat{}
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to query system stats: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			s, err := scanStat(rows)
			if err != nil {
				return fmt.Errorf("failed to scan stat row: %w", err)
			}
			stats = append(stats, s)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating stat rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// NewPostgresStore wires every PostgreSQL repository over db.
func NewPostgresStore(db *database.Database) *Store {
	return &Store{
		Parcels:     NewParcelRepository(db),
		Transfers:   NewTransferRepository(db),
		Users:       NewUserRepository(db),
		FraudAlerts: NewFraudAlertRepository(db),
		Stats:       NewStatsRepository(db),
	}
}
