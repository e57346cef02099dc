package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stwalsh4118/landregistry/internal/database"
	"github.com/stwalsh4118/landregistry/internal/models"
)

type userRepository struct {
	db *database.Database
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := "SELECT " + columns("u", userCols) + " FROM users u ORDER BY u.seq"

	users := []models.User{}
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to query users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var u userRow
			if err := rows.Scan(u.targets()...); err != nil {
				return fmt.Errorf("failed to scan user row: %w", err)
			}
			users = append(users, u.model())
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating user rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := "SELECT " + columns("u", userCols) + " FROM users u WHERE u.id = $1"

	var user *models.User
	err := r.db.WithConn(ctx, func(conn *pgxpool.Conn) error {
		var u userRow
		if err := conn.QueryRow(ctx, query, id).Scan(u.targets()...); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to query user %s: %w", id, err)
		}
		m := u.model()
		user = &m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
