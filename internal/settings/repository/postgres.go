package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetAll(ctx context.Context, terminal string) (map[string]string, error) {
	rows, err := r.DB.QueryxContext(ctx,
		`SELECT key, value FROM terminal_settings WHERE terminal = $1`, terminal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}

func (r *PGRepository) Save(ctx context.Context, terminal string, values map[string]string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO terminal_settings (terminal, key, value, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (terminal, key)
        DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
    `
	now := time.Now()
	for key, value := range values {
		if _, err := tx.ExecContext(ctx, query, terminal, key, value, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}
