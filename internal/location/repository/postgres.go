package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, loc *model.Location) error {
	query := `
        INSERT INTO locations (id, name, type, is_active, created_at, updated_at)
        VALUES (:id, :name, :type, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, loc)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	err := r.DB.GetContext(ctx, &loc, `SELECT * FROM locations WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func (r *PGRepository) FindActiveStores(ctx context.Context) ([]model.Location, error) {
	var items []model.Location
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM locations WHERE type = $1 AND is_active = true ORDER BY name ASC`,
		model.LocationTypeStore,
	)
	return items, err
}
