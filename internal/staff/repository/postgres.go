package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Profile) error {
	query := `
        INSERT INTO profiles (
            id, email, full_name, role, assigned_location_id,
            password_hash, is_active, created_at, updated_at
        )
        VALUES (
            :id, :email, :full_name, :role, :assigned_location_id,
            :password_hash, :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	var p model.Profile
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM profiles WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var p model.Profile
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM profiles WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, page, pageSize int) ([]model.Profile, int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM profiles`); err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM profiles ORDER BY full_name ASC`
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, offset)
	}

	var items []model.Profile
	err := r.DB.SelectContext(ctx, &items, query)
	return items, count, err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Profile) error {
	query := `
        UPDATE profiles SET
            full_name = :full_name,
            role = :role,
            assigned_location_id = :assigned_location_id,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}
