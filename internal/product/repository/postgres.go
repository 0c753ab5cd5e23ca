package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, sku, name, description, sizes, image_url, is_active,
            created_at, updated_at
        )
        VALUES (
            :id, :sku, :name, :description, :sizes, :image_url, :is_active,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE sku = $1 AND is_active = true`, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var items []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR sku ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	sortCol := "name"
	if f.SortBy == "created_at" {
		sortCol = "created_at"
	}
	sortOrder := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := "SELECT * FROM products" + whereClause + fmt.Sprintf(" ORDER BY %s %s", sortCol, sortOrder)
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func (r *PGRepository) FindAllWithInventory(ctx context.Context, locationID string) ([]model.Product, error) {
	var products []model.Product
	err := r.DB.SelectContext(ctx, &products, `
        SELECT DISTINCT p.* FROM products p
        JOIN inventory i ON i.product_id = p.id
        WHERE p.is_active = true AND i.location_id = $1
        ORDER BY p.name ASC
    `, locationID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}

	productIDs := make([]string, len(products))
	for i, p := range products {
		productIDs[i] = p.ID
	}

	query, args, err := sqlx.In(`
        SELECT * FROM inventory
        WHERE location_id = ? AND product_id IN (?)
        ORDER BY size_name NULLS FIRST
    `, locationID, productIDs)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	var invRows []model.Inventory
	if err := r.DB.SelectContext(ctx, &invRows, query, args...); err != nil {
		return nil, err
	}

	byProduct := make(map[string][]model.Inventory, len(products))
	for _, inv := range invRows {
		byProduct[inv.ProductID] = append(byProduct[inv.ProductID], inv)
	}
	for i := range products {
		products[i].Inventory = byProduct[products[i].ID]
	}

	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products SET
            sku = :sku,
            name = :name,
            description = :description,
            sizes = :sizes,
            image_url = :image_url,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE sku = $1 AND id != $2`
	if err := r.DB.GetContext(ctx, &count, query, sku, excludeID); err != nil {
		return false, err
	}
	return count == 0, nil
}
