package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-terminal-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv, `SELECT * FROM inventory WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) ListByProduct(ctx context.Context, productID, locationID string) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.DB.SelectContext(ctx, &items, `
        SELECT * FROM inventory
        WHERE product_id = $1 AND location_id = $2
        ORDER BY size_name NULLS FIRST
    `, productID, locationID)
	return items, err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.InventoryFilters) ([]model.Inventory, int, error) {
	var items []model.Inventory
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.LocationID != "" {
		conditions = append(conditions, "location_id = :location_id")
		args["location_id"] = f.LocationID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM inventory" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM inventory" + whereClause + " ORDER BY updated_at DESC"
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

func (r *PGRepository) Upsert(ctx context.Context, inv *model.Inventory) error {
	query := `
        INSERT INTO inventory (
            id, product_id, location_id, size_name, quantity, price, updated_at
        )
        VALUES (
            :id, :product_id, :location_id, :size_name, :quantity, :price, :updated_at
        )
        ON CONFLICT (product_id, location_id, size_name)
        DO UPDATE SET
            quantity = EXCLUDED.quantity,
            price = EXCLUDED.price,
            updated_at = EXCLUDED.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, inv)
	return err
}

func (r *PGRepository) DecrementConditional(ctx context.Context, id string, qty int) (int, bool, error) {
	var after int
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE inventory
        SET quantity = quantity - $1, updated_at = NOW()
        WHERE id = $2 AND quantity >= $1
        RETURNING quantity
    `, qty, id).Scan(&after)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Out of stock or unknown row
			return 0, false, nil
		}
		return 0, false, err
	}
	return after, true, nil
}

func (r *PGRepository) LogMovement(ctx context.Context, m *model.InventoryMovement) error {
	_, err := r.DB.NamedExecContext(ctx, insertMovementQuery, m)
	return err
}

const insertMovementQuery = `
    INSERT INTO inventory_movements (
        id, inventory_id, product_id, location_id,
        movement_type, quantity_change, quantity_before, quantity_after,
        reference_type, reference_id, notes, created_by, created_at
    )
    VALUES (
        :id, :inventory_id, :product_id, :location_id,
        :movement_type, :quantity_change, :quantity_before, :quantity_after,
        :reference_type, :reference_id, :notes, :created_by, :created_at
    )
`

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	var items []model.InventoryMovement
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.LocationID != "" {
		conditions = append(conditions, "location_id = :location_id")
		args["location_id"] = f.LocationID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}
	if f.StartDate != nil {
		conditions = append(conditions, "created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "created_at <= :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM inventory_movements" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM inventory_movements" + whereClause + " ORDER BY created_at DESC"
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

func (r *PGRepository) AdjustStockWithMovement(ctx context.Context, inv *model.Inventory, movement *model.InventoryMovement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsertQuery := `
        INSERT INTO inventory (
            id, product_id, location_id, size_name, quantity, price, updated_at
        )
        VALUES (
            :id, :product_id, :location_id, :size_name, :quantity, :price, :updated_at
        )
        ON CONFLICT (product_id, location_id, size_name)
        DO UPDATE SET
            quantity = EXCLUDED.quantity,
            price = EXCLUDED.price,
            updated_at = EXCLUDED.updated_at
    `
	if _, err = tx.NamedExecContext(ctx, upsertQuery, inv); err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}

	if _, err = tx.NamedExecContext(ctx, insertMovementQuery, movement); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}

	return tx.Commit()
}
