package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-terminal-service/internal/checkout"
	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) SubmitSale(ctx context.Context, order *model.Order, lines []model.OrderLine, decrements []checkout.Decrement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Transport(err, "failed to open transaction")
	}
	defer tx.Rollback()

	orderQuery := `
        INSERT INTO orders (
            id, total_amount, status, fulfillment_type, payment_method,
            pickup_location_id, cashier_id, created_at
        )
        VALUES (
            :id, :total_amount, :status, :fulfillment_type, :payment_method,
            :pickup_location_id, :cashier_id, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, orderQuery, order); err != nil {
		return apperrors.Transport(err, "failed to create order")
	}

	lineQuery := `
        INSERT INTO order_lines (
            id, order_id, product_id, product_name, quantity, price_at_purchase
        )
        VALUES (
            :id, :order_id, :product_id, :product_name, :quantity, :price_at_purchase
        )
    `
	if _, err := tx.NamedExecContext(ctx, lineQuery, lines); err != nil {
		return apperrors.Transport(err, "failed to insert order lines")
	}

	// Conditional decrement: the WHERE clause is the stock check, so two
	// terminals racing on the same row can never drive it negative.
	decrementQuery := `
        UPDATE inventory
        SET quantity = quantity - $1, updated_at = NOW()
        WHERE id = $2 AND quantity >= $1
        RETURNING quantity
    `
	movementQuery := `
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
	for _, dec := range decrements {
		var after int
		err := tx.QueryRowxContext(ctx, decrementQuery, dec.Quantity, dec.InventoryID).Scan(&after)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.Conflict("insufficient stock for %s", dec.ProductName)
			}
			return apperrors.Transport(err, "failed to decrement stock")
		}

		movement := dec.Movement
		movement.QuantityAfter = after
		movement.QuantityBefore = after + dec.Quantity
		if _, err := tx.NamedExecContext(ctx, movementQuery, &movement); err != nil {
			return apperrors.Transport(err, "failed to log stock movement")
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Transport(err, "failed to commit sale")
	}
	return nil
}
