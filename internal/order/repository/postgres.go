package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/order/dto"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	query := `
        SELECT o.id, o.total_amount, o.status, o.fulfillment_type, o.payment_method,
               o.pickup_location_id, o.cashier_id, o.created_at,
               l.name AS location_name
        FROM orders o
        LEFT JOIN locations l ON l.id = o.pickup_location_id
        WHERE o.id = $1
    `
	var order model.Order
	if err := r.DB.GetContext(ctx, &order, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Transport(err, "failed to fetch order")
	}

	linesQuery := `
        SELECT id, order_id, product_id, product_name, quantity, price_at_purchase
        FROM order_lines
        WHERE order_id = $1
        ORDER BY product_name
    `
	if err := r.DB.SelectContext(ctx, &order.Lines, linesQuery, id); err != nil {
		return nil, apperrors.Transport(err, "failed to fetch order lines")
	}
	return &order, nil
}

func (r *PGRepository) FindAll(ctx context.Context, filter *dto.OrderFilter) ([]model.Order, int, error) {
	conditions := []string{}
	args := []interface{}{}
	idx := 1

	if filter.LocationID != "" {
		conditions = append(conditions, fmt.Sprintf("o.pickup_location_id = $%d", idx))
		args = append(args, filter.LocationID)
		idx++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders o %s", where)
	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, apperrors.Transport(err, "failed to count orders")
	}

	query := fmt.Sprintf(`
        SELECT o.id, o.total_amount, o.status, o.fulfillment_type, o.payment_method,
               o.pickup_location_id, o.cashier_id, o.created_at,
               l.name AS location_name
        FROM orders o
        LEFT JOIN locations l ON l.id = o.pickup_location_id
        %s
        ORDER BY o.created_at DESC
        LIMIT $%d OFFSET $%d
    `, where, idx, idx+1)
	args = append(args, filter.Limit, filter.Offset())

	orders := []model.Order{}
	if err := r.DB.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, apperrors.Transport(err, "failed to list orders")
	}
	return orders, total, nil
}
