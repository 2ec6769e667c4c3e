package repository

import (
	"context"

	"restaurant_ordering/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is an append-only log of order lines. There is no update or
// delete.
type OrderRepository interface {
	Append(ctx context.Context, line *models.OrderLine) error
	// AppendAll inserts every line in one transaction: all rows or none.
	AppendAll(ctx context.Context, lines []*models.OrderLine) error
	ListRecent(ctx context.Context, limit int) ([]models.OrderLine, error)
	CountAll(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
	// Totals reads count and revenue in a single statement.
	Totals(ctx context.Context) (int64, float64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Append(ctx context.Context, line *models.OrderLine) error {
	return storageError("append order line", insertLine(r.db.WithContext(ctx), line))
}

func insertLine(tx *gorm.DB, line *models.OrderLine) error {
	return tx.Create(line).Error
}

func (r *orderRepository) AppendAll(ctx context.Context, lines []*models.OrderLine) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			if err := insertLine(tx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// IDs handed out inside the rolled back transaction are meaningless.
		for _, line := range lines {
			line.ID = 0
		}
		return storageError("append order lines", err)
	}
	return nil
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]models.OrderLine, error) {
	lines := []models.OrderLine{}
	err := r.db.WithContext(ctx).
		Order("order_time DESC").
		Order("id DESC").
		Limit(limit).
		Find(&lines).Error
	if err != nil {
		return nil, storageError("list orders", err)
	}
	return lines, nil
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.OrderLine{}).Count(&n).Error; err != nil {
		return 0, storageError("count orders", err)
	}
	return n, nil
}

func (r *orderRepository) SumRevenue(ctx context.Context) (float64, error) {
	var total float64
	row := r.db.WithContext(ctx).Model(&models.OrderLine{}).Select("COALESCE(SUM(total_price), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return 0, storageError("sum revenue", err)
	}
	return total, nil
}

func (r *orderRepository) Totals(ctx context.Context) (int64, float64, error) {
	var (
		count int64
		total float64
	)
	row := r.db.WithContext(ctx).Model(&models.OrderLine{}).Select("COUNT(*), COALESCE(SUM(total_price), 0)").Row()
	if err := row.Scan(&count, &total); err != nil {
		return 0, 0, storageError("order totals", err)
	}
	return count, total, nil
}
