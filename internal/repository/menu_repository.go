package repository

import (
	"context"
	"fmt"

	"restaurant_ordering/internal/category"
	"restaurant_ordering/internal/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	List(ctx context.Context, cat category.ID) ([]models.MenuItem, error)
	GetByID(ctx context.Context, cat category.ID, id uint) (*models.MenuItem, error)
	Create(ctx context.Context, cat category.ID, item *models.MenuItem) error
	Update(ctx context.Context, cat category.ID, item *models.MenuItem) error
	Delete(ctx context.Context, cat category.ID, id uint) error
	Count(ctx context.Context, cat category.ID) (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// table scopes a query to the category's table. The table name only ever comes
// from the category registry.
func (r *menuRepository) table(ctx context.Context, cat category.ID) (*gorm.DB, error) {
	name, err := category.Table(cat)
	if err != nil {
		return nil, err
	}
	return r.db.WithContext(ctx).Table(name), nil
}

func (r *menuRepository) List(ctx context.Context, cat category.ID) ([]models.MenuItem, error) {
	q, err := r.table(ctx, cat)
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, storageError("list menu items", err)
	}
	return items, nil
}

func (r *menuRepository) GetByID(ctx context.Context, cat category.ID, id uint) (*models.MenuItem, error) {
	q, err := r.table(ctx, cat)
	if err != nil {
		return nil, err
	}
	var item models.MenuItem
	if err := q.Where("id = ?", id).Take(&item).Error; err != nil {
		return nil, storageError(fmt.Sprintf("get %s item %d", cat, id), err)
	}
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, cat category.ID, item *models.MenuItem) error {
	q, err := r.table(ctx, cat)
	if err != nil {
		return err
	}
	return storageError("create menu item", q.Create(item).Error)
}

// Update overwrites name and price of an existing row.
func (r *menuRepository) Update(ctx context.Context, cat category.ID, item *models.MenuItem) error {
	q, err := r.table(ctx, cat)
	if err != nil {
		return err
	}
	res := q.Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":  item.Name,
		"price": item.Price,
	})
	if res.Error != nil {
		return storageError("update menu item", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %s item %d: %w", cat, item.ID, ErrNotFound)
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, cat category.ID, id uint) error {
	q, err := r.table(ctx, cat)
	if err != nil {
		return err
	}
	res := q.Where("id = ?", id).Delete(&models.MenuItem{})
	if res.Error != nil {
		return storageError("delete menu item", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s item %d: %w", cat, id, ErrNotFound)
	}
	return nil
}

func (r *menuRepository) Count(ctx context.Context, cat category.ID) (int64, error) {
	q, err := r.table(ctx, cat)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, storageError("count menu items", err)
	}
	return n, nil
}
