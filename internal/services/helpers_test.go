package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"restaurant_ordering/internal/category"
	"restaurant_ordering/internal/migrations"
	"restaurant_ordering/internal/models"
	"restaurant_ordering/internal/redis"
	"restaurant_ordering/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := migrations.Run(db, false); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestCache(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := redis.Initialize("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("failed to connect to miniredis: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func price(p float64) *float64 {
	return &p
}

var errBroken = errors.New("connection reset by peer")

// brokenCache fails every operation, like an unreachable Redis.
type brokenCache struct{}

func (brokenCache) SetJSON(context.Context, string, interface{}, time.Duration) error { return errBroken }
func (brokenCache) GetJSON(context.Context, string, interface{}) error                { return errBroken }
func (brokenCache) Delete(context.Context, ...string) error                            { return errBroken }

// countingMenuRepo records how often storage was touched.
type countingMenuRepo struct {
	calls int
}

func (r *countingMenuRepo) List(context.Context, category.ID) ([]models.MenuItem, error) {
	r.calls++
	return nil, nil
}

func (r *countingMenuRepo) GetByID(context.Context, category.ID, uint) (*models.MenuItem, error) {
	r.calls++
	return &models.MenuItem{}, nil
}

func (r *countingMenuRepo) Create(context.Context, category.ID, *models.MenuItem) error {
	r.calls++
	return nil
}

func (r *countingMenuRepo) Update(context.Context, category.ID, *models.MenuItem) error {
	r.calls++
	return nil
}

func (r *countingMenuRepo) Delete(context.Context, category.ID, uint) error {
	r.calls++
	return nil
}

func (r *countingMenuRepo) Count(context.Context, category.ID) (int64, error) {
	r.calls++
	return 0, nil
}

// stubOrderRepo records calls and can be told to fail.
type stubOrderRepo struct {
	calls     int
	lastLimit int
	appended  []*models.OrderLine
	err       error
}

func (r *stubOrderRepo) Append(_ context.Context, line *models.OrderLine) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.appended = append(r.appended, line)
	return nil
}

func (r *stubOrderRepo) AppendAll(_ context.Context, lines []*models.OrderLine) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.appended = append(r.appended, lines...)
	return nil
}

func (r *stubOrderRepo) ListRecent(_ context.Context, limit int) ([]models.OrderLine, error) {
	r.calls++
	r.lastLimit = limit
	return nil, r.err
}

func (r *stubOrderRepo) CountAll(context.Context) (int64, error) {
	r.calls++
	return int64(len(r.appended)), r.err
}

func (r *stubOrderRepo) SumRevenue(context.Context) (float64, error) {
	r.calls++
	return 0, r.err
}

func (r *stubOrderRepo) Totals(context.Context) (int64, float64, error) {
	r.calls++
	if r.err != nil {
		return 0, 0, r.err
	}
	var sum float64
	for _, l := range r.appended {
		sum += l.TotalPrice
	}
	return int64(len(r.appended)), sum, nil
}

var storageDown = fmt.Errorf("append order lines: %w: %w", repository.ErrStorageUnavailable, errBroken)
