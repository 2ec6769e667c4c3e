package repository

import (
	"context"
	"errors"
	"testing"

	"restaurant_ordering/internal/models"

	"gorm.io/gorm"
)

// failOnItem makes any insert of an order line with the given item name fail.
func failOnItem(t *testing.T, db *gorm.DB, name string) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_on_item", func(tx *gorm.DB) {
		if line, ok := tx.Statement.Dest.(*models.OrderLine); ok && line.ItemName == name {
			tx.AddError(errors.New("simulated insert failure"))
		}
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}
}

func TestOrderRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("empty store aggregates to zero", func(t *testing.T) {
		n, err := repo.CountAll(ctx)
		if err != nil || n != 0 {
			t.Errorf("CountAll: got %d, %v", n, err)
		}
		sum, err := repo.SumRevenue(ctx)
		if err != nil {
			t.Fatalf("SumRevenue on empty store failed: %v", err)
		}
		if sum != 0 {
			t.Errorf("SumRevenue: got %v, want 0", sum)
		}
		count, total, err := repo.Totals(ctx)
		if err != nil || count != 0 || total != 0 {
			t.Errorf("Totals: got %d, %v, %v", count, total, err)
		}
	})

	t.Run("Append assigns id and order time", func(t *testing.T) {
		line := &models.OrderLine{ItemName: "Tea", UnitPrice: 20, Quantity: 2, TotalPrice: 40}
		if err := repo.Append(ctx, line); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if line.ID == 0 {
			t.Error("expected ID to be assigned")
		}
		if line.OrderTime.IsZero() {
			t.Error("expected OrderTime to be assigned")
		}
	})

	t.Run("AppendAll inserts every line", func(t *testing.T) {
		lines := []*models.OrderLine{
			{ItemName: "Coffee", UnitPrice: 30, Quantity: 1, TotalPrice: 30},
			{ItemName: "Idly", UnitPrice: 25, Quantity: 2, TotalPrice: 50},
		}
		if err := repo.AppendAll(ctx, lines); err != nil {
			t.Fatalf("AppendAll failed: %v", err)
		}
		if lines[0].ID == 0 || lines[1].ID <= lines[0].ID {
			t.Errorf("lines not appended in order: %d, %d", lines[0].ID, lines[1].ID)
		}
		count, total, err := repo.Totals(ctx)
		if err != nil {
			t.Fatalf("Totals failed: %v", err)
		}
		if count != 3 || total != 120 {
			t.Errorf("Totals: got %d, %v; want 3, 120", count, total)
		}
	})

	t.Run("ListRecent returns newest first with limit", func(t *testing.T) {
		lines, err := repo.ListRecent(ctx, 2)
		if err != nil {
			t.Fatalf("ListRecent failed: %v", err)
		}
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[0].ItemName != "Idly" || lines[1].ItemName != "Coffee" {
			t.Errorf("unexpected order: %s, %s", lines[0].ItemName, lines[1].ItemName)
		}
		if lines[0].OrderTime.Before(lines[1].OrderTime) {
			t.Error("lines not ordered by order time descending")
		}
	})
}

func TestAppendAllIsAtomic(t *testing.T) {
	db := newTestDB(t)
	failOnItem(t, db, "Poison")
	repo := NewOrderRepository(db)
	ctx := context.Background()

	lines := []*models.OrderLine{
		{ItemName: "Tea", UnitPrice: 20, Quantity: 2, TotalPrice: 40},
		{ItemName: "Poison", UnitPrice: 1, Quantity: 1, TotalPrice: 1},
		{ItemName: "Coffee", UnitPrice: 30, Quantity: 1, TotalPrice: 30},
	}
	err := repo.AppendAll(ctx, lines)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}

	n, err := repo.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no rows after failed placement, got %d", n)
	}
	for _, line := range lines {
		if line.ID != 0 {
			t.Errorf("line %q kept id %d after rollback", line.ItemName, line.ID)
		}
	}
}

func TestAppendAndAppendAllStoreTheSameRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	single := &models.OrderLine{ItemName: "Tea", UnitPrice: 20, Quantity: 2, TotalPrice: 40}
	if err := repo.Append(ctx, single); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	batch := []*models.OrderLine{{ItemName: "Tea", UnitPrice: 20, Quantity: 2, TotalPrice: 40}}
	if err := repo.AppendAll(ctx, batch); err != nil {
		t.Fatalf("AppendAll failed: %v", err)
	}
	if batch[0].OrderTime.IsZero() {
		t.Error("AppendAll should assign OrderTime")
	}

	stored, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stored))
	}
	a, b := stored[0], stored[1]
	if a.ItemName != b.ItemName || a.UnitPrice != b.UnitPrice || a.Quantity != b.Quantity || a.TotalPrice != b.TotalPrice {
		t.Errorf("rows differ: %+v vs %+v", a, b)
	}
}
