package migrations

import (
	"fmt"
	"log/slog"

	"restaurant_ordering/internal/category"
	"restaurant_ordering/internal/models"

	"gorm.io/gorm"
)

// Run creates any missing tables and, when seed is true, fills empty category
// tables with the default menu.
func Run(db *gorm.DB, seed bool) error {
	slog.Info("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}

	if seed {
		if err := seedMenu(db); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
	}

	slog.Info("Database migrations completed")
	return nil
}

// Reset drops every table this service owns and runs Run again.
func Reset(db *gorm.DB, seed bool) error {
	slog.Warn("Dropping existing tables...")
	for _, id := range category.List() {
		table, err := category.Table(id)
		if err != nil {
			return err
		}
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	if err := db.Migrator().DropTable(&models.OrderLine{}); err != nil {
		return fmt.Errorf("failed to drop orders: %w", err)
	}
	return Run(db, seed)
}

func createTables(db *gorm.DB) error {
	for _, id := range category.List() {
		table, err := category.Table(id)
		if err != nil {
			return err
		}
		if err := db.Table(table).AutoMigrate(&models.MenuItem{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", table, err)
		}
	}
	if err := db.AutoMigrate(&models.OrderLine{}); err != nil {
		return fmt.Errorf("failed to migrate orders: %w", err)
	}
	return nil
}

func seedMenu(db *gorm.DB) error {
	for _, id := range category.List() {
		table, err := category.Table(id)
		if err != nil {
			return err
		}

		var count int64
		if err := db.Table(table).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		seedItems := defaultMenu[id]
		if len(seedItems) == 0 {
			continue
		}
		items := make([]models.MenuItem, 0, len(seedItems))
		for _, s := range seedItems {
			items = append(items, models.MenuItem{Name: s.name, Price: s.price})
		}
		if err := db.Table(table).Create(&items).Error; err != nil {
			return fmt.Errorf("failed to seed %s: %w", table, err)
		}
		slog.Info("Seeded category", "category", id, "items", len(items))
	}
	return nil
}
